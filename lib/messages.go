// Copyright (c) 2016-2017 Daniel Oaks <daniel@danieloaks.net>
// released under the MIT license

package ircname

// Message formats shared by everything that reports a rejected name. Callers
// and tests match on these, so the wording is stable.
const (
	// MessageNameFormatInvalid is the text of every GrammarError.
	MessageNameFormatInvalid = "The name format is invalid."

	// MessageCannotConvert is the format of every ConversionError. It takes the
	// rejected text as its only argument.
	MessageCannotConvert = "Cannot convert '%s' to a valid name."
)
