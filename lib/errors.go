// Copyright (c) 2016-2017 Daniel Oaks <daniel@danieloaks.net>
// released under the MIT license

package ircname

import (
	"errors"
	"fmt"
)

var (
	// ErrNullInput is returned when no text was supplied at all.
	ErrNullInput = errors.New("No name was supplied")
	// ErrInvalidName matches every GrammarError through errors.Is.
	ErrInvalidName = errors.New(MessageNameFormatInvalid)

	// grammar reasons, reachable through GrammarError.Reason
	ErrNameEmpty    = errors.New("Names need to be at least one character long")
	ErrNameSpace    = errors.New("Names cannot contain whitespace")
	ErrNameBadStart = errors.New("Name started with a disallowed character")
	ErrNameBadChar  = errors.New("Name contained a disallowed character")
	ErrNameTooLong  = errors.New("Name is longer than allowed")
)

// GrammarError is returned when text is present but breaks a grammar.
type GrammarError struct {
	// Grammar is the name of the grammar that rejected the text.
	Grammar string
	// Reason is one of the ErrName* sentinels.
	Reason error
}

func (e *GrammarError) Error() string {
	return MessageNameFormatInvalid
}

func (e *GrammarError) Unwrap() error {
	return e.Reason
}

// Is reports whether target is ErrInvalidName.
func (e *GrammarError) Is(target error) bool {
	return target == ErrInvalidName
}

// ConversionError is returned by the string-to-name conversions (Convert*,
// UnmarshalText, UnmarshalYAML). It echoes the rejected text back.
type ConversionError struct {
	Text string
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf(MessageCannotConvert, e.Text)
}

// DuplicateNameError is returned when two names that compare equal are used
// as keys of the same Dict.
type DuplicateNameError struct {
	First  string
	Second string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("Names %s and %s are the same name", e.First, e.Second)
}
