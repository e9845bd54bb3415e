// Copyright (c) 2016-2017 Daniel Oaks <daniel@danieloaks.net>
// released under the MIT license

package ircname

// ChannelKind selects the channel name grammar.
type ChannelKind struct{}

// Grammar returns the default channel grammar. It must not be modified.
func (ChannelKind) Grammar() *Grammar {
	return &channelGrammar
}

// ChannelName is a validated IRC channel name.
type ChannelName = Identifier[ChannelKind]

// ParseChannelName returns text as a ChannelName, or a *GrammarError.
func ParseChannelName(text string) (ChannelName, error) {
	return Parse[ChannelKind](text)
}

// IsValidChannelName returns true if text is a legal channel name.
func IsValidChannelName(text string) bool {
	return IsValid[ChannelKind](text)
}

// ConvertChannelName returns text as a ChannelName, or a *ConversionError.
func ConvertChannelName(text string) (ChannelName, error) {
	return Convert[ChannelKind](text)
}
