// Copyright (c) 2016-2017 Daniel Oaks <daniel@danieloaks.net>
// released under the MIT license

package ircname

// NicknameKind selects the nickname grammar.
type NicknameKind struct{}

// Grammar returns the default nickname grammar. It must not be modified.
func (NicknameKind) Grammar() *Grammar {
	return &nicknameGrammar
}

// Nickname is a validated IRC nickname.
type Nickname = Identifier[NicknameKind]

// ParseNickname returns text as a Nickname, or a *GrammarError.
func ParseNickname(text string) (Nickname, error) {
	return Parse[NicknameKind](text)
}

// ParseNicknamePtr is ParseNickname for text that may be absent.
func ParseNicknamePtr(text *string) (Nickname, error) {
	return ParsePtr[NicknameKind](text)
}

// MustNickname is ParseNickname for names known to be good. It panics on
// failure.
func MustNickname(text string) Nickname {
	nick, err := ParseNickname(text)
	if err != nil {
		panic(err)
	}
	return nick
}

// IsValidNickname returns true if text is a legal nickname.
func IsValidNickname(text string) bool {
	return IsValid[NicknameKind](text)
}

// ConvertNickname returns text as a Nickname, or a *ConversionError.
func ConvertNickname(text string) (Nickname, error) {
	return Convert[NicknameKind](text)
}
