// Copyright (c) 2016-2017 Daniel Oaks <daniel@danieloaks.net>
// released under the MIT license

package ircname

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Range is an inclusive range of code points.
type Range struct {
	Low  rune `yaml:"low"`
	High rune `yaml:"high"`
}

// Contains returns true if char lies within the range.
func (r Range) Contains(char rune) bool {
	return r.Low <= char && char <= r.High
}

// Grammar is the character-level rule set for one kind of name. The first
// character is checked against Leading, every other character against
// Trailing.
//
// Grammars are plain data so they can be loaded from config. A Grammar must
// not be modified once names have been parsed with it.
type Grammar struct {
	Name      string  `yaml:"name"`
	Leading   []Range `yaml:"leading"`
	Trailing  []Range `yaml:"trailing"`
	MaxLength int     `yaml:"max-length"`
}

var nicknameGrammar = Grammar{
	Name: "nickname",
	Leading: []Range{
		{'A', '}'}, // letters, and [ \ ] ^ _ ` { | }
	},
	Trailing: []Range{
		{'-', '-'},
		{'0', '9'},
		{'A', '}'},
	},
}

var channelGrammar = Grammar{
	Name: "channel",
	Leading: []Range{
		{'!', '!'},
		{'#', '#'},
		{'&', '&'},
		{'+', '+'},
	},
	// everything but NUL, BEL, LF, CR, space, comma and colon
	Trailing: []Range{
		{0x01, 0x06},
		{0x08, 0x09},
		{0x0B, 0x0C},
		{0x0E, 0x1F},
		{0x21, 0x2B},
		{0x2D, 0x39},
		{0x3B, unicode.MaxRune},
	},
	MaxLength: 50,
}

// NicknameGrammar returns a copy of the default nickname grammar.
func NicknameGrammar() *Grammar {
	return nicknameGrammar.Clone()
}

// ChannelGrammar returns a copy of the default channel name grammar.
func ChannelGrammar() *Grammar {
	return channelGrammar.Clone()
}

// Clone returns a deep copy of the grammar.
func (g *Grammar) Clone() *Grammar {
	clone := *g
	clone.Leading = append([]Range(nil), g.Leading...)
	clone.Trailing = append([]Range(nil), g.Trailing...)
	return &clone
}

// Validate returns true if text is a legal name under this grammar.
func (g *Grammar) Validate(text string) bool {
	return g.Check(text) == nil
}

// Check returns nil if text is a legal name, or the reason it is not.
func (g *Grammar) Check(text string) error {
	if len(text) < 1 {
		return ErrNameEmpty
	}
	if strings.TrimSpace(text) == "" {
		return ErrNameSpace
	}

	var count int
	for i := 0; i < len(text); {
		char, size := utf8.DecodeRuneInString(text[i:])
		count++

		if g.MaxLength > 0 && count > g.MaxLength {
			return ErrNameTooLong
		}
		// undecodable bytes are never part of a name
		if char == utf8.RuneError && size == 1 {
			return ErrNameBadChar
		}

		allowed := g.Trailing
		if i == 0 {
			allowed = g.Leading
		}
		if !inRanges(allowed, char) {
			switch {
			case unicode.IsSpace(char):
				return ErrNameSpace
			case i == 0:
				return ErrNameBadStart
			default:
				return ErrNameBadChar
			}
		}

		i += size
	}

	return nil
}

// sanity returns an error if the grammar could never accept a name.
func (g *Grammar) sanity() error {
	if len(g.Leading) < 1 {
		return errors.New("Grammar needs at least one leading range")
	}
	if len(g.Trailing) < 1 {
		return errors.New("Grammar needs at least one trailing range")
	}
	for _, r := range append(append([]Range(nil), g.Leading...), g.Trailing...) {
		if r.Low > r.High {
			return fmt.Errorf("Grammar range %d-%d is backwards", r.Low, r.High)
		}
	}
	if g.MaxLength < 0 {
		return errors.New("Grammar max-length cannot be negative")
	}
	return nil
}

func inRanges(ranges []Range, char rune) bool {
	for _, r := range ranges {
		if r.Contains(char) {
			return true
		}
	}
	return false
}
