// Copyright (c) 2016-2017 Daniel Oaks <daniel@danieloaks.net>
// released under the MIT license

package ircname

import (
	"strings"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Kind ties an identifier type to the grammar its values are checked against.
// Kinds are empty structs; each one gives a distinct Identifier type.
type Kind interface {
	Grammar() *Grammar
}

// Identifier is a validated, immutable protocol name.
//
// The original text is kept as given. Equality, hashing and ordering all work
// on the invariant uppercase fold of that text, so "Dan" and "DAN" are the
// same name. Compare identifiers with Equal rather than ==, and key maps with
// Fold() or use a Dict.
//
// The zero value is not a name; it is only ever returned alongside an error.
type Identifier[K Kind] struct {
	text string
}

// Parse checks text against K's grammar and returns it as an identifier.
// Failures are *GrammarError.
func Parse[K Kind](text string) (Identifier[K], error) {
	var kind K
	return ParseWith[K](kind.Grammar(), text)
}

// ParseWith is Parse with an explicit grammar, such as one loaded from config.
func ParseWith[K Kind](grammar *Grammar, text string) (Identifier[K], error) {
	reason := grammar.Check(text)
	if reason != nil {
		return Identifier[K]{}, &GrammarError{
			Grammar: grammar.Name,
			Reason:  reason,
		}
	}
	return Identifier[K]{text: text}, nil
}

// ParsePtr is Parse for text that may be absent. A nil text returns
// ErrNullInput.
func ParsePtr[K Kind](text *string) (Identifier[K], error) {
	if text == nil {
		return Identifier[K]{}, ErrNullInput
	}
	return Parse[K](*text)
}

// IsValid returns true if Parse would accept text.
func IsValid[K Kind](text string) bool {
	var kind K
	return kind.Grammar().Validate(text)
}

// Convert turns text into an identifier, failing with a *ConversionError that
// names the rejected text.
func Convert[K Kind](text string) (Identifier[K], error) {
	var kind K
	return ConvertWith[K](kind.Grammar(), text)
}

// ConvertWith is Convert with an explicit grammar.
func ConvertWith[K Kind](grammar *Grammar, text string) (Identifier[K], error) {
	if !grammar.Validate(text) {
		return Identifier[K]{}, &ConversionError{Text: text}
	}
	return Identifier[K]{text: text}, nil
}

// String returns the name exactly as it was given.
func (id Identifier[K]) String() string {
	return id.text
}

// Len returns the number of characters in the name.
func (id Identifier[K]) Len() int {
	return utf8.RuneCountInString(id.text)
}

// IsZero returns true for the zero value.
func (id Identifier[K]) IsZero() bool {
	return id.text == ""
}

// Contains is strings.Contains on the original text. It is case-sensitive.
func (id Identifier[K]) Contains(substr string) bool {
	return strings.Contains(id.text, substr)
}

// HasPrefix is strings.HasPrefix on the original text. It is case-sensitive.
func (id Identifier[K]) HasPrefix(prefix string) bool {
	return strings.HasPrefix(id.text, prefix)
}

// Fold returns the canonical form used for comparison.
func (id Identifier[K]) Fold() string {
	return fold(id.text)
}

// Hash returns a hash of the folded name. Equal names hash equal.
func (id Identifier[K]) Hash() uint64 {
	return xxhash.Sum64String(id.Fold())
}

// Equal returns true if both names fold to the same text.
func (id Identifier[K]) Equal(other Identifier[K]) bool {
	return id.Fold() == other.Fold()
}

// Equals is Equal for values of unknown type. Anything that is not an
// identifier of the same kind, including nil, is never equal.
func (id Identifier[K]) Equals(other interface{}) bool {
	switch o := other.(type) {
	case Identifier[K]:
		return id.Equal(o)
	case *Identifier[K]:
		return o != nil && id.Equal(*o)
	}
	return false
}

// Compare orders names by ordinal comparison of their folded text, returning
// -1, 0 or +1.
func (id Identifier[K]) Compare(other Identifier[K]) int {
	return strings.Compare(id.Fold(), other.Fold())
}

// CompareTo is Compare for values of unknown type. A name sorts after nil and
// after anything that is not an identifier of the same kind.
func (id Identifier[K]) CompareTo(other interface{}) int {
	switch o := other.(type) {
	case Identifier[K]:
		return id.Compare(o)
	case *Identifier[K]:
		if o != nil {
			return id.Compare(*o)
		}
	}
	return 1
}

// MarshalText returns the original text.
func (id Identifier[K]) MarshalText() ([]byte, error) {
	return []byte(id.text), nil
}

// UnmarshalText converts text with Convert.
func (id *Identifier[K]) UnmarshalText(text []byte) error {
	converted, err := Convert[K](string(text))
	if err != nil {
		return err
	}
	*id = converted
	return nil
}

// MarshalYAML returns the original text.
func (id Identifier[K]) MarshalYAML() (interface{}, error) {
	return id.text, nil
}

// UnmarshalYAML converts a YAML scalar with Convert.
func (id *Identifier[K]) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var text string
	err := unmarshal(&text)
	if err != nil {
		return err
	}
	return id.UnmarshalText([]byte(text))
}

// fold maps text to its invariant uppercase form, one character at a time.
// A character whose uppercase form is longer than one character, such as
// 'ß', is kept as it is. Casers carry state, so a fresh one is made each time.
func fold(text string) string {
	var caser *cases.Caser
	var folded strings.Builder
	folded.Grow(len(text))

	for _, char := range text {
		switch {
		case 'a' <= char && char <= 'z':
			folded.WriteRune(char - 'a' + 'A')
		case char < utf8.RuneSelf:
			folded.WriteRune(char)
		default:
			if caser == nil {
				upper := cases.Upper(language.Und)
				caser = &upper
			}
			upper := caser.String(string(char))
			if utf8.RuneCountInString(upper) == 1 {
				folded.WriteString(upper)
			} else {
				folded.WriteRune(char)
			}
		}
	}

	return folded.String()
}
