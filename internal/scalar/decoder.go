// Package scalar walks text one Unicode scalar value at a time while
// reporting how many UTF-16 code units each scalar occupies.
//
// Telegram measures entity offsets in UTF-16 code units. Go strings are
// UTF-8, so positions have to be counted while decoding rather than taken
// from byte or rune indexes.
package scalar

import (
	"unicode/utf16"
	"unicode/utf8"
)

// Decoder yields the scalars of a text in order.
type Decoder interface {
	// Next returns the next scalar and its width in UTF-16 code units.
	// ok is false once the text is exhausted.
	Next() (r rune, units int, ok bool)
}

// Units returns the UTF-16 width of r. Invalid runes are treated as the
// replacement character, which is one unit wide.
func Units(r rune) int {
	if n := utf16.RuneLen(r); n > 0 {
		return n
	}
	return 1
}

// Len16 returns the length of s in UTF-16 code units. Invalid UTF-8 bytes
// count as one unit each, matching what a String decoder reports.
func Len16(s string) int {
	n := 0
	for _, r := range s {
		n += Units(r)
	}
	return n
}

// String decodes UTF-8 text.
type String struct {
	s   string
	pos int
}

// NewString returns a decoder over s.
func NewString(s string) *String {
	return &String{s: s}
}

// Next implements Decoder. Invalid UTF-8 sequences decode to
// utf8.RuneError one byte at a time.
func (d *String) Next() (rune, int, bool) {
	if d.pos >= len(d.s) {
		return 0, 0, false
	}
	r, size := utf8.DecodeRuneInString(d.s[d.pos:])
	d.pos += size
	return r, Units(r), true
}

// UTF16 decodes a sequence of UTF-16 code units.
type UTF16 struct {
	units []uint16
	pos   int
}

// NewUTF16 returns a decoder over units.
func NewUTF16(units []uint16) *UTF16 {
	return &UTF16{units: units}
}

// Next implements Decoder. A high surrogate followed by a low surrogate
// yields one scalar two units wide. An unpaired surrogate yields
// utf8.RuneError one unit wide and decoding resumes at the next unit.
func (d *UTF16) Next() (rune, int, bool) {
	if d.pos >= len(d.units) {
		return 0, 0, false
	}
	u := rune(d.units[d.pos])
	d.pos++
	if !utf16.IsSurrogate(u) {
		return u, 1, true
	}
	if u < 0xdc00 && d.pos < len(d.units) {
		if r := utf16.DecodeRune(u, rune(d.units[d.pos])); r != utf8.RuneError {
			d.pos++
			return r, 2, true
		}
	}
	return utf8.RuneError, 1, true
}
