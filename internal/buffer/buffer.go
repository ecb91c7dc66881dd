package buffer

import "strings"

// MarkupBuffer accumulates rendered markup in storage sized up front from a
// capacity estimate.
type MarkupBuffer struct {
	sb strings.Builder
}

// New creates a MarkupBuffer able to hold capacity bytes without growing.
func New(capacity int) *MarkupBuffer {
	b := &MarkupBuffer{}
	if capacity > 0 {
		b.sb.Grow(capacity)
	}
	return b
}

// WriteString appends s.
func (b *MarkupBuffer) WriteString(s string) {
	b.sb.WriteString(s)
}

// WriteRune appends the UTF-8 encoding of r.
func (b *MarkupBuffer) WriteRune(r rune) {
	b.sb.WriteRune(r)
}

// Write appends p.
func (b *MarkupBuffer) Write(p []byte) {
	b.sb.Write(p)
}

// Len returns the number of bytes written.
func (b *MarkupBuffer) Len() int {
	return b.sb.Len()
}

// Cap returns the current capacity. It stays at the initial value as long
// as the estimate passed to New was large enough.
func (b *MarkupBuffer) Cap() int {
	return b.sb.Cap()
}

// String returns the accumulated markup.
func (b *MarkupBuffer) String() string {
	return b.sb.String()
}
