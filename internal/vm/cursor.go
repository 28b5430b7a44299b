package vm

import "github.com/nasciiboy/regex4/internal/charwidth"

// Cursor addresses the text being matched the way the reference's `text_t`
// does: a fixed full buffer plus a base offset for the current outer-scan
// attempt and a position relative to that base (spec.md §4.2 step 1). Every
// absolute byte offset handed out (capture starts, Pos) is base+pos, so
// capture slots remain valid across outer-scan restarts that move base.
type Cursor struct {
	Full []byte
	UTF8 bool

	base int
	pos  int
}

// NewCursor creates a cursor over the full input text.
func NewCursor(full []byte, utf8Mode bool) *Cursor {
	return &Cursor{Full: full, UTF8: utf8Mode}
}

// StartAttempt points the cursor at a new outer-scan start offset.
func (c *Cursor) StartAttempt(base int) {
	c.base = base
	c.pos = 0
}

// Pos returns the current absolute byte offset (base+pos).
func (c *Cursor) Pos() int {
	return c.base + c.pos
}

// SetPos sets the current absolute byte offset, stored relative to the
// attempt's base (used when restoring position at a choice point).
func (c *Cursor) SetPos(abs int) {
	c.pos = abs - c.base
}

// Remaining returns the number of bytes left from the current position to
// the end of the input.
func (c *Cursor) Remaining() int {
	return len(c.Full) - c.Pos()
}

// AtEnd reports whether the cursor has reached the end of the input.
func (c *Cursor) AtEnd() bool {
	return c.Pos() >= len(c.Full)
}

// Byte returns the byte at the current position. Only valid when !AtEnd().
func (c *Cursor) Byte() byte {
	return c.Full[c.Pos()]
}

// From returns the text from the current position to the end of input.
func (c *Cursor) From() []byte {
	return c.Full[c.Pos():]
}

// Width returns the number of bytes the code unit at the current position
// occupies (1 in Byte mode, the UTF-8 lead's width in UTF8 mode), per
// spec.md §2's encoding-width rule.
func (c *Cursor) Width() int {
	if c.AtEnd() {
		return 0
	}
	return charwidth.Meter(c.From(), c.UTF8)
}

// WidthAt returns the code-unit width at the given absolute byte offset,
// without moving the cursor. Used by the NEGATIVE group scan (spec.md
// §4.2.4), which advances a local position before deciding to commit it.
func (c *Cursor) WidthAt(abs int) int {
	if abs >= len(c.Full) {
		return 0
	}
	return charwidth.Meter(c.Full[abs:], c.UTF8)
}

// Advance moves the cursor forward by n bytes.
func (c *Cursor) Advance(n int) {
	c.pos += n
}
