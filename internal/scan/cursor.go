// Package scan provides the byte cursor used by the demangler.
package scan

// Cursor is a forward-only read position over a mangled symbol string.
// Every accessor reports end-of-input through its second result instead of
// failing, so callers can make lookahead decisions without bounds checks.
type Cursor struct {
	data string
	pos  int
}

// NewCursor creates a Cursor positioned at the start of data.
func NewCursor(data string) *Cursor {
	return &Cursor{data: data}
}

// Len returns the total input length.
func (c *Cursor) Len() int {
	return len(c.data)
}

// Pos returns the current read position.
func (c *Cursor) Pos() int {
	return c.pos
}

// AtEnd reports whether the cursor has consumed all input.
func (c *Cursor) AtEnd() bool {
	return c.pos >= len(c.data)
}

// Read consumes and returns the current byte. At end of input it returns
// (0, false) and leaves the position unchanged.
func (c *Cursor) Read() (byte, bool) {
	if c.pos >= len(c.data) {
		return 0, false
	}
	b := c.data[c.pos]
	c.pos++
	return b, true
}

// Peek returns the current byte without consuming it.
func (c *Cursor) Peek() (byte, bool) {
	if c.pos >= len(c.data) {
		return 0, false
	}
	return c.data[c.pos], true
}

// At returns the byte at an absolute index.
func (c *Cursor) At(i int) (byte, bool) {
	if i < 0 || i >= len(c.data) {
		return 0, false
	}
	return c.data[i], true
}

// Unread steps the position back by one byte. This is the only backward
// move the grammar needs: a digit consumed by the component dispatch must be
// re-entered through the literal/length rule.
func (c *Cursor) Unread() {
	if c.pos > 0 {
		c.pos--
	}
}

// Skip advances the position by n bytes, clamped to the input length.
// Negative counts are ignored; Unread is the only backward move.
func (c *Cursor) Skip(n int) {
	if n <= 0 {
		return
	}
	c.pos += n
	if c.pos > len(c.data) {
		c.pos = len(c.data)
	}
}
