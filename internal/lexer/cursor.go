package lexer

import (
	"fmt"
	"strings"

	"fortio.org/safecast"

	"genmin/internal/source"
)

// Cursor is a byte position inside a source file.
type Cursor struct {
	File *source.File
	Off  uint32
	// Limit is the exclusive upper bound for Off; defaults to len(File.Content).
	Limit uint32
}

// NewCursor creates a new cursor for the provided file.
func NewCursor(f *source.File) Cursor {
	limit, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return Cursor{File: f, Limit: limit}
}

// EOF проверяет, достигнут ли конец файла
func (c *Cursor) EOF() bool {
	return c.Off >= c.Limit
}

// Peek returns the current byte or 0 at EOF.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.File.Content[c.Off]
}

// PeekAt returns the byte n positions ahead of the cursor or 0 past the limit.
func (c *Cursor) PeekAt(n uint32) byte {
	if c.Off+n >= c.Limit {
		return 0
	}
	return c.File.Content[c.Off+n]
}

// Bump advances the cursor by one byte and returns the byte it stepped over.
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.File.Content[c.Off]
	c.Off++
	return b
}

// BumpN advances the cursor by n bytes, stopping at the limit.
func (c *Cursor) BumpN(n uint32) {
	c.Off = min(c.Off+n, c.Limit)
}

// Mark это метка, чтобы быстро получать Span читаемого фрагмента
type Mark uint32

// Mark saves the current cursor position.
func (c *Cursor) Mark() Mark {
	return Mark(c.Off)
}

// SpanFrom returns the span between m and the current position.
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{File: c.File.ID, Start: uint32(m), End: c.Off}
}

// Reset moves the cursor back to m.
func (c *Cursor) Reset(m Mark) {
	c.Off = uint32(m)
}

// Eat consumes the next byte if it matches the provided byte.
func (c *Cursor) Eat(b byte) bool {
	if !c.EOF() && c.File.Content[c.Off] == b {
		c.Off++
		return true
	}
	return false
}

// Rest returns the unread part of the content.
func (c *Cursor) Rest() []byte {
	return c.File.Content[c.Off:c.Limit]
}

// HasPrefix reports whether the unread content starts with s.
func (c *Cursor) HasPrefix(s string) bool {
	rest := c.Rest()
	return len(rest) >= len(s) && string(rest[:len(s)]) == s
}

// HasPrefixFold is HasPrefix with ASCII case folding.
func (c *Cursor) HasPrefixFold(s string) bool {
	rest := c.Rest()
	return len(rest) >= len(s) && strings.EqualFold(string(rest[:len(s)]), s)
}
