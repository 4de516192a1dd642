package lexer

import (
	"testing"

	"genmin/internal/source"
)

func newTestCursor(content string) Cursor {
	fs := source.NewFileSet()
	id := fs.AddVirtual("cursor.php", []byte(content))
	return NewCursor(fs.Get(id))
}

func TestCursorBasics(t *testing.T) {
	c := newTestCursor("ab")
	if c.Peek() != 'a' || c.PeekAt(1) != 'b' || c.PeekAt(2) != 0 {
		t.Fatalf("unexpected peeks")
	}
	m := c.Mark()
	if c.Bump() != 'a' || !c.Eat('b') || !c.EOF() {
		t.Fatalf("bump/eat sequence failed")
	}
	if c.Bump() != 0 || c.Peek() != 0 {
		t.Fatalf("reading past EOF must yield 0")
	}
	if sp := c.SpanFrom(m); sp.Start != 0 || sp.End != 2 {
		t.Fatalf("unexpected span %v", sp)
	}
	c.Reset(m)
	if c.Off != 0 {
		t.Fatalf("Reset did not restore offset")
	}
}

func TestCursorPrefixes(t *testing.T) {
	c := newTestCursor("<?PHP echo")
	if !c.HasPrefixFold("<?php") || c.HasPrefix("<?php") {
		t.Fatalf("prefix matching is wrong")
	}
	c.BumpN(100)
	if !c.EOF() || len(c.Rest()) != 0 {
		t.Fatalf("BumpN must clamp to the limit")
	}
}
