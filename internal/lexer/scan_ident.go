package lexer

import (
	"genmin/internal/token"
)

// scanVariable сканирует "$name". "$$a" и "${" уходят в операторы как одиночный '$'.
func (lx *Lexer) scanVariable() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '$'
	lx.eatIdentTail()
	return lx.emit(token.Variable, start)
}

// scanName scans a name with optional namespace separators: Foo, Foo\Bar, \Foo\Bar.
// A plain name without separators is checked against the keyword table.
func (lx *Lexer) scanName() token.Token {
	start := lx.cursor.Mark()
	qualified := false
	if lx.cursor.Peek() == '\\' {
		lx.cursor.Bump()
		qualified = true
	}
	lx.eatIdentTail()
	for lx.cursor.Peek() == '\\' && isIdentStartByte(lx.cursor.PeekAt(1)) {
		lx.cursor.Bump()
		lx.eatIdentTail()
		qualified = true
	}

	tok := lx.emit(token.Ident, start)
	if !qualified && token.IsKeyword(tok.Text) {
		tok.Kind = token.Keyword
	}
	return tok
}

func (lx *Lexer) eatIdentTail() {
	if !isIdentStartByte(lx.cursor.Peek()) {
		return
	}
	lx.cursor.Bump()
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
}
