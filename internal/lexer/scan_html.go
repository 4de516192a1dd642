package lexer

import (
	"bytes"

	"genmin/internal/token"
)

// scanOutsidePHP returns inline HTML up to the next open tag, or the open tag itself.
func (lx *Lexer) scanOutsidePHP() token.Token {
	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.emptySpan()}
	}

	start := lx.cursor.Mark()
	if n, kind, ok := lx.openTagAhead(); ok {
		lx.cursor.BumpN(n)
		if kind == token.OpenTag && n == 5 {
			lx.eatOpenTagSpace()
		}
		lx.inPHP = true
		return lx.emit(kind, start)
	}

	for !lx.cursor.EOF() {
		idx := bytes.Index(lx.cursor.Rest(), []byte("<?"))
		if idx < 0 {
			lx.cursor.Off = lx.cursor.Limit
			break
		}
		lx.cursor.BumpN(uint32(idx))
		if _, _, ok := lx.openTagAhead(); ok {
			break
		}
		lx.cursor.BumpN(2)
	}
	return lx.emit(token.InlineHTML, start)
}

// openTagAhead recognises "<?php" followed by whitespace or EOF, "<?=" and,
// with ShortOpenTag, a bare "<?". Nothing is consumed.
func (lx *Lexer) openTagAhead() (uint32, token.Kind, bool) {
	switch {
	case lx.cursor.HasPrefixFold("<?php"):
		if after := lx.cursor.PeekAt(5); after == 0 || isSpaceByte(after) {
			return 5, token.OpenTag, true
		}
	case lx.cursor.HasPrefix("<?="):
		return 3, token.OpenTagWithEcho, true
	}
	if lx.opts.ShortOpenTag && lx.cursor.HasPrefix("<?") {
		return 2, token.OpenTag, true
	}
	return 0, token.Invalid, false
}

// scanCloseTag emits "?>" and swallows one directly following newline.
func (lx *Lexer) scanCloseTag() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.BumpN(2)
	switch {
	case lx.cursor.Eat('\n'):
	case lx.cursor.HasPrefix("\r\n"):
		lx.cursor.BumpN(2)
	}
	lx.inPHP = false
	return lx.emit(token.CloseTag, start)
}

// одиночный пробельный символ после "<?php" входит в тег
func (lx *Lexer) eatOpenTagSpace() {
	if lx.cursor.HasPrefix("\r\n") {
		lx.cursor.BumpN(2)
		return
	}
	if isSpaceByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
}
