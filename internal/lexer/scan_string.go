package lexer

import (
	"genmin/internal/token"
)

// scanQuoted scans '...', "..." and `...` literals. Strings may span lines;
// a backslash always escapes the next byte, which is enough to find the closing quote.
// Interpolated parts stay inside the literal.
func (lx *Lexer) scanQuoted(quote byte) token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // открывающая кавычка
	for !lx.cursor.EOF() {
		b := lx.cursor.Bump()
		if b == '\\' {
			lx.cursor.Bump()
			continue
		}
		if b == quote {
			return lx.emit(token.ConstantString, start)
		}
	}
	// EOF без закрывающей кавычки
	tok := lx.emit(token.Invalid, start)
	lx.report(KindUnterminatedString, tok.Span, "unterminated string literal")
	return tok
}
