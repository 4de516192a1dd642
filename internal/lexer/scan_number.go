package lexer

import (
	"genmin/internal/token"
)

// scanNumber handles decimal, hex (0x), binary (0b), explicit octal (0o),
// digit separators ('_') and floats with optional exponent.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	if lx.cursor.Peek() == '0' {
		switch lx.cursor.PeekAt(1) | 0x20 {
		case 'x':
			return lx.scanRadix(start, isHex)
		case 'b':
			return lx.scanRadix(start, isBin)
		case 'o':
			return lx.scanRadix(start, isOct)
		}
	}

	kind := token.LNumber
	lx.eatDigits(isDec)
	if lx.cursor.Peek() == '.' && lx.cursor.PeekAt(1) != '.' {
		// "1." is a valid float, "1..2" is not our business
		lx.cursor.Bump()
		lx.eatDigits(isDec)
		kind = token.DNumber
	}
	if lx.cursor.Peek()|0x20 == 'e' {
		m := lx.cursor.Mark()
		lx.cursor.Bump()
		if b := lx.cursor.Peek(); b == '+' || b == '-' {
			lx.cursor.Bump()
		}
		if isDec(lx.cursor.Peek()) {
			lx.eatDigits(isDec)
			kind = token.DNumber
		} else {
			lx.cursor.Reset(m)
		}
	}
	return lx.emit(kind, start)
}

func (lx *Lexer) scanRadix(start Mark, digit func(byte) bool) token.Token {
	lx.cursor.BumpN(2)
	lx.eatDigits(digit)
	return lx.emit(token.LNumber, start)
}

// eatDigits consumes digits and single '_' separators placed between digits.
func (lx *Lexer) eatDigits(digit func(byte) bool) {
	for {
		b := lx.cursor.Peek()
		switch {
		case digit(b):
			lx.cursor.Bump()
		case b == '_' && digit(lx.cursor.PeekAt(1)):
			lx.cursor.Bump()
		default:
			return
		}
	}
}
