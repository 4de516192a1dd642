package lexer

import (
	"genmin/internal/token"
)

// collectLeadingTrivia собирает подряд идущие trivia перед значимым токеном.
//   - ' ', '\t', '\r', '\v', '\f' коалесцируются в один TriviaSpace
//   - последовательные '\n' коалесцируются в один TriviaNewline
//   - "//..." и "#..." до конца строки или до "?>" -> TriviaLineComment
//   - "/*...*/" -> TriviaBlockComment, "/**...*/" -> TriviaDocComment
//
// "#[" is an attribute opener, not a comment.
func (lx *Lexer) collectLeadingTrivia() {
	lx.hold = lx.hold[:0]
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		b := lx.cursor.Peek()

		switch {
		case b == '\n':
			for lx.cursor.Peek() == '\n' {
				lx.cursor.Bump()
			}
			lx.pushTrivia(token.TriviaNewline, start)

		case isSpaceByte(b):
			for {
				b2 := lx.cursor.Peek()
				if b2 == '\n' || !isSpaceByte(b2) {
					break
				}
				lx.cursor.Bump()
			}
			lx.pushTrivia(token.TriviaSpace, start)

		case b == '#' && lx.cursor.PeekAt(1) != '[',
			b == '/' && lx.cursor.PeekAt(1) == '/':
			lx.scanLineComment()
			lx.pushTrivia(token.TriviaLineComment, start)

		case b == '/' && lx.cursor.PeekAt(1) == '*':
			kind := token.TriviaBlockComment
			if lx.cursor.PeekAt(2) == '*' && isSpaceByte(lx.cursor.PeekAt(3)) {
				kind = token.TriviaDocComment
			}
			lx.scanBlockComment()
			lx.pushTrivia(kind, start)

		default:
			return
		}
	}
}

func (lx *Lexer) pushTrivia(kind token.TriviaKind, start Mark) {
	sp := lx.cursor.SpanFrom(start)
	lx.hold = append(lx.hold, token.Trivia{
		Kind: kind,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	})
}

// A line comment stops before the newline or before a closing "?>".
func (lx *Lexer) scanLineComment() {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '\n' || b == '\r' {
			return
		}
		if b == '?' && lx.cursor.PeekAt(1) == '>' {
			return
		}
		lx.cursor.Bump()
	}
}

// Block comments do not nest in PHP.
func (lx *Lexer) scanBlockComment() {
	start := lx.cursor.Mark()
	lx.cursor.BumpN(2)
	for !lx.cursor.EOF() {
		if lx.cursor.HasPrefix("*/") {
			lx.cursor.BumpN(2)
			return
		}
		lx.cursor.Bump()
	}
	lx.report(KindUnterminatedComment, lx.cursor.SpanFrom(start), "unterminated comment")
}
