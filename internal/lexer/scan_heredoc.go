package lexer

import (
	"genmin/internal/source"
	"genmin/internal/token"
)

// scanHeredoc сканирует heredoc/nowdoc целиком. Возвращает StartHeredoc,
// а тело (EncapsedAndWhitespace, если не пустое) и EndHeredoc кладёт в очередь.
//
//	<<<ID / <<<"ID" / <<<'ID'  + перевод строки
//	... body ...
//	    ID              (закрывающая метка может иметь отступ, PHP 7.3+)
//
// ok is false when the input after "<<<" is not a heredoc header; the caller
// then falls back to operator scanning.
func (lx *Lexer) scanHeredoc() (token.Token, bool) {
	start := lx.cursor.Mark()
	lx.cursor.BumpN(3)
	for b := lx.cursor.Peek(); b == ' ' || b == '\t'; b = lx.cursor.Peek() {
		lx.cursor.Bump()
	}

	var quote byte
	if b := lx.cursor.Peek(); b == '\'' || b == '"' {
		quote = lx.cursor.Bump()
	}
	labelStart := lx.cursor.Off
	if !isIdentStartByte(lx.cursor.Peek()) {
		lx.cursor.Reset(start)
		return token.Token{}, false
	}
	lx.eatIdentTail()
	label := string(lx.file.Content[labelStart:lx.cursor.Off])
	if quote != 0 && !lx.cursor.Eat(quote) {
		lx.cursor.Reset(start)
		return token.Token{}, false
	}
	switch {
	case lx.cursor.Eat('\n'):
	case lx.cursor.HasPrefix("\r\n"):
		lx.cursor.BumpN(2)
	default:
		lx.cursor.Reset(start)
		return token.Token{}, false
	}
	head := lx.emit(token.StartHeredoc, start)

	bodyStart := lx.cursor.Mark()
	for {
		lineStart := lx.cursor.Mark()
		for b := lx.cursor.Peek(); b == ' ' || b == '\t'; b = lx.cursor.Peek() {
			lx.cursor.Bump()
		}
		if lx.cursor.HasPrefix(label) && !isIdentContinueByte(lx.cursor.PeekAt(uint32(len(label)))) {
			lx.queueHeredocTail(bodyStart, lineStart, label)
			return head, true
		}
		if !lx.skipLine() {
			break
		}
	}

	// EOF без закрывающей метки
	body := lx.emit(token.Invalid, bodyStart)
	lx.report(KindUnterminatedHeredoc, head.Span.Cover(body.Span), "unterminated heredoc, missing closing label "+label)
	lx.queue = append(lx.queue, body)
	return head, true
}

// queueHeredocTail enqueues the body (without the newline before the closing
// line) and the closing label; the cursor stands right before the label.
func (lx *Lexer) queueHeredocTail(bodyStart, lineStart Mark, label string) {
	if lineStart > bodyStart {
		end := lineStart - 1 // '\n' перед закрывающей строкой
		lx.queue = append(lx.queue, token.Token{
			Kind: token.EncapsedAndWhitespace,
			Span: source.Span{File: lx.file.ID, Start: uint32(bodyStart), End: uint32(end)},
			Text: string(lx.file.Content[bodyStart:end]),
		})
	}
	endStart := lx.cursor.Mark()
	lx.cursor.BumpN(uint32(len(label)))
	lx.queue = append(lx.queue, lx.emit(token.EndHeredoc, endStart))
}

// skipLine moves past the next '\n'; false at EOF.
func (lx *Lexer) skipLine() bool {
	for !lx.cursor.EOF() {
		if lx.cursor.Bump() == '\n' {
			return true
		}
	}
	return false
}
