package lexer

import (
	"genmin/internal/token"
)

// Жадность: сначала 3-символьные, затем 2-символьные, затем 1-символьные.
var (
	ops3 = [...]string{"<=>", "**=", "...", "<<=", ">>=", "===", "!==", "??=", "?->"}
	ops2 = [...]string{
		"++", "--", "->", "=>", "::", "==", "!=", "<>", "<=", ">=", "&&", "||", "??",
		"+=", "-=", "*=", "/=", ".=", "%=", "&=", "|=", "^=", "<<", ">>", "**",
	}
)

// single-character tokens PHP's tokenizer hands out as plain strings
const simpleChars = ";,.()[]{}+-*/%=!<>&|^~?:@$\"`\\"

func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()

	if lx.cursor.HasPrefix("#[") {
		lx.cursor.BumpN(2)
		return lx.emit(token.Attribute, start)
	}
	for _, op := range ops3 {
		if lx.cursor.HasPrefix(op) {
			lx.cursor.BumpN(3)
			return lx.emit(token.Operator, start)
		}
	}
	for _, op := range ops2 {
		if lx.cursor.HasPrefix(op) {
			lx.cursor.BumpN(2)
			return lx.emit(token.Operator, start)
		}
	}

	ch := lx.cursor.Bump()
	for i := 0; i < len(simpleChars); i++ {
		if simpleChars[i] == ch {
			return lx.emit(token.Other, start)
		}
	}

	// неизвестный символ
	tok := lx.emit(token.Invalid, start)
	lx.report(KindUnknownChar, tok.Span, "unexpected character")
	return tok
}

var castTypes = [...]string{
	"int", "integer", "bool", "boolean", "float", "double", "real",
	"string", "binary", "array", "object", "unset",
}

// scanCast recognises "(type)" with optional blanks inside the parentheses.
func (lx *Lexer) scanCast() (token.Token, bool) {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '('
	lx.skipBlanks()

	nameStart := lx.cursor.Off
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	name := string(lx.file.Content[nameStart:lx.cursor.Off])

	lx.skipBlanks()
	if !isCastType(name) || !lx.cursor.Eat(')') {
		lx.cursor.Reset(start)
		return token.Token{}, false
	}
	return lx.emit(token.Cast, start), true
}

func isCastType(name string) bool {
	for _, t := range castTypes {
		if len(t) == len(name) && equalFoldASCII(t, name) {
			return true
		}
	}
	return false
}

func (lx *Lexer) skipBlanks() {
	for b := lx.cursor.Peek(); b == ' ' || b == '\t'; b = lx.cursor.Peek() {
		lx.cursor.Bump()
	}
}
