package token

import (
	"genmin/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsWordLike reports whether the token text is made of identifier-forming
// characters at both ends (names, keywords, variables, numbers).
func (t Token) IsWordLike() bool {
	switch t.Kind {
	case Ident, Keyword, Variable, LNumber, DNumber:
		return true
	default:
		return false
	}
}

// IsTag reports whether the token switches between PHP code and inline HTML.
func (t Token) IsTag() bool {
	return t.Kind == OpenTag || t.Kind == OpenTagWithEcho || t.Kind == CloseTag
}
