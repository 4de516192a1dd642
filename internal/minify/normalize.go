package minify

import (
	"strings"

	"genmin/internal/token"
)

// Token is one normalized lexical unit. Text is never empty.
type Token struct {
	Kind token.Kind
	Text string
}

// Normalize trims raw scanner tokens, drops empty ones and marks heredoc blocks.
// Every token from StartHeredoc through EndHeredoc gets a trailing "\n".
func Normalize(raw []token.Token) []Token {
	out := make([]Token, 0, len(raw))
	inBlock := false
	for _, tok := range raw {
		text := strings.TrimSpace(tok.Text)
		if text == "" {
			continue
		}
		if tok.Kind == token.StartHeredoc {
			inBlock = true
		}
		if inBlock {
			text += "\n"
		}
		if tok.Kind == token.EndHeredoc {
			inBlock = false
		}
		out = append(out, Token{Kind: tok.Kind, Text: text})
	}
	return out
}
