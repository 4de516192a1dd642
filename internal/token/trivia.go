package token

import "genmin/internal/source"

type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota
	TriviaNewline
	TriviaLineComment  // "// ..." or "# ..."
	TriviaBlockComment // "/* ... */"
	TriviaDocComment   // "/** ... */"
)

var triviaNames = [...]string{
	TriviaSpace:        "Space",
	TriviaNewline:      "Newline",
	TriviaLineComment:  "LineComment",
	TriviaBlockComment: "BlockComment",
	TriviaDocComment:   "DocComment",
}

func (k TriviaKind) String() string {
	if int(k) < len(triviaNames) {
		return triviaNames[k]
	}
	return "TriviaKind(" + itoa(int(k)) + ")"
}

type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}
