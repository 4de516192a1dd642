package minify

import (
	"strings"

	"genmin/internal/lexer"
	"genmin/internal/source"
)

// MinTokenCount is the stream length up to which Rejoin only concatenates.
const MinTokenCount = 8

// IsSticky reports whether b belongs to [0-9A-Za-z_]. Two sticky bytes from
// neighbouring tokens would fuse into one token if joined directly.
func IsSticky(b byte) bool {
	return (b >= '0' && b <= '9') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= 'a' && b <= 'z') ||
		b == '_'
}

// NeedsSeparator reports whether prev and next must be split by a newline.
func NeedsSeparator(prev, next string) bool {
	return prev != "" && next != "" && IsSticky(prev[len(prev)-1]) && IsSticky(next[0])
}

// Rejoin joins normalized tokens. Streams of MinTokenCount tokens or fewer come
// back as a plain concatenation; longer ones get a "\n" between sticky neighbours.
func Rejoin(tokens []Token) string {
	var b strings.Builder
	if len(tokens) <= MinTokenCount {
		for _, tok := range tokens {
			b.WriteString(tok.Text)
		}
		return b.String()
	}

	size := 0
	for _, tok := range tokens {
		size += len(tok.Text) + 1
	}
	b.Grow(size)

	b.WriteString(tokens[0].Text)
	for i := 1; i < len(tokens); i++ {
		if NeedsSeparator(tokens[i-1].Text, tokens[i].Text) {
			b.WriteByte('\n')
		}
		b.WriteString(tokens[i].Text)
	}
	return b.String()
}

// Tokenize scans src and returns its normalized token stream.
// A scanner failure is returned as *lexer.ScanError.
func Tokenize(name string, src []byte) ([]Token, error) {
	fs := source.NewFileSet()
	id := fs.AddVirtual(name, src)
	raw, err := lexer.Tokenize(fs.Get(id), lexer.Options{})
	if err != nil {
		return nil, err
	}
	return Normalize(raw), nil
}

// Minify tokenizes and rejoins src. ok is false when the stream has
// MinTokenCount tokens or fewer: the result would gain nothing, so callers
// keep the original content. out is empty whenever ok is false.
func Minify(name string, src []byte) (out string, ok bool, err error) {
	tokens, err := Tokenize(name, src)
	if err != nil {
		return "", false, err
	}
	if len(tokens) <= MinTokenCount {
		return "", false, nil
	}
	return Rejoin(tokens), true, nil
}
