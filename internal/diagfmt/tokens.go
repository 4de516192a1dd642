package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"genmin/internal/minify"
	"genmin/internal/source"
	"genmin/internal/token"
)

const kindColumn = 22

type TokenOutput struct {
	Kind    string      `json:"kind"`
	Text    string      `json:"text,omitempty"`
	Span    source.Span `json:"span"`
	Start   string      `json:"start"`
	Leading []string    `json:"leading,omitempty"`
}

type NormalizedOutput struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet, opts PrettyOpts) error {
	for i, tok := range tokens {
		startPos, endPos := fs.Resolve(tok.Span)

		var leading []string
		for _, trivia := range tok.Leading {
			leading = append(leading, trivia.Kind.String())
		}

		line := fmt.Sprintf("%4d: %s %s at %s-%s",
			i+1, padRight(tok.Kind.String(), kindColumn), quoteText(tok.Text, opts.Width), startPos, endPos)
		if len(leading) > 0 {
			line += " (leading: " + strings.Join(leading, ", ") + ")"
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// FormatNormalizedPretty prints the stream the minifier rejoins.
func FormatNormalizedPretty(w io.Writer, tokens []minify.Token, opts PrettyOpts) error {
	for i, tok := range tokens {
		if _, err := fmt.Fprintf(w, "%4d: %s %s\n", i+1, padRight(tok.Kind.String(), kindColumn), quoteText(tok.Text, opts.Width)); err != nil {
			return err
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		var leading []string
		for _, trivia := range tok.Leading {
			leading = append(leading, trivia.Kind.String())
		}
		start, _ := fs.Resolve(tok.Span)
		output = append(output, TokenOutput{
			Kind:    tok.Kind.String(),
			Text:    tok.Text,
			Span:    tok.Span,
			Start:   start.String(),
			Leading: leading,
		})
	}
	return encodeIndented(w, output)
}

func FormatNormalizedJSON(w io.Writer, tokens []minify.Token) error {
	output := make([]NormalizedOutput, 0, len(tokens))
	for _, tok := range tokens {
		output = append(output, NormalizedOutput{Kind: tok.Kind.String(), Text: tok.Text})
	}
	return encodeIndented(w, output)
}

func encodeIndented(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// quoteText quotes s and truncates it to width display cells.
func quoteText(s string, width int) string {
	q := strconv.Quote(s)
	if width <= 0 || runewidth.StringWidth(q) <= width {
		return q
	}
	if width <= 3 {
		return runewidth.Truncate(q, width, "")
	}
	return runewidth.Truncate(q, width, "...")
}

func padRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}
