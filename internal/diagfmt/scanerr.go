package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"genmin/internal/lexer"
	"genmin/internal/source"
)

// Pretty prints scan errors with the offending source line and a caret.
func Pretty(w io.Writer, errs []*lexer.ScanError, fs *source.FileSet, opts PrettyOpts) {
	errColor := color.New(color.FgRed, color.Bold)
	locColor := color.New(color.Bold)
	gutter := color.New(color.FgBlue)
	caret := color.New(color.FgGreen, color.Bold)
	for _, c := range []*color.Color{errColor, locColor, gutter, caret} {
		if opts.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	for _, e := range errs {
		fmt.Fprintf(w, "%s %s %s\n",
			locColor.Sprintf("%s:%s:", e.Path, e.Pos),
			errColor.Sprint("error:"),
			e.Msg)

		file := fs.Get(e.Span.File)
		if file == nil || e.Pos.Line == 0 {
			continue
		}
		first := e.Pos.Line
		if opts.Context > 0 {
			first = uint32(max(1, int(e.Pos.Line)-opts.Context))
		}
		for ln := first; ln <= e.Pos.Line; ln++ {
			fmt.Fprintf(w, "%s %s\n", gutter.Sprintf("%5d |", ln), lineText(file, ln))
		}
		text := lineText(file, e.Pos.Line)
		col := max(0, min(int(e.Pos.Col)-1, len(text)))
		fmt.Fprintf(w, "%s %s%s\n", gutter.Sprint("      |"), caretPad(text[:col]), caret.Sprint("^"))
	}
}

// caretPad keeps tabs from prefix and replaces everything else with spaces of
// the same display width.
func caretPad(prefix string) string {
	var b strings.Builder
	for _, r := range prefix {
		if r == '\t' {
			b.WriteByte('\t')
			continue
		}
		b.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	return b.String()
}

// lineText returns line (1-based) without its terminator.
func lineText(f *source.File, line uint32) string {
	if line == 0 || int(line) > len(f.LineIdx)+1 {
		return ""
	}
	start := 0
	if line > 1 {
		start = int(f.LineIdx[line-2]) + 1
	}
	end := len(f.Content)
	if int(line) <= len(f.LineIdx) {
		end = int(f.LineIdx[line-1])
	}
	return strings.TrimRight(string(f.Content[start:end]), "\r")
}
