package lexer

import (
	"fmt"

	"genmin/internal/source"
)

// ScanError describes the first problem found while scanning a file.
type ScanError struct {
	Path string
	Kind string
	Pos  source.LineCol
	Span source.Span
	Msg  string
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("%s:%s: %s", e.Path, e.Pos, e.Msg)
}

// firstError is a Reporter that keeps only the first report.
type firstError struct {
	file *source.File
	err  *ScanError
}

func (r *firstError) Report(kind string, span source.Span, msg string) {
	if r.err != nil {
		return
	}
	r.err = &ScanError{
		Path: r.file.Path,
		Kind: kind,
		Pos:  r.file.Position(span.Start),
		Span: span,
		Msg:  msg,
	}
}
