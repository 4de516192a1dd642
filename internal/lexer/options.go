package lexer

import (
	"genmin/internal/source"
)

// Reporter is the thin sink the lexer reports problems to.
// The lexer keeps scanning after a report; the caller decides what is fatal.
type Reporter interface {
	Report(kind string, span source.Span, msg string)
}

type Options struct {
	Reporter Reporter // может быть nil, тогда ошибки игнорируем (но продолжаем лексить)
	// ShortOpenTag enables "<?" as an open tag in addition to "<?php" and "<?=".
	ShortOpenTag bool
}

const (
	KindUnknownChar         = "UnknownChar"
	KindUnterminatedString  = "UnterminatedString"
	KindUnterminatedComment = "UnterminatedComment"
	KindUnterminatedHeredoc = "UnterminatedHeredoc"
)

func (lx *Lexer) report(kind string, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(kind, sp, msg)
	}
}
