package driver

import (
	"genmin/internal/lexer"
	"genmin/internal/minify"
	"genmin/internal/source"
	"genmin/internal/token"
)

type TokenizeResult struct {
	FileSet    *source.FileSet
	File       *source.File
	Tokens     []token.Token
	Normalized []minify.Token
	Errors     []*lexer.ScanError
}

// Tokenize scans a file from disk. Scan problems do not abort: they are
// collected in Errors and the offending bytes come back as Invalid tokens.
func Tokenize(path string) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	collector := &scanCollector{file: file}
	lx := lexer.New(file, lexer.Options{Reporter: collector})

	var tokens []token.Token
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			break
		}
		tokens = append(tokens, tok)
	}

	return &TokenizeResult{
		FileSet:    fs,
		File:       file,
		Tokens:     tokens,
		Normalized: minify.Normalize(tokens),
		Errors:     collector.errs,
	}, nil
}

// scanCollector keeps every lexer report as a ScanError.
type scanCollector struct {
	file *source.File
	errs []*lexer.ScanError
}

func (c *scanCollector) Report(kind string, span source.Span, msg string) {
	c.errs = append(c.errs, &lexer.ScanError{
		Path: c.file.Path,
		Kind: kind,
		Pos:  c.file.Position(span.Start),
		Span: span,
		Msg:  msg,
	})
}
