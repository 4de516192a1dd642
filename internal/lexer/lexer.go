package lexer

import (
	"genmin/internal/source"
	"genmin/internal/token"
)

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	inPHP  bool
	look   *token.Token   // 1 элементный буфер для Peek
	queue  []token.Token  // тело и конец heredoc, выданные за один проход
	hold   []token.Trivia // накопленные leading trivia
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next returns the next significant token with its Leading trivia attached.
// After EOF it keeps returning EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}
	if len(lx.queue) > 0 {
		tok := lx.queue[0]
		lx.queue = lx.queue[1:]
		return tok
	}

	if !lx.inPHP {
		return lx.scanOutsidePHP()
	}

	lx.collectLeadingTrivia()

	// Leading из hold к EOF не приклеиваем
	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.emptySpan()}
	}

	ch := lx.cursor.Peek()
	var tok token.Token

	switch {
	case ch == '$' && isIdentStartByte(lx.cursor.PeekAt(1)):
		tok = lx.scanVariable()

	case isIdentStartByte(ch), ch == '\\' && isIdentStartByte(lx.cursor.PeekAt(1)):
		tok = lx.scanName()

	case isDec(ch), ch == '.' && isDec(lx.cursor.PeekAt(1)):
		tok = lx.scanNumber()

	case ch == '\'' || ch == '"' || ch == '`':
		tok = lx.scanQuoted(ch)

	case ch == '<' && lx.cursor.HasPrefix("<<<"):
		if t, ok := lx.scanHeredoc(); ok {
			tok = t
		} else {
			tok = lx.scanOperatorOrPunct()
		}

	case ch == '?' && lx.cursor.PeekAt(1) == '>':
		tok = lx.scanCloseTag()

	case ch == '(':
		if t, ok := lx.scanCast(); ok {
			tok = t
		} else {
			tok = lx.scanOperatorOrPunct()
		}

	default:
		tok = lx.scanOperatorOrPunct()
	}

	tok.Leading = lx.hold
	lx.hold = nil
	return tok
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) emit(k token.Kind, start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: k, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

// Tokenize scans file up to EOF and returns every significant token, EOF excluded.
// The first reported problem is returned as a *ScanError; tokens are nil then.
func Tokenize(file *source.File, opts Options) ([]token.Token, error) {
	collector := &firstError{file: file}
	if opts.Reporter == nil {
		opts.Reporter = collector
	} else {
		opts.Reporter = multiReporter{opts.Reporter, collector}
	}

	lx := New(file, opts)
	tokens := make([]token.Token, 0, len(file.Content)/4)
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			break
		}
		tokens = append(tokens, tok)
	}
	if collector.err != nil {
		return nil, collector.err
	}
	return tokens, nil
}

type multiReporter []Reporter

func (m multiReporter) Report(kind string, span source.Span, msg string) {
	for _, r := range m {
		r.Report(kind, span, msg)
	}
}
