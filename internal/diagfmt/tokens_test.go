package diagfmt

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"genmin/internal/driver"
	"genmin/internal/lexer"
	"genmin/internal/minify"
	"genmin/internal/source"
)

func scan(t *testing.T, src string) (*source.FileSet, *source.File) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.php", []byte(src))
	return fs, fs.Get(id)
}

func TestFormatTokensPretty(t *testing.T) {
	fs, file := scan(t, "<?php\n// hi\necho $a;")
	tokens, err := lexer.Tokenize(file, lexer.Options{})
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}

	var buf bytes.Buffer
	if err := FormatTokensPretty(&buf, tokens, fs, PrettyOpts{}); err != nil {
		t.Fatalf("format: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != len(tokens) {
		t.Fatalf("expected %d lines, got %d:\n%s", len(tokens), len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "   1: OpenTag") || !strings.Contains(lines[0], `"<?php\n"`) {
		t.Errorf("unexpected first line %q", lines[0])
	}
	if !strings.Contains(lines[1], "at 3:1-3:5") || !strings.Contains(lines[1], "LineComment") {
		t.Errorf("expected position and trivia on %q", lines[1])
	}
}

func TestQuoteTextTruncates(t *testing.T) {
	got := quoteText("abcdefghijklmnop", 10)
	if got != `"abcdef...` {
		t.Errorf("quoteText = %q", got)
	}
	if got := quoteText("ab", 10); got != `"ab"` {
		t.Errorf("short text should stay intact, got %q", got)
	}
}

func TestFormatNormalizedJSON(t *testing.T) {
	tokens, err := minify.Tokenize("test.php", []byte("<?php echo 1;"))
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	var buf bytes.Buffer
	if err := FormatNormalizedJSON(&buf, tokens); err != nil {
		t.Fatalf("format: %v", err)
	}
	var out []NormalizedOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid json: %v\n%s", err, buf.String())
	}
	if len(out) != 4 || out[0].Text != "<?php" || out[3].Text != ";" {
		t.Errorf("unexpected output %+v", out)
	}
}

func TestPrettyScanError(t *testing.T) {
	fs, file := scan(t, "<?php\n\t$a = 'open;\n")
	_, err := lexer.Tokenize(file, lexer.Options{})
	var scanErr *lexer.ScanError
	if !errors.As(err, &scanErr) {
		t.Fatalf("expected ScanError, got %v", err)
	}

	var buf bytes.Buffer
	Pretty(&buf, []*lexer.ScanError{scanErr}, fs, PrettyOpts{Context: 1})
	out := buf.String()
	if !strings.Contains(out, "test.php:2:7: error:") {
		t.Errorf("missing location header:\n%s", out)
	}
	if !strings.Contains(out, "    1 | <?php") {
		t.Errorf("missing context line:\n%s", out)
	}
	if !strings.Contains(out, "      | \t     ^") {
		t.Errorf("caret misplaced:\n%s", out)
	}
}

func TestFormatSummary(t *testing.T) {
	results := []driver.MinifyResult{
		{Path: "a.php", Changed: true, BytesIn: 100, BytesOut: 60},
		{Path: "b.php", Excluded: true, BytesIn: 10, BytesOut: 10},
		{Path: "c.php", Err: errors.New("boom")},
	}

	var buf bytes.Buffer
	if err := FormatSummary(&buf, driver.Summarize(results), false); err != nil {
		t.Fatalf("summary: %v", err)
	}
	want := "3 files: 1 changed, 0 skipped (0 cached), 1 excluded, 1 failed, 40 bytes saved\n"
	if buf.String() != want {
		t.Errorf("summary = %q, want %q", buf.String(), want)
	}

	line, ok := ResultLine(results[0], false, false)
	if !ok || line != "minified a.php (100 -> 60 bytes)" {
		t.Errorf("ResultLine = %q, %v", line, ok)
	}
	if _, ok := ResultLine(results[1], false, false); ok {
		t.Error("excluded file should not produce a line")
	}
}
