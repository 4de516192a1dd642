package minify

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"genmin/internal/lexer"
	"genmin/internal/token"
)

func texts(words ...string) []Token {
	out := make([]Token, 0, len(words))
	for _, w := range words {
		out = append(out, Token{Kind: token.Other, Text: w})
	}
	return out
}

func TestRejoinBelowThresholdConcatenates(t *testing.T) {
	if got := Rejoin(texts("class", "Foo", "{", "}")); got != "classFoo{}" {
		t.Fatalf("expected plain concatenation, got %q", got)
	}
	if got := Rejoin(nil); got != "" {
		t.Fatalf("empty stream must give empty string, got %q", got)
	}

	words := []string{"a", "b", "c1", "_d", "9", "e", "f", "g"}
	for n := 0; n <= MinTokenCount; n++ {
		if got, want := Rejoin(texts(words[:n]...)), strings.Join(words[:n], ""); got != want {
			t.Fatalf("n=%d: expected %q, got %q", n, want, got)
		}
	}
}

func TestRejoinInsertsNewlineBetweenStickyNeighbours(t *testing.T) {
	got := Rejoin(texts("function", "bar", "(", ")", "{", "return", "1", ";", "}"))
	want := "function\nbar(){return\n1;}"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestRejoinQuotedBlockNeedsNoExtraSeparator(t *testing.T) {
	tokens := Normalize([]token.Token{
		raw(token.Variable, "$s"),
		raw(token.Other, "="),
		raw(token.StartHeredoc, "<<<EOT\n"),
		raw(token.EncapsedAndWhitespace, "text"),
		raw(token.EndHeredoc, "EOT"),
		raw(token.Other, ";"),
		raw(token.Keyword, "return"),
		raw(token.Variable, "$s"),
		raw(token.Other, ";"),
	})
	want := "$s=<<<EOT\ntext\nEOT\n;return$s;"
	if got := Rejoin(tokens); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestRejoinNeverFusesStickyBytes(t *testing.T) {
	pool := []string{"a", "Z", "_", "0", "$v", "(", ")", "'s'", "->", "x9", "9x", ";", "\\N", "=>"}
	rng := rand.New(rand.NewPCG(1, 2))

	for round := 0; round < 200; round++ {
		n := MinTokenCount + 1 + rng.IntN(20)
		stream := make([]Token, n)
		var want strings.Builder
		for i := range stream {
			stream[i] = Token{Kind: token.Other, Text: pool[rng.IntN(len(pool))]}
			if i > 0 {
				prev, cur := stream[i-1].Text, stream[i].Text
				if IsSticky(prev[len(prev)-1]) && IsSticky(cur[0]) {
					want.WriteByte('\n')
				}
			}
			want.WriteString(stream[i].Text)
		}
		if got := Rejoin(stream); got != want.String() {
			t.Fatalf("round %d: expected %q, got %q", round, want.String(), got)
		}
	}
}

func TestIsSticky(t *testing.T) {
	for _, b := range []byte("09AZaz_mQ5") {
		if !IsSticky(b) {
			t.Fatalf("%q should be sticky", b)
		}
	}
	for _, b := range []byte("$\\ \n(){};'\"-@/:\x80\xff") {
		if IsSticky(b) {
			t.Fatalf("%q must not be sticky", b)
		}
	}
	if NeedsSeparator("", "a") || NeedsSeparator("a", "") {
		t.Fatalf("empty texts never need a separator")
	}
}

const sampleClass = `<?php
namespace Vendor\Module\Model;

/**
 * Factory class for @see \Vendor\Module\Model\User
 */
class UserFactory
{
    protected $_objectManager = null;

    public function __construct(\Magento\Framework\ObjectManagerInterface $objectManager, $instanceName = '\\Vendor\\Module\\Model\\User')
    {
        $this->_objectManager = $objectManager; // keep
        $this->_instanceName = $instanceName;
    }

    public function create(array $data = [])
    {
        $help = <<<TXT
  Create a new user
    with data
TXT;
        return $this->_objectManager->create($this->_instanceName, $data);
    }
}
`

func TestMinifySample(t *testing.T) {
	out, ok, err := Minify("UserFactory.php", []byte(sampleClass))
	if err != nil || !ok {
		t.Fatalf("Minify failed: ok=%v err=%v", ok, err)
	}
	if strings.Contains(out, "//") || strings.Contains(out, "/**") {
		t.Fatalf("comments must be stripped:\n%s", out)
	}
	if !strings.HasPrefix(out, "<?php\nnamespace\nVendor\\Module\\Model;class\nUserFactory{protected$_objectManager=null;") {
		t.Fatalf("unexpected head:\n%s", out)
	}
	if !strings.Contains(out, "$help=<<<TXT\nCreate a new user\n    with data\nTXT\n;return$this->") {
		t.Fatalf("heredoc not preserved:\n%s", out)
	}
}

func TestMinifyIsIdempotent(t *testing.T) {
	first, _, err := Minify("a.php", []byte(sampleClass))
	if err != nil {
		t.Fatalf("Minify: %v", err)
	}
	second, _, err := Minify("a.php", []byte(sampleClass))
	if err != nil {
		t.Fatalf("Minify: %v", err)
	}
	if first != second {
		t.Fatalf("minification is not deterministic")
	}

	again, ok, err := Minify("a.php", []byte(first))
	if err != nil || !ok {
		t.Fatalf("re-minify failed: ok=%v err=%v", ok, err)
	}
	if again != first {
		t.Fatalf("minifying minified output changed it:\n%q\n%q", first, again)
	}
}

func TestMinifiedOutputRetokenizesToSameStream(t *testing.T) {
	before, err := Tokenize("a.php", []byte(sampleClass))
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	out := Rejoin(before)
	after, err := Tokenize("a.php", []byte(out))
	if err != nil {
		t.Fatalf("Tokenize minified: %v", err)
	}
	if len(before) != len(after) {
		t.Fatalf("token count changed: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("token %d changed: %v -> %v", i, before[i], after[i])
		}
	}
}

func TestMinifyShortStreamIsNotRejoined(t *testing.T) {
	out, ok, err := Minify("a.php", []byte("<?php class Foo {}"))
	if err != nil {
		t.Fatalf("Minify: %v", err)
	}
	if ok || out != "" {
		t.Fatalf("expected no minification for short stream, got ok=%v out=%q", ok, out)
	}
	if _, ok, _ := Minify("empty.php", nil); ok {
		t.Fatalf("empty input must not be minified")
	}
}

func TestMinifyPropagatesScanError(t *testing.T) {
	_, _, err := Minify("bad.php", []byte("<?php echo 'unterminated;"))
	var scanErr *lexer.ScanError
	if !errors.As(err, &scanErr) {
		t.Fatalf("expected *lexer.ScanError, got %v", err)
	}
}
