package minify

import (
	"testing"

	"genmin/internal/token"
)

func raw(k token.Kind, text string) token.Token {
	return token.Token{Kind: k, Text: text}
}

func TestNormalizeDropsWhitespaceOnlyTokens(t *testing.T) {
	got := Normalize([]token.Token{
		raw(token.OpenTag, "<?php\n"),
		raw(token.InlineHTML, "  \n\t"),
		raw(token.Keyword, "echo"),
		raw(token.ConstantString, "'a b'"),
		raw(token.Other, ";"),
	})
	want := []Token{
		{token.OpenTag, "<?php"},
		{token.Keyword, "echo"},
		{token.ConstantString, "'a b'"},
		{token.Other, ";"},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d tokens, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: expected %v, got %v", i, want[i], got[i])
		}
		if got[i].Text == "" {
			t.Errorf("token %d has empty text", i)
		}
	}
}

func TestNormalizeQuotedBlockGetsLineBreaks(t *testing.T) {
	got := Normalize([]token.Token{
		raw(token.Other, "="),
		raw(token.StartHeredoc, "<<<EOT\n"),
		raw(token.EncapsedAndWhitespace, "  line one\n  line two  "),
		raw(token.EndHeredoc, "EOT"),
		raw(token.Other, ";"),
	})
	want := []string{"=", "<<<EOT\n", "line one\n  line two\n", "EOT\n", ";"}
	if len(got) != len(want) {
		t.Fatalf("expected %d tokens, got %v", len(want), got)
	}
	for i, w := range want {
		if got[i].Text != w {
			t.Errorf("token %d: expected %q, got %q", i, w, got[i].Text)
		}
	}
}

func TestNormalizeEmptyBlockBody(t *testing.T) {
	got := Normalize([]token.Token{
		raw(token.StartHeredoc, "<<<'X'\n"),
		raw(token.EncapsedAndWhitespace, "\n\n"),
		raw(token.EndHeredoc, "X"),
		raw(token.Other, ")"),
	})
	if len(got) != 3 || got[1].Text != "X\n" || got[2].Text != ")" {
		t.Fatalf("unexpected stream %v", got)
	}
}
