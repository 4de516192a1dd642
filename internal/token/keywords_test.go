package token

import (
	"testing"
)

func TestIsKeyword(t *testing.T) {
	for _, s := range []string{"class", "Function", "RETURN", "namespace", "__CLASS__", "include_once"} {
		if !IsKeyword(s) {
			t.Fatalf("IsKeyword(%q) = false, want true", s)
		}
	}
	// имена типов и обычные идентификаторы: Ident
	for _, s := range []string{"int", "string", "Foo", "classname", "returnValue", ""} {
		if IsKeyword(s) {
			t.Fatalf("IsKeyword(%q) = true, want false", s)
		}
	}
}
