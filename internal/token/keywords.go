package token

import "strings"

var keywords = map[string]struct{}{
	"abstract": {}, "and": {}, "array": {}, "as": {}, "break": {}, "callable": {},
	"case": {}, "catch": {}, "class": {}, "clone": {}, "const": {}, "continue": {},
	"declare": {}, "default": {}, "do": {}, "echo": {}, "else": {}, "elseif": {},
	"empty": {}, "enddeclare": {}, "endfor": {}, "endforeach": {}, "endif": {},
	"endswitch": {}, "endwhile": {}, "enum": {}, "eval": {}, "exit": {}, "die": {},
	"extends": {}, "final": {}, "finally": {}, "fn": {}, "for": {}, "foreach": {},
	"function": {}, "global": {}, "goto": {}, "if": {}, "implements": {},
	"include": {}, "include_once": {}, "instanceof": {}, "insteadof": {},
	"interface": {}, "isset": {}, "list": {}, "match": {}, "namespace": {},
	"new": {}, "or": {}, "print": {}, "private": {}, "protected": {}, "public": {},
	"readonly": {}, "require": {}, "require_once": {}, "return": {}, "static": {},
	"switch": {}, "throw": {}, "trait": {}, "try": {}, "unset": {}, "use": {},
	"var": {}, "while": {}, "xor": {}, "yield": {},
	"__class__": {}, "__dir__": {}, "__file__": {}, "__function__": {},
	"__line__": {}, "__method__": {}, "__namespace__": {}, "__trait__": {},
	"__halt_compiler": {},
}

// IsKeyword reports whether ident is a reserved word.
// PHP keywords are case-insensitive, so "Class" and "CLASS" both match.
func IsKeyword(ident string) bool {
	_, ok := keywords[strings.ToLower(ident)]
	return ok
}
