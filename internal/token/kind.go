package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Other is single-character punctuation: ; , ( ) { } [ ] and friends.
	Other
	// Operator is a multi-character operator such as ===, ->, ?? or <=>.
	Operator

	// InlineHTML is raw text outside of PHP tags.
	InlineHTML
	// OpenTag is "<?php" (or "<?") including one trailing whitespace byte.
	OpenTag
	// OpenTagWithEcho is "<?=".
	OpenTagWithEcho
	// CloseTag is "?>" including one directly following newline.
	CloseTag

	// Variable is "$name".
	Variable
	// Ident is a bare or namespace-qualified name (Foo, \Foo\Bar, namespace\Baz).
	Ident
	// Keyword is a reserved word; matching is case-insensitive.
	Keyword
	// Cast is a type cast such as "(int)" or "( string )".
	Cast
	// Attribute is the "#[" attribute opener.
	Attribute

	// LNumber is an integer literal.
	LNumber
	// DNumber is a floating point literal.
	DNumber
	// ConstantString is a quoted string literal; interpolation stays inside the token.
	ConstantString

	// StartHeredoc is "<<<ID" / "<<<'ID'" including the terminating newline.
	StartHeredoc
	// EncapsedAndWhitespace is the body of a heredoc or nowdoc.
	EncapsedAndWhitespace
	// EndHeredoc is the closing label of a heredoc or nowdoc.
	EndHeredoc
)

var kindNames = [...]string{
	Invalid:               "Invalid",
	EOF:                   "EOF",
	Other:                 "Other",
	Operator:              "Operator",
	InlineHTML:            "InlineHTML",
	OpenTag:               "OpenTag",
	OpenTagWithEcho:       "OpenTagWithEcho",
	CloseTag:              "CloseTag",
	Variable:              "Variable",
	Ident:                 "Ident",
	Keyword:               "Keyword",
	Cast:                  "Cast",
	Attribute:             "Attribute",
	LNumber:               "LNumber",
	DNumber:               "DNumber",
	ConstantString:        "ConstantString",
	StartHeredoc:          "StartHeredoc",
	EncapsedAndWhitespace: "EncapsedAndWhitespace",
	EndHeredoc:            "EndHeredoc",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(" + itoa(int(k)) + ")"
}

// IsSimple reports whether the kind is a plain punctuation character.
func (k Kind) IsSimple() bool { return k == Other }

func itoa(v int) string {
	if v == 0 {
		return "0"
	}
	var buf [8]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}
