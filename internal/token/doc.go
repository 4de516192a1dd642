// Package token defines the lexical categories produced by the PHP scanner.
// Invariants:
//   - Token.Text is the exact source slice covered by Token.Span.
//   - Whitespace and comments never appear in the main token stream; they are
//     attached to the following token as leading Trivia.
//   - Single-character punctuation has Kind Other, mirroring the scanner's
//     "simple" items; multi-character operators have Kind Operator.
//   - A heredoc or nowdoc is emitted as StartHeredoc, an optional
//     EncapsedAndWhitespace body and EndHeredoc, in that order.
package token
