// Package minify turns PHP source into a compact token stream and joins it back
// with the fewest separators that keep tokens apart.
//
// The pipeline is Tokenize (scanner + Normalize) followed by Rejoin. Normalize
// trims every token and drops the ones that become empty; inside a heredoc or
// nowdoc it appends "\n" to each token so the block keeps its line structure.
// Rejoin puts a "\n" between two tokens only when the last byte of the first and
// the first byte of the second are both sticky ([0-9A-Za-z_]); everything else is
// concatenated as is. Streams of MinTokenCount tokens or fewer are not rejoined.
package minify
