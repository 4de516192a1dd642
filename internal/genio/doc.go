// Package genio persists generated PHP classes.
//
// Content is written to "<target>.<pid>", optionally minified in place and then
// renamed onto the target. Rename is atomic, so readers never observe a partial
// file. When the rename fails but the target exists, another process has already
// committed the same class and the write counts as successful; generated content
// for a given class is deterministic, so the last writer losing is harmless.
package genio
