package diagfmt

// PrettyOpts configures human-readable output.
type PrettyOpts struct {
	Color bool
	// Width caps the display width of token text, 0 - не ограничено.
	Width int
	// Context is the number of source lines shown before a scan error.
	Context int
}
