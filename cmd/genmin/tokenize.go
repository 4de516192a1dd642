package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"genmin/internal/diagfmt"
	"genmin/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.php",
	Short: "Tokenize a PHP source file",
	Long:  `Tokenize prints the token stream the minifier works on`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	tokenizeCmd.Flags().Bool("normalized", false, "print the trimmed stream that gets rejoined")
	tokenizeCmd.Flags().Int("width", 60, "truncate token text to this many columns in pretty output (0 = no limit)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	normalized, err := cmd.Flags().GetBool("normalized")
	if err != nil {
		return fmt.Errorf("failed to get normalized flag: %w", err)
	}
	width, err := cmd.Flags().GetInt("width")
	if err != nil {
		return fmt.Errorf("failed to get width flag: %w", err)
	}

	result, err := driver.Tokenize(filePath)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	// Выводим ошибки сканера в stderr, если есть
	if len(result.Errors) > 0 {
		opts := diagfmt.PrettyOpts{
			Color:   app.color && isTerminal(os.Stderr),
			Context: 2,
		}
		diagfmt.Pretty(os.Stderr, result.Errors, result.FileSet, opts)
	}

	out := cmd.OutOrStdout()
	opts := diagfmt.PrettyOpts{Width: width}
	switch {
	case format == "pretty" && normalized:
		return diagfmt.FormatNormalizedPretty(out, result.Normalized, opts)
	case format == "pretty":
		return diagfmt.FormatTokensPretty(out, result.Tokens, result.FileSet, opts)
	case format == "json" && normalized:
		return diagfmt.FormatNormalizedJSON(out, result.Normalized)
	case format == "json":
		return diagfmt.FormatTokensJSON(out, result.Tokens, result.FileSet)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
