package logger

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// SetupLogger builds the CLI logger from flag values.
func SetupLogger(out io.Writer, logLevel string, logJSON bool) Logger {
	return NewLogger(&Config{
		Level:      ParseLevel(logLevel),
		Output:     out,
		JSON:       logJSON,
		TimeFormat: "15:04:05",
	})
}

// GetLoggerConfig reads --log-level and --log-json from the command's flags.
func GetLoggerConfig(cmd *cobra.Command) (string, bool, error) {
	logLevel, err := cmd.Flags().GetString("log-level")
	if err != nil {
		return "", false, fmt.Errorf("failed to get log-level flag: %w", err)
	}
	logJSON, err := cmd.Flags().GetBool("log-json")
	if err != nil {
		return "", false, fmt.Errorf("failed to get log-json flag: %w", err)
	}
	return logLevel, logJSON, nil
}
