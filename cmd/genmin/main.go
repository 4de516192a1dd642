package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"genmin/internal/version"
)

var rootCmd = &cobra.Command{
	Use:               "genmin",
	Short:             "Minifier and atomic writer for generated PHP code",
	Long:              `genmin stores generated PHP classes atomically and strips them down to a compact token stream`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
}

// main registers subcommands and persistent flags and executes the root command.
// If command execution returns an error, the process exits with status code 1.
func main() {
	// Устанавливаем версию для автоматического флага --version
	rootCmd.Version = version.Current().Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(minifyCmd)
	rootCmd.AddCommand(writeCmd)
	rootCmd.AddCommand(pathsCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().String("config", "", "path to genmin.toml (default: searched upwards from the working directory)")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level (debug|info|warn|error|off)")
	rootCmd.PersistentFlags().Bool("log-json", false, "emit logs as JSON")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
