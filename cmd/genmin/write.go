package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"genmin/internal/driver"
	"genmin/internal/genio"
)

var writeCmd = &cobra.Command{
	Use:   "write --class Name\\Space\\Class [flags] [file|-]",
	Short: "Store generated class content at its derived path",
	Long: `Write reads class content (without the opening tag) from a file or stdin,
prepends the configured header and stores it atomically below the generation directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWrite,
}

func init() {
	writeCmd.Flags().String("class", "", "fully qualified class name")
	writeCmd.Flags().String("generation-dir", "", "override the generation directory")
	_ = writeCmd.MarkFlagRequired("class")
}

func runWrite(cmd *cobra.Command, args []string) error {
	className, err := cmd.Flags().GetString("class")
	if err != nil {
		return err
	}

	gio, err := newIo(cmd)
	if err != nil {
		return err
	}

	var content []byte
	if len(args) == 0 || args[0] == "-" {
		content, err = io.ReadAll(cmd.InOrStdin())
	} else {
		content, err = os.ReadFile(args[0])
	}
	if err != nil {
		return fmt.Errorf("read content: %w", err)
	}

	fileName, err := driver.WriteClass(cmd.Context(), gio, className, content)
	if err != nil {
		return err
	}
	if !app.quiet {
		fmt.Fprintln(cmd.OutOrStdout(), fileName)
	}
	return nil
}

// newIo builds the writer from configuration and the --generation-dir override.
func newIo(cmd *cobra.Command) (*genio.Io, error) {
	opts, err := app.cfg.WriterOptions(app.log)
	if err != nil {
		return nil, err
	}
	if dir, _ := cmd.Flags().GetString("generation-dir"); dir != "" {
		opts.GenerationDir = dir
	}
	return genio.New(afero.NewOsFs(), opts)
}
