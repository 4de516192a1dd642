package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pathsCmd = &cobra.Command{
	Use:   "paths --class Name\\Space\\Class [--class ...]",
	Short: "Show where generated classes are stored",
	Args:  cobra.NoArgs,
	RunE:  runPaths,
}

func init() {
	pathsCmd.Flags().StringArray("class", nil, "fully qualified class name (repeatable)")
	pathsCmd.Flags().String("generation-dir", "", "override the generation directory")
	pathsCmd.Flags().Bool("mkdir", false, "create the generation and class directories")
	_ = pathsCmd.MarkFlagRequired("class")
}

func runPaths(cmd *cobra.Command, _ []string) error {
	classes, err := cmd.Flags().GetStringArray("class")
	if err != nil {
		return err
	}
	mkdir, err := cmd.Flags().GetBool("mkdir")
	if err != nil {
		return err
	}

	gio, err := newIo(cmd)
	if err != nil {
		return err
	}
	if mkdir && !gio.MakeGenerationDirectory() {
		return fmt.Errorf("paths: cannot create %s", gio.GenerationDirectory())
	}

	out := cmd.OutOrStdout()
	for _, class := range classes {
		file := gio.ResultFileName(class)
		dir := gio.ResultFileDirectory(class)
		if mkdir && !gio.MakeResultFileDirectory(class) {
			return fmt.Errorf("paths: cannot create %s", dir)
		}
		state := "missing"
		if gio.FileExists(file) {
			state = "exists"
		}
		fmt.Fprintf(out, "%s\n  file: %s (%s)\n  dir:  %s\n", class, file, state, dir)
	}
	return nil
}
