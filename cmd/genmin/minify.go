package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"genmin/internal/diagfmt"
	"genmin/internal/driver"
)

var minifyCmd = &cobra.Command{
	Use:   "minify [flags] <path> [path...]",
	Short: "Minify generated PHP files in place",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runMinify,
}

func init() {
	minifyCmd.Flags().Bool("check", false, "report files that would change without writing them")
	minifyCmd.Flags().Bool("stdout", false, "print minified code to stdout instead of rewriting files")
	minifyCmd.Flags().Int("jobs", 0, "number of files processed in parallel (0 = configured default)")
	minifyCmd.Flags().Bool("no-cache", false, "ignore the digest cache")
	minifyCmd.Flags().Bool("drop-cache", false, "clear the digest cache before running")
	minifyCmd.Flags().String("pattern", driver.DefaultPattern, "glob selecting files below directory arguments")
	minifyCmd.Flags().String("format", "text", "output format (text|json)")
}

func runMinify(cmd *cobra.Command, args []string) error {
	cmd.SilenceErrors = true

	check, err := cmd.Flags().GetBool("check")
	if err != nil {
		return err
	}
	writeToStdout, err := cmd.Flags().GetBool("stdout")
	if err != nil {
		return err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return err
	}
	dropCache, err := cmd.Flags().GetBool("drop-cache")
	if err != nil {
		return err
	}
	pattern, err := cmd.Flags().GetString("pattern")
	if err != nil {
		return err
	}
	outputFormat, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}

	if writeToStdout && check {
		return reportErr(fmt.Errorf("minify: --stdout cannot be used with --check"))
	}
	if writeToStdout && outputFormat != "text" {
		return reportErr(fmt.Errorf("minify: --stdout is only supported with text output"))
	}
	if jobs <= 0 {
		jobs = app.cfg.Jobs
	}

	policy, err := app.cfg.Policy()
	if err != nil {
		return reportErr(err)
	}

	osFs := afero.NewOsFs()
	opts := driver.MinifyOptions{
		Check:   check,
		Stdout:  writeToStdout,
		Jobs:    jobs,
		Pattern: pattern,
		Policy:  policy,
		Fs:      osFs,
		Logger:  app.log,
	}
	if !noCache && !check && !writeToStdout {
		opts.Cache = openCache(osFs, dropCache)
	}

	results, err := driver.MinifyPaths(cmd.Context(), args, opts)
	if err != nil {
		return reportErr(err)
	}

	out := cmd.OutOrStdout()
	summary := driver.Summarize(results)
	switch {
	case writeToStdout:
		for _, res := range results {
			if res.Err != nil {
				fmt.Fprintf(os.Stderr, "minify: %s: %v\n", res.Path, res.Err)
				continue
			}
			_, _ = out.Write(res.Minified)
		}
	case outputFormat == "json":
		if err := diagfmt.FormatResultsJSON(out, results); err != nil {
			return err
		}
	case outputFormat == "text":
		for _, res := range results {
			line, ok := diagfmt.ResultLine(res, check, app.color)
			if !ok {
				continue
			}
			if res.Err != nil {
				fmt.Fprintln(os.Stderr, line)
				continue
			}
			if !app.quiet {
				fmt.Fprintln(out, line)
			}
		}
		if !app.quiet {
			if err := diagfmt.FormatSummary(out, summary, app.color); err != nil {
				return err
			}
		}
	default:
		return reportErr(fmt.Errorf("minify: unsupported output format %q", outputFormat))
	}

	if summary.Failed > 0 {
		return reportErr(fmt.Errorf("minify: failed to process some files"))
	}
	if check && summary.Changed > 0 {
		return reportErr(fmt.Errorf("minify: %d files would change", summary.Changed))
	}
	return nil
}

func openCache(fs afero.Fs, drop bool) *driver.DigestCache {
	dir := app.cfg.CacheDir
	if dir == "" {
		var err error
		if dir, err = driver.DefaultCacheDir("genmin"); err != nil {
			app.log.Warn("digest cache disabled", "err", err)
			return nil
		}
	}
	cache, err := driver.OpenDigestCache(fs, dir)
	if err != nil {
		app.log.Warn("digest cache disabled", "dir", dir, "err", err)
		return nil
	}
	if drop {
		if err := cache.DropAll(); err != nil {
			app.log.Warn("failed to drop digest cache", "dir", dir, "err", err)
		}
	}
	return cache
}

// reportErr prints err for commands that silence cobra's own error output.
func reportErr(err error) error {
	fmt.Fprintln(os.Stderr, "Error:", err)
	return err
}
