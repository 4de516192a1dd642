package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"genmin/internal/driver"
)

// ResultLine renders one minify result; ok is false when nothing is worth printing.
func ResultLine(res driver.MinifyResult, check bool, useColor bool) (line string, ok bool) {
	changed := color.New(color.FgGreen)
	failed := color.New(color.FgRed, color.Bold)
	if !useColor {
		changed.DisableColor()
		failed.DisableColor()
	} else {
		changed.EnableColor()
		failed.EnableColor()
	}

	switch {
	case res.Err != nil:
		return failed.Sprint("failed ") + res.Path + ": " + res.Err.Error(), true
	case res.Changed && check:
		return res.Path, true
	case res.Changed:
		return fmt.Sprintf("%s %s (%d -> %d bytes)", changed.Sprint("minified"), res.Path, res.BytesIn, res.BytesOut), true
	}
	return "", false
}

// FormatSummary prints the aggregate line shown after a batch run.
func FormatSummary(w io.Writer, s driver.MinifySummary, useColor bool) error {
	bold := color.New(color.Bold)
	warn := color.New(color.FgYellow)
	bad := color.New(color.FgRed, color.Bold)
	for _, c := range []*color.Color{bold, warn, bad} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	failed := fmt.Sprintf("%d failed", s.Failed)
	if s.Failed > 0 {
		failed = bad.Sprint(failed)
	}
	excluded := fmt.Sprintf("%d excluded", s.Excluded)
	if s.Excluded > 0 {
		excluded = warn.Sprint(excluded)
	}
	_, err := fmt.Fprintf(w, "%s %d changed, %d skipped (%d cached), %s, %s, %d bytes saved\n",
		bold.Sprintf("%d files:", s.Files), s.Changed, s.Skipped, s.Cached, excluded, failed, s.Saved())
	return err
}

type resultJSON struct {
	Path     string `json:"path"`
	Changed  bool   `json:"changed"`
	Skipped  bool   `json:"skipped,omitempty"`
	Cached   bool   `json:"cached,omitempty"`
	Unsafe   bool   `json:"unsafe,omitempty"`
	Excluded bool   `json:"excluded,omitempty"`
	BytesIn  int    `json:"bytes_in"`
	BytesOut int    `json:"bytes_out"`
	Error    string `json:"error,omitempty"`
}

// FormatResultsJSON prints results and the summary as one JSON document.
func FormatResultsJSON(w io.Writer, results []driver.MinifyResult) error {
	payload := struct {
		Files   []resultJSON         `json:"files"`
		Summary driver.MinifySummary `json:"summary"`
	}{
		Files:   make([]resultJSON, 0, len(results)),
		Summary: driver.Summarize(results),
	}
	for _, r := range results {
		item := resultJSON{
			Path:     r.Path,
			Changed:  r.Changed,
			Skipped:  r.Skipped,
			Cached:   r.Cached,
			Unsafe:   r.Unsafe,
			Excluded: r.Excluded,
			BytesIn:  r.BytesIn,
			BytesOut: r.BytesOut,
		}
		if r.Err != nil {
			item.Error = r.Err.Error()
		}
		payload.Files = append(payload.Files, item)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
