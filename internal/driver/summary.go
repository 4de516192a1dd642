package driver

import "fmt"

// MinifySummary aggregates batch results.
type MinifySummary struct {
	Files    int
	Changed  int
	Skipped  int
	Cached   int
	Excluded int
	Failed   int
	BytesIn  int
	BytesOut int
}

func Summarize(results []MinifyResult) MinifySummary {
	var s MinifySummary
	for i := range results {
		r := &results[i]
		s.Files++
		switch {
		case r.Err != nil:
			s.Failed++
		case r.Excluded:
			s.Excluded++
		case r.Changed:
			s.Changed++
		case r.Skipped:
			s.Skipped++
		}
		if r.Cached {
			s.Cached++
		}
		s.BytesIn += r.BytesIn
		s.BytesOut += r.BytesOut
	}
	return s
}

// Saved returns the number of bytes minification removed.
func (s MinifySummary) Saved() int {
	return s.BytesIn - s.BytesOut
}

func (s MinifySummary) String() string {
	return fmt.Sprintf("%d files, %d changed, %d skipped (%d cached), %d excluded, %d failed, %d bytes saved",
		s.Files, s.Changed, s.Skipped, s.Cached, s.Excluded, s.Failed, s.Saved())
}
