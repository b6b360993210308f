package runlog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"reelscan/internal/inventory"
)

// Files bundles the log surfaces of one scan run.
type Files struct {
	dir          string
	runID        string
	debugEnabled bool

	summary *os.File
	debug   *os.File
}

// New prepares the log surfaces under dir. The summary log is created
// immediately; the debug log lazily on first use; the error log only when
// FlushErrors receives entries.
func New(dir, runID string, debugEnabled bool) (*Files, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log directory %q: %w", dir, err)
	}

	summaryPath := filepath.Join(dir, fmt.Sprintf("reelscan-%s-summary.log", runID))
	summary, err := os.OpenFile(summaryPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open summary log: %w", err)
	}

	return &Files{dir: dir, runID: runID, debugEnabled: debugEnabled, summary: summary}, nil
}

// SummaryPath returns the summary log location.
func (f *Files) SummaryPath() string {
	return f.summary.Name()
}

// ErrorPath returns where the error log would be written.
func (f *Files) ErrorPath() string {
	return filepath.Join(f.dir, fmt.Sprintf("reelscan-%s-errors.log", f.runID))
}

// SummaryHeader writes the run banner.
func (f *Files) SummaryHeader(start time.Time, fileCount int) error {
	_, err := fmt.Fprintf(f.summary, "scan started %s, %d files to process\n",
		start.UTC().Format(time.RFC3339), fileCount)
	if err != nil {
		return fmt.Errorf("write summary header: %w", err)
	}
	return nil
}

// SummaryLine records one processed file.
func (f *Files) SummaryLine(index int, record inventory.Record) error {
	langs := record.AudioLangs
	if strings.Trim(langs, ";") == "" {
		langs = "-"
	}
	_, err := fmt.Fprintf(f.summary, "%d. %s %.2fmin %s [%s]\n",
		index, record.Filename, record.DurationMin, record.VideoCodec, langs)
	if err != nil {
		return fmt.Errorf("write summary line: %w", err)
	}
	return nil
}

// SummaryTotals writes the closing run statistics.
func (f *Files) SummaryTotals(records, skipped int, elapsed time.Duration) error {
	_, err := fmt.Fprintf(f.summary, "scan finished %s: %d records, %d skipped, took %s\n",
		time.Now().UTC().Format(time.RFC3339), records, skipped, elapsed.Round(time.Second))
	if err != nil {
		return fmt.Errorf("write summary totals: %w", err)
	}
	return nil
}

// DebugDocument appends one raw probe document to the debug log. A no-op when
// debug dumps are disabled.
func (f *Files) DebugDocument(path string, document []byte) error {
	if !f.debugEnabled {
		return nil
	}
	if f.debug == nil {
		debugPath := filepath.Join(f.dir, fmt.Sprintf("reelscan-%s-debug.log", f.runID))
		file, err := os.OpenFile(debugPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		f.debug = file
	}
	if _, err := fmt.Fprintf(f.debug, "==== %s ====\n%s\n", path, document); err != nil {
		return fmt.Errorf("write debug document: %w", err)
	}
	return nil
}

// FlushErrors writes the collected soft failures. No file is created when
// entries is empty; the returned path is empty in that case.
func (f *Files) FlushErrors(entries []string) (string, error) {
	if len(entries) == 0 {
		return "", nil
	}
	path := f.ErrorPath()
	var builder strings.Builder
	for _, entry := range entries {
		builder.WriteString(entry)
		builder.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(builder.String()), 0o644); err != nil {
		return "", fmt.Errorf("write error log: %w", err)
	}
	return path, nil
}

// Close releases the open log files.
func (f *Files) Close() error {
	var firstErr error
	if f.debug != nil {
		if err := f.debug.Close(); err != nil {
			firstErr = err
		}
		f.debug = nil
	}
	if f.summary != nil {
		if err := f.summary.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		f.summary = nil
	}
	return firstErr
}
