package scanner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"

	"reelscan/internal/config"
	"reelscan/internal/inventory"
	"reelscan/internal/inventory/csvfile"
	"reelscan/internal/inventory/store"
	"reelscan/internal/logging"
	"reelscan/internal/runlog"
)

// Termination classifies how a run ended.
type Termination int

const (
	// Completed means records were persisted.
	Completed Termination = iota
	// NoFiles means discovery matched nothing; no outputs were written.
	NoFiles
	// NoRecords means every matched file was skipped; persistence was skipped.
	NoRecords
)

// Outcome summarizes a finished run.
type Outcome struct {
	RunID        string
	Termination  Termination
	FilesFound   int
	Records      int
	Skipped      int
	Warnings     int
	CSVPath      string
	DBPath       string
	SummaryPath  string
	ErrorLogPath string
	Elapsed      time.Duration
}

// Scanner orchestrates one inventory run.
type Scanner struct {
	cfg      *config.Config
	logger   *slog.Logger
	prober   Prober
	progress bool
}

// Option customizes scanner construction.
type Option func(*Scanner)

// WithProber substitutes the external prober, used by tests.
func WithProber(p Prober) Option {
	return func(s *Scanner) { s.prober = p }
}

// WithProgress forces the progress bar on or off regardless of TTY detection.
func WithProgress(enabled bool) Option {
	return func(s *Scanner) { s.progress = enabled }
}

// New constructs a scanner for the given configuration.
func New(cfg *config.Config, logger *slog.Logger, opts ...Option) *Scanner {
	s := &Scanner{
		cfg:      cfg,
		logger:   logger,
		prober:   NewProber(cfg.FFprobe.Binary, cfg.ProbeTimeout()),
		progress: isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run executes a full scan. Per-file failures are collected, not returned;
// the error return covers run-level conditions only (lock contention, log
// setup, final persistence).
func (s *Scanner) Run(ctx context.Context) (Outcome, error) {
	start := time.Now()
	runID := uuid.NewString()[:8]
	outcome := Outcome{RunID: runID, CSVPath: s.cfg.Output.CSVPath, DBPath: s.cfg.Output.DBPath}

	lock := flock.New(filepath.Join(s.cfg.Paths.StateDir, "reelscan.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return outcome, fmt.Errorf("acquire run lock: %w", err)
	}
	if !locked {
		return outcome, errors.New("another scan is already running")
	}
	defer func() { _ = lock.Unlock() }()

	files, walkWarnings, err := Discover(s.cfg.Paths.Roots, s.cfg.Scan.Extensions)
	if err != nil {
		return outcome, err
	}
	for _, warning := range walkWarnings {
		s.logger.Warn("discovery warning", logging.String("detail", warning))
	}
	outcome.FilesFound = len(files)
	outcome.Warnings = len(walkWarnings)

	if len(files) == 0 {
		outcome.Termination = NoFiles
		outcome.Elapsed = time.Since(start)
		s.logger.Info("no files matched configured extensions",
			logging.Int("roots", len(s.cfg.Paths.Roots)),
			logging.String("run_id", runID))
		return outcome, nil
	}

	logs, err := runlog.New(s.cfg.Paths.LogDir, runID, s.cfg.Logging.DebugProbeDumps)
	if err != nil {
		return outcome, err
	}
	defer logs.Close()
	outcome.SummaryPath = logs.SummaryPath()

	if err := logs.SummaryHeader(start, len(files)); err != nil {
		s.logger.Warn("summary log unavailable", logging.Error(err))
	}

	bar := s.newProgressBar(len(files))

	var records []inventory.Record
	var failures []string

	for index, path := range files {
		if err := ctx.Err(); err != nil {
			return outcome, err
		}

		record, skipReason := s.processFile(ctx, path, logs)
		if skipReason != "" {
			failures = append(failures, fmt.Sprintf("%s: %s", path, skipReason))
			outcome.Skipped++
		} else {
			records = append(records, record)
			if err := logs.SummaryLine(len(records), record); err != nil {
				s.logger.Warn("summary line not written", logging.String("path", path), logging.Error(err))
				failures = append(failures, fmt.Sprintf("%s: summary line not written: %v", path, err))
			}
		}

		if bar != nil {
			_ = bar.Add(1)
		} else {
			s.logger.Info("processed file",
				logging.Int("index", index+1),
				logging.Int("total", len(files)),
				logging.String("file", filepath.Base(path)))
		}
	}
	if bar != nil {
		_ = bar.Finish()
	}

	outcome.Records = len(records)
	outcome.Elapsed = time.Since(start)

	if err := logs.SummaryTotals(len(records), outcome.Skipped, outcome.Elapsed); err != nil {
		s.logger.Warn("summary totals not written", logging.Error(err))
	}

	errorLogPath, err := logs.FlushErrors(failures)
	if err != nil {
		s.logger.Warn("error log not written", logging.Error(err))
	}
	outcome.ErrorLogPath = errorLogPath

	if len(records) == 0 {
		outcome.Termination = NoRecords
		s.logger.Info("no valid records produced, skipping persistence",
			logging.Int("files", len(files)),
			logging.Int("skipped", outcome.Skipped),
			logging.String("run_id", runID))
		return outcome, nil
	}

	if err := s.persist(ctx, records); err != nil {
		return outcome, err
	}

	outcome.Termination = Completed
	s.logger.Info("scan complete",
		logging.String("run_id", runID),
		logging.Int("records", len(records)),
		logging.Int("skipped", outcome.Skipped),
		logging.Duration("elapsed", outcome.Elapsed))
	return outcome, nil
}

// processFile probes and extracts a single file. A non-empty skip reason means
// no record was produced.
func (s *Scanner) processFile(ctx context.Context, path string, logs *runlog.Files) (inventory.Record, string) {
	document, err := s.prober.Inspect(ctx, path)
	if err != nil {
		s.logger.Warn("probe produced no document",
			logging.String("path", path),
			logging.Error(err))
		reason := "probe produced no document"
		if document.Diagnostics != "" {
			reason = fmt.Sprintf("%s (%s)", reason, document.Diagnostics)
		}
		return inventory.Record{}, reason
	}

	if document.Diagnostics != "" {
		s.logger.Warn("probe diagnostics",
			logging.String("path", path),
			logging.String("diagnostics", document.Diagnostics))
	}

	if err := logs.DebugDocument(path, document.Raw); err != nil {
		s.logger.Warn("debug dump not written", logging.String("path", path), logging.Error(err))
	}

	record, err := inventory.Extract(path, document.Raw)
	if err != nil {
		s.logger.Warn("file skipped", logging.String("path", path), logging.Error(err))
		return inventory.Record{}, err.Error()
	}

	record.EstSizeH265MB = inventory.EstimateH265MB(record.SizeMB, record.VideoCodec)
	return record, ""
}

func (s *Scanner) persist(ctx context.Context, records []inventory.Record) error {
	if err := csvfile.WriteAll(s.cfg.Output.CSVPath, records, s.cfg.Output.CSVAppend); err != nil {
		return fmt.Errorf("persist csv: %w", err)
	}

	db, err := store.Create(s.cfg.Output.DBPath)
	if err != nil {
		return fmt.Errorf("create inventory database: %w", err)
	}
	defer db.Close()

	if err := db.InsertRecords(ctx, records); err != nil {
		return fmt.Errorf("persist database: %w", err)
	}
	enriched, err := db.Enrich(ctx)
	if err != nil {
		return fmt.Errorf("enrich database: %w", err)
	}
	s.logger.Debug("database enriched", logging.Int64("rows", enriched))
	return db.Close()
}

func (s *Scanner) newProgressBar(total int) *progressbar.ProgressBar {
	if !s.progress {
		return nil
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription("Probing files"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionClearOnFinish(),
	)
}
