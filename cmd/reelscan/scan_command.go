package main

import (
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"reelscan/internal/logging"
	"reelscan/internal/preflight"
	"reelscan/internal/scanner"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	var noProgress bool

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan configured roots and rebuild the inventory",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			checks := preflight.Run(cfg)
			if !preflight.AllPassed(checks) {
				for _, failure := range preflight.Failures(checks) {
					fmt.Fprintln(cmd.ErrOrStderr(), "preflight:", failure)
				}
				return fmt.Errorf("preflight checks failed")
			}

			logger, err := logging.New(logging.Options{
				Level:       cfg.Logging.Level,
				Format:      cfg.Logging.Format,
				OutputPaths: []string{"stderr", filepath.Join(cfg.Paths.LogDir, "reelscan.log")},
			})
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}

			signalCtx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			opts := []scanner.Option{}
			if noProgress {
				opts = append(opts, scanner.WithProgress(false))
			}

			s := scanner.New(cfg, logger, opts...)
			outcome, err := s.Run(signalCtx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch outcome.Termination {
			case scanner.NoFiles:
				fmt.Fprintln(out, "No files matched the configured extensions; nothing to do.")
			case scanner.NoRecords:
				fmt.Fprintf(out, "All %d matched files were skipped; nothing written.\n", outcome.FilesFound)
				if outcome.ErrorLogPath != "" {
					fmt.Fprintf(out, "Skip reasons: %s\n", outcome.ErrorLogPath)
				}
			default:
				fmt.Fprintf(out, "Inventoried %d of %d files in %s.\n",
					outcome.Records, outcome.FilesFound, outcome.Elapsed.Round(time.Second))
				fmt.Fprintf(out, "CSV: %s\nDatabase: %s\n", outcome.CSVPath, outcome.DBPath)
				if outcome.ErrorLogPath != "" {
					fmt.Fprintf(out, "%d files skipped, see %s\n", outcome.Skipped, outcome.ErrorLogPath)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noProgress, "no-progress", false, "Disable the progress bar")
	return cmd
}
