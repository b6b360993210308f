package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"reelscan/internal/inventory"
	"reelscan/internal/inventory/store"
	"reelscan/internal/language"
)

func newReportCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show the current inventory from the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			db, err := store.Open(cfg.Output.DBPath)
			if err != nil {
				return err
			}
			defer db.Close()

			records, err := db.Records(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintln(out, "Inventory is empty; run 'reelscan scan' first.")
				return nil
			}

			if limit > 0 && len(records) > limit {
				records = records[:limit]
			}

			fmt.Fprintln(out, renderInventoryTable(records))
			fmt.Fprintf(out, "%d records, %.2f MB total, est. %.2f MB after H.265 re-encode\n",
				len(records), totalSizeMB(records), totalEstMB(records))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum rows to display (0 = all)")
	return cmd
}

func renderInventoryTable(records []inventory.Record) string {
	headers := []string{"#", "Filename", "Container", "Min", "Size MB", "Video", "Audio", "Languages", "Resolution", "Est H265 MB"}
	rows := make([][]string, 0, len(records))
	for i, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			record.Filename,
			record.Container,
			formatFixed(record.DurationMin),
			formatFixed(record.SizeMB),
			record.VideoCodec,
			record.AudioCodec,
			language.DisplayList(record.AudioLangs),
			record.Resolution,
			formatFixed(record.EstSizeH265MB),
		})
	}
	aligns := []columnAlignment{
		alignRight, alignLeft, alignLeft, alignRight, alignRight,
		alignLeft, alignLeft, alignLeft, alignLeft, alignRight,
	}
	return renderTable(headers, rows, aligns)
}

func totalSizeMB(records []inventory.Record) float64 {
	var total float64
	for _, record := range records {
		total += record.SizeMB
	}
	return total
}

func totalEstMB(records []inventory.Record) float64 {
	var total float64
	for _, record := range records {
		total += record.EstSizeH265MB
	}
	return total
}

func formatFixed(value float64) string {
	return strconv.FormatFloat(value, 'f', 2, 64)
}
