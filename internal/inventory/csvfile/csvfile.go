// Package csvfile persists inventory records to the tabular output file.
//
// The file carries a fixed 11-column header written exactly once per file
// lifetime: in replace mode the file is recreated with a header on every run,
// in append mode the header is only written when the file does not yet exist
// or is empty.
package csvfile

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"reelscan/internal/inventory"
)

// Header is the fixed column set of the tabular output, pre-enrichment.
var Header = []string{
	"Path", "Filename", "Container", "DurationMin", "SizeMB",
	"VideoCodec", "AudioCodec", "AudioLangs", "Resolution", "SAR", "DAR",
}

// WriteAll persists records to path. With appendMode false any existing file
// is replaced; with appendMode true rows are added after existing content.
func WriteAll(path string, records []inventory.Record, appendMode bool) error {
	flags := os.O_CREATE | os.O_WRONLY
	if appendMode {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}

	file, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return fmt.Errorf("open csv %q: %w", path, err)
	}
	defer file.Close()

	needHeader := true
	if appendMode {
		info, statErr := file.Stat()
		if statErr != nil {
			return fmt.Errorf("stat csv %q: %w", path, statErr)
		}
		needHeader = info.Size() == 0
	}

	writer := csv.NewWriter(file)
	if needHeader {
		if err := writer.Write(Header); err != nil {
			return fmt.Errorf("write csv header: %w", err)
		}
	}
	for _, record := range records {
		if err := writer.Write(row(record)); err != nil {
			return fmt.Errorf("write csv row for %q: %w", record.Path, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return file.Close()
}

// ReadAll loads records back from a tabular file written by WriteAll.
func ReadAll(path string) ([]inventory.Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv %q: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = len(Header)

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv %q: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("csv %q: missing header", path)
	}

	records := make([]inventory.Record, 0, len(rows)-1)
	for _, cols := range rows[1:] {
		record, err := fromRow(cols)
		if err != nil {
			return nil, fmt.Errorf("csv %q: %w", path, err)
		}
		records = append(records, record)
	}
	return records, nil
}

func row(record inventory.Record) []string {
	return []string{
		record.Path,
		record.Filename,
		record.Container,
		formatFloat(record.DurationMin),
		formatFloat(record.SizeMB),
		record.VideoCodec,
		record.AudioCodec,
		record.AudioLangs,
		record.Resolution,
		record.SAR,
		record.DAR,
	}
}

func fromRow(cols []string) (inventory.Record, error) {
	duration, err := strconv.ParseFloat(cols[3], 64)
	if err != nil {
		return inventory.Record{}, fmt.Errorf("parse DurationMin %q: %w", cols[3], err)
	}
	size, err := strconv.ParseFloat(cols[4], 64)
	if err != nil {
		return inventory.Record{}, fmt.Errorf("parse SizeMB %q: %w", cols[4], err)
	}
	return inventory.Record{
		Path:        cols[0],
		Filename:    cols[1],
		Container:   cols[2],
		DurationMin: duration,
		SizeMB:      size,
		VideoCodec:  cols[5],
		AudioCodec:  cols[6],
		AudioLangs:  cols[7],
		Resolution:  cols[8],
		SAR:         cols[9],
		DAR:         cols[10],
	}, nil
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', 2, 64)
}
