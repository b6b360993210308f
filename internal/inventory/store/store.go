package store

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"

	_ "modernc.org/sqlite"

	"reelscan/internal/fileutil"
	"reelscan/internal/inventory"
)

//go:embed schema.sql
var schemaSQL string

// ErrNotFound indicates no inventory database exists at the given path.
var ErrNotFound = errors.New("inventory database not found")

// Store manages inventory persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Create removes any prior database file at path and initializes a fresh one.
func Create(path string) (*Store, error) {
	if err := fileutil.RemoveIfExists(path); err != nil {
		return nil, err
	}

	store, err := open(path)
	if err != nil {
		return nil, err
	}
	if _, err := store.db.Exec(schemaSQL); err != nil {
		_ = store.db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return store, nil
}

// Open attaches to an existing inventory database for reporting.
func Open(path string) (*Store, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w at %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("stat database: %w", err)
	}
	return open(path)
}

func open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	return &Store{db: db, path: path}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// InsertRecords bulk-loads records inside one transaction.
func (s *Store) InsertRecords(ctx context.Context, records []inventory.Record) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin insert tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO inventory (
        path, filename, container, duration_min, size_mb,
        video_codec, audio_codec, audio_langs, resolution, sar, dar
    ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, record := range records {
		if _, err := stmt.ExecContext(ctx,
			record.Path,
			record.Filename,
			record.Container,
			record.DurationMin,
			record.SizeMB,
			record.VideoCodec,
			record.AudioCodec,
			record.AudioLangs,
			record.Resolution,
			record.SAR,
			record.DAR,
		); err != nil {
			return fmt.Errorf("insert record %q: %w", record.Path, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit insert: %w", err)
	}
	return nil
}

// Enrich adds the est_size_h265_mb column and populates it from the codec
// ratio table. Returns the number of rows updated.
func (s *Store) Enrich(ctx context.Context) (int64, error) {
	if _, err := s.db.ExecContext(ctx, "ALTER TABLE inventory ADD COLUMN est_size_h265_mb REAL"); err != nil {
		return 0, fmt.Errorf("add enrichment column: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin enrich tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	rows, err := tx.QueryContext(ctx, "SELECT rowid, size_mb, video_codec FROM inventory")
	if err != nil {
		return 0, fmt.Errorf("query rows for enrichment: %w", err)
	}

	type update struct {
		rowid    int64
		estimate float64
	}
	var updates []update
	for rows.Next() {
		var rowid int64
		var sizeMB float64
		var codec string
		if err := rows.Scan(&rowid, &sizeMB, &codec); err != nil {
			_ = rows.Close()
			return 0, fmt.Errorf("scan enrichment row: %w", err)
		}
		updates = append(updates, update{rowid: rowid, estimate: inventory.EstimateH265MB(sizeMB, codec)})
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return 0, fmt.Errorf("iterate enrichment rows: %w", err)
	}
	_ = rows.Close()

	stmt, err := tx.PrepareContext(ctx, "UPDATE inventory SET est_size_h265_mb = ? WHERE rowid = ?")
	if err != nil {
		return 0, fmt.Errorf("prepare enrichment update: %w", err)
	}
	defer stmt.Close()

	for _, u := range updates {
		if _, err := stmt.ExecContext(ctx, u.estimate, u.rowid); err != nil {
			return 0, fmt.Errorf("update rowid %d: %w", u.rowid, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit enrichment: %w", err)
	}
	return int64(len(updates)), nil
}

// Count returns the number of inventory rows.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM inventory").Scan(&count); err != nil {
		return 0, fmt.Errorf("count inventory: %w", err)
	}
	return count, nil
}

// Records returns all rows ordered by path, including the enrichment column
// when present.
func (s *Store) Records(ctx context.Context) ([]inventory.Record, error) {
	enriched, err := s.hasEnrichmentColumn(ctx)
	if err != nil {
		return nil, err
	}

	query := `SELECT path, filename, container, duration_min, size_mb,
        video_codec, audio_codec, audio_langs, resolution, sar, dar`
	if enriched {
		query += ", COALESCE(est_size_h265_mb, 0)"
	}
	query += " FROM inventory ORDER BY path"

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query inventory: %w", err)
	}
	defer rows.Close()

	var records []inventory.Record
	for rows.Next() {
		var r inventory.Record
		dest := []any{
			&r.Path, &r.Filename, &r.Container, &r.DurationMin, &r.SizeMB,
			&r.VideoCodec, &r.AudioCodec, &r.AudioLangs, &r.Resolution, &r.SAR, &r.DAR,
		}
		if enriched {
			dest = append(dest, &r.EstSizeH265MB)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan inventory row: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate inventory: %w", err)
	}
	return records, nil
}

func (s *Store) hasEnrichmentColumn(ctx context.Context) (bool, error) {
	rows, err := s.db.QueryContext(ctx, "PRAGMA table_info(inventory)")
	if err != nil {
		return false, fmt.Errorf("inspect schema: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var cid int
		var name, colType string
		var notNull int
		var dflt sql.NullString
		var pk int
		if err := rows.Scan(&cid, &name, &colType, &notNull, &dflt, &pk); err != nil {
			return false, fmt.Errorf("scan schema row: %w", err)
		}
		if name == "est_size_h265_mb" {
			return true, nil
		}
	}
	return false, rows.Err()
}
