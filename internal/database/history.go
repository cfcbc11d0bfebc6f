package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/h3network/h3report/internal/model"
)

// FileName is the database file created inside the database directory.
const FileName = "h3report.db"

// timeLayout is how timestamps are stored. It is fixed width so that
// string order matches time order.
const timeLayout = "2006-01-02 15:04:05.000000000"

// HistoryDB stores one record per rendered report.
type HistoryDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures HistoryDB behavior.
type Options struct {
	// CreateIfNotExists creates the directory and database file if missing.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates the history database in dbDir.
// If CreateIfNotExists is false and the file is missing, ErrNotFound is
// returned.
func Open(dbDir string, opts Options) (*HistoryDB, error) {
	dbPath := filepath.Join(dbDir, FileName)

	var dsn string
	if opts.CreateIfNotExists {
		if err := os.MkdirAll(dbDir, 0o750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
		dsn = dbPath + "?mode=rwc"
	} else {
		if _, err := os.Stat(dbPath); errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	hdb := &HistoryDB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := hdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return hdb, nil
}

// Close closes the database connection.
func (h *HistoryDB) Close() error {
	return h.db.Close()
}

// Path returns the database file path.
func (h *HistoryDB) Path() string {
	return h.dbPath
}

func (h *HistoryDB) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS renders (
		id TEXT PRIMARY KEY,
		output_path TEXT NOT NULL,
		pages INTEGER NOT NULL,
		elements INTEGER NOT NULL,
		bytes INTEGER NOT NULL,
		fingerprint TEXT NOT NULL,
		started_at TEXT NOT NULL,
		finished_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_renders_started ON renders(started_at);
	`

	_, err := h.db.ExecContext(context.Background(), schema)
	return err
}

// RenderRecord is a stored render.
type RenderRecord struct {
	ID          string
	OutputPath  string
	Pages       int
	Elements    int
	Bytes       int64
	Fingerprint string
	StartedAt   time.Time
	FinishedAt  time.Time
}

// Duration is the time the run took.
func (r RenderRecord) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

// SaveRender stores a rendered run. Saving the same run again replaces its
// record.
func (h *HistoryDB) SaveRender(ctx context.Context, run *model.Run) error {
	if run == nil || run.Document == nil || run.Result == nil {
		return ErrIncompleteRun
	}

	finished := run.FinishedAt
	if finished.IsZero() {
		finished = time.Now()
	}

	query := `
	INSERT INTO renders (id, output_path, pages, elements, bytes, fingerprint, started_at, finished_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
		output_path = excluded.output_path,
		pages = excluded.pages,
		elements = excluded.elements,
		bytes = excluded.bytes,
		fingerprint = excluded.fingerprint,
		started_at = excluded.started_at,
		finished_at = excluded.finished_at
	`

	_, err := h.db.ExecContext(ctx, query,
		run.ID,
		run.Result.Path,
		run.Result.Pages,
		len(run.Document.Elements),
		run.Result.Bytes,
		run.Fingerprint,
		formatTimestamp(run.StartedAt),
		formatTimestamp(finished),
	)
	if err != nil {
		return fmt.Errorf("failed to save render: %w", err)
	}

	return nil
}

// ListRenders returns recorded renders newest first. A limit of zero or
// less returns all of them.
func (h *HistoryDB) ListRenders(ctx context.Context, limit int) ([]RenderRecord, error) {
	query := `
	SELECT id, output_path, pages, elements, bytes, fingerprint, started_at, finished_at
	FROM renders
	ORDER BY started_at DESC, id
	`
	args := make([]any, 0, 1)
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := h.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list renders: %w", err)
	}
	defer rows.Close()

	records := make([]RenderRecord, 0)
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

// LatestRender returns the most recently started render.
func (h *HistoryDB) LatestRender(ctx context.Context) (*RenderRecord, error) {
	query := `
	SELECT id, output_path, pages, elements, bytes, fingerprint, started_at, finished_at
	FROM renders
	ORDER BY started_at DESC, id
	LIMIT 1
	`

	record, err := scanRecord(h.db.QueryRowContext(ctx, query))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoRenders
	}
	if err != nil {
		return nil, err
	}

	return &record, nil
}

// scanner is the part of *sql.Row and *sql.Rows that scanRecord uses.
type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(s scanner) (RenderRecord, error) {
	var record RenderRecord
	var started, finished string

	err := s.Scan(
		&record.ID,
		&record.OutputPath,
		&record.Pages,
		&record.Elements,
		&record.Bytes,
		&record.Fingerprint,
		&started,
		&finished,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return record, err
	}
	if err != nil {
		return record, fmt.Errorf("failed to scan render: %w", err)
	}

	record.StartedAt = parseTimestamp(started)
	record.FinishedAt = parseTimestamp(finished)
	return record, nil
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// timestampFormats contains the formats tried when reading timestamps.
// Rows written by this package use the first one.
var timestampFormats = []string{
	timeLayout,
	"2006-01-02 15:04:05",  // SQLite default datetime format
	"2006-01-02T15:04:05Z", // ISO 8601 with Z suffix
	time.RFC3339Nano,
}

// parseTimestamp parses s in UTC with the first matching format. It
// returns the zero time when none matches.
func parseTimestamp(s string) time.Time {
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}
