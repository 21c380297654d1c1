// Package index keeps a SQLite log of extraction runs.
package index

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schema string

// Status values for Run.Status.
const (
	StatusOK     = "ok"
	StatusFailed = "failed"
)

// Run is one row of the extractions table.
type Run struct {
	ID          int64
	RunID       string
	ParcelID    string
	County      string
	Dir         string
	Status      string
	Error       string
	Files       int
	Sales       int
	Owners      int
	Duration    time.Duration
	ExtractedAt time.Time
}

// Index is the run log.
type Index struct {
	db *sql.DB
}

// Open opens or creates the database at path. ":memory:" gives a private
// in-memory log.
func Open(ctx context.Context, path string) (*Index, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open run index: %w", err)
	}
	// one writer at a time; batch workers share the handle
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create run index schema: %w", err)
	}
	log.Debug().Str("file", path).Msg("Run index opened")
	return &Index{db: db}, nil
}

// Close closes the database.
func (x *Index) Close() error {
	return x.db.Close()
}

// Record appends a run. A zero ExtractedAt is stamped with the current time.
func (x *Index) Record(ctx context.Context, r Run) (int64, error) {
	if r.ExtractedAt.IsZero() {
		r.ExtractedAt = time.Now()
	}
	res, err := x.db.ExecContext(ctx,
		`insert into extractions (run_id, parcel_id, county, dir, status, error, files, sales, owners, duration_ms, extracted_at)
		 values (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.ParcelID, r.County, r.Dir, r.Status, r.Error, r.Files, r.Sales, r.Owners,
		r.Duration.Milliseconds(), r.ExtractedAt.UnixMilli(),
	)
	if err != nil {
		return 0, fmt.Errorf("record run for %s: %w", r.ParcelID, err)
	}
	return res.LastInsertId()
}

// Recent returns up to limit runs, newest first. A non-empty parcelID
// restricts the result to that parcel.
func (x *Index) Recent(ctx context.Context, limit int, parcelID string) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `select id, run_id, parcel_id, county, dir, status, error, files, sales, owners, duration_ms, extracted_at
		from extractions`
	args := []interface{}{}
	if parcelID != "" {
		query += ` where parcel_id = ?`
		args = append(args, parcelID)
	}
	query += ` order by extracted_at desc, id desc limit ?`
	args = append(args, limit)

	rows, err := x.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r          Run
			durationMS int64
			at         int64
		)
		if err := rows.Scan(&r.ID, &r.RunID, &r.ParcelID, &r.County, &r.Dir, &r.Status, &r.Error,
			&r.Files, &r.Sales, &r.Owners, &durationMS, &at); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.Duration = time.Duration(durationMS) * time.Millisecond
		r.ExtractedAt = time.UnixMilli(at)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Stats counts runs by status.
func (x *Index) Stats(ctx context.Context) (map[string]int, error) {
	rows, err := x.db.QueryContext(ctx, `select status, count(*) from extractions group by status`)
	if err != nil {
		return nil, fmt.Errorf("query run stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]int)
	for rows.Next() {
		var (
			status string
			n      int
		)
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		stats[status] = n
	}
	return stats, rows.Err()
}
