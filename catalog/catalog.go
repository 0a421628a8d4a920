// SPDX-License-Identifier: MIT
// Package catalog keeps a persistent log of generated inputs so any graph
// can be found again by its parameters and regenerated from its seed.
//
// Records live in an embedded SQLite database (pure Go driver, no cgo).
// The MST weight column stays -1 until an external checker fills it in.
package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/katalvlaran/mstgen/builder"
)

// UnknownMSTWeight marks a record whose MST weight was never computed.
const UnknownMSTWeight = -1.0

// ErrNotFound indicates no record matched a lookup.
var ErrNotFound = errors.New("catalog: record not found")

const driverName = "sqlite"

// stampLayout is fixed-width so created_at sorts lexicographically.
const stampLayout = "2006-01-02T15:04:05.000000000Z"

const schema = `CREATE TABLE IF NOT EXISTS inputs (
	id          TEXT PRIMARY KEY,
	created_at  TEXT    NOT NULL,
	prec        INTEGER NOT NULL,
	dimensions  INTEGER NOT NULL,
	min_value   REAL    NOT NULL,
	max_value   REAL    NOT NULL,
	vertices    INTEGER NOT NULL,
	edges       INTEGER NOT NULL,
	seed        INTEGER NOT NULL,
	mst_weight  REAL    NOT NULL,
	path        TEXT    NOT NULL
)`

const insertRecord = `INSERT INTO inputs
	(id, created_at, prec, dimensions, min_value, max_value, vertices, edges, seed, mst_weight, path)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

const selectRecords = `SELECT id, created_at, prec, dimensions, min_value, max_value,
	vertices, edges, seed, mst_weight, path FROM inputs`

// Record describes one generated input.
type Record struct {
	ID         uuid.UUID
	CreatedAt  time.Time
	Precision  int
	Dimensions int // 0 for range-weighted inputs
	Min        float64
	Max        float64
	Vertices   int
	Edges      int
	Seed       int64
	MSTWeight  float64
	Path       string
}

// RecordFromSummary fills a Record from a generation summary.
func RecordFromSummary(sum builder.Summary, path string, now time.Time) Record {
	return Record{
		ID:         uuid.New(),
		CreatedAt:  now,
		Precision:  sum.Precision,
		Dimensions: sum.Dimensions,
		Min:        sum.Min,
		Max:        sum.Max,
		Vertices:   sum.Vertices,
		Edges:      sum.Edges,
		Seed:       sum.Seed,
		MSTWeight:  UnknownMSTWeight,
		Path:       path,
	}
}

// Catalog is a handle on the inputs table. It is safe for concurrent use
// to the extent *sql.DB is.
type Catalog struct {
	db *sql.DB
}

// New wraps an open database. It does not create the schema; call Migrate.
func New(db *sql.DB) *Catalog {
	return &Catalog{db: db}
}

// Open opens (creating if needed) the SQLite catalog at path and migrates it.
func Open(ctx context.Context, path string) (*Catalog, error) {
	db, err := sql.Open(driverName, path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open %s: %w", path, err)
	}
	c := New(db)
	if err := c.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return c, nil
}

// Migrate creates the inputs table if it does not exist.
func (c *Catalog) Migrate(ctx context.Context) error {
	if _, err := c.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("catalog: migrate: %w", err)
	}

	return nil
}

// Add stores rec, assigning an ID if it has none.
func (c *Catalog) Add(ctx context.Context, rec Record) (Record, error) {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	_, err := c.db.ExecContext(ctx, insertRecord,
		rec.ID.String(), rec.CreatedAt.UTC().Format(stampLayout),
		rec.Precision, rec.Dimensions, rec.Min, rec.Max,
		rec.Vertices, rec.Edges, rec.Seed, rec.MSTWeight, rec.Path)
	if err != nil {
		return Record{}, fmt.Errorf("catalog: add %s: %w", rec.ID, err)
	}

	return rec, nil
}

// List returns every record, oldest first.
func (c *Catalog) List(ctx context.Context) ([]Record, error) {
	return c.query(ctx, selectRecords+` ORDER BY created_at, id`)
}

// FindBySeed returns the records generated with seed, oldest first.
func (c *Catalog) FindBySeed(ctx context.Context, seed int64) ([]Record, error) {
	recs, err := c.query(ctx, selectRecords+` WHERE seed = ? ORDER BY created_at, id`, seed)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("catalog: seed %d: %w", seed, ErrNotFound)
	}

	return recs, nil
}

// Close releases the database.
func (c *Catalog) Close() error {
	return c.db.Close()
}

func (c *Catalog) query(ctx context.Context, q string, args ...any) ([]Record, error) {
	rows, err := c.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("catalog: query: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var (
			rec       Record
			id, stamp string
		)
		if err := rows.Scan(&id, &stamp, &rec.Precision, &rec.Dimensions, &rec.Min, &rec.Max,
			&rec.Vertices, &rec.Edges, &rec.Seed, &rec.MSTWeight, &rec.Path); err != nil {
			return nil, fmt.Errorf("catalog: scan: %w", err)
		}
		if rec.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("catalog: bad id %q: %w", id, err)
		}
		if rec.CreatedAt, err = time.Parse(stampLayout, stamp); err != nil {
			return nil, fmt.Errorf("catalog: bad timestamp %q: %w", stamp, err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("catalog: rows: %w", err)
	}

	return out, nil
}
