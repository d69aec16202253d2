// Package store persists experiment trials in SQLite so batches can be
// compared across runs.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/mallpath/config"
	"github.com/katalvlaran/mallpath/core"
	"github.com/katalvlaran/mallpath/experiment"
)

// ErrUnknownRun is returned by Trials for a run ID with no rows.
var ErrUnknownRun = errors.New("store: unknown run")

const schema = `
	CREATE TABLE IF NOT EXISTS runs (
		run_id TEXT PRIMARY KEY,
		created_at BIGINT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS trials (
		trial_id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL,
		seed BIGINT NOT NULL,
		elevators INTEGER NOT NULL,
		stairs INTEGER NOT NULL,
		agent_key TEXT NOT NULL,
		algorithm TEXT NOT NULL,
		found INTEGER NOT NULL,
		expansions INTEGER NOT NULL,
		length INTEGER NOT NULL,
		cost DOUBLE NOT NULL,
		optimal DOUBLE NOT NULL,
		visited INTEGER NOT NULL,
		skipped INTEGER NOT NULL,
		replans INTEGER NOT NULL,
		elapsed_ns BIGINT NOT NULL,
		end_row INTEGER,
		end_col INTEGER,
		end_floor INTEGER,
		error TEXT NOT NULL DEFAULT '',
		FOREIGN KEY(run_id) REFERENCES runs(run_id)
	);
	CREATE INDEX IF NOT EXISTS trials_run ON trials(run_id);
`

// Store is a SQLite-backed trial archive.
type Store struct {
	db *sql.DB
}

// Run is one archived batch.
type Run struct {
	ID        uuid.UUID
	CreatedAt time.Time
	Trials    int
	Found     int
}

// Open opens or creates the database at path and ensures the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// A single connection keeps ":memory:" databases shared and serializes writers.
	db.SetMaxOpenConns(1)

	if _, err = db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database.
func (s *Store) Close() error { return s.db.Close() }

// SaveTrials inserts trials and registers their runs in one transaction.
func (s *Store) SaveTrials(ctx context.Context, trials []experiment.Trial) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	now := time.Now().UnixNano()
	runs := map[uuid.UUID]bool{}
	for _, t := range trials {
		if !runs[t.RunID] {
			runs[t.RunID] = true
			if _, err = tx.ExecContext(ctx,
				"INSERT OR IGNORE INTO runs (run_id, created_at) VALUES (?, ?)",
				t.RunID.String(), now); err != nil {
				return fmt.Errorf("insert run %s: %w", t.RunID, err)
			}
		}

		var row, col, floor any
		if t.Ended {
			row, col, floor = t.End.Row, t.End.Col, t.End.Floor
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO trials (
				run_id, seed, elevators, stairs, agent_key, algorithm,
				found, expansions, length, cost, optimal,
				visited, skipped, replans, elapsed_ns,
				end_row, end_col, end_floor, error
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			t.RunID.String(), t.Seed, t.Layout.Elevators, t.Layout.Stairs, t.Key, t.Algorithm,
			t.Found, t.Expansions, t.Length, t.Cost, t.Optimal,
			t.Visited, t.Skipped, t.Replans, int64(t.Elapsed),
			row, col, floor, t.Err,
		)
		if err != nil {
			return fmt.Errorf("insert trial: %w", err)
		}
	}
	return tx.Commit()
}

// Trials returns every trial of run id in insertion order.
func (s *Store) Trials(ctx context.Context, id uuid.UUID) ([]experiment.Trial, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT seed, elevators, stairs, agent_key, algorithm,
			found, expansions, length, cost, optimal,
			visited, skipped, replans, elapsed_ns,
			end_row, end_col, end_floor, error
		FROM trials WHERE run_id = ? ORDER BY trial_id`, id.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []experiment.Trial
	for rows.Next() {
		t := experiment.Trial{RunID: id}
		var elapsed int64
		var row, col, floor sql.NullInt64
		if err = rows.Scan(
			&t.Seed, &t.Layout.Elevators, &t.Layout.Stairs, &t.Key, &t.Algorithm,
			&t.Found, &t.Expansions, &t.Length, &t.Cost, &t.Optimal,
			&t.Visited, &t.Skipped, &t.Replans, &elapsed,
			&row, &col, &floor, &t.Err,
		); err != nil {
			return nil, err
		}
		t.Elapsed = time.Duration(elapsed)
		if row.Valid {
			t.Ended = true
			t.End = core.Coord{Row: int(row.Int64), Col: int(col.Int64), Floor: int(floor.Int64)}
		}
		out = append(out, t)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRun, id)
	}
	return out, nil
}

// Runs lists archived batches, newest first.
func (s *Store) Runs(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT r.run_id, r.created_at, COUNT(t.trial_id), COALESCE(SUM(t.found), 0)
		FROM runs r LEFT JOIN trials t ON t.run_id = r.run_id
		GROUP BY r.run_id, r.created_at
		ORDER BY r.created_at DESC, r.run_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var id string
		var created int64
		var r Run
		if err = rows.Scan(&id, &created, &r.Trials, &r.Found); err != nil {
			return nil, err
		}
		if r.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("run id %q: %w", id, err)
		}
		r.CreatedAt = time.Unix(0, created)
		out = append(out, r)
	}
	return out, rows.Err()
}

// Layouts returns the distinct layouts archived for run id.
func (s *Store) Layouts(ctx context.Context, id uuid.UUID) ([]config.Layout, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT elevators, stairs FROM trials WHERE run_id = ?
		GROUP BY elevators, stairs ORDER BY MIN(trial_id)`, id.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []config.Layout
	for rows.Next() {
		var l config.Layout
		if err = rows.Scan(&l.Elevators, &l.Stairs); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
