package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/roach88/benchmocker/internal/harness"
	"github.com/roach88/benchmocker/internal/schedule"
)

// ErrRunNotFound is returned by LoadRun for an unknown ID.
var ErrRunNotFound = errors.New("run not found")

// Summary is one row of the run history.
type Summary struct {
	ID        string        `json:"id"`
	StartedAt time.Time     `json:"started_at"`
	Cycles    int           `json:"cycles"`
	Seed      uint64        `json:"seed"`
	Mode      schedule.Mode `json:"mode"`
	Units     int           `json:"units"`
	Total     time.Duration `json:"total_ns"`
}

// ListRuns returns the most recent runs first. A limit <= 0 returns all runs.
//
// Returns an empty slice (not nil) when no runs are stored.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Summary, error) {
	query := `
		SELECT r.id, r.started_at, r.cycles, r.seed, r.mode,
		       COUNT(u.name), COALESCE(SUM(u.total_ns), 0)
		FROM runs r
		LEFT JOIN run_units u ON u.run_id = r.id
		GROUP BY r.id
		ORDER BY r.started_at DESC, r.id COLLATE BINARY DESC
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	summaries := []Summary{}
	for rows.Next() {
		var (
			sum     Summary
			started int64
			seed    string
			mode    string
			total   int64
		)
		if err := rows.Scan(&sum.ID, &started, &sum.Cycles, &seed, &mode, &sum.Units, &total); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if sum.Seed, err = parseSeed(seed); err != nil {
			return nil, fmt.Errorf("run %s: %w", sum.ID, err)
		}
		sum.StartedAt = time.Unix(0, started).UTC()
		sum.Mode = schedule.Mode(mode)
		sum.Total = time.Duration(total)
		summaries = append(summaries, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}

	return summaries, nil
}

// LoadRun returns a stored run with its report rebuilt. Entries come back
// sorted by name, matching harness reports.
func (s *Store) LoadRun(ctx context.Context, id string) (*Run, error) {
	var (
		started int64
		seed    string
		mode    string
		report  harness.Report
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT started_at, cycles, seed, mode FROM runs WHERE id = ?
	`, id).Scan(&started, &report.Cycles, &seed, &mode)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("load run %s: %w", id, ErrRunNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load run %s: %w", id, err)
	}
	if report.Seed, err = parseSeed(seed); err != nil {
		return nil, fmt.Errorf("load run %s: %w", id, err)
	}
	report.Mode = schedule.Mode(mode)

	rows, err := s.db.QueryContext(ctx, `
		SELECT name, total_ns, invocations
		FROM run_units
		WHERE run_id = ?
		ORDER BY name COLLATE BINARY ASC
	`, id)
	if err != nil {
		return nil, fmt.Errorf("load run %s: query units: %w", id, err)
	}
	defer rows.Close()

	report.Entries = []harness.Entry{}
	for rows.Next() {
		var (
			e     harness.Entry
			total int64
		)
		if err := rows.Scan(&e.Name, &total, &e.Invocations); err != nil {
			return nil, fmt.Errorf("load run %s: scan unit: %w", id, err)
		}
		e.Total = time.Duration(total)
		if e.Invocations > 0 {
			e.Mean = e.Total / time.Duration(e.Invocations)
		}
		report.Entries = append(report.Entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load run %s: iterate units: %w", id, err)
	}

	return &Run{
		ID:        id,
		StartedAt: time.Unix(0, started).UTC(),
		Report:    &report,
	}, nil
}

func parseSeed(s string) (uint64, error) {
	seed, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse seed %q: %w", s, err)
	}
	return seed, nil
}
