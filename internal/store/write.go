package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/roach88/benchmocker/internal/harness"
)

// Run is one stored benchmark run.
type Run struct {
	ID        string
	StartedAt time.Time
	Report    *harness.Report
}

// ErrEmptyRunID is returned by SaveRun for a run without an ID.
var ErrEmptyRunID = errors.New("run id is empty")

// SaveRun writes a run and its per-unit totals in one transaction.
// Saving an ID that already exists fails with the driver's constraint error.
func (s *Store) SaveRun(ctx context.Context, run Run) error {
	if run.ID == "" {
		return fmt.Errorf("save run: %w", ErrEmptyRunID)
	}
	if run.Report == nil {
		return fmt.Errorf("save run %s: nil report", run.ID)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save run: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, started_at, cycles, seed, mode)
		VALUES (?, ?, ?, ?, ?)
	`,
		run.ID,
		run.StartedAt.UnixNano(),
		run.Report.Cycles,
		strconv.FormatUint(run.Report.Seed, 10),
		string(run.Report.Mode),
	)
	if err != nil {
		return fmt.Errorf("save run %s: %w", run.ID, err)
	}

	for _, e := range run.Report.Entries {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO run_units (run_id, name, total_ns, invocations)
			VALUES (?, ?, ?, ?)
		`, run.ID, e.Name, int64(e.Total), e.Invocations)
		if err != nil {
			return fmt.Errorf("save run %s: unit %s: %w", run.ID, e.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save run %s: commit: %w", run.ID, err)
	}
	return nil
}
