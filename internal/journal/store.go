package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/srikarvechalapu/folio/internal/db"
)

// ErrNotFound is returned when a run does not exist.
var ErrNotFound = errors.New("run not found")

// Store provides access to recorded runs.
type Store struct {
	db *db.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Record inserts a run and its section outcomes in one transaction. If
// run.ID is empty a UUID is generated.
func (s *Store) Record(ctx context.Context, run Run) error {
	if run.ID == "" {
		run.ID = uuid.New().String()
	}
	if run.Trigger == "" {
		run.Trigger = TriggerBuild
	}
	if run.StartedAt.IsZero() {
		run.StartedAt = time.Now()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning journal transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, started_at, duration_ms, source, output_dir, trigger, failed_sections)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.StartedAt.UTC().Format(time.DateTime),
		run.Duration.Milliseconds(),
		run.Source,
		run.OutputDir,
		string(run.Trigger),
		run.FailedSections,
	)
	if err != nil {
		return fmt.Errorf("inserting run: %w", err)
	}

	for _, o := range run.Sections {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO section_outcomes (run_id, seq, section, status, error, duration_ms)
			VALUES (?, ?, ?, ?, ?, ?)`,
			run.ID, o.Seq, o.Section, o.Status, o.Error, o.Duration.Milliseconds(),
		)
		if err != nil {
			return fmt.Errorf("inserting outcome for %s: %w", o.Section, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing run: %w", err)
	}
	return nil
}

// Get retrieves a run with its section outcomes.
func (s *Store) Get(ctx context.Context, id string) (*Run, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, started_at, duration_ms, source, output_dir, trigger, failed_sections
		FROM runs WHERE id = ?`, id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT seq, section, status, error, duration_ms
		FROM section_outcomes WHERE run_id = ? ORDER BY seq`, id)
	if err != nil {
		return nil, fmt.Errorf("querying outcomes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			o  SectionOutcome
			ms int64
		)
		if err := rows.Scan(&o.Seq, &o.Section, &o.Status, &o.Error, &ms); err != nil {
			return nil, err
		}
		o.Duration = time.Duration(ms) * time.Millisecond
		run.Sections = append(run.Sections, o)
	}
	return run, rows.Err()
}

// Recent returns the latest runs, newest first, without their section
// outcomes. A limit of zero or less returns 20.
func (s *Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(`
		SELECT id, started_at, duration_ms, source, output_dir, trigger, failed_sections
		FROM runs ORDER BY started_at DESC, rowid DESC LIMIT %d`, limit))
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *r)
	}
	return runs, rows.Err()
}

// DeleteBefore removes all runs older than the given time.
// Returns the number of deleted runs.
func (s *Store) DeleteBefore(ctx context.Context, before time.Time) (int64, error) {
	cutoff := before.UTC().Format(time.DateTime)
	if _, err := s.db.ExecContext(ctx,
		"DELETE FROM section_outcomes WHERE run_id IN (SELECT id FROM runs WHERE started_at < ?)", cutoff,
	); err != nil {
		return 0, fmt.Errorf("deleting old outcomes: %w", err)
	}
	res, err := s.db.ExecContext(ctx, "DELETE FROM runs WHERE started_at < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("deleting old runs: %w", err)
	}
	return res.RowsAffected()
}

// scanner is implemented by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (*Run, error) {
	var (
		r       Run
		ts      string
		ms      int64
		trigger string
	)
	if err := sc.Scan(&r.ID, &ts, &ms, &r.Source, &r.OutputDir, &trigger, &r.FailedSections); err != nil {
		return nil, err
	}
	r.Trigger = Trigger(trigger)
	r.Duration = time.Duration(ms) * time.Millisecond

	if t, err := time.Parse(time.DateTime, ts); err == nil {
		r.StartedAt = t
	} else if t, err := time.Parse(time.RFC3339, ts); err == nil {
		r.StartedAt = t
	}
	return &r, nil
}
