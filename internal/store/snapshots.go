package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/pensionview/retirement-projection/internal/domain"
)

// Snapshot is a saved set of projection parameters.
type Snapshot struct {
	ID         string                      `json:"id"`
	Name       string                      `json:"name"`
	SavedAt    time.Time                   `json:"saved_at"`
	Parameters domain.ProjectionParameters `json:"parameters"`
}

const snapshotColumns = `id, name, saved_at, current_year, last_year, monthly_deposit,
	deposit_growth_rate, market_rate, retirement_start_year, retirement_growth_rate,
	retirement_duration, initial_capital`

// SaveSnapshot stores p under name and returns the new snapshot.
func (s *Store) SaveSnapshot(ctx context.Context, name string, p domain.ProjectionParameters) (Snapshot, error) {
	snap := Snapshot{ID: newID(), Name: name, SavedAt: s.now().UTC(), Parameters: p}
	_, err := s.db.ExecContext(ctx, `INSERT INTO snapshots (`+snapshotColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		snap.ID, snap.Name, formatTime(snap.SavedAt), p.CurrentYear, p.LastYear, p.MonthlyDeposit,
		p.DepositGrowthRate.Fraction(), p.MarketRate.Fraction(), p.RetirementStartYear,
		p.RetirementGrowthRate.Fraction(), p.RetirementDuration, p.InitialCapital,
	)
	if err != nil {
		return Snapshot{}, fmt.Errorf("saving snapshot %q: %w", name, err)
	}
	return snap, nil
}

// Snapshot loads a snapshot by id.
func (s *Store) Snapshot(ctx context.Context, id string) (Snapshot, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+snapshotColumns+` FROM snapshots WHERE id = ?`, id)
	return scanSnapshot(row)
}

// Latest returns the most recently saved snapshot: the last-known-good
// parameters to fall back to when loading fails.
func (s *Store) Latest(ctx context.Context) (Snapshot, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+snapshotColumns+` FROM snapshots
		ORDER BY saved_at DESC, rowid DESC LIMIT 1`)
	return scanSnapshot(row)
}

// LatestNamed returns the most recent snapshot saved under name.
func (s *Store) LatestNamed(ctx context.Context, name string) (Snapshot, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+snapshotColumns+` FROM snapshots
		WHERE name = ? ORDER BY saved_at DESC, rowid DESC LIMIT 1`, name)
	return scanSnapshot(row)
}

// ListSnapshots returns all snapshots, newest first.
func (s *Store) ListSnapshots(ctx context.Context) ([]Snapshot, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+snapshotColumns+` FROM snapshots
		ORDER BY saved_at DESC, rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing snapshots: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var snaps []Snapshot
	for rows.Next() {
		snap, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		snaps = append(snaps, snap)
	}
	return snaps, rows.Err()
}

// DeleteSnapshot removes a snapshot by id.
func (s *Store) DeleteSnapshot(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM snapshots WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting snapshot %s: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("snapshot %s: %w", id, ErrNotFound)
	}
	return nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanSnapshot(row scanner) (Snapshot, error) {
	var (
		snap                                    Snapshot
		savedAt                                 string
		depositGrowth, market, retirementGrowth float64
	)
	p := &snap.Parameters
	err := row.Scan(&snap.ID, &snap.Name, &savedAt, &p.CurrentYear, &p.LastYear, &p.MonthlyDeposit,
		&depositGrowth, &market, &p.RetirementStartYear, &retirementGrowth,
		&p.RetirementDuration, &p.InitialCapital)
	if errors.Is(err, sql.ErrNoRows) {
		return Snapshot{}, fmt.Errorf("snapshot: %w", ErrNotFound)
	}
	if err != nil {
		return Snapshot{}, fmt.Errorf("reading snapshot: %w", err)
	}
	p.DepositGrowthRate = domain.Rate(depositGrowth)
	p.MarketRate = domain.Rate(market)
	p.RetirementGrowthRate = domain.Rate(retirementGrowth)
	if snap.SavedAt, err = parseTime(savedAt); err != nil {
		return Snapshot{}, fmt.Errorf("snapshot %s: bad timestamp %q: %w", snap.ID, savedAt, err)
	}
	return snap, nil
}
