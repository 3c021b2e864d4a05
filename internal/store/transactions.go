package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/pensionview/retirement-projection/internal/domain"
	"github.com/shopspring/decimal"
)

// ImportTransactions stores txs, replacing any with the same id. Transactions
// without an id are given one. It returns the number of rows written.
func (s *Store) ImportTransactions(ctx context.Context, txs []domain.Transaction) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `INSERT OR REPLACE INTO transactions
		(id, user_id, booking_date, side, amount, currency, type, mcc, description, imported_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, err
	}
	defer func() { _ = stmt.Close() }()

	now := formatTime(s.now())
	for _, t := range txs {
		id := t.ID
		if id == "" {
			id = newID()
		}
		if _, err := stmt.ExecContext(ctx, id, t.UserID, formatTime(t.BookingDate), t.Side,
			t.Amount.String(), t.Currency, t.Type, t.MCC, t.Description, now); err != nil {
			return 0, fmt.Errorf("importing transaction %s: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return len(txs), nil
}

// Transactions returns the transactions booked in [from, to), newest first.
func (s *Store) Transactions(ctx context.Context, from, to time.Time) ([]domain.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT
		id, user_id, booking_date, side, amount, currency, type, mcc, description
		FROM transactions
		WHERE booking_date >= ? AND booking_date < ?
		ORDER BY booking_date DESC, id`,
		formatTime(from), formatTime(to))
	if err != nil {
		return nil, fmt.Errorf("querying transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var txs []domain.Transaction
	for rows.Next() {
		var (
			t                                 domain.Transaction
			booking, amount                   string
			userID, currency, kind, mcc, desc sql.NullString
		)
		if err := rows.Scan(&t.ID, &userID, &booking, &t.Side, &amount, &currency, &kind, &mcc, &desc); err != nil {
			return nil, err
		}
		if t.BookingDate, err = parseTime(booking); err != nil {
			return nil, fmt.Errorf("transaction %s: bad booking date %q: %w", t.ID, booking, err)
		}
		if t.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("transaction %s: bad amount %q: %w", t.ID, amount, err)
		}
		t.UserID = userID.String
		t.Currency = currency.String
		t.Type = kind.String
		t.MCC = mcc.String
		t.Description = desc.String
		txs = append(txs, t)
	}
	return txs, rows.Err()
}

// Months lists the distinct YYYY-MM months with bookings, newest first.
func (s *Store) Months(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT DISTINCT substr(booking_date, 1, 7) AS month FROM transactions ORDER BY month DESC")
	if err != nil {
		return nil, fmt.Errorf("querying months: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var months []string
	for rows.Next() {
		var m string
		if err := rows.Scan(&m); err != nil {
			return nil, err
		}
		months = append(months, m)
	}
	return months, rows.Err()
}
