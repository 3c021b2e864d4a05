package expense

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	"github.com/goccy/go-json"
	"github.com/pensionview/retirement-projection/internal/domain"
	"github.com/shopspring/decimal"
)

// feedRecord is one row of the banking export. Every column but id is nullable.
type feedRecord struct {
	ID          string              `json:"id"`
	UserID      *string             `json:"userId"`
	BookingDate *string             `json:"bookingDate"`
	Side        *string             `json:"side"`
	Amount      decimal.NullDecimal `json:"amount"`
	Currency    *string             `json:"currency"`
	Type        *string             `json:"type"`
	MCC         *string             `json:"mcc"`
	Description *string             `json:"transactionDescription"`
}

var bookingLayouts = []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"}

func parseBookingDate(s string) (time.Time, error) {
	for _, layout := range bookingLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised booking date %q", s)
}

// DecodeFeed reads a JSON array of banking export rows. Rows without a
// booking date are skipped; a missing amount counts as zero.
func DecodeFeed(r io.Reader) ([]domain.Transaction, error) {
	var records []feedRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode transactions: %w", err)
	}

	txs := make([]domain.Transaction, 0, len(records))
	for i, rec := range records {
		if rec.BookingDate == nil || strings.TrimSpace(*rec.BookingDate) == "" {
			continue
		}
		booked, err := parseBookingDate(strings.TrimSpace(*rec.BookingDate))
		if err != nil {
			return nil, fmt.Errorf("record %d (%s): %w", i, rec.ID, err)
		}
		amount := decimal.Zero
		if rec.Amount.Valid {
			amount = rec.Amount.Decimal
		}
		txs = append(txs, domain.Transaction{
			ID:          rec.ID,
			UserID:      str(rec.UserID),
			BookingDate: booked,
			Side:        str(rec.Side),
			Amount:      amount,
			Currency:    str(rec.Currency),
			Type:        str(rec.Type),
			MCC:         str(rec.MCC),
			Description: str(rec.Description),
		})
	}
	return txs, nil
}

func str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// DecodeFeedLenient is DecodeFeed for hand-edited exports: input that is not
// valid JSON (trailing commas, single quotes, comments, a truncated tail) is
// repaired before decoding.
func DecodeFeedLenient(r io.Reader) ([]domain.Transaction, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read transactions: %w", err)
	}
	if json.Valid(data) {
		return DecodeFeed(bytes.NewReader(data))
	}
	repaired, err := jsonrepair.RepairJSON(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to repair transactions: %w", err)
	}
	return DecodeFeed(strings.NewReader(repaired))
}
