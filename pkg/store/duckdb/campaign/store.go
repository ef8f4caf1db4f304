package campaign

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/dono-tools/receipt-atlas/pkg/models/domain"
	"github.com/dono-tools/receipt-atlas/pkg/store/duckdb"
)

// Store is the append-only campaign history. Entries are written once when
// a receipt batch goes out and later read back by date-range overlap to
// warn about double-receipting; nothing updates or deletes them.
type Store interface {
	Add(ctx context.Context, userID string, entry domain.EmailHistoryEntry) error
	GetOverlapping(ctx context.Context, userID string, r domain.DateRange) ([]domain.EmailHistoryEntry, error)
}

type campaignStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &campaignStore{db: db}, nil
}

func (s *campaignStore) Add(ctx context.Context, userID string, entry domain.EmailHistoryEntry) error {
	recipients, err := json.Marshal(entry.Recipients)
	if err != nil {
		return fmt.Errorf("marshal recipients: %w", err)
	}

	query := `
		INSERT INTO email_campaigns (
			id, user_id, created_at, start_date, end_date, recipients
		) VALUES (
			?, ?, ?, ?, ?, ?
		)`

	tx := duckdb.GetTransaction(ctx)
	if tx == nil {
		_, err = s.db.ExecContext(ctx, query,
			entry.ID, userID, entry.CreatedAt, entry.StartDate, entry.EndDate, recipients)
	} else {
		_, err = tx.ExecContext(ctx, query,
			entry.ID, userID, entry.CreatedAt, entry.StartDate, entry.EndDate, recipients)
	}
	if err != nil {
		return fmt.Errorf("insert campaign: %w", err)
	}
	return nil
}

func (s *campaignStore) GetOverlapping(ctx context.Context, userID string, r domain.DateRange) ([]domain.EmailHistoryEntry, error) {
	// Strict inequalities: campaigns touching the range boundary do not
	// overlap it. Matches the in-memory trim filter.
	query := `
		SELECT id, created_at, start_date, end_date, recipients
		FROM email_campaigns
		WHERE user_id = ? AND end_date > ? AND start_date < ?
		ORDER BY created_at DESC
	`
	rows, err := s.db.QueryContext(ctx, query, userID, r.Start, r.End)
	if err != nil {
		return nil, fmt.Errorf("query campaigns: %w", err)
	}
	defer rows.Close()

	var entries []domain.EmailHistoryEntry
	for rows.Next() {
		var entry domain.EmailHistoryEntry
		var recipients []byte
		if err := rows.Scan(&entry.ID, &entry.CreatedAt, &entry.StartDate, &entry.EndDate, &recipients); err != nil {
			return nil, fmt.Errorf("scan campaign: %w", err)
		}
		if len(recipients) > 0 {
			if err := json.Unmarshal(recipients, &entry.Recipients); err != nil {
				return nil, fmt.Errorf("unmarshal recipients: %w", err)
			}
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate campaigns: %w", err)
	}
	return entries, nil
}
