package history

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dono-tools/receipt-atlas/pkg/models/domain"
	"github.com/dono-tools/receipt-atlas/pkg/store/duckdb/campaign"
)

// Service records receipt campaigns and answers double-receipt warnings.
type Service struct {
	store campaign.Store
	now   func() time.Time
}

func NewService(store campaign.Store) *Service {
	return &Service{
		store: store,
		now:   time.Now,
	}
}

// RecordCampaign appends one campaign entry covering the receipted date
// range and recipients.
func (s *Service) RecordCampaign(ctx context.Context, userID string, r domain.DateRange, donations []domain.Donation) (domain.EmailHistoryEntry, error) {
	entry := domain.EmailHistoryEntry{
		ID:        uuid.NewString(),
		CreatedAt: s.now().UTC(),
		StartDate: r.Start,
		EndDate:   r.End,
	}
	for _, d := range donations {
		entry.Recipients = append(entry.Recipients, domain.Recipient{
			Name:    d.Name,
			DonorID: d.ID,
		})
	}

	if err := s.store.Add(ctx, userID, entry); err != nil {
		return domain.EmailHistoryEntry{}, fmt.Errorf("record campaign: %w", err)
	}
	return entry, nil
}

// PriorCampaigns returns past campaigns that already receipted any of the
// given donors inside the date range, trimmed to just those donors. A nil
// result means there is nothing to warn about.
func (s *Service) PriorCampaigns(ctx context.Context, userID string, recipientIDs map[int]struct{}, r domain.DateRange) ([]domain.EmailHistoryEntry, error) {
	entries, err := s.store.GetOverlapping(ctx, userID, r)
	if err != nil {
		return nil, fmt.Errorf("query campaign history: %w", err)
	}
	return TrimHistory(recipientIDs, entries, &r), nil
}
