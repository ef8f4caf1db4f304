package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dono-tools/receipt-atlas/pkg/models/domain"
)

func day(d int) time.Time {
	return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC)
}

func recipients(ids ...int) map[int]struct{} {
	set := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func TestTrimHistory_EmptyHistoryReturnsNil(t *testing.T) {
	r := &domain.DateRange{Start: day(1), End: day(31)}
	result := TrimHistory(recipients(1), nil, r)
	assert.Nil(t, result)

	result = TrimHistory(recipients(1), []domain.EmailHistoryEntry{}, r)
	assert.Nil(t, result)
}

func TestTrimHistory_FiltersByDateOverlap(t *testing.T) {
	entries := []domain.EmailHistoryEntry{
		{ID: "in", StartDate: day(5), EndDate: day(10), Recipients: []domain.Recipient{{DonorID: 1}}},
		{ID: "out", StartDate: day(20), EndDate: day(25), Recipients: []domain.Recipient{{DonorID: 1}}},
	}
	r := &domain.DateRange{Start: day(1), End: day(15)}

	result := TrimHistory(recipients(1), entries, r)
	require.Len(t, result, 1)
	assert.Equal(t, "in", result[0].ID)
}

func TestTrimHistory_TouchingRangesDoNotOverlap(t *testing.T) {
	// entry.EndDate == range.Start: strict inequality keeps it out.
	entries := []domain.EmailHistoryEntry{
		{ID: "before", StartDate: day(1), EndDate: day(10), Recipients: []domain.Recipient{{DonorID: 1}}},
		{ID: "after", StartDate: day(20), EndDate: day(28), Recipients: []domain.Recipient{{DonorID: 1}}},
	}
	r := &domain.DateRange{Start: day(10), End: day(20)}

	result := TrimHistory(recipients(1), entries, r)
	assert.Nil(t, result)
}

func TestTrimHistory_NoDateRangeKeepsAllOverlaps(t *testing.T) {
	entries := []domain.EmailHistoryEntry{
		{ID: "a", StartDate: day(1), EndDate: day(2), Recipients: []domain.Recipient{{DonorID: 1}}},
		{ID: "b", StartDate: day(20), EndDate: day(28), Recipients: []domain.Recipient{{DonorID: 1}}},
	}

	result := TrimHistory(recipients(1), entries, nil)
	assert.Len(t, result, 2)
}

func TestTrimHistory_DropsEntriesWithNoMatchingRecipients(t *testing.T) {
	entries := []domain.EmailHistoryEntry{
		{
			ID:        "mixed",
			StartDate: day(1),
			EndDate:   day(10),
			Recipients: []domain.Recipient{
				{Name: "John", DonorID: 1},
				{Name: "Jane", DonorID: 2},
			},
		},
		{
			ID:        "unrelated",
			StartDate: day(1),
			EndDate:   day(10),
			Recipients: []domain.Recipient{
				{Name: "Ghost", DonorID: 9},
			},
		},
	}
	r := &domain.DateRange{Start: day(1), End: day(31)}

	result := TrimHistory(recipients(2), entries, r)
	require.Len(t, result, 1)
	assert.Equal(t, "mixed", result[0].ID)
	require.Len(t, result[0].Recipients, 1)
	assert.Equal(t, "Jane", result[0].Recipients[0].Name)
}

func TestTrimHistory_DoesNotMutateInput(t *testing.T) {
	entries := []domain.EmailHistoryEntry{
		{
			ID:        "a",
			StartDate: day(1),
			EndDate:   day(10),
			Recipients: []domain.Recipient{
				{DonorID: 1},
				{DonorID: 2},
			},
		},
	}
	r := &domain.DateRange{Start: day(1), End: day(31)}

	_ = TrimHistory(recipients(1), entries, r)
	assert.Len(t, entries[0].Recipients, 2)
}
