package history

import "github.com/dono-tools/receipt-atlas/pkg/models/domain"

// TrimHistory narrows past campaigns down to the ones worth warning about
// before a new send: entries overlapping the requested date range whose
// recipient list intersects the new recipient set.
//
// The overlap test is strict on both ends — a campaign that merely touches
// the boundary of the range does not count. Entries whose recipients all
// fall outside recipientIDs are dropped whole. When nothing survives the
// result is nil rather than an empty slice; callers rely on that to tell
// "no relevant history" apart from "some history, none relevant" upstream.
// Inputs are never mutated.
func TrimHistory(recipientIDs map[int]struct{}, entries []domain.EmailHistoryEntry, dateRange *domain.DateRange) []domain.EmailHistoryEntry {
	var trimmed []domain.EmailHistoryEntry

	for _, entry := range entries {
		if dateRange != nil && !overlaps(entry, *dateRange) {
			continue
		}

		var kept []domain.Recipient
		for _, r := range entry.Recipients {
			if _, ok := recipientIDs[r.DonorID]; ok {
				kept = append(kept, r)
			}
		}
		if len(kept) == 0 {
			continue
		}

		entry.Recipients = kept
		trimmed = append(trimmed, entry)
	}

	return trimmed
}

func overlaps(entry domain.EmailHistoryEntry, r domain.DateRange) bool {
	return entry.EndDate.After(r.Start) && entry.StartDate.Before(r.End)
}
