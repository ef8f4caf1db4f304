package domain

import "time"

// Recipient is one donor a past campaign sent a receipt to.
type Recipient struct {
	Name    string
	DonorID int
}

// EmailHistoryEntry records one past receipt-sending campaign. Entries are
// immutable once created; history is append-only.
type EmailHistoryEntry struct {
	ID         string
	CreatedAt  time.Time
	StartDate  time.Time
	EndDate    time.Time
	Recipients []Recipient
}
