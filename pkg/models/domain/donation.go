package domain

// DonationItem is one qualifying item's contribution to a donation.
type DonationItem struct {
	Name  string
	ID    int
	Total float64
}

// Donation is one donor's qualifying total for a date range. Address is
// empty until enrichment attaches the donor's billing address.
//
// Invariant: Total equals the sum of Items' totals, and a Donation with a
// zero Total is never constructed.
type Donation struct {
	Name    string
	ID      int
	Total   float64
	Items   []DonationItem
	Address string
}
