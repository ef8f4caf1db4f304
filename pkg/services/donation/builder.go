package donation

import (
	"fmt"

	"github.com/dono-tools/receipt-atlas/pkg/models/domain"
	"github.com/dono-tools/receipt-atlas/pkg/services/report"
)

// BuildDonations turns a sales report into per-donor donations, keeping
// only amounts for items in qualifyingItemIDs. Amounts pair with items
// positionally after both sides drop their first and last column, so the
// two lengths are asserted equal before zipping; a silent off-by-one here
// would put money on the wrong receipt line.
//
// Rows producing a zero qualifying total are dropped entirely, as is the
// grand-total row. Output order follows input row order.
func BuildDonations(rep domain.SalesReport, qualifyingItemIDs map[int]struct{}) ([]domain.Donation, error) {
	items, err := report.ParseItems(rep)
	if err != nil {
		return nil, err
	}

	var donations []domain.Donation
	for i, row := range rep.Rows {
		if row.Kind == domain.RowGrandTotal {
			continue
		}

		data, err := report.GetRowData(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		if len(data.Amounts) != len(items) {
			return nil, fmt.Errorf("row %d: %d amounts for %d items", i, len(data.Amounts), len(items))
		}

		d := domain.Donation{
			Name: data.DonorName,
			ID:   data.DonorID,
		}
		for j, amount := range data.Amounts {
			if amount <= 0 {
				continue
			}
			if _, ok := qualifyingItemIDs[items[j].ID]; !ok {
				continue
			}
			d.Items = append(d.Items, domain.DonationItem{
				Name:  items[j].Name,
				ID:    items[j].ID,
				Total: amount,
			})
			d.Total += amount
		}

		if d.Total == 0 {
			continue
		}
		donations = append(donations, d)
	}

	return donations, nil
}
