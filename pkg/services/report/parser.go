package report

import (
	"fmt"
	"strconv"

	"github.com/dono-tools/receipt-atlas/pkg/models/domain"
)

// ParseItems derives the sales-item list from a report's columns. The
// first and last column do not correspond to items (donor identity and row
// total); everything in between maps positionally to one item each.
//
// A middle column without item metadata means the platform returned a
// report we cannot attribute amounts from, which is a hard failure.
func ParseItems(report domain.SalesReport) ([]domain.Item, error) {
	if len(report.Columns) < 2 {
		return nil, fmt.Errorf("report has %d columns, need at least 2", len(report.Columns))
	}

	middle := report.Columns[1 : len(report.Columns)-1]
	items := make([]domain.Item, 0, len(middle))
	for i, col := range middle {
		if col.ItemID == nil {
			return nil, fmt.Errorf("column %d (%q) has no item metadata", i+1, col.Title)
		}
		items = append(items, domain.Item{Name: col.Title, ID: *col.ItemID})
	}
	return items, nil
}

// GetRowData normalizes one donor row. For flat rows everything comes from
// the cell list; for section rows the donor identity comes from the header
// while the amounts and total come from the summary. That split is part of
// the report format: the header carries the canonical donor id and name,
// the summary the canonical totals.
func GetRowData(row domain.ReportRow) (domain.RowData, error) {
	switch row.Kind {
	case domain.RowFlat:
		return rowDataFromCells(row.Cells, row.Cells)
	case domain.RowSection:
		return rowDataFromCells(row.Header, row.Summary)
	default:
		return domain.RowData{}, fmt.Errorf("row kind %q carries no donor data", row.Kind)
	}
}

func rowDataFromCells(identity, amounts []domain.ReportCell) (domain.RowData, error) {
	if len(identity) == 0 {
		return domain.RowData{}, fmt.Errorf("row has no donor identity cell")
	}
	donor := identity[0]
	if donor.ID == "" || donor.Value == "" {
		return domain.RowData{}, fmt.Errorf("donor cell is missing id or name (id=%q, name=%q)", donor.ID, donor.Value)
	}
	donorID, err := strconv.Atoi(donor.ID)
	if err != nil {
		return domain.RowData{}, fmt.Errorf("donor id %q is not numeric: %w", donor.ID, err)
	}

	if len(amounts) < 2 {
		return domain.RowData{}, fmt.Errorf("row for donor %q has %d amount cells, need at least 2", donor.Value, len(amounts))
	}

	data := domain.RowData{
		DonorID:   donorID,
		DonorName: donor.Value,
		Amounts:   make([]float64, 0, len(amounts)-2),
		Total:     ParseAmount(amounts[len(amounts)-1]),
	}
	for _, cell := range amounts[1 : len(amounts)-1] {
		data.Amounts = append(data.Amounts, ParseAmount(cell))
	}
	return data, nil
}

// ParseAmount reads a cell's numeric value. Empty and unparsable cells
// coerce to 0: the report format leaves cells blank when a donor bought
// none of an item, so that is legitimate data rather than an error.
func ParseAmount(cell domain.ReportCell) float64 {
	v, err := strconv.ParseFloat(cell.Value, 64)
	if err != nil {
		return 0
	}
	return v
}
