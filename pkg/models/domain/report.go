package domain

import "time"

// RowKind discriminates the three row shapes a customer sales report can carry.
// The kind is resolved once when the raw report is decoded; downstream code
// dispatches on it instead of probing for field presence.
type RowKind string

const (
	RowFlat       RowKind = "flat"
	RowSection    RowKind = "section"
	RowGrandTotal RowKind = "grand_total"
)

// ColumnKind classifies a report column. The first column identifies the
// donor, the last carries the row total, and every column in between maps
// to exactly one sales item.
type ColumnKind string

const (
	ColumnCustomer ColumnKind = "customer"
	ColumnAmount   ColumnKind = "amount"
	ColumnLabel    ColumnKind = "label"
)

// ReportCell is a single cell value. ID is set only on donor-identity cells.
type ReportCell struct {
	ID    string
	Value string
}

// ReportColumn describes one report column. ItemID is nil when the column
// metadata carried no item reference.
type ReportColumn struct {
	Title  string
	Kind   ColumnKind
	ItemID *int
}

// ReportRow is a tagged variant over the three row shapes.
//
//   - RowFlat: Cells holds the donor's full cell list.
//   - RowSection: Header carries the donor identity, Summary the
//     authoritative per-item totals. Detail rows are dropped at decode
//     time; receipting only needs the summary.
//   - RowGrandTotal: Summary holds report-wide totals. Excluded from
//     per-donor processing.
type ReportRow struct {
	Kind    RowKind
	Cells   []ReportCell
	Header  []ReportCell
	Summary []ReportCell
}

// SalesReport is the decoded customer sales report for one date range.
type SalesReport struct {
	Columns []ReportColumn
	Rows    []ReportRow
}

// Item is one sales item column of a report.
type Item struct {
	Name string
	ID   int
}

// RowData is the normalized content of a single donor row.
type RowData struct {
	DonorID   int
	DonorName string
	Amounts   []float64
	Total     float64
}

// DateRange is the period a report or campaign covers; both bounds are
// inclusive as far as the accounting platform is concerned.
type DateRange struct {
	Start time.Time
	End   time.Time
}
