package qbo

import (
	"strconv"

	"github.com/dono-tools/receipt-atlas/pkg/models/domain"
)

// Report is the raw CustomerSales report envelope as QuickBooks returns it.
// The row list mixes three shapes (flat, section, grand total) that are
// only distinguishable by which fields are populated; ToDomain resolves
// each row into an explicitly tagged domain.ReportRow.
type Report struct {
	Header  ReportHeader `json:"Header"`
	Columns Columns      `json:"Columns"`
	Rows    Rows         `json:"Rows"`
}

type ReportHeader struct {
	Time        string `json:"Time"`
	ReportName  string `json:"ReportName"`
	StartPeriod string `json:"StartPeriod"`
	EndPeriod   string `json:"EndPeriod"`
	Currency    string `json:"Currency"`
}

type Columns struct {
	Column []Column `json:"Column"`
}

type Column struct {
	ColTitle string      `json:"ColTitle"`
	ColType  string      `json:"ColType"`
	MetaData []NameValue `json:"MetaData,omitempty"`
}

type NameValue struct {
	Name  string `json:"Name"`
	Value string `json:"Value"`
}

type Rows struct {
	Row []Row `json:"Row"`
}

// Row carries either ColData (flat) or a Header/Rows/Summary group
// (section). Grand-total rows are sections flagged with Group "GrandTotal".
type Row struct {
	ColData []ColData `json:"ColData,omitempty"`
	Header  *RowGroup `json:"Header,omitempty"`
	Rows    *Rows     `json:"Rows,omitempty"`
	Summary *RowGroup `json:"Summary,omitempty"`
	Type    string    `json:"type,omitempty"`
	Group   string    `json:"group,omitempty"`
}

type RowGroup struct {
	ColData []ColData `json:"ColData"`
}

type ColData struct {
	Value string `json:"value"`
	ID    string `json:"id,omitempty"`
}

const grandTotalGroup = "GrandTotal"

// ToDomain converts the wire report into the typed model. Row shapes are
// resolved here, once; nested section detail rows are dropped because the
// section summary carries the authoritative per-item totals.
func (r Report) ToDomain() domain.SalesReport {
	report := domain.SalesReport{
		Columns: make([]domain.ReportColumn, 0, len(r.Columns.Column)),
		Rows:    make([]domain.ReportRow, 0, len(r.Rows.Row)),
	}

	for _, col := range r.Columns.Column {
		report.Columns = append(report.Columns, col.toDomain())
	}
	for _, row := range r.Rows.Row {
		report.Rows = append(report.Rows, row.toDomain())
	}

	return report
}

func (c Column) toDomain() domain.ReportColumn {
	col := domain.ReportColumn{
		Title: c.ColTitle,
		Kind:  columnKind(c.ColType),
	}
	for _, md := range c.MetaData {
		if md.Name != "ID" {
			continue
		}
		id, err := strconv.Atoi(md.Value)
		if err != nil {
			continue
		}
		col.ItemID = &id
		break
	}
	return col
}

func columnKind(colType string) domain.ColumnKind {
	switch colType {
	case "Customer":
		return domain.ColumnCustomer
	case "Money", "Amount":
		return domain.ColumnAmount
	default:
		return domain.ColumnLabel
	}
}

func (r Row) toDomain() domain.ReportRow {
	if r.Type == "Section" && r.Group == grandTotalGroup {
		return domain.ReportRow{
			Kind:    domain.RowGrandTotal,
			Summary: cellsToDomain(r.summaryColData()),
		}
	}
	if r.Type == "Section" || r.Header != nil {
		return domain.ReportRow{
			Kind:    domain.RowSection,
			Header:  cellsToDomain(r.headerColData()),
			Summary: cellsToDomain(r.summaryColData()),
		}
	}
	return domain.ReportRow{
		Kind:  domain.RowFlat,
		Cells: cellsToDomain(r.ColData),
	}
}

func (r Row) headerColData() []ColData {
	if r.Header == nil {
		return nil
	}
	return r.Header.ColData
}

func (r Row) summaryColData() []ColData {
	if r.Summary == nil {
		return nil
	}
	return r.Summary.ColData
}

func cellsToDomain(data []ColData) []domain.ReportCell {
	cells := make([]domain.ReportCell, 0, len(data))
	for _, d := range data {
		cells = append(cells, domain.ReportCell{ID: d.ID, Value: d.Value})
	}
	return cells
}
