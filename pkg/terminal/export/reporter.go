package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/dono-tools/receipt-atlas/pkg/models/domain"
)

type TableConfig struct {
	NameWidth    int
	AmountWidth  int
	AddressWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		NameWidth:    32,
		AmountWidth:  12,
		AddressWidth: 48,
	}
}

type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

type donationsView struct {
	Range     domain.DateRange
	Donations []domain.Donation
	Total     float64
}

// HandleDonations renders the donation list as a text table, one row per
// donor with item breakdown lines underneath.
func (c *Reporter) HandleDonations(r domain.DateRange, donations []domain.Donation) error {
	funcMap := template.FuncMap{
		"formatRow": func(name string, amount float64, address string) string {
			return fmt.Sprintf("| %-*s | %*.2f | %-*s |",
				c.config.NameWidth, name,
				c.config.AmountWidth, amount,
				c.config.AddressWidth, address)
		},
		"formatItem": func(name string, amount float64) string {
			return fmt.Sprintf("|   %-*s | %*.2f | %-*s |",
				c.config.NameWidth-2, name,
				c.config.AmountWidth, amount,
				c.config.AddressWidth, "")
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+%s+",
				strings.Repeat("-", c.config.NameWidth+2),
				strings.Repeat("-", c.config.AmountWidth+2),
				strings.Repeat("-", c.config.AddressWidth+2))
		},
	}

	tmpl := `
Donations {{.Range.Start.Format "2006-01-02"}} to {{.Range.End.Format "2006-01-02"}}
Donors: {{len .Donations}}
Total: {{printf "%.2f" .Total}}

{{separator}}
{{range .Donations}}{{formatRow .Name .Total .Address}}
{{range .Items}}{{formatItem .Name .Total}}
{{end}}{{end}}{{separator}}
`

	t, err := template.New("donations").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	view := donationsView{Range: r, Donations: donations}
	for _, d := range donations {
		view.Total += d.Total
	}
	return t.Execute(c.writer, view)
}

// HandleCompany prints the normalized company record.
func (c *Reporter) HandleCompany(info domain.CompanyInfo) error {
	tmpl := `
{{.CompanyName}}
{{.CompanyAddress}}
{{.Country}}
`
	t, err := template.New("company").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}
	return t.Execute(c.writer, info)
}
