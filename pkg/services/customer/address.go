package customer

import (
	"strconv"
	"strings"

	"github.com/dono-tools/receipt-atlas/pkg/models/domain"
)

// NoBillingAddress is the placeholder attached when a donor has no billing
// address on the accounting platform, or is missing from the customer list
// entirely. Enrichment never fails on a lookup miss.
const NoBillingAddress = "No billing address on file"

// FormatAddress renders a structured address as a single mailing line:
// street lines joined by spaces, then a comma before the city/postal/state
// group when any of those are present.
//
//	{Line1: "123 Main St", City: "San Francisco", PostalCode: "94105", CountrySubDivisionCode: "CA"}
//	=> "123 Main St, San Francisco 94105 CA"
func FormatAddress(addr domain.Address) string {
	var b strings.Builder
	b.WriteString(addr.Line1)
	if addr.Line2 != "" {
		b.WriteString(" ")
		b.WriteString(addr.Line2)
	}
	if addr.Line3 != "" {
		b.WriteString(" ")
		b.WriteString(addr.Line3)
	}
	if addr.City != "" || addr.PostalCode != "" || addr.CountrySubDivisionCode != "" {
		b.WriteString(",")
	}
	if addr.City != "" {
		b.WriteString(" ")
		b.WriteString(addr.City)
	}
	if addr.PostalCode != "" {
		b.WriteString(" ")
		b.WriteString(addr.PostalCode)
	}
	if addr.CountrySubDivisionCode != "" {
		b.WriteString(" ")
		b.WriteString(addr.CountrySubDivisionCode)
	}
	return b.String()
}

// AttachAddresses returns a copy of donations with each donor's formatted
// billing address filled in from the combined customer query. Customers
// are indexed by id up front so enrichment stays linear in the customer
// count.
func AttachAddresses(donations []domain.Donation, customers domain.CustomerQueryResult) []domain.Donation {
	byID := make(map[int]domain.Customer, len(customers.Customers))
	for _, c := range customers.Customers {
		id, err := strconv.Atoi(c.ID)
		if err != nil {
			continue
		}
		byID[id] = c
	}

	enriched := make([]domain.Donation, len(donations))
	for i, d := range donations {
		d.Address = NoBillingAddress
		if c, ok := byID[d.ID]; ok && c.BillingAddress != nil {
			d.Address = FormatAddress(*c.BillingAddress)
		}
		enriched[i] = d
	}
	return enriched
}
