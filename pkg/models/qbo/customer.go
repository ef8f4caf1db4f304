package qbo

import "github.com/dono-tools/receipt-atlas/pkg/models/domain"

// CustomerQueryResponse is one page of a Customer entity query.
type CustomerQueryResponse struct {
	QueryResponse CustomerQueryBody `json:"QueryResponse"`
	Time          string            `json:"time"`
}

type CustomerQueryBody struct {
	Customer      []Customer `json:"Customer"`
	StartPosition int        `json:"startPosition"`
	MaxResults    int        `json:"maxResults"`
}

type Customer struct {
	ID          string   `json:"Id"`
	DisplayName string   `json:"DisplayName"`
	BillAddr    *Address `json:"BillAddr,omitempty"`
}

type Address struct {
	Line1                  string `json:"Line1,omitempty"`
	Line2                  string `json:"Line2,omitempty"`
	Line3                  string `json:"Line3,omitempty"`
	City                   string `json:"City,omitempty"`
	PostalCode             string `json:"PostalCode,omitempty"`
	CountrySubDivisionCode string `json:"CountrySubDivisionCode,omitempty"`
}

func (r CustomerQueryResponse) ToDomain() domain.CustomerQueryResult {
	result := domain.CustomerQueryResult{
		Customers:     make([]domain.Customer, 0, len(r.QueryResponse.Customer)),
		StartPosition: r.QueryResponse.StartPosition,
		MaxResults:    r.QueryResponse.MaxResults,
		Time:          r.Time,
	}
	for _, c := range r.QueryResponse.Customer {
		result.Customers = append(result.Customers, domain.Customer{
			ID:             c.ID,
			DisplayName:    c.DisplayName,
			BillingAddress: c.BillAddr.toDomain(),
		})
	}
	return result
}

func (a *Address) toDomain() *domain.Address {
	if a == nil {
		return nil
	}
	return &domain.Address{
		Line1:                  a.Line1,
		Line2:                  a.Line2,
		Line3:                  a.Line3,
		City:                   a.City,
		PostalCode:             a.PostalCode,
		CountrySubDivisionCode: a.CountrySubDivisionCode,
	}
}
