package qbo

import "github.com/dono-tools/receipt-atlas/pkg/models/domain"

// CompanyInfoQueryResponse is the envelope of a CompanyInfo entity query.
type CompanyInfoQueryResponse struct {
	QueryResponse CompanyInfoQueryBody `json:"QueryResponse"`
	Time          string               `json:"time"`
}

type CompanyInfoQueryBody struct {
	CompanyInfo []CompanyInfo `json:"CompanyInfo"`
}

type CompanyInfo struct {
	CompanyName string   `json:"CompanyName"`
	LegalName   string   `json:"LegalName"`
	CompanyAddr *Address `json:"CompanyAddr,omitempty"`
	LegalAddr   *Address `json:"LegalAddr,omitempty"`
	Country     string   `json:"Country"`
}

func (r CompanyInfoQueryResponse) ToDomain() domain.CompanyInfoResult {
	result := domain.CompanyInfoResult{
		Companies: make([]domain.CompanyInfoEntry, 0, len(r.QueryResponse.CompanyInfo)),
		Time:      r.Time,
	}
	for _, c := range r.QueryResponse.CompanyInfo {
		result.Companies = append(result.Companies, domain.CompanyInfoEntry{
			LegalName:      c.LegalName,
			CompanyName:    c.CompanyName,
			LegalAddress:   c.LegalAddr.toDomain(),
			CompanyAddress: c.CompanyAddr.toDomain(),
			Country:        c.Country,
		})
	}
	return result
}
