package company

import (
	"errors"

	"github.com/dono-tools/receipt-atlas/pkg/models/domain"
	"github.com/dono-tools/receipt-atlas/pkg/services/customer"
)

// ErrNoCompanyInfo means the company-info query returned no entries at
// all. That is a schema violation on the platform's side and cannot be
// recovered from here.
var ErrNoCompanyInfo = errors.New("no company info found")

// NoAddressOnFile is used when a company has neither a legal nor a plain
// company address.
const NoAddressOnFile = "No address on file"

// ParseCompanyInfo normalizes the first company entry of a company-info
// query. The legal name and legal address are preferred when present,
// falling back to the plain company name and address.
func ParseCompanyInfo(result domain.CompanyInfoResult) (domain.CompanyInfo, error) {
	if len(result.Companies) == 0 {
		return domain.CompanyInfo{}, ErrNoCompanyInfo
	}
	entry := result.Companies[0]

	info := domain.CompanyInfo{
		CompanyName: entry.LegalName,
		Country:     entry.Country,
	}
	if info.CompanyName == "" {
		info.CompanyName = entry.CompanyName
	}

	switch {
	case entry.LegalAddress != nil:
		info.CompanyAddress = customer.FormatAddress(*entry.LegalAddress)
	case entry.CompanyAddress != nil:
		info.CompanyAddress = customer.FormatAddress(*entry.CompanyAddress)
	default:
		info.CompanyAddress = NoAddressOnFile
	}

	return info, nil
}
