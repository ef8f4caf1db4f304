package domain

// CompanyInfoEntry is one company record as the accounting platform
// returns it. Legal fields take precedence over their plain counterparts
// when non-empty.
type CompanyInfoEntry struct {
	LegalName      string
	CompanyName    string
	LegalAddress   *Address
	CompanyAddress *Address
	Country        string
}

// CompanyInfoResult is the envelope of a company-info entity query.
type CompanyInfoResult struct {
	Companies []CompanyInfoEntry
	Time      string
}

// CompanyInfo is the normalized company record used on receipts.
type CompanyInfo struct {
	CompanyName    string
	CompanyAddress string
	Country        string
}
