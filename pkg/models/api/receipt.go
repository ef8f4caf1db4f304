package api

import "time"

type Donation struct {
	Name    string         `json:"name"`
	ID      int            `json:"id"`
	Total   float64        `json:"total"`
	Items   []DonationItem `json:"items"`
	Address string         `json:"address"`
}

type DonationItem struct {
	Name  string  `json:"name"`
	ID    int     `json:"id"`
	Total float64 `json:"total"`
}

type CompanyInfo struct {
	CompanyName    string `json:"company_name"`
	CompanyAddress string `json:"company_address"`
	Country        string `json:"country"`
}

type Recipient struct {
	Name    string `json:"name"`
	DonorID int    `json:"donor_id"`
}

type HistoryEntry struct {
	ID         string      `json:"id"`
	CreatedAt  time.Time   `json:"created_at"`
	StartDate  time.Time   `json:"start_date"`
	EndDate    time.Time   `json:"end_date"`
	Recipients []Recipient `json:"recipients"`
}

type Profile struct {
	Name    string `json:"name"`
	RealmID string `json:"realm_id"`
}

type Error struct {
	Error string `json:"error"`
}
