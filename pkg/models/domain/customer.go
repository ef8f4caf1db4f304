package domain

// Address is a customer's structured billing address. Only Line1 is
// guaranteed when an address is present at all.
type Address struct {
	Line1                  string
	Line2                  string
	Line3                  string
	City                   string
	PostalCode             string
	CountrySubDivisionCode string
}

// Customer is one customer entity. ID is the accounting platform's opaque
// identifier; it is the string form of the integer used in Donation.ID.
type Customer struct {
	ID             string
	DisplayName    string
	BillingAddress *Address
}

// CustomerQueryResult is one page (or a combination of pages) of a
// customer entity query. MaxResults counts records represented, which may
// differ from len(Customers) after combination.
type CustomerQueryResult struct {
	Customers     []Customer
	StartPosition int
	MaxResults    int
	Time          string
}
