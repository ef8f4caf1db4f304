package customer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dono-tools/receipt-atlas/pkg/models/domain"
)

func TestFormatAddress_FullAddress(t *testing.T) {
	addr := domain.Address{
		Line1:                  "123 Main St",
		City:                   "San Francisco",
		PostalCode:             "94105",
		CountrySubDivisionCode: "CA",
	}
	assert.Equal(t, "123 Main St, San Francisco 94105 CA", FormatAddress(addr))
}

func TestFormatAddress_WithExtraLines(t *testing.T) {
	addr := domain.Address{
		Line1:                  "123 Main St",
		Line2:                  "Suite 456",
		City:                   "San Francisco",
		PostalCode:             "94105",
		CountrySubDivisionCode: "CA",
	}
	assert.Equal(t, "123 Main St Suite 456, San Francisco 94105 CA", FormatAddress(addr))
}

func TestFormatAddress_Line1Only(t *testing.T) {
	// No trailing comma or space when the city group is absent.
	assert.Equal(t, "1 Main St", FormatAddress(domain.Address{Line1: "1 Main St"}))
}

func TestFormatAddress_PostalOnly(t *testing.T) {
	addr := domain.Address{Line1: "1 Main St", PostalCode: "94105"}
	assert.Equal(t, "1 Main St, 94105", FormatAddress(addr))
}

func TestAttachAddresses_FillsMatchedCustomers(t *testing.T) {
	donations := []domain.Donation{
		{Name: "John", ID: 123, Total: 100},
		{Name: "Jane", ID: 124, Total: 50},
		{Name: "Ghost", ID: 999, Total: 25},
	}
	customers := domain.CustomerQueryResult{
		Customers: []domain.Customer{
			{ID: "123", BillingAddress: &domain.Address{Line1: "123 Main St", City: "Springfield"}},
			{ID: "124"}, // no billing address on file
		},
	}

	enriched := AttachAddresses(donations, customers)
	require.Len(t, enriched, 3)
	assert.Equal(t, "123 Main St, Springfield", enriched[0].Address)
	assert.Equal(t, NoBillingAddress, enriched[1].Address)
	assert.Equal(t, NoBillingAddress, enriched[2].Address)
}

func TestAttachAddresses_DoesNotMutateInput(t *testing.T) {
	donations := []domain.Donation{{Name: "John", ID: 123}}
	customers := domain.CustomerQueryResult{
		Customers: []domain.Customer{
			{ID: "123", BillingAddress: &domain.Address{Line1: "123 Main St"}},
		},
	}

	_ = AttachAddresses(donations, customers)
	assert.Empty(t, donations[0].Address)
}
