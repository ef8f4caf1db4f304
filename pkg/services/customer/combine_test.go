package customer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dono-tools/receipt-atlas/pkg/models/domain"
)

func TestCombineQueries_ConcatenatesInOrder(t *testing.T) {
	a := domain.CustomerQueryResult{
		Customers:     []domain.Customer{{ID: "1"}, {ID: "2"}},
		StartPosition: 1,
		MaxResults:    2,
		Time:          "2024-03-01T00:00:00Z",
	}
	b := domain.CustomerQueryResult{
		Customers:     []domain.Customer{{ID: "3"}},
		StartPosition: 3,
		MaxResults:    1,
		Time:          "2024-03-01T00:00:05Z",
	}
	c := domain.CustomerQueryResult{
		Customers:     []domain.Customer{{ID: "4"}, {ID: "5"}},
		StartPosition: 4,
		MaxResults:    2,
		Time:          "2024-03-01T00:00:09Z",
	}

	combined, err := CombineQueries([]domain.CustomerQueryResult{a, b, c})
	require.NoError(t, err)

	var ids []string
	for _, cust := range combined.Customers {
		ids = append(ids, cust.ID)
	}
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, ids)
	assert.Equal(t, 5, combined.MaxResults)
	assert.Equal(t, a.StartPosition, combined.StartPosition)
	assert.Equal(t, a.Time, combined.Time)
}

func TestCombineQueries_SingleInputPassesThrough(t *testing.T) {
	a := domain.CustomerQueryResult{
		Customers:  []domain.Customer{{ID: "1"}},
		MaxResults: 1,
	}

	combined, err := CombineQueries([]domain.CustomerQueryResult{a})
	require.NoError(t, err)
	assert.Equal(t, a.Customers, combined.Customers)
	assert.Equal(t, 1, combined.MaxResults)
}

func TestCombineQueries_EmptyInputIsAnError(t *testing.T) {
	_, err := CombineQueries(nil)
	assert.Error(t, err)
}
