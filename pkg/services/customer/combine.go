package customer

import (
	"fmt"

	"github.com/dono-tools/receipt-atlas/pkg/models/domain"
)

// CombineQueries merges paginated customer query pages into one logical
// result. Customer lists concatenate in input order and MaxResults sums
// across pages; the envelope's Time and StartPosition come from the first
// page. No deduplication happens here — callers must fetch disjoint pages,
// which the qbo client's paginator guarantees by striding StartPosition.
func CombineQueries(results []domain.CustomerQueryResult) (domain.CustomerQueryResult, error) {
	if len(results) == 0 {
		return domain.CustomerQueryResult{}, fmt.Errorf("no customer query results to combine")
	}

	combined := domain.CustomerQueryResult{
		StartPosition: results[0].StartPosition,
		Time:          results[0].Time,
	}
	for _, r := range results {
		combined.Customers = append(combined.Customers, r.Customers...)
		combined.MaxResults += r.MaxResults
	}
	return combined, nil
}
