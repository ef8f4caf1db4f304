package receipt

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/dono-tools/receipt-atlas/pkg/models/domain"
	"github.com/dono-tools/receipt-atlas/pkg/services/company"
	"github.com/dono-tools/receipt-atlas/pkg/services/customer"
	"github.com/dono-tools/receipt-atlas/pkg/services/donation"
)

// Fetcher is the accounting-platform surface the receipt pipeline needs.
// Implemented by the qbo store client.
type Fetcher interface {
	FetchSalesReport(ctx context.Context, realmID string, r domain.DateRange) (domain.SalesReport, error)
	FetchAllCustomers(ctx context.Context, realmID string) (domain.CustomerQueryResult, error)
	FetchCompanyInfo(ctx context.Context, realmID string) (domain.CompanyInfoResult, error)
}

// Service assembles address-enriched donations for a date range. The
// transformation itself is pure; this layer only adds the fetch
// orchestration around it.
type Service struct {
	fetcher Fetcher
}

func NewService(fetcher Fetcher) *Service {
	return &Service{fetcher: fetcher}
}

// GetDonations fetches the sales report and the full customer list
// concurrently, builds donations for the qualifying items, and attaches
// billing addresses. Enrichment waits for both fetches: it needs the
// customer pages fully combined and the report is not paginated.
func (s *Service) GetDonations(ctx context.Context, realmID string, r domain.DateRange, qualifyingItemIDs map[int]struct{}) ([]domain.Donation, error) {
	var (
		report    domain.SalesReport
		customers domain.CustomerQueryResult
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		report, err = s.fetcher.FetchSalesReport(gctx, realmID, r)
		return err
	})
	g.Go(func() error {
		var err error
		customers, err = s.fetcher.FetchAllCustomers(gctx, realmID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	donations, err := donation.BuildDonations(report, qualifyingItemIDs)
	if err != nil {
		return nil, fmt.Errorf("build donations: %w", err)
	}
	return customer.AttachAddresses(donations, customers), nil
}

// GetCompanyInfo fetches and normalizes the company record for receipts.
func (s *Service) GetCompanyInfo(ctx context.Context, realmID string) (domain.CompanyInfo, error) {
	result, err := s.fetcher.FetchCompanyInfo(ctx, realmID)
	if err != nil {
		return domain.CompanyInfo{}, err
	}
	return company.ParseCompanyInfo(result)
}
