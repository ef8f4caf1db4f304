package qbo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"golang.org/x/oauth2"

	"github.com/dono-tools/receipt-atlas/pkg/models/domain"
	qbomodels "github.com/dono-tools/receipt-atlas/pkg/models/qbo"
	"github.com/dono-tools/receipt-atlas/pkg/services/customer"
)

// DefaultPageSize is the platform's ceiling on customer query pages.
const DefaultPageSize = 1000

type Config struct {
	BaseURL     string
	AccessToken string
	// PageSize caps each customer query page. Zero means DefaultPageSize.
	PageSize int
}

// Client talks to the QuickBooks Online v3 API for one connection. It
// covers the three reads receipting needs: the CustomerSales report, the
// paginated Customer query, and the CompanyInfo query.
type Client struct {
	http     *http.Client
	baseURL  string
	pageSize int
}

func NewClient(ctx context.Context, cfg Config) *Client {
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.AccessToken})
	return &Client{
		http:     oauth2.NewClient(ctx, src),
		baseURL:  cfg.BaseURL,
		pageSize: pageSize,
	}
}

// FetchSalesReport pulls the sales-by-customer-by-item report for a date
// range, summarized by product/service so every item gets its own column.
func (c *Client) FetchSalesReport(ctx context.Context, realmID string, r domain.DateRange) (domain.SalesReport, error) {
	q := url.Values{}
	q.Set("start_date", r.Start.Format("2006-01-02"))
	q.Set("end_date", r.End.Format("2006-01-02"))
	q.Set("summarize_column_by", "ProductsAndServices")

	endpoint := fmt.Sprintf("%s/v3/company/%s/reports/CustomerSales?%s", c.baseURL, realmID, q.Encode())

	var wire qbomodels.Report
	if err := c.getJSON(ctx, endpoint, &wire); err != nil {
		return domain.SalesReport{}, fmt.Errorf("fetch sales report: %w", err)
	}
	return wire.ToDomain(), nil
}

// FetchCustomersPage runs one page of the customer entity query starting
// at the given 1-based position.
func (c *Client) FetchCustomersPage(ctx context.Context, realmID string, startPosition int) (domain.CustomerQueryResult, error) {
	query := fmt.Sprintf("SELECT * FROM Customer STARTPOSITION %d MAXRESULTS %d", startPosition, c.pageSize)
	endpoint := fmt.Sprintf("%s/v3/company/%s/query?query=%s", c.baseURL, realmID, url.QueryEscape(query))

	var wire qbomodels.CustomerQueryResponse
	if err := c.getJSON(ctx, endpoint, &wire); err != nil {
		return domain.CustomerQueryResult{}, fmt.Errorf("fetch customers page at %d: %w", startPosition, err)
	}
	return wire.ToDomain(), nil
}

// FetchAllCustomers pages through the customer query until a short page
// comes back, then combines the pages. Page starts stride by the page size
// so fetched pages never overlap.
func (c *Client) FetchAllCustomers(ctx context.Context, realmID string) (domain.CustomerQueryResult, error) {
	var pages []domain.CustomerQueryResult
	for position := 1; ; position += c.pageSize {
		page, err := c.FetchCustomersPage(ctx, realmID, position)
		if err != nil {
			return domain.CustomerQueryResult{}, err
		}
		pages = append(pages, page)
		if len(page.Customers) < c.pageSize {
			break
		}
	}
	return customer.CombineQueries(pages)
}

// FetchCompanyInfo queries the company entity record.
func (c *Client) FetchCompanyInfo(ctx context.Context, realmID string) (domain.CompanyInfoResult, error) {
	query := "SELECT * FROM CompanyInfo"
	endpoint := fmt.Sprintf("%s/v3/company/%s/query?query=%s", c.baseURL, realmID, url.QueryEscape(query))

	var wire qbomodels.CompanyInfoQueryResponse
	if err := c.getJSON(ctx, endpoint, &wire); err != nil {
		return domain.CompanyInfoResult{}, fmt.Errorf("fetch company info: %w", err)
	}
	return wire.ToDomain(), nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
