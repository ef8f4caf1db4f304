package receipt

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/dono-tools/receipt-atlas/pkg/models/api"
	"github.com/dono-tools/receipt-atlas/pkg/models/domain"
	"github.com/dono-tools/receipt-atlas/pkg/services/config"
	"github.com/dono-tools/receipt-atlas/pkg/services/history"
	"github.com/dono-tools/receipt-atlas/pkg/services/receipt"
	"github.com/dono-tools/receipt-atlas/pkg/store/qbo"
)

const dateLayout = "2006-01-02"

// FetcherFactory builds a platform client for one connection profile.
type FetcherFactory func(ctx context.Context, cfg *qbo.Config) receipt.Fetcher

// DefaultFetcherFactory returns the real QuickBooks client.
func DefaultFetcherFactory(ctx context.Context, cfg *qbo.Config) receipt.Fetcher {
	return qbo.NewClient(ctx, *cfg)
}

type Handler struct {
	registry   config.Registry
	history    *history.Service
	fetcherFor FetcherFactory
}

func NewHandler(registry config.Registry, hist *history.Service, fetcherFor FetcherFactory) *Handler {
	if fetcherFor == nil {
		fetcherFor = DefaultFetcherFactory
	}
	return &Handler{
		registry:   registry,
		history:    hist,
		fetcherFor: fetcherFor,
	}
}

func (h *Handler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	profiles, err := h.registry.GetProfiles(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	response := make([]api.Profile, 0, len(profiles))
	for _, p := range profiles {
		response = append(response, api.Profile{Name: p.Name, RealmID: p.RealmID})
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().Err(err).Msg("failed to encode profiles")
	}
}

// GetDonations serves the address-enriched donation list for a profile,
// date range, and comma-separated set of qualifying item ids.
func (h *Handler) GetDonations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	profile := chi.URLParam(r, "profile")

	dateRange, err := parseDateRange(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	items, err := parseItemIDs(r.URL.Query().Get("items"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	svc, realmID, err := h.serviceFor(ctx, profile)
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}

	donations, err := svc.GetDonations(ctx, realmID, dateRange, items)
	if err != nil {
		logger.Error().Err(err).Str("profile", profile).Msg("failed to build donations")
		// Malformed platform data and fetch failures both surface here;
		// neither is the caller's fault.
		writeError(w, http.StatusBadGateway, err)
		return
	}

	response := make([]api.Donation, 0, len(donations))
	for _, d := range donations {
		response = append(response, donationToAPI(d))
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().Err(err).Str("profile", profile).Msg("failed to encode donations")
	}
}

func (h *Handler) GetCompanyInfo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	profile := chi.URLParam(r, "profile")

	svc, realmID, err := h.serviceFor(ctx, profile)
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}

	info, err := svc.GetCompanyInfo(ctx, realmID)
	if err != nil {
		logger.Error().Err(err).Str("profile", profile).Msg("failed to get company info")
		writeError(w, http.StatusBadGateway, err)
		return
	}

	response := api.CompanyInfo{
		CompanyName:    info.CompanyName,
		CompanyAddress: info.CompanyAddress,
		Country:        info.Country,
	}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().Err(err).Str("profile", profile).Msg("failed to encode company info")
	}
}

// GetHistory serves past campaigns overlapping the date range that touched
// any of the given recipients. Responds 204 when there is nothing to warn
// about, so clients can tell "no relevant history" without parsing a body.
func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	profile := chi.URLParam(r, "profile")

	dateRange, err := parseDateRange(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	recipients, err := parseItemIDs(r.URL.Query().Get("recipients"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	entries, err := h.history.PriorCampaigns(ctx, profile, recipients, dateRange)
	if err != nil {
		logger.Error().Err(err).Str("profile", profile).Msg("failed to query history")
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if entries == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	response := make([]api.HistoryEntry, 0, len(entries))
	for _, e := range entries {
		response = append(response, historyToAPI(e))
	}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().Err(err).Str("profile", profile).Msg("failed to encode history")
	}
}

type recordCampaignRequest struct {
	StartDate string         `json:"start_date"`
	EndDate   string         `json:"end_date"`
	Donations []api.Donation `json:"donations"`
}

// RecordCampaign appends one campaign entry after a receipt batch is sent.
func (h *Handler) RecordCampaign(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	profile := chi.URLParam(r, "profile")

	var req recordCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	dateRange, err := parseDates(req.StartDate, req.EndDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	donations := make([]domain.Donation, 0, len(req.Donations))
	for _, d := range req.Donations {
		donations = append(donations, domain.Donation{Name: d.Name, ID: d.ID})
	}

	entry, err := h.history.RecordCampaign(ctx, profile, dateRange, donations)
	if err != nil {
		logger.Error().Err(err).Str("profile", profile).Msg("failed to record campaign")
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(historyToAPI(entry)); err != nil {
		logger.Error().Err(err).Str("profile", profile).Msg("failed to encode campaign")
	}
}

func (h *Handler) serviceFor(ctx context.Context, profile string) (*receipt.Service, string, error) {
	cfg, realmID, err := h.registry.GetConfig(ctx, profile)
	if err != nil {
		return nil, "", err
	}
	return receipt.NewService(h.fetcherFor(ctx, cfg)), realmID, nil
}

func parseDateRange(r *http.Request) (domain.DateRange, error) {
	return parseDates(r.URL.Query().Get("start"), r.URL.Query().Get("end"))
}

func parseDates(start, end string) (domain.DateRange, error) {
	startDate, err := time.Parse(dateLayout, start)
	if err != nil {
		return domain.DateRange{}, err
	}
	endDate, err := time.Parse(dateLayout, end)
	if err != nil {
		return domain.DateRange{}, err
	}
	return domain.DateRange{Start: startDate, End: endDate}, nil
}

func parseItemIDs(raw string) (map[int]struct{}, error) {
	ids := make(map[int]struct{})
	if raw == "" {
		return ids, nil
	}
	for _, part := range strings.Split(raw, ",") {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		ids[id] = struct{}{}
	}
	return ids, nil
}

func donationToAPI(d domain.Donation) api.Donation {
	out := api.Donation{
		Name:    d.Name,
		ID:      d.ID,
		Total:   d.Total,
		Items:   make([]api.DonationItem, 0, len(d.Items)),
		Address: d.Address,
	}
	for _, item := range d.Items {
		out.Items = append(out.Items, api.DonationItem{Name: item.Name, ID: item.ID, Total: item.Total})
	}
	return out
}

func historyToAPI(e domain.EmailHistoryEntry) api.HistoryEntry {
	out := api.HistoryEntry{
		ID:         e.ID,
		CreatedAt:  e.CreatedAt,
		StartDate:  e.StartDate,
		EndDate:    e.EndDate,
		Recipients: make([]api.Recipient, 0, len(e.Recipients)),
	}
	for _, rec := range e.Recipients {
		out.Recipients = append(out.Recipients, api.Recipient{Name: rec.Name, DonorID: rec.DonorID})
	}
	return out
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(api.Error{Error: err.Error()})
}
