package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dono-tools/receipt-atlas/pkg/models/api"
	"github.com/dono-tools/receipt-atlas/pkg/services/config"
	"github.com/dono-tools/receipt-atlas/pkg/store/qbo"
)

type mockRegistry struct{ mock.Mock }

func (m *mockRegistry) GetProfiles(ctx context.Context) ([]config.Profile, error) {
	args := m.Called(ctx)
	return args.Get(0).([]config.Profile), args.Error(1)
}

func (m *mockRegistry) GetConfig(ctx context.Context, profile string) (*qbo.Config, string, error) {
	args := m.Called(ctx, profile)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*qbo.Config), args.String(1), args.Error(2)
}

func TestWebAPI_ListProfiles(t *testing.T) {
	registry := new(mockRegistry)
	registry.On("GetProfiles", mock.Anything).Return([]config.Profile{
		{Name: "acme", RealmID: "1234567890"},
	}, nil)

	webAPI := NewWebAPI(zerolog.Nop(), Config{
		Addr: ":0",
		Dependencies: Dependencies{
			Registry: registry,
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profiles", nil)
	rec := httptest.NewRecorder()
	webAPI.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var profiles []api.Profile
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&profiles))
	require.Len(t, profiles, 1)
	assert.Equal(t, "acme", profiles[0].Name)
	assert.Equal(t, "1234567890", profiles[0].RealmID)
	registry.AssertExpectations(t)
}

func TestWebAPI_UnknownRouteIs404(t *testing.T) {
	webAPI := NewWebAPI(zerolog.Nop(), Config{Addr: ":0"})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/unknown", nil)
	rec := httptest.NewRecorder()
	webAPI.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
