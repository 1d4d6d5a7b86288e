package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/codehook/dashboard/internal/config"
	"github.com/codehook/dashboard/internal/model"
	"github.com/codehook/dashboard/internal/service/dashboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDashboard struct {
	cards     model.CardData
	endpoints []model.Endpoint
	providers []model.Provider
	err       error
}

func (f *fakeDashboard) FetchCardData(ctx context.Context) (model.CardData, error) {
	return f.cards, f.err
}

func (f *fakeDashboard) Overview(ctx context.Context) (dashboard.Overview, error) {
	if f.err != nil {
		return dashboard.Overview{}, f.err
	}
	return dashboard.Overview{
		Cards:   f.cards,
		Latest:  []model.Event{{ID: "evt_1", Type: "charge.succeeded", Provider: "stripe"}},
		History: []model.EventHistory{{Month: "Jan", Events: 2000}},
	}, nil
}

func (f *fakeDashboard) Endpoints(ctx context.Context) ([]model.Endpoint, error) {
	return f.endpoints, f.err
}

func (f *fakeDashboard) Providers(ctx context.Context) ([]model.Provider, error) {
	return f.providers, f.err
}

func newTestServer(svc Dashboard) http.Handler {
	return NewServer(config.Config{}, svc, nil).Handler()
}

func do(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestPages(t *testing.T) {
	svc := &fakeDashboard{
		cards:     model.CardData{NumberOfEvents: 42, NumberOfProviders: 3, NumberOfEndpoints: 7},
		endpoints: []model.Endpoint{{ID: "ep_1", Name: "slack-notify", APIID: "k2j4", URL: "https://k2j4.example.com"}},
		providers: []model.Provider{{WebhookID: "we_1", Source: "stripe", Events: "*"}},
	}
	h := newTestServer(svc)

	tests := []struct {
		name     string
		path     string
		status   int
		contains []string
	}{
		{
			name:   "dashboard",
			path:   "/dashboard",
			status: http.StatusOK,
			contains: []string{
				"<!doctype html>",
				"Total Events", "Number of Providers", "Number of Endpoints",
				">42</p>", ">3</p>", ">7</p>",
				"charge.succeeded",
			},
		},
		{
			name:     "endpoints",
			path:     "/dashboard/endpoints",
			status:   http.StatusOK,
			contains: []string{"slack-notify", "k2j4"},
		},
		{
			name:     "settings",
			path:     "/dashboard/settings",
			status:   http.StatusOK,
			contains: []string{"we_1", "<code>*</code>"},
		},
		{
			name:     "unknown dashboard page",
			path:     "/dashboard/invoices",
			status:   http.StatusNotFound,
			contains: []string{"This page could not be found."},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, tt.path)
			assert.Equal(t, tt.status, rec.Code)
			for _, s := range tt.contains {
				assert.Contains(t, rec.Body.String(), s)
			}
		})
	}
}

func TestRootRedirects(t *testing.T) {
	rec := do(t, newTestServer(&fakeDashboard{}), "/")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))
}

func TestCardsAPI(t *testing.T) {
	rec := do(t, newTestServer(&fakeDashboard{cards: model.CardData{NumberOfEvents: 42, NumberOfProviders: 3, NumberOfEndpoints: 7}}), "/api/cards")
	require.Equal(t, http.StatusOK, rec.Code)

	var got map[string]int64
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, map[string]int64{"numberOfEvents": 42, "numberOfProviders": 3, "numberOfEndpoints": 7}, got)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestErrors(t *testing.T) {
	h := newTestServer(&fakeDashboard{err: errors.New("connection refused")})

	rec := do(t, h, "/api/cards")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"db error"}`, rec.Body.String())

	rec = do(t, h, "/dashboard")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Something went wrong")
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestHealthzAndStatic(t *testing.T) {
	h := newTestServer(&fakeDashboard{})

	rec := do(t, h, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())

	rec = do(t, h, "/static/logo.svg")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<svg")
}
