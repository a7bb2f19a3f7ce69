// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/study-spots/internal/config"
	"github.com/MKhiriev/study-spots/internal/logger"
	"github.com/MKhiriev/study-spots/internal/metrics"
	"github.com/MKhiriev/study-spots/internal/mock"
	"github.com/MKhiriev/study-spots/internal/render"
	"github.com/MKhiriev/study-spots/internal/service"
	"github.com/MKhiriev/study-spots/internal/validators"
	"github.com/MKhiriev/study-spots/models"
)

type testEnv struct {
	spots   *mock.MockSpotService
	appInfo *mock.MockAppInfoService
	metrics *metrics.Metrics
	router  http.Handler
}

func newTestEnv(t *testing.T, cfg config.Server) *testEnv {
	t.Helper()

	ctrl := gomock.NewController(t)
	env := &testEnv{
		spots:   mock.NewMockSpotService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
		metrics: metrics.New(),
	}

	renderer, err := render.New(render.NewHTMLSanitizer())
	require.NoError(t, err)

	services := &service.Services{SpotService: env.spots, AppInfoService: env.appInfo}
	env.router = NewHandler(services, renderer, env.metrics, cfg, logger.Nop()).Init()

	return env
}

func (e *testEnv) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error
}

func sampleSpot() models.Spot {
	return models.Spot{
		ID:       "s1",
		Name:     "Cafe",
		Address:  "1 Main",
		SpotType: "Cafe",
		HasWifi:  models.Bool(true),
		Links:    "[]",
	}
}

// ── List ─────────────────────────────────────────────────────────────────────

func TestListSpots(t *testing.T) {
	env := newTestEnv(t, config.Server{})
	env.spots.EXPECT().List(gomock.Any()).Return([]models.Spot{sampleSpot()}, nil)

	rec := env.do(http.MethodGet, "/data", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got []models.Spot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, models.SpotID("s1"), got[0].ID)
}

func TestListSpots_EmptyIsArray(t *testing.T) {
	env := newTestEnv(t, config.Server{})
	env.spots.EXPECT().List(gomock.Any()).Return(nil, nil)

	rec := env.do(http.MethodGet, "/data", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestListSpots_StoreFailureHidesDetails(t *testing.T) {
	env := newTestEnv(t, config.Server{})
	env.spots.EXPECT().List(gomock.Any()).Return(nil, errors.New("dial tcp: connection refused"))

	rec := env.do(http.MethodGet, "/data", "")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), errorMessage(t, rec))
}

// ── Get ──────────────────────────────────────────────────────────────────────

func TestGetSpot(t *testing.T) {
	env := newTestEnv(t, config.Server{})
	env.spots.EXPECT().Get(gomock.Any(), models.SpotID("s1")).Return(sampleSpot(), nil)

	rec := env.do(http.MethodGet, "/data/s1", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Cafe"`)
}

func TestGetSpot_NotFound(t *testing.T) {
	env := newTestEnv(t, config.Server{})
	env.spots.EXPECT().Get(gomock.Any(), models.SpotID("nope")).
		Return(models.Spot{}, fmt.Errorf("get spot: %w", service.ErrSpotNotFound))

	rec := env.do(http.MethodGet, "/data/nope", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "spot not found", errorMessage(t, rec))
}

// ── Create ───────────────────────────────────────────────────────────────────

func TestCreateSpot(t *testing.T) {
	env := newTestEnv(t, config.Server{})
	env.spots.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, spot models.Spot) (models.Spot, error) {
			assert.Equal(t, "Cafe", spot.Name)
			spot.ID = "new-id"
			return spot, nil
		})

	rec := env.do(http.MethodPost, "/data", `{"name":"Cafe","address":"1 Main","spotType":"Cafe","links":"[]"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"new-id"`)
}

func TestCreateSpot_InvalidJSON(t *testing.T) {
	env := newTestEnv(t, config.Server{})

	rec := env.do(http.MethodPost, "/data", `{"name":`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid JSON body", errorMessage(t, rec))
}

func TestCreateSpot_TrailingData(t *testing.T) {
	env := newTestEnv(t, config.Server{})

	rec := env.do(http.MethodPost, "/data", `{"name":"a"} {"name":"b"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateSpot_ValidationMessage(t *testing.T) {
	env := newTestEnv(t, config.Server{})
	env.spots.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(models.Spot{}, &validators.FieldError{Field: "name", Rule: "required"})

	rec := env.do(http.MethodPost, "/data", `{"address":"1 Main"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "name required", errorMessage(t, rec))
}

// ── Update ───────────────────────────────────────────────────────────────────

func TestUpdateSpot_UsesPathID(t *testing.T) {
	env := newTestEnv(t, config.Server{})
	env.spots.EXPECT().Update(gomock.Any(), models.SpotID("s1"), gomock.Any()).
		DoAndReturn(func(_ context.Context, id models.SpotID, spot models.Spot) (models.Spot, error) {
			spot.ID = id
			return spot, nil
		})

	rec := env.do(http.MethodPut, "/data/s1", `{"id":"other","name":"Library"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"s1"`)
}

func TestUpdateSpot_NotFound(t *testing.T) {
	env := newTestEnv(t, config.Server{})
	env.spots.EXPECT().Update(gomock.Any(), models.SpotID("gone"), gomock.Any()).
		Return(models.Spot{}, service.ErrSpotNotFound)

	rec := env.do(http.MethodPut, "/data/gone", `{"name":"x"}`)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

// ── Delete ───────────────────────────────────────────────────────────────────

func TestDeleteSpot(t *testing.T) {
	env := newTestEnv(t, config.Server{})
	env.spots.EXPECT().Delete(gomock.Any(), models.SpotID("s1")).Return(nil)

	rec := env.do(http.MethodDelete, "/data/s1", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"deleted","id":"s1"}`, rec.Body.String())
}

func TestDeleteSpot_NotFound(t *testing.T) {
	env := newTestEnv(t, config.Server{})
	env.spots.EXPECT().Delete(gomock.Any(), models.SpotID("s9")).Return(service.ErrSpotNotFound)

	rec := env.do(http.MethodDelete, "/data/s9", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "spot not found", errorMessage(t, rec))
}

// ── Catalog ──────────────────────────────────────────────────────────────────

func TestCatalog_RendersCards(t *testing.T) {
	env := newTestEnv(t, config.Server{})
	spot := sampleSpot()
	spot.Name = `<script>alert(1)</script>Cafe`
	env.spots.EXPECT().List(gomock.Any()).Return([]models.Spot{spot}, nil)

	rec := env.do(http.MethodGet, "/", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), `class="item-card"`)
	assert.NotContains(t, rec.Body.String(), "<script>alert(1)")
}

func TestCatalog_Empty(t *testing.T) {
	env := newTestEnv(t, config.Server{})
	env.spots.EXPECT().List(gomock.Any()).Return(nil, nil)

	rec := env.do(http.MethodGet, "/", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), render.EmptyMessage)
}

// ── Version & metrics ────────────────────────────────────────────────────────

func TestVersion(t *testing.T) {
	env := newTestEnv(t, config.Server{})
	env.appInfo.EXPECT().GetAppVersion(gomock.Any()).
		Return(models.VersionResponse{Version: "1.2.3", Date: "2026-01-01", Commit: "abc"})

	rec := env.do(http.MethodGet, "/api/version", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"version":"1.2.3","date":"2026-01-01","commit":"abc"}`, rec.Body.String())
}

func TestMetrics_CountsRoutePattern(t *testing.T) {
	env := newTestEnv(t, config.Server{})
	env.spots.EXPECT().Get(gomock.Any(), gomock.Any()).Return(sampleSpot(), nil)

	env.do(http.MethodGet, "/data/s1", "")
	rec := env.do(http.MethodGet, "/metrics", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `route="/data/{id}"`)
}

// ── Routing & middleware ─────────────────────────────────────────────────────

func TestUnknownRoute(t *testing.T) {
	env := newTestEnv(t, config.Server{})

	rec := env.do(http.MethodGet, "/nope", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "route not found", errorMessage(t, rec))
}

func TestMethodNotAllowed(t *testing.T) {
	env := newTestEnv(t, config.Server{})

	rec := env.do(http.MethodPatch, "/data", "")

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "method not allowed", errorMessage(t, rec))
}

func TestTraceID_EchoedOrGenerated(t *testing.T) {
	env := newTestEnv(t, config.Server{})
	env.spots.EXPECT().List(gomock.Any()).Return(nil, nil).Times(2)

	req := httptest.NewRequest(http.MethodGet, "/data", nil)
	req.Header.Set(traceIDHeader, "trace-1")
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	assert.Equal(t, "trace-1", rec.Header().Get(traceIDHeader))

	rec = env.do(http.MethodGet, "/data", "")
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

func TestRateLimit(t *testing.T) {
	env := newTestEnv(t, config.Server{RateLimit: 1, RateBurst: 1})
	env.spots.EXPECT().List(gomock.Any()).Return(nil, nil).Times(1)

	first := env.do(http.MethodGet, "/data", "")
	second := env.do(http.MethodGet, "/data", "")

	assert.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.NotEmpty(t, second.Header().Get("Retry-After"))
	assert.Equal(t, "too many requests", errorMessage(t, second))
}

// ── Error mapping ────────────────────────────────────────────────────────────

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid json", fmt.Errorf("%w: eof", ErrInvalidJSON), http.StatusBadRequest},
		{"field error", &validators.FieldError{Field: "name", Rule: "required"}, http.StatusBadRequest},
		{"not found", fmt.Errorf("x: %w", service.ErrSpotNotFound), http.StatusNotFound},
		{"missing id", service.ErrMissingID, http.StatusBadRequest},
		{"deadline", context.DeadlineExceeded, http.StatusServiceUnavailable},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestClientLimiter_SeparateClients(t *testing.T) {
	l := newClientLimiter(1, 1)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	assert.Equal(t, "10.0.0.1", clientKey(req))

	now := time.Now()
	ok, _ := l.reserve("a", now)
	assert.True(t, ok)
	ok, wait := l.reserve("a", now)
	assert.False(t, ok)
	assert.Greater(t, wait.Nanoseconds(), int64(0))
	ok, _ = l.reserve("b", now)
	assert.True(t, ok)
}
