// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveHTTP_CountsByLabels(t *testing.T) {
	m := New()

	m.ObserveHTTP("/data", http.MethodGet, http.StatusOK, 10*time.Millisecond)
	m.ObserveHTTP("/data", http.MethodGet, http.StatusOK, 20*time.Millisecond)
	m.ObserveHTTP("/data", http.MethodPost, http.StatusBadRequest, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("/data", "GET", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("/data", "POST", "400")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.httpLatency))
}

func TestObserveCache(t *testing.T) {
	m := New()

	m.ObserveCache(CacheHit)
	m.ObserveCache(CacheMiss)
	m.ObserveCache(CacheHit)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.cacheEvents.WithLabelValues(CacheHit)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.cacheEvents.WithLabelValues(CacheMiss)))
}

func TestHandler_ServesTextFormat(t *testing.T) {
	m := New()
	m.ObserveHTTP("/data", http.MethodGet, http.StatusOK, time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "study_spots_http_requests_total")
	assert.Contains(t, string(body), "go_goroutines")
}

func TestNilMetrics_IsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveHTTP("/", http.MethodGet, http.StatusOK, time.Millisecond)
		m.ObserveCache(CacheHit)
	})
	assert.Nil(t, m.Registry())

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNew_IndependentRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		_ = New()
		_ = New()
	})
}
