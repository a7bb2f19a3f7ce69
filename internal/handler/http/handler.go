// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/study-spots/internal/config"
	"github.com/MKhiriev/study-spots/internal/logger"
	"github.com/MKhiriev/study-spots/internal/metrics"
	"github.com/MKhiriev/study-spots/internal/render"
	"github.com/MKhiriev/study-spots/internal/service"
)

// Handler serves the study spots HTTP API.
type Handler struct {
	services *service.Services
	renderer *render.Renderer
	metrics  *metrics.Metrics
	limiter  *clientLimiter
	cfg      config.Server

	logger *logger.Logger
}

// NewHandler builds a Handler. renderer must use an HTML sanitizer; m may
// be nil. A zero cfg.RateLimit disables rate limiting.
func NewHandler(services *service.Services, renderer *render.Renderer, m *metrics.Metrics, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")

	h := &Handler{
		services: services,
		renderer: renderer,
		metrics:  m,
		cfg:      cfg,
		logger:   logger,
	}
	if cfg.RateLimit > 0 {
		h.limiter = newClientLimiter(cfg.RateLimit, cfg.RateBurst)
	}

	return h
}
