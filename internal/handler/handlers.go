// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"fmt"

	"github.com/MKhiriev/study-spots/internal/config"
	"github.com/MKhiriev/study-spots/internal/handler/http"
	"github.com/MKhiriev/study-spots/internal/logger"
	"github.com/MKhiriev/study-spots/internal/metrics"
	"github.com/MKhiriev/study-spots/internal/render"
	"github.com/MKhiriev/study-spots/internal/service"
)

// Handlers groups the transport handlers of the server.
type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the HTTP handler with an HTML-sanitizing renderer for
// the catalog page.
func NewHandlers(services *service.Services, m *metrics.Metrics, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	renderer, err := render.New(render.NewHTMLSanitizer())
	if err != nil {
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	return &Handlers{
		HTTP: http.NewHandler(services, renderer, m, cfg, logger),
	}, nil
}
