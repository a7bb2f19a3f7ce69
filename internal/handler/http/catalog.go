// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/study-spots/internal/render"
)

const catalogTitle = "Study spots"

// catalog serves the read-only HTML page. Cards have no hooks: the page
// has no edit or delete controls.
func (h *Handler) catalog(w http.ResponseWriter, r *http.Request) {
	spots, err := h.services.SpotService.List(r.Context())
	if err != nil {
		writeError(w, r, "Handler.catalog", err)
		return
	}

	page, err := h.renderer.Page(catalogTitle, h.renderer.Cards(spots, render.Hooks{}))
	if err != nil {
		writeError(w, r, "Handler.catalog", fmt.Errorf("render catalog: %w", err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(page))
}
