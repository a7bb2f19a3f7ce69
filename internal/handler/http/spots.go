// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/study-spots/internal/app"
	"github.com/MKhiriev/study-spots/internal/utils"
	"github.com/MKhiriev/study-spots/models"
)

const maxBodyBytes = 1 << 20

func (h *Handler) listSpots(w http.ResponseWriter, r *http.Request) {
	spots, err := h.services.SpotService.List(r.Context())
	if err != nil {
		writeError(w, r, "Handler.listSpots", err)
		return
	}
	if spots == nil {
		spots = []models.Spot{}
	}

	_, _ = utils.WriteJSON(w, spots, http.StatusOK)
}

func (h *Handler) getSpot(w http.ResponseWriter, r *http.Request) {
	spot, err := h.services.SpotService.Get(r.Context(), spotID(r))
	if err != nil {
		writeError(w, r, "Handler.getSpot", err)
		return
	}

	_, _ = utils.WriteJSON(w, spot, http.StatusOK)
}

func (h *Handler) createSpot(w http.ResponseWriter, r *http.Request) {
	spot, err := decodeSpot(w, r)
	if err != nil {
		writeError(w, r, "Handler.createSpot", err)
		return
	}

	created, err := h.services.SpotService.Create(r.Context(), spot)
	if err != nil {
		writeError(w, r, "Handler.createSpot", err)
		return
	}

	_, _ = utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateSpot(w http.ResponseWriter, r *http.Request) {
	spot, err := decodeSpot(w, r)
	if err != nil {
		writeError(w, r, "Handler.updateSpot", err)
		return
	}

	updated, err := h.services.SpotService.Update(r.Context(), spotID(r), spot)
	if err != nil {
		writeError(w, r, "Handler.updateSpot", err)
		return
	}

	_, _ = utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteSpot(w http.ResponseWriter, r *http.Request) {
	id := spotID(r)
	if err := h.services.SpotService.Delete(r.Context(), id); err != nil {
		writeError(w, r, "Handler.deleteSpot", err)
		return
	}

	_, _ = utils.WriteJSON(w, models.DeleteResponse{Message: app.MsgDeleted, ID: id}, http.StatusOK)
}

func spotID(r *http.Request) models.SpotID {
	return models.SpotID(chi.URLParam(r, "id"))
}

// decodeSpot reads one spot from the request body. Unknown fields are
// ignored; trailing data is rejected.
func decodeSpot(w http.ResponseWriter, r *http.Request) (models.Spot, error) {
	var spot models.Spot

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&spot); err != nil {
		return models.Spot{}, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	if dec.More() {
		return models.Spot{}, fmt.Errorf("%w: trailing data", ErrInvalidJSON)
	}

	return spot, nil
}
