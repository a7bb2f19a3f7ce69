// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/study-spots/internal/logger"
	"github.com/MKhiriev/study-spots/internal/service"
	"github.com/MKhiriev/study-spots/internal/store"
	"github.com/MKhiriev/study-spots/internal/utils"
	"github.com/MKhiriev/study-spots/internal/validators"
)

// errorStatusMap lists the sentinels with a dedicated status. Anything else
// is a 500.
var errorStatusMap = map[error]int{
	ErrInvalidJSON:      http.StatusBadRequest,
	ErrTooManyRequests:  http.StatusTooManyRequests,
	ErrRouteNotFound:    http.StatusNotFound,
	ErrMethodNotAllowed: http.StatusMethodNotAllowed,

	validators.ErrInvalidSpot:     http.StatusBadRequest,
	validators.ErrUnsupportedType: http.StatusBadRequest,
	service.ErrMissingID:          http.StatusBadRequest,
	service.ErrSpotNotFound:       http.StatusNotFound,

	store.ErrSpotNotFound:     http.StatusNotFound,
	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,

	context.DeadlineExceeded: http.StatusServiceUnavailable,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the text sent to the client. Validation errors
// keep their field message; server-side failures never leak internals.
func messageFromError(err error, status int) string {
	var fieldErr *validators.FieldError
	if errors.As(err, &fieldErr) {
		return fieldErr.Error()
	}

	switch {
	case status >= http.StatusInternalServerError:
		return http.StatusText(status)
	case errors.Is(err, service.ErrSpotNotFound), errors.Is(err, store.ErrSpotNotFound):
		return service.ErrSpotNotFound.Error()
	case errors.Is(err, service.ErrMissingID):
		return service.ErrMissingID.Error()
	case errors.Is(err, ErrInvalidJSON):
		return ErrInvalidJSON.Error()
	case errors.Is(err, ErrTooManyRequests):
		return ErrTooManyRequests.Error()
	case errors.Is(err, ErrRouteNotFound):
		return ErrRouteNotFound.Error()
	case errors.Is(err, ErrMethodNotAllowed):
		return ErrMethodNotAllowed.Error()
	default:
		return http.StatusText(status)
	}
}

// writeError maps err to a status and writes the JSON error body.
func writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	status := statusFromError(err)

	event := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")

	_, _ = utils.WriteError(w, messageFromError(err, status), status)
}
