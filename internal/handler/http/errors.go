// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"

	"github.com/MKhiriev/study-spots/internal/app"
)

var (
	ErrInvalidJSON      = errors.New(app.MsgInvalidJSON)
	ErrTooManyRequests  = errors.New("too many requests")
	ErrRouteNotFound    = errors.New("route not found")
	ErrMethodNotAllowed = errors.New("method not allowed")
)
