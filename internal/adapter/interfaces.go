// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the study spots server.
//
// The primary abstraction is [ServerAdapter], which decouples the controller
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) of the /data contract.
//
// Non-success responses are mapped by mapHTTPError to a [*ResponseError] that
// unwraps to the sentinel values defined in errors.go, so callers can use
// [errors.Is] for status checks (e.g. [ErrBadRequest] for 400) and
// [ResponseError.Message] for the text shown to the user. Transport failures
// wrap [ErrServerUnavailable].
package adapter

import (
	"context"

	"github.com/MKhiriev/study-spots/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the study spots
// server. Implementations are responsible for serialisation and for mapping
// transport-level errors to the sentinel values defined in this package.
type ServerAdapter interface {
	// List fetches every spot (GET /data). An empty collection is returned
	// as an empty, non-nil slice.
	List(ctx context.Context) ([]models.Spot, error)

	// Create persists a spot without an id (POST /data) and returns the
	// stored record with its id and timestamps.
	Create(ctx context.Context, spot models.Spot) (models.Spot, error)

	// Update replaces the spot identified by spot.ID (PUT /data/{id}).
	// Returns [ErrMissingID] when spot.ID is empty.
	Update(ctx context.Context, spot models.Spot) (models.Spot, error)

	// Delete removes the spot with the given id (DELETE /data/{id}).
	Delete(ctx context.Context, id models.SpotID) (models.DeleteResponse, error)

	// Version returns the server build information (GET /api/version).
	Version(ctx context.Context) (models.VersionResponse, error)
}
