// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/study-spots/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SpotRepository persists study spots.
type SpotRepository interface {
	// List returns every spot ordered by creation time. An empty table
	// yields an empty, non-nil slice.
	List(ctx context.Context) ([]models.Spot, error)

	// Get returns the spot with the given id or [ErrSpotNotFound].
	Get(ctx context.Context, id models.SpotID) (models.Spot, error)

	// Create inserts spot as is. The caller assigns the id and timestamps.
	Create(ctx context.Context, spot models.Spot) (models.Spot, error)

	// Update overwrites every column except id and created_at and returns
	// the stored row. Returns [ErrSpotNotFound] when the id is unknown.
	Update(ctx context.Context, spot models.Spot) (models.Spot, error)

	// Delete removes the spot or returns [ErrSpotNotFound].
	Delete(ctx context.Context, id models.SpotID) error
}

// ErrorClassificator decides whether a driver error is worth retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
