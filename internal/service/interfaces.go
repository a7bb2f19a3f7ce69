// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business rules of the study spots server:
// identifier and timestamp assignment, input normalisation and validation.
package service

import (
	"context"

	"github.com/MKhiriev/study-spots/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SpotService manages study spots.
type SpotService interface {
	List(ctx context.Context) ([]models.Spot, error)
	Get(ctx context.Context, id models.SpotID) (models.Spot, error)

	// Create assigns a new id and both timestamps, ignoring any id sent by
	// the client.
	Create(ctx context.Context, spot models.Spot) (models.Spot, error)

	// Update replaces the spot with the given id and refreshes updatedAt.
	Update(ctx context.Context, id models.SpotID, spot models.Spot) (models.Spot, error)

	Delete(ctx context.Context, id models.SpotID) error
}

// AppInfoService reports build information of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.VersionResponse
}
