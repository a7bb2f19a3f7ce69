// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/study-spots/internal/validators"
	"github.com/MKhiriev/study-spots/models"
)

// SpotServiceWrapper decorates a SpotService with additional behaviour.
type SpotServiceWrapper interface {
	Wrap(SpotService) SpotService
}

// SpotValidationService rejects invalid spots before they reach the wrapped
// service. Reads pass through untouched.
type SpotValidationService struct {
	inner     SpotService
	validator validators.Validator
}

func NewSpotValidationService() SpotServiceWrapper {
	return &SpotValidationService{
		validator: validators.NewSpotValidator(),
	}
}

func (v *SpotValidationService) Wrap(inner SpotService) SpotService {
	v.inner = inner
	return v
}

func (v *SpotValidationService) List(ctx context.Context) ([]models.Spot, error) {
	return v.inner.List(ctx)
}

func (v *SpotValidationService) Get(ctx context.Context, id models.SpotID) (models.Spot, error) {
	return v.inner.Get(ctx, id)
}

func (v *SpotValidationService) Create(ctx context.Context, spot models.Spot) (models.Spot, error) {
	if err := v.validator.Validate(ctx, Normalize(spot)); err != nil {
		return models.Spot{}, fmt.Errorf("error during spot validation before saving: %w", err)
	}

	return v.inner.Create(ctx, spot)
}

func (v *SpotValidationService) Update(ctx context.Context, id models.SpotID, spot models.Spot) (models.Spot, error) {
	if err := v.validator.Validate(ctx, Normalize(spot)); err != nil {
		return models.Spot{}, fmt.Errorf("error during spot validation before updating: %w", err)
	}

	return v.inner.Update(ctx, id, spot)
}

func (v *SpotValidationService) Delete(ctx context.Context, id models.SpotID) error {
	return v.inner.Delete(ctx, id)
}
