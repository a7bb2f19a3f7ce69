// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/study-spots/internal/logger"
	"github.com/MKhiriev/study-spots/internal/store"
	"github.com/MKhiriev/study-spots/internal/utils"
	"github.com/MKhiriev/study-spots/models"
)

type spotService struct {
	repo store.SpotRepository
	ids  *utils.UUIDGenerator
	now  func() time.Time

	logger *logger.Logger
}

// NewSpotService builds the [SpotService] on top of repo.
func NewSpotService(repo store.SpotRepository, logger *logger.Logger) SpotService {
	return &spotService{
		repo:   repo,
		ids:    utils.NewUUIDGenerator(),
		now:    func() time.Time { return time.Now().UTC() },
		logger: logger,
	}
}

func (s *spotService) List(ctx context.Context) ([]models.Spot, error) {
	spots, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list spots: %w", err)
	}
	return spots, nil
}

func (s *spotService) Get(ctx context.Context, id models.SpotID) (models.Spot, error) {
	spot, err := s.repo.Get(ctx, id)
	if err != nil {
		return models.Spot{}, mapStoreError("get spot", err)
	}
	return spot, nil
}

func (s *spotService) Create(ctx context.Context, spot models.Spot) (models.Spot, error) {
	spot = Normalize(spot)

	now := s.now()
	spot.ID = models.SpotID(s.ids.Generate())
	spot.CreatedAt = &now
	spot.UpdatedAt = &now

	created, err := s.repo.Create(ctx, spot)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "spotService.Create").Msg("failed to create spot")
		return models.Spot{}, fmt.Errorf("create spot: %w", err)
	}

	return created, nil
}

func (s *spotService) Update(ctx context.Context, id models.SpotID, spot models.Spot) (models.Spot, error) {
	if id == "" {
		return models.Spot{}, fmt.Errorf("update spot: %w", ErrMissingID)
	}

	spot = Normalize(spot)

	now := s.now()
	spot.ID = id
	spot.UpdatedAt = &now

	updated, err := s.repo.Update(ctx, spot)
	if err != nil {
		return models.Spot{}, mapStoreError("update spot", err)
	}

	return updated, nil
}

func (s *spotService) Delete(ctx context.Context, id models.SpotID) error {
	if id == "" {
		return fmt.Errorf("delete spot: %w", ErrMissingID)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return mapStoreError("delete spot", err)
	}

	return nil
}

// Normalize trims the text fields of spot. Blank optional text becomes nil.
func Normalize(spot models.Spot) models.Spot {
	spot.Name = strings.TrimSpace(spot.Name)
	spot.Address = strings.TrimSpace(spot.Address)
	spot.SpotType = strings.TrimSpace(spot.SpotType)
	spot.Links = strings.TrimSpace(spot.Links)
	spot.Hours = trimOptional(spot.Hours)
	spot.PhoneNumber = trimOptional(spot.PhoneNumber)
	spot.ImageURL = trimOptional(spot.ImageURL)
	return spot
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func mapStoreError(op string, err error) error {
	if errors.Is(err, store.ErrSpotNotFound) {
		return fmt.Errorf("%s: %w", op, ErrSpotNotFound)
	}
	return fmt.Errorf("%s: %w", op, err)
}
