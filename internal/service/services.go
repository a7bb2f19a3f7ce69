// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/study-spots/internal/config"
	"github.com/MKhiriev/study-spots/internal/logger"
	"github.com/MKhiriev/study-spots/internal/store"
	"github.com/MKhiriev/study-spots/models"
)

// Services groups the services used by the HTTP handler.
type Services struct {
	SpotService    SpotService
	AppInfoService AppInfoService
}

// NewServices wires the services on top of repo. The spot service is wrapped
// by [SpotValidationService].
func NewServices(repo store.SpotRepository, cfg config.App, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg, build, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	return &Services{
		SpotService:    NewSpotValidationService().Wrap(NewSpotService(repo, logger)),
		AppInfoService: appInfo,
	}, nil
}
