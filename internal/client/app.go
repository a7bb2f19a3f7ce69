// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/study-spots/internal/adapter"
	"github.com/MKhiriev/study-spots/internal/config"
	"github.com/MKhiriev/study-spots/internal/controller"
	"github.com/MKhiriev/study-spots/internal/logger"
	"github.com/MKhiriev/study-spots/internal/render"
	"github.com/MKhiriev/study-spots/internal/tui"
	"github.com/MKhiriev/study-spots/models"
)

const versionCheckTimeout = 3 * time.Second

// App is the terminal client.
type App struct {
	adapter   adapter.ServerAdapter
	ui        UI
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

// NewApp builds the client from cfg: an HTTP adapter, a controller and the
// terminal UI with a terminal-sanitizing renderer.
func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, logger)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	renderer, err := render.New(render.NewTerminalSanitizer())
	if err != nil {
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	ui, err := tui.New(controller.New(serverAdapter, logger), renderer, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("create ui: %w", err)
	}

	return newApp(serverAdapter, ui, buildInfo, logger), nil
}

func newApp(serverAdapter adapter.ServerAdapter, ui UI, buildInfo models.AppBuildInfo, logger *logger.Logger) *App {
	return &App{
		adapter:   serverAdapter,
		ui:        ui,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

// Run logs the server version and runs the UI until the user quits.
func (a *App) Run(ctx context.Context) error {
	a.logServerVersion(ctx)

	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("client run: %w", err)
	}
	return nil
}

// logServerVersion is informational only; an unreachable server is
// reported by the list view.
func (a *App) logServerVersion(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, versionCheckTimeout)
	defer cancel()

	v, err := a.adapter.Version(ctx)
	if err != nil {
		a.logger.Warn().Err(err).Str("func", "App.logServerVersion").Msg("server version unknown")
		return
	}

	a.logger.Info().
		Str("server_version", v.Version).
		Str("server_commit", v.Commit).
		Str("client_version", a.buildInfo.BuildVersion()).
		Msg("connected to server")
}
