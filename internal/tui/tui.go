// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front-end of the study spots client.
//
// It shows the list with a ready indicator, the create and edit dialog with
// its link editor, and the delete confirmation and alert overlays. All list
// and form state lives in a [controller.Controller]; network calls run as
// bubbletea commands so the screen keeps responding.
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/study-spots/internal/controller"
	"github.com/MKhiriev/study-spots/internal/logger"
	"github.com/MKhiriev/study-spots/internal/render"
	"github.com/MKhiriev/study-spots/models"
)

// TUI runs the interactive program.
type TUI struct {
	ctrl      *controller.Controller
	renderer  *render.Renderer
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

// New builds the terminal UI on top of ctrl. renderer must use a terminal
// sanitizer.
func New(ctrl *controller.Controller, renderer *render.Renderer, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if ctrl == nil || renderer == nil {
		return nil, ErrMissingDependency
	}
	return &TUI{
		ctrl:      ctrl,
		renderer:  renderer,
		buildInfo: buildInfo,
		logger:    logger,
	}, nil
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	m := newModel(ctx, t.ctrl, t.renderer, t.buildInfo, t.logger)

	finalModel, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	if _, ok := finalModel.(model); !ok {
		return ErrUnexpectedModel
	}
	return nil
}
