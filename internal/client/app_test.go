// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/study-spots/internal/adapter"
	"github.com/MKhiriev/study-spots/internal/config"
	"github.com/MKhiriev/study-spots/internal/logger"
	"github.com/MKhiriev/study-spots/internal/mock"
	"github.com/MKhiriev/study-spots/models"
)

type fakeUI struct {
	runs int
	err  error
}

func (f *fakeUI) Run(context.Context) error {
	f.runs++
	return f.err
}

func TestRun_LogsVersionAndRunsUI(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := mock.NewMockServerAdapter(ctrl)
	a.EXPECT().Version(gomock.Any()).Return(models.VersionResponse{Version: "1.0.0"}, nil)
	ui := &fakeUI{}

	app := newApp(a, ui, models.NewAppBuildInfo("1.0.0", "", ""), logger.Nop())

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, 1, ui.runs)
}

func TestRun_VersionFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := mock.NewMockServerAdapter(ctrl)
	a.EXPECT().Version(gomock.Any()).Return(models.VersionResponse{}, adapter.ErrServerUnavailable)
	ui := &fakeUI{}

	app := newApp(a, ui, models.AppBuildInfo{}, logger.Nop())

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, 1, ui.runs)
}

func TestRun_UIError(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := mock.NewMockServerAdapter(ctrl)
	a.EXPECT().Version(gomock.Any()).Return(models.VersionResponse{}, nil)
	uiErr := errors.New("tty closed")

	app := newApp(a, &fakeUI{err: uiErr}, models.AppBuildInfo{}, logger.Nop())

	assert.ErrorIs(t, app.Run(context.Background()), uiErr)
}

func TestNewApp(t *testing.T) {
	cfg := &config.ClientConfig{Adapter: config.Adapter{HTTPAddress: "localhost:8080"}}

	app, err := NewApp(cfg, models.AppBuildInfo{}, logger.Nop())

	require.NoError(t, err)
	assert.NotNil(t, app.ui)
}
