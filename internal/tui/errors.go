// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "errors"

var (
	// ErrUnexpectedModel is returned when the program ends with a model of
	// an unknown type.
	ErrUnexpectedModel = errors.New("unexpected final model")
	// ErrNoLinkToCopy is reported when the selected spot has no links.
	ErrNoLinkToCopy = errors.New("spot has no links")
	// ErrMissingDependency is returned by New without a controller or renderer.
	ErrMissingDependency = errors.New("tui: controller and renderer are required")
)
