// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package controller

import "errors"

var (
	// ErrInvalidTransition is returned when an operation is not allowed in
	// the current state. The state is left unchanged.
	ErrInvalidTransition = errors.New("invalid state transition")
	// ErrMissingID is returned by RequestDelete for a spot without an id.
	ErrMissingID = errors.New("spot id is empty")
)
