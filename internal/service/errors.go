// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrSpotNotFound = errors.New("spot not found")
	ErrMissingID    = errors.New("spot id is required")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
