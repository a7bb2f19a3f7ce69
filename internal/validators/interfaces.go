// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks study spot payloads before they reach storage.
package validators

import "context"

// Validator validates obj. When fields are given only those fields
// (by JSON name) are checked.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
