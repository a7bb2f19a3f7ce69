// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package render

import "errors"

var (
	// ErrNoSanitizer is returned by [New] when no sanitizer is given.
	ErrNoSanitizer = errors.New("renderer requires a sanitizer")

	ErrTemplateExecution = errors.New("card template execution failed")
)
