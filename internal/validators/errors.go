// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrInvalidSpot is the sentinel every [*FieldError] unwraps to.
	ErrInvalidSpot = errors.New("invalid spot")
)

// FieldError reports the first rule a spot field broke. Error returns a
// message fit for the API client, e.g. "name required".
type FieldError struct {
	// Field is the JSON name of the field.
	Field string
	// Rule is the validator tag that failed.
	Rule string
	// Param is the rule parameter, if any.
	Param string
}

func (e *FieldError) Error() string {
	switch e.Rule {
	case "required":
		return e.Field + " required"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", e.Field, e.Param)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", e.Field, e.Param)
	case "http_url":
		return e.Field + " must be a valid http(s) URL"
	case linksRule:
		return e.Field + " must be a JSON array of links"
	default:
		return e.Field + " is invalid"
	}
}

func (e *FieldError) Unwrap() error {
	return ErrInvalidSpot
}
