// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/study-spots/models"
)

// Field names accepted by [SpotValidator.Validate].
const (
	FieldName        = "name"
	FieldAddress     = "address"
	FieldSpotType    = "spotType"
	FieldParkingType = "parkingType"
	FieldLinks       = "links"
	FieldHours       = "hours"
	FieldPhoneNumber = "phoneNumber"
	FieldImageURL    = "imageUrl"
)

const linksRule = "links"

var knownFields = []string{
	FieldName,
	FieldAddress,
	FieldSpotType,
	FieldParkingType,
	FieldLinks,
	FieldHours,
	FieldPhoneNumber,
	FieldImageURL,
}

// spotRules mirrors the JSON shape of models.Spot with validation tags.
// Field order decides which error is reported first.
type spotRules struct {
	Name        string `json:"name" validate:"required,max=200"`
	Address     string `json:"address" validate:"required,max=300"`
	SpotType    string `json:"spotType" validate:"required,max=100"`
	ParkingType string `json:"parkingType" validate:"omitempty,oneof=free paid none"`
	Links       string `json:"links" validate:"omitempty,links"`
	Hours       string `json:"hours" validate:"omitempty,max=200"`
	PhoneNumber string `json:"phoneNumber" validate:"omitempty,max=50"`
	ImageURL    string `json:"imageUrl" validate:"omitempty,http_url"`
}

// SpotValidator validates [models.Spot] values with go-playground/validator.
type SpotValidator struct {
	validate *validator.Validate
}

func NewSpotValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	// registration only fails for an empty tag or a nil func
	_ = v.RegisterValidation(linksRule, validLinks)

	return &SpotValidator{validate: v}
}

func (v *SpotValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Spot:
		return v.validateSpot(ctx, value, fields...)
	case *models.Spot:
		if value == nil {
			return fmt.Errorf("%w: nil spot", ErrUnsupportedType)
		}
		return v.validateSpot(ctx, *value, fields...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *SpotValidator) validateSpot(ctx context.Context, spot models.Spot, fields ...string) error {
	for _, field := range fields {
		if !slices.Contains(knownFields, field) {
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	rules := spotRules{
		Name:        spot.Name,
		Address:     spot.Address,
		SpotType:    spot.SpotType,
		ParkingType: string(spot.ParkingType),
		Links:       spot.Links,
		Hours:       models.StringValue(spot.Hours),
		PhoneNumber: models.StringValue(spot.PhoneNumber),
		ImageURL:    models.StringValue(spot.ImageURL),
	}

	err := v.validate.StructCtx(ctx, rules)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate spot: %w", err)
	}

	for _, fe := range fieldErrs {
		if len(fields) > 0 && !slices.Contains(fields, fe.Field()) {
			continue
		}
		return &FieldError{Field: fe.Field(), Rule: fe.Tag(), Param: fe.Param()}
	}

	return nil
}

// validLinks accepts a JSON array of non-blank strings.
func validLinks(fl validator.FieldLevel) bool {
	var links []string
	if err := json.Unmarshal([]byte(fl.Field().String()), &links); err != nil {
		return false
	}
	for _, link := range links {
		if strings.TrimSpace(link) == "" {
			return false
		}
	}
	return true
}
