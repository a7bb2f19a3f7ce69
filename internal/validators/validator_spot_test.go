// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/study-spots/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSpot() models.Spot {
	return models.Spot{
		Name:        "Corner Cafe",
		Address:     "1 Main St",
		SpotType:    "Cafe",
		ParkingType: models.ParkingFree,
		Links:       `["https://a.com","https://b.com"]`,
		Hours:       models.String("8-20"),
		PhoneNumber: models.String("+1 555 0100"),
		ImageURL:    models.String("https://img.example.com/cafe.png"),
	}
}

func TestNewSpotValidator(t *testing.T) {
	v := NewSpotValidator()

	require.NotNil(t, v)
	assert.IsType(t, &SpotValidator{}, v)
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewSpotValidator()
	ctx := context.Background()
	spot := validSpot()

	assert.NoError(t, v.Validate(ctx, spot))
	assert.NoError(t, v.Validate(ctx, &spot))
	assert.ErrorIs(t, v.Validate(ctx, (*models.Spot)(nil)), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, "spot"), ErrUnsupportedType)
}

func TestValidateSpot(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.Spot)
		wantMsg string
	}{
		{"valid", func(*models.Spot) {}, ""},
		{"minimal", func(s *models.Spot) {
			*s = models.Spot{Name: "N", Address: "A", SpotType: "T"}
		}, ""},
		{"missing name", func(s *models.Spot) { s.Name = "" }, "name required"},
		{"missing address", func(s *models.Spot) { s.Address = "" }, "address required"},
		{"missing type", func(s *models.Spot) { s.SpotType = "" }, "spotType required"},
		{"name reported first", func(s *models.Spot) { s.Name, s.Address = "", "" }, "name required"},
		{"unknown parking", func(s *models.Spot) { s.ParkingType = "valet" }, "parkingType must be one of: free paid none"},
		{"unset parking", func(s *models.Spot) { s.ParkingType = models.ParkingUnset }, ""},
		{"links not json", func(s *models.Spot) { s.Links = "not valid json" }, "links must be a JSON array of links"},
		{"links object", func(s *models.Spot) { s.Links = `{"a":1}` }, "links must be a JSON array of links"},
		{"links blank element", func(s *models.Spot) { s.Links = `["a","  "]` }, "links must be a JSON array of links"},
		{"links empty array", func(s *models.Spot) { s.Links = `[]` }, ""},
		{"bad image url", func(s *models.Spot) { s.ImageURL = models.String("javascript:alert(1)") }, "imageUrl must be a valid http(s) URL"},
		{"long name", func(s *models.Spot) { s.Name = strings.Repeat("x", 201) }, "name must be at most 200 characters"},
	}

	v := NewSpotValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spot := validSpot()
			tt.mutate(&spot)

			err := v.Validate(context.Background(), spot)
			if tt.wantMsg == "" {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidSpot)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestValidateSpot_FieldScoping(t *testing.T) {
	v := NewSpotValidator()
	spot := validSpot()
	spot.Name = ""
	spot.ParkingType = "valet"

	err := v.Validate(context.Background(), spot, FieldParkingType)
	require.Error(t, err)

	var fe *FieldError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, FieldParkingType, fe.Field)
	assert.Equal(t, "oneof", fe.Rule)

	assert.NoError(t, v.Validate(context.Background(), spot, FieldAddress))
}

func TestValidateSpot_UnknownField(t *testing.T) {
	err := NewSpotValidator().Validate(context.Background(), validSpot(), "colour")

	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestFieldError_DefaultMessage(t *testing.T) {
	err := &FieldError{Field: "hours", Rule: "ascii"}

	assert.Equal(t, "hours is invalid", err.Error())
	assert.ErrorIs(t, err, ErrInvalidSpot)
}
