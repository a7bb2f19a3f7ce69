// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParkingType_MarshalUnsetAsNull(t *testing.T) {
	b, err := json.Marshal(Spot{Name: "Library"})
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(b, &raw))

	v, ok := raw["parkingType"]
	assert.True(t, ok, "parkingType must always be present")
	assert.Nil(t, v)
	assert.NotContains(t, raw, "id")
	assert.NotContains(t, raw, "hasWifi")
}

func TestParkingType_UnmarshalNullAndValue(t *testing.T) {
	var s Spot
	require.NoError(t, json.Unmarshal([]byte(`{"parkingType":null}`), &s))
	assert.Equal(t, ParkingUnset, s.ParkingType)

	require.NoError(t, json.Unmarshal([]byte(`{"parkingType":"paid"}`), &s))
	assert.Equal(t, ParkingPaid, s.ParkingType)
}

func TestParkingType_Valid(t *testing.T) {
	for _, p := range []ParkingType{ParkingUnset, ParkingFree, ParkingPaid, ParkingNone} {
		assert.True(t, p.Valid(), string(p))
	}
	assert.False(t, ParkingType("valet").Valid())
}

func TestSpotID_UnmarshalVariants(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want SpotID
	}{
		{name: "string", in: `{"id":"abc-1"}`, want: "abc-1"},
		{name: "number", in: `{"id":42}`, want: "42"},
		{name: "null", in: `{"id":null}`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Spot
			require.NoError(t, json.Unmarshal([]byte(tt.in), &s))
			assert.Equal(t, tt.want, s.ID)
		})
	}
}

func TestSpotID_UnmarshalRejectsObjects(t *testing.T) {
	var s Spot
	assert.Error(t, json.Unmarshal([]byte(`{"id":{"x":1}}`), &s))
}

func TestSpot_IsNew(t *testing.T) {
	assert.True(t, Spot{}.IsNew())
	assert.False(t, Spot{ID: "1"}.IsNew())
}

func TestPointerHelpers(t *testing.T) {
	assert.True(t, BoolValue(Bool(true)))
	assert.False(t, BoolValue(nil))
	assert.Equal(t, "x", StringValue(String("x")))
	assert.Equal(t, "", StringValue(nil))
}
