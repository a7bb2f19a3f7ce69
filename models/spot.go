// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Spot is the study spot entity record exchanged with the remote endpoint.
//
// Pointer fields are optional: nil means "not provided" and is omitted from
// the JSON body, which lets a form without a given control produce a partial
// record. ParkingType is always transmitted, its zero value as JSON null.
type Spot struct {
	// ID is the opaque identifier assigned by the server.
	// Empty for records that were never persisted.
	ID SpotID `json:"id,omitempty"`

	// Name, Address and SpotType are required by the remote contract.
	Name     string `json:"name"`
	Address  string `json:"address"`
	SpotType string `json:"spotType"`

	HasWifi           *bool `json:"hasWifi,omitempty"`
	HasOutlets        *bool `json:"hasOutlets,omitempty"`
	HasIndoorSeating  *bool `json:"hasIndoorSeating,omitempty"`
	HasOutdoorSeating *bool `json:"hasOutdoorSeating,omitempty"`
	HasRestroom       *bool `json:"hasRestroom,omitempty"`
	AcceptsCreditCard *bool `json:"acceptsCreditCard,omitempty"`

	// ParkingType is derived from the three exclusive parking toggles of the
	// form and is never stored as separate booleans.
	ParkingType ParkingType `json:"parkingType"`

	// Links is the serialized JSON array of link URLs.
	Links string `json:"links,omitempty"`

	Hours       *string `json:"hours,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
	ImageURL    *string `json:"imageUrl,omitempty"`

	// CreatedAt and UpdatedAt are assigned by the server.
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`

	// Malformed marks a list element that was not a JSON object. Such a
	// record carries no data and is shown as a placeholder.
	Malformed bool `json:"-"`
}

// IsNew reports whether the spot has not been persisted yet.
func (s Spot) IsNew() bool {
	return s.ID == ""
}

// TableName returns the name of the database table associated with Spot.
func (s Spot) TableName() string {
	return "spots"
}

// SpotID is an opaque record identifier. Servers may send it either as a
// JSON string or as a JSON number; both are kept as text.
type SpotID string

// String returns the identifier text.
func (id SpotID) String() string {
	return string(id)
}

// UnmarshalJSON accepts string, number and null identifiers.
func (id *SpotID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}

	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("decode spot id: %w", err)
		}
		*id = SpotID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("decode spot id: %w", err)
	}
	if _, err := strconv.ParseFloat(n.String(), 64); err != nil {
		return fmt.Errorf("decode spot id: %w", err)
	}
	*id = SpotID(n.String())
	return nil
}

// ParkingType is the single fact behind the free/paid/no parking toggles.
type ParkingType string

const (
	// ParkingUnset means no parking toggle was selected. Marshals to null.
	ParkingUnset ParkingType = ""
	ParkingFree  ParkingType = "free"
	ParkingPaid  ParkingType = "paid"
	ParkingNone  ParkingType = "none"
)

// Valid reports whether p is one of the known parking types, including
// [ParkingUnset].
func (p ParkingType) Valid() bool {
	switch p {
	case ParkingUnset, ParkingFree, ParkingPaid, ParkingNone:
		return true
	default:
		return false
	}
}

// MarshalJSON encodes [ParkingUnset] as null and every other value as a string.
func (p ParkingType) MarshalJSON() ([]byte, error) {
	if p == ParkingUnset {
		return []byte("null"), nil
	}
	return json.Marshal(string(p))
}

// UnmarshalJSON decodes null into [ParkingUnset].
func (p *ParkingType) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*p = ParkingUnset
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("decode parking type: %w", err)
	}
	*p = ParkingType(s)
	return nil
}

// Bool returns a pointer to v. Used to fill optional boolean fields.
func Bool(v bool) *bool {
	return &v
}

// String returns a pointer to v. Used to fill optional text fields.
func String(v string) *string {
	return &v
}

// BoolValue dereferences b, treating nil as false.
func BoolValue(b *bool) bool {
	return b != nil && *b
}

// StringValue dereferences s, treating nil as the empty string.
func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
