// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package render

import (
	"strings"
	"time"

	"github.com/gosimple/slug"

	"github.com/MKhiriev/study-spots/internal/links"
	"github.com/MKhiriev/study-spots/models"
)

const (
	DateLayout   = "2006-01-02"
	MissingValue = "-"

	LabelMoreDetails = "More Details"
	LabelLessDetails = "Less Details"

	// EmptyMessage is shown instead of the list when there are no spots.
	EmptyMessage = "No study spots found yet. Be the first to add one!"
)

// Hooks are the per card actions. Nil hooks are ignored.
type Hooks struct {
	Edit   func(spot models.Spot)
	Delete func(id string)
}

// Card is the display model of one spot. Values are raw entity text; the
// renderer escapes and sanitizes them when producing a fragment.
type Card struct {
	ID       string
	Name     string
	Address  string
	SpotType string
	// TypeSlug is the URL-safe form of SpotType used for styling.
	TypeSlug string
	ImageURL string
	Badges   []string
	Hours    string
	Phone    string
	Links    []string
	Created  string
	Updated  string

	// Degraded is set when the spot could not be rendered in full.
	Degraded bool

	spot     models.Spot
	hooks    Hooks
	expanded bool
}

// NewCard derives the display model of spot and binds hooks to it.
func NewCard(spot models.Spot, hooks Hooks) *Card {
	return &Card{
		ID:       spot.ID.String(),
		Name:     spot.Name,
		Address:  spot.Address,
		SpotType: spot.SpotType,
		TypeSlug: slug.Make(spot.SpotType),
		ImageURL: strings.TrimSpace(models.StringValue(spot.ImageURL)),
		Badges:   Badges(spot),
		Hours:    models.StringValue(spot.Hours),
		Phone:    models.StringValue(spot.PhoneNumber),
		Links:    links.Parse(spot.Links),
		Created:  FormatDate(spot.CreatedAt),
		Updated:  FormatDate(spot.UpdatedAt),
		spot:     spot,
		hooks:    hooks,
	}
}

func degradedCard(spot models.Spot, hooks Hooks) *Card {
	name := spot.Name
	if name == "" {
		name = MissingValue
	}

	return &Card{
		ID:       spot.ID.String(),
		Name:     name,
		Created:  MissingValue,
		Updated:  MissingValue,
		Degraded: true,
		spot:     spot,
		hooks:    hooks,
	}
}

// Spot returns the entity the card was built from.
func (c *Card) Spot() models.Spot {
	return c.spot
}

// HasImage reports whether the image block is shown.
func (c *Card) HasImage() bool {
	return c.ImageURL != ""
}

// HasDetails reports whether the details region has any content.
func (c *Card) HasDetails() bool {
	return c.Hours != "" || c.Phone != "" || len(c.Links) > 0
}

// Expanded reports whether the details region is open.
func (c *Card) Expanded() bool {
	return c.expanded
}

// Toggle opens or closes the details region.
func (c *Card) Toggle() {
	c.expanded = !c.expanded
}

// DetailsLabel is the label of the details toggle for the current state.
func (c *Card) DetailsLabel() string {
	if c.expanded {
		return LabelLessDetails
	}
	return LabelMoreDetails
}

// Edit invokes the edit hook with the full entity.
func (c *Card) Edit() {
	if c.hooks.Edit != nil {
		c.hooks.Edit(c.spot)
	}
}

// Delete invokes the delete hook with the entity id.
func (c *Card) Delete() {
	if c.hooks.Delete != nil {
		c.hooks.Delete(c.ID)
	}
}

// Badges returns the feature badges of spot in display order.
func Badges(spot models.Spot) []string {
	var out []string

	features := []struct {
		on    *bool
		label string
	}{
		{spot.HasWifi, "📶 WiFi"},
		{spot.HasOutlets, "🔌 Outlets"},
		{spot.HasIndoorSeating, "🪑 Indoor Seating"},
		{spot.HasOutdoorSeating, "🌳 Outdoor Seating"},
		{spot.HasRestroom, "🚻 Restroom"},
		{spot.AcceptsCreditCard, "💳 Credit Card"},
	}
	for _, f := range features {
		if models.BoolValue(f.on) {
			out = append(out, f.label)
		}
	}

	switch spot.ParkingType {
	case models.ParkingFree:
		out = append(out, "🅿️ Free Parking")
	case models.ParkingPaid:
		out = append(out, "🅿️ Paid Parking")
	}

	return out
}

// FormatDate formats t for display, [MissingValue] when t is nil or zero.
func FormatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return MissingValue
	}
	return t.Format(DateLayout)
}
