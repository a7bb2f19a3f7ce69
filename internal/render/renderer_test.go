// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package render

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/study-spots/models"
)

func fullSpot() models.Spot {
	created := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	return models.Spot{
		ID:                "42",
		Name:              "Central Library",
		Address:           "1 Main St",
		SpotType:          "Public Library",
		HasWifi:           models.Bool(true),
		HasOutlets:        models.Bool(false),
		HasRestroom:       models.Bool(true),
		AcceptsCreditCard: models.Bool(true),
		ParkingType:       models.ParkingPaid,
		Links:             `["https://a.com","https://b.com"]`,
		Hours:             models.String("9-17"),
		PhoneNumber:       models.String("555-0100"),
		ImageURL:          models.String("https://img.example/lib.png"),
		CreatedAt:         &created,
	}
}

func TestNew_RequiresSanitizer(t *testing.T) {
	r, err := New(nil)
	assert.Nil(t, r)
	assert.ErrorIs(t, err, ErrNoSanitizer)
}

func TestBadges_Order(t *testing.T) {
	assert.Equal(t, []string{"📶 WiFi", "🚻 Restroom", "💳 Credit Card", "🅿️ Paid Parking"}, Badges(fullSpot()))

	all := models.Spot{
		HasWifi:           models.Bool(true),
		HasOutlets:        models.Bool(true),
		HasIndoorSeating:  models.Bool(true),
		HasOutdoorSeating: models.Bool(true),
		HasRestroom:       models.Bool(true),
		AcceptsCreditCard: models.Bool(true),
		ParkingType:       models.ParkingFree,
	}
	assert.Equal(t, []string{
		"📶 WiFi", "🔌 Outlets", "🪑 Indoor Seating", "🌳 Outdoor Seating",
		"🚻 Restroom", "💳 Credit Card", "🅿️ Free Parking",
	}, Badges(all))

	assert.Empty(t, Badges(models.Spot{ParkingType: models.ParkingNone}))
	assert.Empty(t, Badges(models.Spot{}))
}

func TestCard_Derived(t *testing.T) {
	c := NewCard(fullSpot(), Hooks{})

	assert.Equal(t, "public-library", c.TypeSlug)
	assert.True(t, c.HasImage())
	assert.Equal(t, []string{"https://a.com", "https://b.com"}, c.Links)
	assert.Equal(t, "2026-01-15", c.Created)
	assert.Equal(t, MissingValue, c.Updated)
	assert.True(t, c.HasDetails())
}

func TestCard_MalformedLinksOmitted(t *testing.T) {
	spot := fullSpot()
	spot.Links = "not valid json"

	r, err := New(NewHTMLSanitizer())
	require.NoError(t, err)

	c := r.Card(spot, Hooks{})
	assert.Empty(t, c.Links)
	assert.NotContains(t, r.HTML(c), "item-links")
}

func TestCard_ToggleAndLabel(t *testing.T) {
	c := NewCard(fullSpot(), Hooks{})
	assert.False(t, c.Expanded())
	assert.Equal(t, "More Details", c.DetailsLabel())

	c.Toggle()
	assert.True(t, c.Expanded())
	assert.Equal(t, "Less Details", c.DetailsLabel())

	c.Toggle()
	assert.Equal(t, "More Details", c.DetailsLabel())
}

func TestCard_Hooks(t *testing.T) {
	var edited models.Spot
	var deleted string
	c := NewCard(fullSpot(), Hooks{
		Edit:   func(s models.Spot) { edited = s },
		Delete: func(id string) { deleted = id },
	})

	c.Edit()
	c.Delete()
	assert.Equal(t, fullSpot(), edited)
	assert.Equal(t, "42", deleted)

	assert.NotPanics(t, func() {
		empty := NewCard(models.Spot{}, Hooks{})
		empty.Edit()
		empty.Delete()
	})
}

func TestRenderer_HTMLSanitizesUserText(t *testing.T) {
	r, err := New(NewHTMLSanitizer())
	require.NoError(t, err)

	spot := fullSpot()
	spot.Name = `<script>alert(1)</script>Cafe`
	spot.Address = `<img src=x onerror=alert(1)>`
	spot.Links = `["javascript:alert(1)","https://ok.example"]`

	out := r.HTML(r.Card(spot, Hooks{}))

	assert.NotContains(t, out, "<script")
	assert.NotContains(t, out, "<img src=x")
	assert.NotContains(t, out, `href="javascript:`)
	assert.Contains(t, out, "https://ok.example")
	assert.Contains(t, out, `class="item-card"`)
	assert.Contains(t, out, `data-id="42"`)
	assert.Contains(t, out, `data-spottype="public-library"`)
	assert.Contains(t, out, "🅿️ Paid Parking")
	assert.Contains(t, out, "More Details")
}

func TestRenderer_HTMLImageOnlyWhenPresent(t *testing.T) {
	r, err := New(NewHTMLSanitizer())
	require.NoError(t, err)

	spot := fullSpot()
	assert.Contains(t, r.HTML(r.Card(spot, Hooks{})), "item-image")

	spot.ImageURL = nil
	assert.NotContains(t, r.HTML(r.Card(spot, Hooks{})), "item-image")
}

func TestRenderer_EverythingPassesTheSanitizer(t *testing.T) {
	calls := 0
	r, err := New(SanitizerFunc(func(s string) string {
		calls++
		return "[clean]"
	}))
	require.NoError(t, err)

	c := r.Card(fullSpot(), Hooks{})
	assert.Equal(t, "[clean]", r.HTML(c))
	assert.Equal(t, "[clean]", r.Terminal(c))
	assert.Equal(t, 2, calls)
}

func TestRenderer_Page(t *testing.T) {
	r, err := New(NewHTMLSanitizer())
	require.NoError(t, err)

	empty, err := r.Page("Study Spots", nil)
	require.NoError(t, err)
	assert.Contains(t, empty, EmptyMessage)

	page, err := r.Page("Study Spots", r.Cards([]models.Spot{fullSpot(), {ID: "2", Name: "Cafe"}}, Hooks{}))
	require.NoError(t, err)
	assert.NotContains(t, page, EmptyMessage)
	assert.Equal(t, 2, strings.Count(page, `class="item-card"`))
}

func TestRenderer_Terminal(t *testing.T) {
	r, err := New(NewTerminalSanitizer())
	require.NoError(t, err)

	spot := fullSpot()
	spot.Name = "Cafe\x1b[31mRED\x1b[0m\x07"
	c := r.Card(spot, Hooks{})

	out := r.Terminal(c)
	assert.NotContains(t, out, "\x1b")
	assert.NotContains(t, out, "\x07")
	assert.Contains(t, out, "CafeRED")
	assert.Contains(t, out, "📍 Address: 1 Main St")
	assert.Contains(t, out, "[More Details]")
	assert.NotContains(t, out, "⏰ Hours")

	c.Toggle()
	out = r.Terminal(c)
	assert.Contains(t, out, "⏰ Hours: 9-17")
	assert.Contains(t, out, "Links: https://a.com, https://b.com")
	assert.Contains(t, out, "[Less Details]")
	assert.Contains(t, out, "Created: 2026-01-15  Updated: -")
}

func TestTerminalSanitizer_KeepsNewlinesAndTabs(t *testing.T) {
	s := NewTerminalSanitizer()
	assert.Equal(t, "a\nb\tc", s.Sanitize("a\nb\tc\r\x00"))
}

func TestRenderer_SummaryIsOneSanitizedLine(t *testing.T) {
	r, err := New(NewTerminalSanitizer())
	require.NoError(t, err)

	spot := fullSpot()
	spot.Name = "Central\nLibrary\x1b[31m"

	out := r.Summary(r.Card(spot, Hooks{}))

	assert.NotContains(t, out, "\n")
	assert.NotContains(t, out, "\x1b")
	assert.True(t, strings.HasPrefix(out, "Central Library  [Public Library]"))
	assert.Contains(t, out, "📶 WiFi")
}

func TestCard_MalformedSpotIsDegraded(t *testing.T) {
	r, err := New(NewHTMLSanitizer())
	require.NoError(t, err)

	var edited bool
	c := r.Card(models.Spot{ID: "9", Name: "Broken <b>Cafe</b>", Address: "ignored", Malformed: true},
		Hooks{Edit: func(models.Spot) { edited = true }})

	require.True(t, c.Degraded)
	assert.Equal(t, "9", c.ID)
	assert.Empty(t, c.Address)
	assert.Equal(t, MissingValue, c.Created)
	c.Edit()
	assert.True(t, edited)

	nameless := r.Card(models.Spot{Malformed: true}, Hooks{})
	assert.Equal(t, MissingValue, nameless.Name)
}

func TestRenderer_DegradedHTML(t *testing.T) {
	r, err := New(NewHTMLSanitizer())
	require.NoError(t, err)

	out := r.HTML(r.Card(models.Spot{ID: "9", Name: "<script>x</script>Cafe", Malformed: true}, Hooks{}))

	assert.Contains(t, out, `class="item-card"`)
	assert.Contains(t, out, `data-id="9"`)
	assert.Contains(t, out, "Cafe")
	assert.NotContains(t, out, "<script")
	assert.NotContains(t, out, "Address")
	assert.NotContains(t, out, "More Details")
}

func TestRenderer_DegradedTerminal(t *testing.T) {
	r, err := New(NewTerminalSanitizer())
	require.NoError(t, err)

	c := r.Card(models.Spot{ID: "9", Name: "Cafe\x1b[31m", Malformed: true}, Hooks{})
	c.Toggle()

	out := r.Terminal(c)
	assert.Equal(t, "Cafe\n", out)
	assert.Equal(t, "Cafe", r.Summary(c))
}

func TestRenderer_PageKeepsDegradedCards(t *testing.T) {
	r, err := New(NewHTMLSanitizer())
	require.NoError(t, err)

	page, err := r.Page("Study Spots", r.Cards([]models.Spot{fullSpot(), {Malformed: true}}, Hooks{}))
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(page, `class="item-card"`))
	assert.Contains(t, page, "Central Library")
}
