// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package render turns study spot records into display fragments.
//
// A [Renderer] always passes its output through the [Sanitizer] it was
// constructed with. It produces HTML cards for the catalog page and plain
// text cards for the terminal client. A spot that fails to render degrades to
// a minimal card instead of breaking the list.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/MKhiriev/study-spots/models"
)

// Renderer builds sanitized fragments from cards.
type Renderer struct {
	sanitizer Sanitizer
	card      *template.Template
	page      *template.Template
}

// New returns a renderer that sanitizes every fragment with sanitizer.
func New(sanitizer Sanitizer) (*Renderer, error) {
	if sanitizer == nil {
		return nil, ErrNoSanitizer
	}

	return &Renderer{
		sanitizer: sanitizer,
		card:      template.Must(template.New("card").Parse(cardTemplate)),
		page:      template.Must(template.New("page").Parse(pageTemplate)),
	}, nil
}

// Card builds the display model of spot. It never panics: a malformed spot
// or one that can't be mapped yields a degraded card with its id and name
// only.
func (r *Renderer) Card(spot models.Spot, hooks Hooks) (card *Card) {
	if spot.Malformed {
		return degradedCard(spot, hooks)
	}
	defer func() {
		if rec := recover(); rec != nil {
			card = degradedCard(spot, hooks)
		}
	}()
	return NewCard(spot, hooks)
}

// Cards builds one card per spot, keeping the order of spots.
func (r *Renderer) Cards(spots []models.Spot, hooks Hooks) []*Card {
	cards := make([]*Card, 0, len(spots))
	for _, s := range spots {
		cards = append(cards, r.Card(s, hooks))
	}
	return cards
}

// HTML renders the card markup and sanitizes it.
func (r *Renderer) HTML(card *Card) string {
	if card.Degraded {
		return r.sanitizer.Sanitize(minimalHTML(card))
	}

	out, err := r.executeCard(card)
	if err != nil {
		out = minimalHTML(card)
	}
	return r.sanitizer.Sanitize(out)
}

func (r *Renderer) executeCard(card *Card) (out string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %v", ErrTemplateExecution, rec)
		}
	}()

	var buf bytes.Buffer
	if err = r.card.Execute(&buf, card); err != nil {
		return "", fmt.Errorf("%w: %w", ErrTemplateExecution, err)
	}
	return buf.String(), nil
}

// Page renders the catalog page: every card, or the empty message when
// there are none. Each card is sanitized on its own.
func (r *Renderer) Page(title string, cards []*Card) (string, error) {
	fragments := make([]template.HTML, 0, len(cards))
	for _, c := range cards {
		// already sanitized
		fragments = append(fragments, template.HTML(r.HTML(c)))
	}

	var buf bytes.Buffer
	err := r.page.Execute(&buf, struct {
		Title string
		Empty string
		Cards []template.HTML
	}{Title: title, Empty: EmptyMessage, Cards: fragments})
	if err != nil {
		return "", fmt.Errorf("execute page template: %w", err)
	}
	return buf.String(), nil
}

// Terminal renders the card as plain text and sanitizes it.
// Styling is left to the caller.
func (r *Renderer) Terminal(card *Card) string {
	var b strings.Builder

	b.WriteString(card.Name)
	if card.SpotType != "" {
		fmt.Fprintf(&b, "  [%s]", card.SpotType)
	}
	b.WriteByte('\n')

	if card.Degraded {
		return r.sanitizer.Sanitize(b.String())
	}

	if card.HasImage() {
		fmt.Fprintf(&b, "🖼  %s\n", card.ImageURL)
	}
	fmt.Fprintf(&b, "📍 Address: %s\n", card.Address)
	if len(card.Badges) > 0 {
		b.WriteString(strings.Join(card.Badges, "  "))
		b.WriteByte('\n')
	}

	if card.Expanded() {
		if card.Hours != "" {
			fmt.Fprintf(&b, "⏰ Hours: %s\n", card.Hours)
		}
		if card.Phone != "" {
			fmt.Fprintf(&b, "📞 Phone: %s\n", card.Phone)
		}
		if len(card.Links) > 0 {
			fmt.Fprintf(&b, "Links: %s\n", strings.Join(card.Links, ", "))
		}
	}

	fmt.Fprintf(&b, "[%s]\n", card.DetailsLabel())
	fmt.Fprintf(&b, "Created: %s  Updated: %s", card.Created, card.Updated)

	return r.sanitizer.Sanitize(b.String())
}

// Summary renders the card as one sanitized line: name, type and badges.
func (r *Renderer) Summary(card *Card) string {
	parts := []string{card.Name}
	if card.SpotType != "" {
		parts = append(parts, "["+card.SpotType+"]")
	}
	parts = append(parts, card.Badges...)

	line := strings.Join(parts, "  ")
	line = strings.NewReplacer("\n", " ", "\t", " ").Replace(line)
	return r.sanitizer.Sanitize(line)
}

func minimalHTML(card *Card) string {
	return fmt.Sprintf(`<div class="item-card" data-id="%s"><h3>%s</h3></div>`,
		template.HTMLEscapeString(card.ID), template.HTMLEscapeString(card.Name))
}
