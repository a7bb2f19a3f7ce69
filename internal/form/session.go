// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package form

import (
	"github.com/MKhiriev/study-spots/internal/links"
	"github.com/MKhiriev/study-spots/models"
)

// Mode tells whether a session creates a new spot or edits an existing one.
type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "create"
}

const (
	HeadingCreate = "📍 Add Study Spot"
	HeadingEdit   = "📍 Edit Study Spot"
)

// Session is the state of one open dialog: the study spot form and the link
// list bound to its hidden links field.
//
// A Session is not safe for concurrent use.
type Session struct {
	form   *Form
	links  *links.List
	mode   Mode
	render links.ChangeFunc
}

// NewSession creates a session in create mode. render, when not nil, is
// called with the current links after every link list mutation.
func NewSession(render links.ChangeFunc) *Session {
	s := &Session{
		form:   NewSpotForm(),
		render: render,
	}
	s.links = links.New(s.commitLinks)
	return s
}

func (s *Session) commitLinks(items []string, serialized string) {
	s.form.SetValue(FieldLinks, serialized)
	if s.render != nil {
		s.render(items, serialized)
	}
}

// OnRender replaces the link render hook.
func (s *Session) OnRender(render links.ChangeFunc) {
	s.render = render
}

// Reset clears the form and the link list and switches back to create mode.
func (s *Session) Reset() {
	s.form.Reset()
	s.links.Reset()
	s.mode = ModeCreate
}

// Encode returns the spot described by the current form state.
func (s *Session) Encode() models.Spot {
	return Encode(s.form)
}

// Decode loads spot into the form and switches to edit mode.
func (s *Session) Decode(spot models.Spot) {
	s.form.Reset()
	Decode(s.form, spot, s.links)
	s.mode = ModeEdit
}

// AddLink appends url to the link list. Blank input is ignored.
func (s *Session) AddLink(url string) {
	s.links.Add(url)
}

// RemoveLink removes the link at index.
func (s *Session) RemoveLink(index int) error {
	return s.links.RemoveAt(index)
}

// Links returns a copy of the current links.
func (s *Session) Links() []string {
	return s.links.Items()
}

// Set sets a text control. Parking toggles and the links field can't be set
// this way and report false.
func (s *Session) Set(name, value string) bool {
	if name == FieldLinks {
		return false
	}
	c, ok := s.form.Control(name)
	if !ok || c.Kind == KindCheckbox {
		return false
	}
	return s.form.SetValue(name, value)
}

// Toggle flips a checkbox. Checking a parking toggle unchecks the other two.
func (s *Session) Toggle(name string) bool {
	c, ok := s.form.Control(name)
	if !ok || c.Kind != KindCheckbox {
		return false
	}

	checked := !c.Checked
	if checked && IsParkingToggle(name) {
		for _, t := range ParkingToggles {
			s.form.SetChecked(t, false)
		}
	}
	return s.form.SetChecked(name, checked)
}

// Form returns the underlying form.
func (s *Session) Form() *Form {
	return s.form
}

// Mode returns the current mode.
func (s *Session) Mode() Mode {
	return s.mode
}

// Heading returns the dialog heading for the current mode.
func (s *Session) Heading() string {
	if s.mode == ModeEdit {
		return HeadingEdit
	}
	return HeadingCreate
}
