// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/study-spots/internal/controller"
	"github.com/MKhiriev/study-spots/internal/form"
	"github.com/MKhiriev/study-spots/internal/render"
)

var termSanitizer = render.NewTerminalSanitizer()

type formField struct {
	name  string
	label string
	kind  form.Kind
	input textinput.Model
}

// formEditor is the dialog view of the controller's form session. Text
// inputs mirror the session; every edit is written back at once.
//
// Focus runs over the visible fields, then the link input, then the links.
type formEditor struct {
	ctrl      *controller.Controller
	fields    []formField
	linkInput textinput.Model
	focus     int
}

func newFormEditor(ctrl *controller.Controller) *formEditor {
	e := &formEditor{ctrl: ctrl}
	for _, c := range form.Schema() {
		if c.Kind == form.KindHidden {
			continue
		}
		f := formField{name: c.Name, label: c.Label, kind: c.Kind}
		if c.Kind == form.KindText {
			f.input = textinput.New()
			f.input.Prompt = ""
			f.input.CharLimit = 512
		}
		e.fields = append(e.fields, f)
	}

	e.linkInput = textinput.New()
	e.linkInput.Prompt = ""
	e.linkInput.Placeholder = "https://..."
	return e
}

// load copies the session values into the inputs and focuses the first one.
func (e *formEditor) load() tea.Cmd {
	e.ctrl.WithSession(func(s *form.Session) {
		for i := range e.fields {
			if e.fields[i].kind == form.KindText {
				e.fields[i].input.SetValue(s.Form().Value(e.fields[i].name))
			}
		}
	})
	e.linkInput.SetValue("")
	return e.setFocus(0)
}

func (e *formEditor) links() []string {
	var out []string
	e.ctrl.WithSession(func(s *form.Session) { out = s.Links() })
	return out
}

func (e *formEditor) focusCount() int {
	return len(e.fields) + 1 + len(e.links())
}

func (e *formEditor) linkInputFocus() int {
	return len(e.fields)
}

func (e *formEditor) setFocus(i int) tea.Cmd {
	n := e.focusCount()
	e.focus = ((i % n) + n) % n

	for j := range e.fields {
		e.fields[j].input.Blur()
	}
	e.linkInput.Blur()

	switch {
	case e.focus < len(e.fields):
		if e.fields[e.focus].kind == form.KindText {
			return e.fields[e.focus].input.Focus()
		}
	case e.focus == e.linkInputFocus():
		return e.linkInput.Focus()
	}
	return nil
}

// update handles one message while the dialog is open and not submitting.
func (e *formEditor) update(msg tea.Msg) tea.Cmd {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch {
		case key.Matches(keyMsg, keys.tab):
			return e.setFocus(e.focus + 1)
		case key.Matches(keyMsg, keys.backtab):
			return e.setFocus(e.focus - 1)
		}
	}

	switch {
	case e.focus < len(e.fields):
		return e.updateField(&e.fields[e.focus], msg)
	case e.focus == e.linkInputFocus():
		if isKey && key.Matches(keyMsg, keys.enter) {
			url := e.linkInput.Value()
			e.ctrl.WithSession(func(s *form.Session) { s.AddLink(url) })
			e.linkInput.SetValue("")
			return nil
		}
		var cmd tea.Cmd
		e.linkInput, cmd = e.linkInput.Update(msg)
		return cmd
	default:
		if isKey && key.Matches(keyMsg, keys.remove) {
			index := e.focus - e.linkInputFocus() - 1
			e.ctrl.WithSession(func(s *form.Session) { _ = s.RemoveLink(index) })
			return e.setFocus(min(e.focus, e.focusCount()-1))
		}
	}
	return nil
}

func (e *formEditor) updateField(f *formField, msg tea.Msg) tea.Cmd {
	if f.kind == form.KindCheckbox {
		if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, keys.toggle) {
			e.ctrl.WithSession(func(s *form.Session) { s.Toggle(f.name) })
		}
		return nil
	}

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	value := f.input.Value()
	e.ctrl.WithSession(func(s *form.Session) { s.Set(f.name, value) })
	return cmd
}

func (e *formEditor) view(heading string, submitting bool) string {
	var b strings.Builder
	var checked map[string]bool
	var imageURL string
	var linkItems []string

	e.ctrl.WithSession(func(s *form.Session) {
		checked = make(map[string]bool, len(e.fields))
		for _, f := range e.fields {
			checked[f.name] = s.Form().Checked(f.name)
		}
		imageURL = strings.TrimSpace(s.Form().Value(form.FieldImageURL))
		linkItems = s.Links()
	})

	for i, f := range e.fields {
		if f.name == form.FieldHasWifi {
			b.WriteString("\nFeatures\n")
		}
		if f.name == form.FieldFreeParking {
			b.WriteString("\nParking\n")
		}

		cursor := "  "
		if i == e.focus {
			cursor = "> "
		}

		if f.kind == form.KindCheckbox {
			mark := "[ ]"
			if checked[f.name] {
				mark = "[x]"
			}
			fmt.Fprintf(&b, "%s%s %s\n", cursor, mark, f.label)
			continue
		}
		fmt.Fprintf(&b, "%s%-10s %s\n", cursor, f.label+":", f.input.View())
		if f.name == form.FieldImageURL && imageURL != "" {
			fmt.Fprintf(&b, "  %-10s 🖼  %s\n", "", fitText(termSanitizer.Sanitize(imageURL), 60))
		}
	}

	b.WriteString("\nLinks\n")
	cursor := "  "
	if e.focus == e.linkInputFocus() {
		cursor = "> "
	}
	fmt.Fprintf(&b, "%s%-10s %s\n", cursor, "Add:", e.linkInput.View())
	for i, l := range linkItems {
		cursor = "  "
		if e.focus == e.linkInputFocus()+1+i {
			cursor = "> "
		}
		fmt.Fprintf(&b, "%s  %d. %s  ✕\n", cursor, i+1, fitText(termSanitizer.Sanitize(l), 60))
	}

	if submitting {
		b.WriteString("\nsaving...")
	}

	return renderPage(heading, b.String(),
		"tab/shift+tab: move  space: toggle  enter: add/remove link  ctrl+s: save  esc: cancel")
}
