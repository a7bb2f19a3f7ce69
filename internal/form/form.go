// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package form

// Kind is the type of input a [Control] represents.
type Kind int

const (
	KindText Kind = iota
	KindCheckbox
	KindHidden
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindCheckbox:
		return "checkbox"
	case KindHidden:
		return "hidden"
	default:
		return "unknown"
	}
}

// Control is one named input of a [Form].
// Text and hidden controls use Value, checkboxes use Checked.
type Control struct {
	Name    string
	Label   string
	Kind    Kind
	Value   string
	Checked bool
}

// Form is an ordered set of uniquely named controls.
// Lookups by name are case-sensitive.
type Form struct {
	controls []*Control
	index    map[string]*Control
	defaults map[string]Control
}

// New builds a form from controls in the given order.
// A control whose name is already taken replaces the earlier one in place.
func New(controls ...Control) *Form {
	f := &Form{
		index:    make(map[string]*Control, len(controls)),
		defaults: make(map[string]Control, len(controls)),
	}
	for _, c := range controls {
		f.defaults[c.Name] = c
		if existing, ok := f.index[c.Name]; ok {
			*existing = c
			continue
		}
		ctrl := c
		f.controls = append(f.controls, &ctrl)
		f.index[c.Name] = &ctrl
	}
	return f
}

// Has reports whether the form has a control called name.
func (f *Form) Has(name string) bool {
	_, ok := f.index[name]
	return ok
}

// Control returns a copy of the control called name.
func (f *Form) Control(name string) (Control, bool) {
	c, ok := f.index[name]
	if !ok {
		return Control{}, false
	}
	return *c, true
}

// Controls returns copies of all controls in form order.
func (f *Form) Controls() []Control {
	out := make([]Control, 0, len(f.controls))
	for _, c := range f.controls {
		out = append(out, *c)
	}
	return out
}

// Value returns the value of a text or hidden control, "" when absent.
func (f *Form) Value(name string) string {
	if c, ok := f.index[name]; ok {
		return c.Value
	}
	return ""
}

// Checked returns the state of a checkbox, false when absent.
func (f *Form) Checked(name string) bool {
	if c, ok := f.index[name]; ok {
		return c.Checked
	}
	return false
}

// SetValue sets the value of the control called name.
// It reports false when there is no such control.
func (f *Form) SetValue(name, value string) bool {
	c, ok := f.index[name]
	if !ok {
		return false
	}
	c.Value = value
	return true
}

// SetChecked sets the checked state of the control called name.
// It reports false when there is no such control.
func (f *Form) SetChecked(name string, checked bool) bool {
	c, ok := f.index[name]
	if !ok {
		return false
	}
	c.Checked = checked
	return true
}

// Reset restores every control to the value and checked state it was built
// with.
func (f *Form) Reset() {
	for _, c := range f.controls {
		d := f.defaults[c.Name]
		c.Value = d.Value
		c.Checked = d.Checked
	}
}
