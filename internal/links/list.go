// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package links implements the link sub-list editor state: an ordered list of
// URL strings that is embedded into a single form field as a JSON array.
//
// Every mutation of a [List] goes through one commit step that refreshes the
// serialized value and notifies the change hook together, so the hidden form
// field and the rendered list can never drift apart.
package links

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ChangeFunc is called after every mutation with a copy of the current items
// and their serialized form.
type ChangeFunc func(items []string, serialized string)

// List is the ordered collection of links owned by one form session.
// The zero value is an empty list without a change hook.
//
// List is not safe for concurrent use.
type List struct {
	items      []string
	serialized string
	onChange   ChangeFunc
}

// New creates an empty list. onChange may be nil.
func New(onChange ChangeFunc) *List {
	l := &List{onChange: onChange}
	l.serialized = encode(nil)
	return l
}

// OnChange replaces the change hook.
func (l *List) OnChange(fn ChangeFunc) {
	l.onChange = fn
}

// Add trims url and appends it. Empty or whitespace-only input is ignored and
// does not trigger the change hook.
func (l *List) Add(url string) {
	url = strings.TrimSpace(url)
	if url == "" {
		return
	}

	l.items = append(l.items, url)
	l.commit()
}

// RemoveAt removes the element at index. It returns [ErrIndexOutOfRange] and
// leaves the list untouched when index is outside [0, Len()).
func (l *List) RemoveAt(index int) error {
	if index < 0 || index >= len(l.items) {
		return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, index, len(l.items))
	}

	l.items = append(l.items[:index], l.items[index+1:]...)
	l.commit()
	return nil
}

// Reset clears the list.
func (l *List) Reset() {
	l.items = nil
	l.commit()
}

// Deserialize replaces the contents with the links parsed from input.
// Malformed input results in an empty list.
func (l *List) Deserialize(input string) {
	l.items = Parse(input)
	l.commit()
}

// Serialize returns the JSON array encoding of the current items.
func (l *List) Serialize() string {
	if l.serialized == "" {
		return encode(l.items)
	}
	return l.serialized
}

// Items returns a copy of the current items.
func (l *List) Items() []string {
	out := make([]string, len(l.items))
	copy(out, l.items)
	return out
}

// Len returns the number of links.
func (l *List) Len() int {
	return len(l.items)
}

func (l *List) commit() {
	l.serialized = encode(l.items)
	if l.onChange != nil {
		l.onChange(l.Items(), l.serialized)
	}
}

// Parse decodes a serialized link list. Empty input, invalid JSON and JSON
// that is not an array of strings all yield an empty, non-nil slice.
// Elements are trimmed and empty ones are dropped.
func Parse(input string) []string {
	input = strings.TrimSpace(input)
	if input == "" {
		return []string{}
	}

	var raw []string
	if err := json.Unmarshal([]byte(input), &raw); err != nil {
		return []string{}
	}

	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func encode(items []string) string {
	if len(items) == 0 {
		return "[]"
	}

	b, err := json.Marshal(items)
	if err != nil {
		// []string always marshals
		return "[]"
	}
	return string(b)
}
