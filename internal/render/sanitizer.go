// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package render

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"
	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer strips unsafe constructs from a rendered fragment.
type Sanitizer interface {
	Sanitize(fragment string) string
}

// SanitizerFunc adapts a plain function to [Sanitizer].
type SanitizerFunc func(fragment string) string

// Sanitize calls f(fragment).
func (f SanitizerFunc) Sanitize(fragment string) string {
	return f(fragment)
}

// NewHTMLSanitizer returns a sanitizer for the HTML card markup built on the
// bluemonday user generated content policy. Besides the UGC defaults it keeps
// class and data-* attributes and the button element the card markup uses.
func NewHTMLSanitizer() Sanitizer {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").Globally()
	p.AllowDataAttributes()
	p.AllowElements("button")
	p.AllowAttrs("type").Matching(bluemonday.SpaceSeparatedTokens).OnElements("button")
	p.AddTargetBlankToFullyQualifiedLinks(true)
	return p
}

// NewTerminalSanitizer returns a sanitizer for terminal output. It removes
// ANSI escape sequences and every control character except newline and tab,
// so user text can't move the cursor or restyle the screen.
func NewTerminalSanitizer() Sanitizer {
	return SanitizerFunc(sanitizeTerminal)
}

func sanitizeTerminal(fragment string) string {
	stripped := ansi.Strip(fragment)
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, stripped)
}
