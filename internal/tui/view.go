// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/study-spots/internal/app"
	"github.com/MKhiriev/study-spots/internal/controller"
)

func (m model) View() string {
	if m.quitting {
		return ""
	}
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	snap := m.ctrl.Snapshot()

	var body string
	switch {
	case snap.FormOpen:
		body = m.editor.view(snap.Heading, snap.Submitting || m.busy)
	default:
		body = m.listView(snap)
	}

	switch {
	case snap.Alert != "":
		body += "\n\n" + renderAlert(snap.Alert)
	case snap.PendingDelete != "":
		body += "\n\n" + renderConfirm(snap.Deleting || m.busy)
	}

	return appStyle.Render(body)
}

func (m model) indicator(snap controller.Snapshot) string {
	switch snap.State {
	case controller.StateReady:
		return readyStyle.Render("● ready")
	case controller.StateUnavailable:
		return notReadyStyle.Render("○ not ready")
	default:
		return m.spinner.View() + " loading"
	}
}

func (m model) listView(snap controller.Snapshot) string {
	var b strings.Builder

	b.WriteString(m.indicator(snap))
	b.WriteString("\n\n")

	hotKeys := "r: reload  v: about  q: quit"

	switch snap.State {
	case controller.StateUnavailable:
		b.WriteString(errorStyle.Render(app.MsgServerUnreachable))
		b.WriteString("\nPress r to try again.")
	case controller.StateReady:
		hotKeys = "↑/↓: select  enter: details  n: new  e: edit  d: delete  c: copy address  l: copy link  " + hotKeys
		if len(m.cards) == 0 {
			b.WriteString(snap.Message)
			break
		}
		for i, c := range m.cards {
			line := "  " + fitText(m.renderer.Summary(c), 80)
			if i == m.idx {
				line = selectedStyle.Render("> " + fitText(m.renderer.Summary(c), 80))
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
		if card, ok := m.current(); ok {
			b.WriteString("\n")
			b.WriteString(cardStyle.Render(m.renderer.Terminal(card)))
		}
	}

	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(m.status)
	}

	return renderPage("📚 Study Spots", b.String(), hotKeys)
}
