// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/study-spots/internal/controller"
	"github.com/MKhiriev/study-spots/models"
)

func renderConfirm(deleting bool) string {
	content := controller.ConfirmDeleteMessage + "\n\n"
	if deleting {
		content += "deleting..."
	} else {
		content += "y yes    n no"
	}
	return overlayBoxStyle.Render(content)
}

func renderAlert(message string) string {
	content := errorStyle.Render("Error") + "\n\n" + message + "\n\nenter / esc close"
	return overlayBoxStyle.Render(content)
}

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString("Application: study-spots\n")
	b.WriteString("Version: ")
	b.WriteString(valueOrNA(info.BuildVersion()))
	b.WriteString("\n")
	b.WriteString("Date: ")
	b.WriteString(valueOrNA(info.BuildDate()))
	b.WriteString("\n")
	b.WriteString("Commit: ")
	b.WriteString(valueOrNA(info.BuildCommit()))

	return renderPage("ABOUT", b.String(), "esc: back")
}
