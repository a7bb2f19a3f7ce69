// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package controller

import (
	"github.com/MKhiriev/study-spots/internal/form"
	"github.com/MKhiriev/study-spots/models"
)

// State is the list state of the controller.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateReady
	StateUnavailable
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// ConfirmDeleteMessage is the question asked before a delete.
const ConfirmDeleteMessage = "Are you sure you want to delete this study spot?"

// Snapshot is a consistent copy of the controller state for a view.
type Snapshot struct {
	State State
	// Spots is the last fetched list. Empty outside StateReady.
	Spots []models.Spot
	// Message is the empty-state text when Ready with no spots.
	Message string

	FormOpen bool
	FormMode form.Mode
	Heading  string
	// Submitting is true while a create or update is in flight.
	Submitting bool

	// PendingDelete is the id awaiting confirmation, empty when none.
	PendingDelete models.SpotID
	Deleting      bool

	// Alert is the pending user-visible alert, empty when none.
	Alert string
}

// Ready reports whether the list is usable.
func (s Snapshot) Ready() bool {
	return s.State == StateReady
}

// CanCreate reports whether the create affordance should be offered.
func (s Snapshot) CanCreate() bool {
	return s.State == StateReady && !s.FormOpen && s.PendingDelete == ""
}
