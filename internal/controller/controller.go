// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package controller keeps the study spot list in sync with the server.
//
// A Controller is an explicit state machine over the list states Idle,
// Loading, Ready and Unavailable, with a nested form dialog (create or edit)
// and a pending delete confirmation. Every successful mutation is followed
// by a full refetch; the local list is never patched.
//
// All methods are safe for concurrent use. The internal lock is never held
// while talking to the server.
package controller

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/MKhiriev/study-spots/internal/adapter"
	"github.com/MKhiriev/study-spots/internal/form"
	"github.com/MKhiriev/study-spots/internal/logger"
	"github.com/MKhiriev/study-spots/internal/render"
	"github.com/MKhiriev/study-spots/models"
)

// Controller drives the list, the form dialog and deletes.
type Controller struct {
	mu sync.Mutex

	adapter adapter.ServerAdapter
	session *form.Session

	state State
	spots []models.Spot

	formOpen   bool
	submitting bool

	pendingDelete models.SpotID
	deleting      bool

	alert string

	logger *logger.Logger
}

// New returns a controller in StateIdle with a fresh form session.
func New(serverAdapter adapter.ServerAdapter, logger *logger.Logger) *Controller {
	return &Controller{
		adapter: serverAdapter,
		session: form.NewSession(nil),
		state:   StateIdle,
		logger:  logger,
	}
}

// WithSession runs fn with the form session of the dialog under the
// controller lock. fn must not call back into the controller.
func (c *Controller) WithSession(fn func(s *form.Session)) {
	c.mu.Lock()
	defer c.mu.Unlock()

	fn(c.session)
}

// Load fetches the list. Allowed from Idle, Ready and Unavailable while no
// dialog is open. A failed fetch moves to Unavailable and is returned.
func (c *Controller) Load(ctx context.Context) error {
	c.mu.Lock()
	switch {
	case c.formOpen, c.pendingDelete != "":
		c.mu.Unlock()
		return fmt.Errorf("%w: load while a dialog is open", ErrInvalidTransition)
	case c.state == StateLoading:
		c.mu.Unlock()
		return fmt.Errorf("%w: load while loading", ErrInvalidTransition)
	}
	c.state = StateLoading
	c.mu.Unlock()

	return c.refresh(ctx)
}

// refresh must be called with the state already set to Loading.
func (c *Controller) refresh(ctx context.Context) error {
	spots, err := c.adapter.List(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.logger.Err(err).Str("func", "Controller.refresh").Msg("failed to fetch spots")
		c.state = StateUnavailable
		c.spots = nil
		return fmt.Errorf("fetch spots: %w", err)
	}

	c.state = StateReady
	c.spots = spots
	return nil
}

// OpenCreate opens an empty dialog in create mode.
func (c *Controller) OpenCreate() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.formOpen || c.pendingDelete != "" || (c.state != StateReady && c.state != StateUnavailable) {
		return fmt.Errorf("%w: open create in %s", ErrInvalidTransition, c.state)
	}

	c.session.Reset()
	c.formOpen = true
	return nil
}

// OpenEdit opens the dialog in edit mode filled from spot.
func (c *Controller) OpenEdit(spot models.Spot) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.formOpen || c.pendingDelete != "" || c.state != StateReady {
		return fmt.Errorf("%w: open edit in %s", ErrInvalidTransition, c.state)
	}
	if spot.Malformed {
		return fmt.Errorf("open edit: %w", ErrMissingID)
	}

	c.session.Decode(spot)
	c.formOpen = true
	return nil
}

// Submit sends the form: create when it has no id, update otherwise.
// On success the dialog closes and the list is refetched. On failure the
// dialog stays open with its state intact and the alert is set.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if !c.formOpen || c.submitting {
		c.mu.Unlock()
		return fmt.Errorf("%w: submit without an open form", ErrInvalidTransition)
	}
	spot := c.session.Encode()
	c.submitting = true
	c.mu.Unlock()

	var err error
	if spot.IsNew() {
		_, err = c.adapter.Create(ctx, spot)
	} else {
		_, err = c.adapter.Update(ctx, spot)
	}

	c.mu.Lock()
	c.submitting = false
	if err != nil {
		c.alert = adapter.UserMessage(err)
		c.mu.Unlock()
		c.logger.Err(err).Str("func", "Controller.Submit").Msg("failed to save spot")
		return fmt.Errorf("save spot: %w", err)
	}
	c.session.Reset()
	c.formOpen = false
	c.state = StateLoading
	c.mu.Unlock()

	return c.refresh(ctx)
}

// Cancel closes the dialog and discards the edits.
func (c *Controller) Cancel() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.formOpen || c.submitting {
		return fmt.Errorf("%w: cancel without an open form", ErrInvalidTransition)
	}

	c.session.Reset()
	c.formOpen = false
	return nil
}

// RequestDelete asks for confirmation to delete id.
func (c *Controller) RequestDelete(id models.SpotID) error {
	if id == "" {
		return ErrMissingID
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateReady || c.formOpen || c.pendingDelete != "" {
		return fmt.Errorf("%w: delete in %s", ErrInvalidTransition, c.state)
	}

	c.pendingDelete = id
	return nil
}

// ConfirmDelete deletes the pending spot. Success refetches the list;
// failure sets the alert and leaves the list as it was.
func (c *Controller) ConfirmDelete(ctx context.Context) error {
	c.mu.Lock()
	if c.pendingDelete == "" || c.deleting {
		c.mu.Unlock()
		return fmt.Errorf("%w: no delete pending", ErrInvalidTransition)
	}
	id := c.pendingDelete
	c.deleting = true
	c.mu.Unlock()

	_, err := c.adapter.Delete(ctx, id)

	c.mu.Lock()
	c.deleting = false
	c.pendingDelete = ""
	if err != nil {
		c.alert = adapter.UserMessage(err)
		c.mu.Unlock()
		c.logger.Err(err).Str("func", "Controller.ConfirmDelete").Str("id", id.String()).Msg("failed to delete spot")
		return fmt.Errorf("delete spot: %w", err)
	}
	c.state = StateLoading
	c.mu.Unlock()

	return c.refresh(ctx)
}

// CancelDelete drops the pending confirmation.
func (c *Controller) CancelDelete() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pendingDelete == "" || c.deleting {
		return fmt.Errorf("%w: no delete pending", ErrInvalidTransition)
	}

	c.pendingDelete = ""
	return nil
}

// Alert returns the pending alert, empty when none.
func (c *Controller) Alert() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.alert
}

// DismissAlert clears the pending alert.
func (c *Controller) DismissAlert() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.alert = ""
}

// Snapshot returns a copy of the state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := Snapshot{
		State:         c.state,
		FormOpen:      c.formOpen,
		FormMode:      c.session.Mode(),
		Heading:       c.session.Heading(),
		Submitting:    c.submitting,
		PendingDelete: c.pendingDelete,
		Deleting:      c.deleting,
		Alert:         c.alert,
	}
	if c.state == StateReady {
		snap.Spots = slices.Clone(c.spots)
		if len(c.spots) == 0 {
			snap.Message = render.EmptyMessage
		}
	}
	return snap
}
