// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains user-facing message strings shared by the server
// handlers and the terminal client, so both ends word outcomes the same way.
package app

const (
	// MsgDeleted is the message of a successful DELETE /data/{id} response.
	MsgDeleted = "deleted"

	// MsgInvalidJSON is returned when a request body is not a single JSON
	// object.
	MsgInvalidJSON = "invalid JSON body"

	// MsgSpotSaved is shown by the client after a create or update.
	MsgSpotSaved = "Study spot saved"

	// MsgSpotDeleted is shown by the client after a delete.
	MsgSpotDeleted = "Study spot deleted"

	// MsgServerUnreachable is shown while the list is unavailable.
	MsgServerUnreachable = "The study spots server is not reachable."
)
