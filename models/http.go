// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ErrorResponse is the JSON body the remote endpoint returns on failure.
type ErrorResponse struct {
	// Error is a human-readable message suitable for showing to the user
	// (e.g. "name required").
	Error string `json:"error"`
}

// DeleteResponse is the confirmation payload of DELETE /data/{id}.
type DeleteResponse struct {
	Message string `json:"message"`
	ID      SpotID `json:"id"`
}

// VersionResponse is returned by GET /api/version.
type VersionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}
