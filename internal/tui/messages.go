// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

type loadedMsg struct {
	err error
}

type submittedMsg struct {
	err error
}

type deletedMsg struct {
	err error
}

type copiedMsg struct {
	what string
	err  error
}
