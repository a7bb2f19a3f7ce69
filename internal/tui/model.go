// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/study-spots/internal/app"
	"github.com/MKhiriev/study-spots/internal/controller"
	"github.com/MKhiriev/study-spots/internal/logger"
	"github.com/MKhiriev/study-spots/internal/render"
	"github.com/MKhiriev/study-spots/models"
)

// model is the root bubbletea model. All state that outlives a frame lives
// in the controller; the model keeps only view state.
type model struct {
	ctx       context.Context
	ctrl      *controller.Controller
	renderer  *render.Renderer
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	cards    []*render.Card
	expanded map[string]bool
	idx      int

	editor  *formEditor
	spinner spinner.Model
	busy    bool
	status  string

	showBuildInfo bool
	quitting      bool

	writeClipboard func(string) error
}

func newModel(ctx context.Context, ctrl *controller.Controller, renderer *render.Renderer, buildInfo models.AppBuildInfo, logger *logger.Logger) model {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return model{
		ctx:            ctx,
		ctrl:           ctrl,
		renderer:       renderer,
		buildInfo:      buildInfo,
		logger:         logger,
		expanded:       make(map[string]bool),
		editor:         newFormEditor(ctrl),
		spinner:        s,
		busy:           true,
		writeClipboard: clipboard.WriteAll,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoad())
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case loadedMsg:
		m.busy = false
		m.syncCards()
		return m, nil

	case submittedMsg:
		m.busy = false
		if msg.err == nil {
			m.status = app.MsgSpotSaved
		}
		m.syncCards()
		return m, nil

	case deletedMsg:
		m.busy = false
		if msg.err == nil {
			m.status = app.MsgSpotDeleted
		}
		m.syncCards()
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.status = "Copy failed: " + msg.err.Error()
		} else {
			m.status = "Copied " + msg.what
		}
		return m, nil
	}

	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey && key.Matches(keyMsg, keys.forceQuit) {
		m.quitting = true
		return m, tea.Quit
	}

	snap := m.ctrl.Snapshot()

	if !isKey {
		if snap.FormOpen && !m.busy {
			return m, m.editor.update(msg)
		}
		return m, nil
	}

	if m.showBuildInfo {
		if key.Matches(keyMsg, keys.esc, keys.buildInfo) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	if snap.Alert != "" {
		if key.Matches(keyMsg, keys.enter, keys.esc) {
			m.ctrl.DismissAlert()
		}
		return m, nil
	}

	if m.busy {
		return m, nil
	}

	switch {
	case snap.PendingDelete != "":
		return m.updateConfirm(keyMsg)
	case snap.FormOpen:
		return m.updateForm(keyMsg)
	default:
		return m.updateList(keyMsg, snap)
	}
}

func (m model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.busy = true
		return m, m.cmdConfirmDelete()
	case key.Matches(msg, keys.no):
		m.logError("model.updateConfirm", m.ctrl.CancelDelete())
	}
	return m, nil
}

func (m model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.logError("model.updateForm", m.ctrl.Cancel())
		return m, nil
	case key.Matches(msg, keys.submit):
		m.busy = true
		return m, m.cmdSubmit()
	}
	return m, m.editor.update(msg)
}

func (m model) updateList(msg tea.KeyMsg, snap controller.Snapshot) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, keys.buildInfo):
		m.showBuildInfo = true
	case key.Matches(msg, keys.reload):
		m.busy = true
		m.status = ""
		return m, m.cmdLoad()
	}

	if !snap.Ready() {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.cards)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.newItem):
		if snap.CanCreate() && m.ctrl.OpenCreate() == nil {
			m.status = ""
			return m, m.editor.load()
		}
	}

	card, ok := m.current()
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.enter):
		card.Toggle()
		m.expanded[card.ID] = card.Expanded()
	case key.Matches(msg, keys.edit):
		card.Edit()
		if m.ctrl.Snapshot().FormOpen {
			m.status = ""
			return m, m.editor.load()
		}
	case key.Matches(msg, keys.delete):
		card.Delete()
	case key.Matches(msg, keys.copyAddr):
		return m, m.cmdCopy("address", card.Address)
	case key.Matches(msg, keys.copyLink):
		if len(card.Links) == 0 {
			m.status = "Copy failed: " + ErrNoLinkToCopy.Error()
			return m, nil
		}
		return m, m.cmdCopy("link", card.Links[0])
	}
	return m, nil
}

func (m model) current() (*render.Card, bool) {
	if m.idx < 0 || m.idx >= len(m.cards) {
		return nil, false
	}
	return m.cards[m.idx], true
}

// syncCards rebuilds the cards from the controller list, keeping the
// selection in range and the expanded state per spot.
func (m *model) syncCards() {
	snap := m.ctrl.Snapshot()
	m.cards = m.renderer.Cards(snap.Spots, m.hooks())
	for _, c := range m.cards {
		if m.expanded[c.ID] {
			c.Toggle()
		}
	}

	if m.idx >= len(m.cards) {
		m.idx = len(m.cards) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *model) hooks() render.Hooks {
	ctrl := m.ctrl
	log := m.logger
	return render.Hooks{
		Edit: func(spot models.Spot) {
			if err := ctrl.OpenEdit(spot); err != nil {
				log.Err(err).Str("func", "model.hooks").Msg("open edit")
			}
		},
		Delete: func(id string) {
			if err := ctrl.RequestDelete(models.SpotID(id)); err != nil {
				log.Err(err).Str("func", "model.hooks").Msg("request delete")
			}
		},
	}
}

func (m model) logError(funcName string, err error) {
	if err != nil && !errors.Is(err, context.Canceled) {
		m.logger.Err(err).Str("func", funcName).Msg("controller rejected action")
	}
}

func (m model) cmdLoad() tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		return loadedMsg{err: ctrl.Load(ctx)}
	}
}

func (m model) cmdSubmit() tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		return submittedMsg{err: ctrl.Submit(ctx)}
	}
}

func (m model) cmdConfirmDelete() tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		return deletedMsg{err: ctrl.ConfirmDelete(ctx)}
	}
}

func (m model) cmdCopy(what, text string) tea.Cmd {
	write := m.writeClipboard
	return func() tea.Msg {
		return copiedMsg{what: what, err: write(text)}
	}
}
