// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"net/http"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/study-spots/internal/adapter"
	"github.com/MKhiriev/study-spots/internal/controller"
	"github.com/MKhiriev/study-spots/internal/form"
	"github.com/MKhiriev/study-spots/internal/logger"
	"github.com/MKhiriev/study-spots/internal/mock"
	"github.com/MKhiriev/study-spots/internal/render"
	"github.com/MKhiriev/study-spots/models"
)

type testUI struct {
	m       model
	adapter *mock.MockServerAdapter
	ctrl    *controller.Controller
	copied  []string
}

func newTestUI(t *testing.T) *testUI {
	t.Helper()

	ctrl := gomock.NewController(t)
	a := mock.NewMockServerAdapter(ctrl)
	c := controller.New(a, logger.Nop())

	r, err := render.New(render.NewTerminalSanitizer())
	require.NoError(t, err)

	ui := &testUI{adapter: a, ctrl: c}
	ui.m = newModel(context.Background(), c, r, models.NewAppBuildInfo("1.0.0", "2026-01-01", "abc123"), logger.Nop())
	ui.m.writeClipboard = func(s string) error {
		ui.copied = append(ui.copied, s)
		return nil
	}
	return ui
}

func (ui *testUI) load(t *testing.T, spots []models.Spot, err error) {
	t.Helper()

	ui.adapter.EXPECT().List(gomock.Any()).Return(spots, err)
	ui.send(ui.m.cmdLoad()())
}

// send delivers msg and returns the resulting command without running it.
func (ui *testUI) send(msg tea.Msg) tea.Cmd {
	next, cmd := ui.m.Update(msg)
	ui.m = next.(model)
	return cmd
}

func (ui *testUI) press(k tea.KeyMsg) tea.Cmd {
	return ui.send(k)
}

func (ui *testUI) typeText(s string) {
	ui.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keySpace = tea.KeyMsg{Type: tea.KeySpace}
	keySave  = tea.KeyMsg{Type: tea.KeyCtrlS}
)

func (ui *testUI) focusField(name string) {
	for i, f := range ui.m.editor.fields {
		if f.name == name {
			ui.m.editor.setFocus(i)
			return
		}
	}
}

func library() models.Spot {
	return models.Spot{
		ID:       "7",
		Name:     "Library",
		Address:  "5 Elm",
		SpotType: "Library",
		HasWifi:  models.Bool(true),
		Links:    `["https://lib.example"]`,
		Hours:    models.String("9-17"),
	}
}

// ── List ─────────────────────────────────────────────────────────────────────

func TestModel_EmptyList(t *testing.T) {
	ui := newTestUI(t)
	ui.load(t, nil, nil)

	view := ui.m.View()
	assert.Contains(t, view, "● ready")
	assert.Contains(t, view, render.EmptyMessage)
	assert.Contains(t, view, "n: new")
}

func TestModel_UnavailableHidesContent(t *testing.T) {
	ui := newTestUI(t)
	ui.load(t, nil, adapter.ErrServerUnavailable)

	view := ui.m.View()
	assert.Contains(t, view, "not ready")
	assert.NotContains(t, view, "n: new")

	ui.press(runes("n"))
	assert.False(t, ui.ctrl.Snapshot().FormOpen)
}

func TestModel_ReloadLeavesUnavailable(t *testing.T) {
	ui := newTestUI(t)
	ui.load(t, nil, adapter.ErrServerUnavailable)

	cmd := ui.press(runes("r"))
	require.NotNil(t, cmd)
	ui.adapter.EXPECT().List(gomock.Any()).Return([]models.Spot{library()}, nil)
	ui.send(cmd())

	assert.Contains(t, ui.m.View(), "Library")
	assert.Equal(t, controller.StateReady, ui.ctrl.Snapshot().State)
}

func TestModel_ToggleDetails(t *testing.T) {
	ui := newTestUI(t)
	ui.load(t, []models.Spot{library()}, nil)
	assert.Contains(t, ui.m.View(), render.LabelMoreDetails)

	ui.press(keyEnter)

	view := ui.m.View()
	assert.Contains(t, view, render.LabelLessDetails)
	assert.Contains(t, view, "9-17")
}

func TestModel_CopyAddressAndLink(t *testing.T) {
	ui := newTestUI(t)
	ui.load(t, []models.Spot{library()}, nil)

	ui.send(ui.press(runes("c"))())
	ui.send(ui.press(runes("l"))())

	assert.Equal(t, []string{"5 Elm", "https://lib.example"}, ui.copied)
	assert.Contains(t, ui.m.View(), "Copied link")
}

func TestModel_BuildInfo(t *testing.T) {
	ui := newTestUI(t)
	ui.load(t, nil, nil)

	ui.press(runes("v"))
	view := ui.m.View()
	assert.Contains(t, view, "1.0.0")
	assert.Contains(t, view, "abc123")

	ui.press(keyEsc)
	assert.NotContains(t, ui.m.View(), "abc123")
}

// ── Form ─────────────────────────────────────────────────────────────────────

func TestModel_CreateFlow(t *testing.T) {
	ui := newTestUI(t)
	ui.load(t, nil, nil)

	ui.press(runes("n"))
	require.True(t, ui.ctrl.Snapshot().FormOpen)
	assert.Contains(t, ui.m.View(), form.HeadingCreate)

	ui.typeText("Cafe")
	ui.focusField(form.FieldFreeParking)
	ui.press(keySpace)

	ui.m.editor.setFocus(ui.m.editor.linkInputFocus())
	ui.typeText("https://a.com")
	ui.press(keyEnter)
	ui.typeText("https://b.com")
	ui.press(keyEnter)
	assert.Contains(t, ui.m.View(), "https://b.com")

	ui.adapter.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, spot models.Spot) (models.Spot, error) {
			assert.Equal(t, "Cafe", spot.Name)
			assert.Equal(t, models.ParkingFree, spot.ParkingType)
			assert.Equal(t, `["https://a.com","https://b.com"]`, spot.Links)
			spot.ID = "1"
			return spot, nil
		})
	ui.adapter.EXPECT().List(gomock.Any()).Return([]models.Spot{{ID: "1", Name: "Cafe"}}, nil)

	cmd := ui.press(keySave)
	require.NotNil(t, cmd)
	ui.send(cmd())

	assert.False(t, ui.ctrl.Snapshot().FormOpen)
	view := ui.m.View()
	assert.Contains(t, view, "Study spot saved")
	assert.Contains(t, view, "Cafe")
}

func TestModel_RemoveLink(t *testing.T) {
	ui := newTestUI(t)
	ui.load(t, nil, nil)
	ui.press(runes("n"))

	ui.m.editor.setFocus(ui.m.editor.linkInputFocus())
	ui.typeText("https://a.com")
	ui.press(keyEnter)
	ui.typeText("https://b.com")
	ui.press(keyEnter)

	ui.press(keyTab)
	ui.press(keyEnter)

	ui.ctrl.WithSession(func(s *form.Session) {
		assert.Equal(t, []string{"https://b.com"}, s.Links())
	})
}

func TestModel_SubmitFailureShowsAlert(t *testing.T) {
	ui := newTestUI(t)
	ui.load(t, nil, nil)
	ui.press(runes("n"))
	ui.focusField(form.FieldAddress)
	ui.typeText("1 Main")

	ui.adapter.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(models.Spot{}, &adapter.ResponseError{StatusCode: http.StatusBadRequest, ServerMessage: "name required"})
	ui.send(ui.press(keySave)())

	view := ui.m.View()
	assert.Contains(t, view, "name required")
	assert.True(t, ui.ctrl.Snapshot().FormOpen)

	ui.press(keyEnter)
	assert.Empty(t, ui.ctrl.Alert())
	ui.ctrl.WithSession(func(s *form.Session) {
		assert.Equal(t, "1 Main", s.Form().Value(form.FieldAddress))
	})
}

func TestModel_EditMalformedLinks(t *testing.T) {
	spot := library()
	spot.Links = "not valid json"

	ui := newTestUI(t)
	ui.load(t, []models.Spot{spot}, nil)

	ui.press(runes("e"))

	snap := ui.ctrl.Snapshot()
	require.True(t, snap.FormOpen)
	assert.Empty(t, snap.Alert)
	assert.Equal(t, "Library", ui.m.editor.fields[0].input.Value())
	assert.Contains(t, ui.m.View(), form.HeadingEdit)
	ui.ctrl.WithSession(func(s *form.Session) {
		assert.Empty(t, s.Links())
	})

	ui.press(keyEsc)
	assert.False(t, ui.ctrl.Snapshot().FormOpen)
}

// ── Delete ───────────────────────────────────────────────────────────────────

func TestModel_DeleteConfirm(t *testing.T) {
	ui := newTestUI(t)
	ui.load(t, []models.Spot{library()}, nil)

	ui.press(runes("d"))
	assert.Contains(t, ui.m.View(), controller.ConfirmDeleteMessage)

	ui.adapter.EXPECT().Delete(gomock.Any(), models.SpotID("7")).Return(models.DeleteResponse{Message: "deleted", ID: "7"}, nil)
	ui.adapter.EXPECT().List(gomock.Any()).Return(nil, nil)
	ui.send(ui.press(runes("y"))())

	view := ui.m.View()
	assert.NotContains(t, view, controller.ConfirmDeleteMessage)
	assert.Contains(t, view, render.EmptyMessage)
}

func TestModel_DeleteCancel(t *testing.T) {
	ui := newTestUI(t)
	ui.load(t, []models.Spot{library()}, nil)

	ui.press(runes("d"))
	ui.press(runes("n"))

	assert.Empty(t, ui.ctrl.Snapshot().PendingDelete)
	assert.NotContains(t, ui.m.View(), controller.ConfirmDeleteMessage)
}

func TestNew_RequiresDependencies(t *testing.T) {
	_, err := New(nil, nil, models.AppBuildInfo{}, logger.Nop())

	assert.ErrorIs(t, err, ErrMissingDependency)
}
