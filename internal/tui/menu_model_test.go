package tui

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMenuModel_Navigation(t *testing.T) {
	m := NewMenuModel(false)
	require.Nil(t, m.Init())

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, m.cursor, "cursor stops at last entry")

	m.Update(keyRunes("k"))
	assert.Equal(t, 1, m.cursor)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, 2, m.Choice())
}

func TestMenuModel_CursorStopsAtTop(t *testing.T) {
	m := NewMenuModel(false)
	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.cursor)
}

func TestMenuModel_DirectChoice(t *testing.T) {
	for _, tc := range []struct {
		key  string
		want int
	}{
		{"1", 1}, {"2", 2}, {"3", 3},
	} {
		m := NewMenuModel(false)
		_, cmd := m.Update(keyRunes(tc.key))
		assert.NotNil(t, cmd)
		assert.Equal(t, tc.want, m.Choice())
	}
}

func TestMenuModel_QuitSelectsExit(t *testing.T) {
	m := NewMenuModel(false)
	_, cmd := m.Update(keyRunes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, ExitChoice, m.Choice())
}

func TestMenuModel_CtrlDSelectsExit(t *testing.T) {
	m := NewMenuModel(false)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	require.NotNil(t, cmd)
	assert.Equal(t, ExitChoice, m.Choice())
}

func TestMenuModel_InputClosed(t *testing.T) {
	t.Run("no choice yet exits", func(t *testing.T) {
		m := NewMenuModel(false)
		_, cmd := m.Update(inputClosedMsg{})
		require.NotNil(t, cmd)
		assert.Equal(t, ExitChoice, m.Choice())
	})

	t.Run("earlier choice is kept", func(t *testing.T) {
		m := NewMenuModel(false)
		m.Update(keyRunes("2"))
		m.Update(inputClosedMsg{})
		assert.Equal(t, 2, m.Choice())
	})
}

func TestRunMenu(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"direct choice", "2", 2},
		{"empty input exits", "", ExitChoice},
		{"unbound keys then end of input", "xyz", ExitChoice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			var out bytes.Buffer
			got, err := RunMenu(ctx, strings.NewReader(tt.input), &out, false)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMenuModel_IgnoresOtherKeys(t *testing.T) {
	m := NewMenuModel(false)
	_, cmd := m.Update(keyRunes("x"))
	assert.Nil(t, cmd)
	assert.Zero(t, m.Choice())

	_, cmd = m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Nil(t, cmd)
}

func TestMenuModel_View(t *testing.T) {
	m := NewMenuModel(false)
	view := m.View()
	assert.Contains(t, view, MenuTitle)
	assert.Contains(t, view, "> 1️⃣  Calculate my smart living energy stats")
	assert.Contains(t, view, "  2️⃣  View smart living tips")

	m.Update(keyRunes("2"))
	assert.Empty(t, m.View(), "view is cleared once a choice is made")
}
