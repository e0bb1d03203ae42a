package cli

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mverdi/wallplan/internal/model"
)

func TestFormatPositions(t *testing.T) {
	assert.Equal(t, "-", formatPositions(nil))
	assert.Equal(t, "0", formatPositions([]float64{0}))
	assert.Equal(t, "0, 413, 826", formatPositions([]float64{0, 413, 826}))
}

func tuneInput() model.AssemblyInput {
	in := model.BlockSystems[0].Input()
	in.SpacingMm = 413
	return in
}

func TestTuneModelSpacingKeys(t *testing.T) {
	m := newTuneModel(tuneInput())
	start := m.input.SpacingMm

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}})
	m = next.(tuneModel)
	assert.Equal(t, start+1, m.input.SpacingMm)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'H'}})
	m = next.(tuneModel)
	assert.Equal(t, start-9, m.input.SpacingMm)
}

func TestTuneModelCountNeverBelowOne(t *testing.T) {
	in := tuneInput()
	in.Counts.Large = 1
	m := newTuneModel(in)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'-'}})
	m = next.(tuneModel)
	assert.Equal(t, 1, m.input.Counts.Large)
}

func TestTuneModelCursorSelectsCategory(t *testing.T) {
	m := newTuneModel(tuneInput())
	require.Equal(t, 0, m.cursor)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(tuneModel)
	assert.Equal(t, 1, m.cursor)

	before := m.input.Counts.Medium
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'+'}})
	m = next.(tuneModel)
	assert.Equal(t, before+1, m.input.Counts.Medium)
}

func TestTuneModelQuitKeys(t *testing.T) {
	m := newTuneModel(tuneInput())
	for _, key := range []string{"q", "esc", "enter"} {
		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
		switch key {
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		}
		_, cmd := m.Update(msg)
		require.NotNil(t, cmd, "key %q should quit", key)
	}
}

func TestTuneModelViewShowsWarnings(t *testing.T) {
	in := tuneInput()
	in.Counts.Small = 9
	m := newTuneModel(in)

	view := m.View()
	assert.Contains(t, view, "too narrow")
}
