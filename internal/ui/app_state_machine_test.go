package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnterOpensDetailOverCursor(t *testing.T) {
	a := loadedApp(t)
	require.False(t, a.sel.IsOpen())

	a = apply(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, a.sel.IsOpen())
	assert.Equal(t, 1, a.sel.Current().ID)
}

func TestReselectReplacesOpenEntry(t *testing.T) {
	a := loadedApp(t)
	a = apply(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, 1, a.sel.Current().ID)

	// moving while open re-selects, never stacks
	a = apply(t, a, tea.KeyMsg{Type: tea.KeyRight})
	require.True(t, a.sel.IsOpen())
	assert.Equal(t, 2, a.sel.Current().ID)
}

func TestEscDismissesDetail(t *testing.T) {
	a := loadedApp(t)
	a = apply(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, a.sel.IsOpen())

	a = apply(t, a, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, a.sel.IsOpen())
}

func TestKeysInsideDetailDoNotDismiss(t *testing.T) {
	a := loadedApp(t)
	a = apply(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, a.sel.IsOpen())

	// typed characters are contained by the overlay: no dismissal, and the
	// query underneath stays untouched
	a = typeString(t, a, "xyz")
	assert.True(t, a.sel.IsOpen())
	assert.Empty(t, a.input.Value())

	a = apply(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, a.sel.IsOpen())
}

func TestSelectionFollowsFilteredView(t *testing.T) {
	a := loadedApp(t)
	a = typeString(t, a, "pika")
	require.Len(t, a.filtered, 1)

	a = apply(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, a.sel.IsOpen())
	assert.Equal(t, 25, a.sel.Current().ID)
}

func TestSelectionResolvesToCanonicalList(t *testing.T) {
	a := loadedApp(t)
	a = typeString(t, a, "pika")
	a = apply(t, a, tea.KeyMsg{Type: tea.KeyEnter})

	require.True(t, a.sel.IsOpen())
	assert.Same(t, &a.entries[2], a.sel.Current())
}

func TestEscClearsQueryBeforeAnythingElse(t *testing.T) {
	a := loadedApp(t)
	a = typeString(t, a, "grass")
	require.Len(t, a.filtered, 2)

	a = apply(t, a, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Empty(t, a.input.Value())
	assert.Len(t, a.filtered, 3)
}

func TestEnterOnEmptyFilteredIsNoop(t *testing.T) {
	a := loadedApp(t)
	a = typeString(t, a, "mewtwo")
	require.Empty(t, a.filtered)

	a = apply(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, a.sel.IsOpen())
}

func TestQueryChangeRecomputesDerivedView(t *testing.T) {
	a := loadedApp(t)
	require.Len(t, a.filtered, 3)

	a = typeString(t, a, "grass")
	assert.Len(t, a.filtered, 2)

	a = apply(t, a, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Len(t, a.filtered, 2, "\"gras\" still matches both grass entries")

	a = typeString(t, a, "s25")
	assert.Empty(t, a.filtered)
}

func TestLoadFailureClearsLoadingAndKeepsListEmpty(t *testing.T) {
	a := NewApp(nil, false)
	a = apply(t, a, tea.WindowSizeMsg{Width: 80, Height: 30})
	require.True(t, a.loading)

	a = apply(t, a, catalogFailedMsg{err: assert.AnError})
	assert.False(t, a.loading)
	assert.Empty(t, a.entries)
	assert.Empty(t, a.filtered)
}

func TestQuitKey(t *testing.T) {
	a := loadedApp(t)
	model, cmd := a.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	_ = model
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
