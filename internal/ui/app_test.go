package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/lunarok/pokedex-cli/internal/catalog"
)

func rosterFixture() []catalog.Entry {
	return []catalog.Entry{
		{ID: 1, Name: "bulbasaur", Types: []string{"grass", "poison"}, Height: 7, Weight: 69},
		{ID: 2, Name: "ivysaur", Types: []string{"grass", "poison"}, Height: 10, Weight: 130},
		{ID: 25, Name: "pikachu", Types: []string{"electric"}, Height: 4, Weight: 60},
	}
}

func loadedApp(t *testing.T) App {
	t.Helper()
	a := NewApp(nil, false)
	a = apply(t, a, tea.WindowSizeMsg{Width: 80, Height: 30})
	a = apply(t, a, catalogLoadedMsg{entries: rosterFixture()})
	return a
}

func apply(t *testing.T, a App, msg tea.Msg) App {
	t.Helper()
	model, _ := a.Update(msg)
	next, ok := model.(App)
	require.True(t, ok)
	return next
}

func typeString(t *testing.T, a App, s string) App {
	t.Helper()
	for _, r := range s {
		a = apply(t, a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return a
}
