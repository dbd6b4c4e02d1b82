package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lunarok/pokedex-cli/internal/catalog"
	"github.com/lunarok/pokedex-cli/internal/ui/components"
)

// --- Messages ---

type catalogLoadedMsg struct{ entries []catalog.Entry }
type catalogFailedMsg struct{ err error }

const gridPageRows = 4

// App is the root TUI model: one load cycle, a live query over the loaded
// list, and a single-selection detail overlay.
type App struct {
	loader  *catalog.Loader
	partial bool

	entries  []catalog.Entry // canonical list, populated once per session
	filtered []catalog.Entry // derived view, recomputed on change
	loading  bool

	input textinput.Model
	spin  spinner.Model
	grid  *components.Grid
	sel   Selection

	width  int
	height int
}

// NewApp creates the root application model.
func NewApp(loader *catalog.Loader, partial bool) App {
	input := textinput.New()
	input.Placeholder = "name, number, or type"
	input.Prompt = "  > "
	input.PromptStyle = AccentStyle
	input.CharLimit = 64
	input.Focus()

	spin := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(AccentStyle),
	)

	return App{
		loader:  loader,
		partial: partial,
		loading: true,
		input:   input,
		spin:    spin,
		grid:    components.NewGrid(1, gridPageRows),
	}
}

func (a App) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, a.spin.Tick, a.loadCmd())
}

// loadCmd runs the session's single load cycle. Nothing re-triggers it:
// query changes, selection changes, and re-renders all operate on the
// already-loaded list.
func (a App) loadCmd() tea.Cmd {
	loader := a.loader
	partial := a.partial
	return func() tea.Msg {
		if partial {
			entries, _, err := loader.LoadPartial()
			if err != nil {
				return catalogFailedMsg{err}
			}
			return catalogLoadedMsg{entries: entries}
		}
		entries, err := loader.Load()
		if err != nil {
			return catalogFailedMsg{err}
		}
		return catalogLoadedMsg{entries: entries}
	}
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.grid.SetColumns(columnsForWidth(msg.Width))
		return a, nil

	case spinner.TickMsg:
		if !a.loading {
			return a, nil
		}
		var cmd tea.Cmd
		a.spin, cmd = a.spin.Update(msg)
		return a, cmd

	case catalogLoadedMsg:
		a.loading = false
		a.entries = msg.entries
		a.refreshFiltered()
		return a, nil

	case catalogFailedMsg:
		// The loader already reported the failure to the log sink. The
		// grid stays empty with no error banner.
		a.loading = false
		return a, nil

	case tea.KeyMsg:
		if isQuit(msg) {
			return a, tea.Quit
		}

		if a.sel.IsOpen() {
			return a.updateDetail(msg)
		}

		switch {
		case isBack(msg):
			if a.input.Value() != "" {
				a.input.SetValue("")
				a.refreshFiltered()
			}
			return a, nil
		case isEnter(msg):
			a.selectCurrent()
			return a, nil
		case isUp(msg):
			a.grid.Up()
			return a, nil
		case isDown(msg):
			a.grid.Down()
			return a, nil
		case isLeft(msg):
			a.grid.Left()
			return a, nil
		case isRight(msg):
			a.grid.Right()
			return a, nil
		}

		before := a.input.Value()
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		if a.input.Value() != before {
			a.refreshFiltered()
		}
		return a, cmd
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// updateDetail handles keys while the overlay is open. Keys acting inside
// the overlay never fall through to dismissal; only esc closes it.
func (a App) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case isBack(msg):
		a.sel.Dismiss()
	case isLeft(msg):
		a.grid.Left()
		a.selectCurrent()
	case isRight(msg):
		a.grid.Right()
		a.selectCurrent()
	case isUp(msg):
		a.grid.Up()
		a.selectCurrent()
	case isDown(msg):
		a.grid.Down()
		a.selectCurrent()
	}
	return a, nil
}

// refreshFiltered recomputes the derived view from the canonical list and
// the current query.
func (a *App) refreshFiltered() {
	a.filtered = catalog.Filter(a.entries, a.input.Value())
	a.grid.SetCount(len(a.filtered))
}

// selectCurrent opens the detail overlay over the entry under the cursor,
// resolving the filtered row back to its canonical-list element.
func (a *App) selectCurrent() {
	idx := a.grid.Selected()
	if idx < 0 || idx >= len(a.filtered) {
		return
	}
	id := a.filtered[idx].ID
	for i := range a.entries {
		if a.entries[i].ID == id {
			a.sel.Select(&a.entries[i])
			return
		}
	}
}

func (a App) View() string {
	banner := centerBlock(RenderBanner(), a.width)

	var b strings.Builder
	b.WriteString(banner)
	b.WriteString("\n")
	b.WriteString(a.input.View())
	b.WriteString("\n")

	if query := a.input.Value(); query != "" && !a.loading {
		b.WriteString(MutedStyle.Render("  " + countLabel(len(a.filtered))))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	var content string
	switch {
	case a.loading:
		content = a.spin.View() + MutedStyle.Render(" Loading Pokédex...")
	case a.sel.IsOpen():
		content = a.renderDetail()
	case len(a.filtered) == 0 && a.input.Value() != "":
		content = components.Box(MutedStyle.Render("No Pokémon match."), a.width)
	default:
		content = a.renderGrid()
	}
	b.WriteString(centerBlock(content, a.width))

	b.WriteString("\n\n")
	b.WriteString(components.StatusBar(a.statusHints(), a.width))
	return b.String()
}

func (a App) statusHints() []string {
	if a.sel.IsOpen() {
		return []string{
			components.Hint("←/→", "Prev/Next"),
			components.Hint("esc", "Close"),
			components.Hint("ctrl+c", "Quit"),
		}
	}
	return []string{
		components.Hint("↑/↓/←/→", "Move"),
		components.Hint("enter", "Details"),
		components.Hint("esc", "Clear"),
		components.Hint("ctrl+c", "Quit"),
	}
}

func countLabel(n int) string {
	if n == 1 {
		return "1 match"
	}
	return fmt.Sprintf("%d matches", n)
}

func centerBlock(s string, width int) string {
	if width <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	maxWidth := 0
	for _, line := range lines {
		if w := lipgloss.Width(line); w > maxWidth {
			maxWidth = w
		}
	}
	if maxWidth <= 0 || maxWidth >= width {
		return s
	}
	pad := (width - maxWidth) / 2
	if pad <= 0 {
		return s
	}
	prefix := strings.Repeat(" ", pad)
	for i := range lines {
		if lines[i] != "" {
			lines[i] = prefix + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}
