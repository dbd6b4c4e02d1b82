package ui

import "github.com/charmbracelet/lipgloss"

// --- Theme Colors ---

var (
	ColorPrimary    = lipgloss.Color("#cc4f4f") // pokédex red
	ColorSecondary  = lipgloss.Color("#3f6f86") // steel blue
	ColorAccent     = lipgloss.Color("#d9a441") // warm yellow
	ColorBackground = lipgloss.Color("#16161d") // dark
	ColorText       = lipgloss.Color("#d7d9da") // main text
	ColorMuted      = lipgloss.Color("#9ba0bf") // muted text
	ColorBorder     = lipgloss.Color("#2b3a45") // border
)

// --- Reusable Styles ---

var (
	SelectedStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	AccentStyle = lipgloss.NewStyle().
			Foreground(ColorAccent)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	CardSelectedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorPrimary).
				Padding(0, 1)

	badgeBase = lipgloss.NewStyle().
			Foreground(ColorBackground).
			Bold(true).
			Padding(0, 1)
)

// typeColors maps a type label to its badge color. Unknown labels fall back
// to defaultTypeColor.
var typeColors = map[string]lipgloss.Color{
	"normal":   lipgloss.Color("#a8a878"),
	"fire":     lipgloss.Color("#f08030"),
	"water":    lipgloss.Color("#6890f0"),
	"electric": lipgloss.Color("#f8d030"),
	"grass":    lipgloss.Color("#78c850"),
	"ice":      lipgloss.Color("#98d8d8"),
	"fighting": lipgloss.Color("#c03028"),
	"poison":   lipgloss.Color("#a040a0"),
	"ground":   lipgloss.Color("#e0c068"),
	"flying":   lipgloss.Color("#a890f0"),
	"psychic":  lipgloss.Color("#f85888"),
	"bug":      lipgloss.Color("#a8b820"),
	"rock":     lipgloss.Color("#b8a038"),
	"ghost":    lipgloss.Color("#705898"),
	"dragon":   lipgloss.Color("#7038f8"),
	"dark":     lipgloss.Color("#705848"),
	"steel":    lipgloss.Color("#b8b8d0"),
	"fairy":    lipgloss.Color("#ee99ac"),
}

var defaultTypeColor = lipgloss.Color("#888ba4")

// TypeColor resolves the badge color for a type label.
func TypeColor(name string) lipgloss.Color {
	if c, ok := typeColors[name]; ok {
		return c
	}
	return defaultTypeColor
}

// TypeBadge renders one colored type badge.
func TypeBadge(name string) string {
	return badgeBase.Background(TypeColor(name)).Render(name)
}
