package ui

import (
	"strings"

	"github.com/lunarok/pokedex-cli/internal/catalog"
	"github.com/lunarok/pokedex-cli/internal/ui/components"
)

// renderDetail draws the overlay for the selected entry: identifier, name,
// type badges, and the size metrics converted to display units.
func (a App) renderDetail() string {
	e := a.sel.Current()
	if e == nil {
		return ""
	}

	name := components.SanitizeOneLine(e.Name)
	title := catalog.FormatID(e.ID) + " " + name

	artwork := e.ImageURL
	if artwork == "" {
		artwork = "-"
	}

	var b strings.Builder
	b.WriteString(renderBadges(e.Types, components.BoxContentWidth(a.width)))
	b.WriteString("\n\n")
	b.WriteString(components.InfoRow("Height", catalog.FormatMetric(e.Height)+" m"))
	b.WriteString("\n")
	b.WriteString(components.InfoRow("Weight", catalog.FormatMetric(e.Weight)+" kg"))
	b.WriteString("\n")
	b.WriteString(components.InfoRow("Artwork", artwork))

	return components.TitledBox(title, b.String(), a.width)
}
