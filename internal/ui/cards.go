package ui

import (
	"net/url"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lunarok/pokedex-cli/internal/catalog"
	"github.com/lunarok/pokedex-cli/internal/ui/components"
)

const (
	cardInnerWidth = 22
	cardOuterWidth = cardInnerWidth + 4 // border + padding
)

func columnsForWidth(width int) int {
	if width <= 0 {
		return 1
	}
	cols := (width - 2) / cardOuterWidth
	if cols < 1 {
		cols = 1
	}
	if cols > 4 {
		cols = 4
	}
	return cols
}

func (a App) renderGrid() string {
	if len(a.filtered) == 0 {
		return components.Box("", a.width)
	}

	start, end := a.grid.VisibleRange()
	cols := a.grid.Columns

	var rows []string
	for rowStart := start; rowStart < end; rowStart += cols {
		rowEnd := rowStart + cols
		if rowEnd > end {
			rowEnd = end
		}
		cells := make([]string, 0, cols)
		for i := rowStart; i < rowEnd; i++ {
			cells = append(cells, renderCard(a.filtered[i], a.grid.IsSelected(i)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}

func renderCard(e catalog.Entry, selected bool) string {
	header := AccentStyle.Render(catalog.FormatID(e.ID)) + " " +
		NormalStyle.Render(components.ClampTextWidth(e.Name, cardInnerWidth-5))

	badges := renderBadges(e.Types, cardInnerWidth)

	caption := MutedStyle.Render(components.ClampTextWidth(imageCaption(e), cardInnerWidth))

	style := CardStyle
	if selected {
		style = CardSelectedStyle
	}
	return style.Width(cardInnerWidth + 2).Render(header + "\n" + badges + "\n" + caption)
}

// renderBadges joins colored type badges, dropping badges that no longer
// fit the card.
func renderBadges(types []string, maxWidth int) string {
	var b strings.Builder
	used := 0
	for i, t := range types {
		badge := TypeBadge(components.SanitizeOneLine(t))
		w := lipgloss.Width(badge)
		if i > 0 {
			w++
		}
		if used+w > maxWidth {
			break
		}
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(badge)
		used += w
	}
	if b.Len() == 0 {
		return MutedStyle.Render("-")
	}
	return b.String()
}

// imageCaption reduces an image reference to a short caption; terminals
// render the reference, not the bitmap.
func imageCaption(e catalog.Entry) string {
	if e.ImageURL == "" {
		return "no image"
	}
	u, err := url.Parse(e.ImageURL)
	if err != nil || u.Host == "" {
		return e.ImageURL
	}
	return u.Host
}
