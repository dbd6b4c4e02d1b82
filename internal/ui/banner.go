package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const bannerArt = `
 ███████████    ███████    █████   ████ ██████████ ██████████   ██████████ █████ █████
░░███░░░░░███ ███░░░░░███ ░░███   ███░ ░░███░░░░░█░░███░░░░███ ░░███░░░░░█░░███ ░░███
 ░███    ░███░███    ░███  ░███  ███    ░███  █ ░  ░███   ░░███ ░███  █ ░  ░░███ ███
 ░██████████ ░███    ░███  ░███████     ░██████    ░███    ░███ ░██████     ░░█████
 ░███░░░░░░  ░███    ░███  ░███░░███    ░███░░█    ░███    ░███ ░███░░█      ███░███
 ░███        ░░███   ███   ░███ ░░███   ░███ ░   █ ░███    ███  ░███ ░   █  ███ ░░███
 █████        ░░░███████░  █████ ░░████ ██████████ ██████████   ██████████ █████ █████
░░░░░           ░░░░░░░   ░░░░░   ░░░░ ░░░░░░░░░░ ░░░░░░░░░░   ░░░░░░░░░░ ░░░░░ ░░░░░`

// RenderBanner returns the styled ASCII banner with its subtitle rule.
func RenderBanner() string {
	baseStyle := lipgloss.NewStyle().Foreground(ColorPrimary)

	var rendered strings.Builder
	maxWidth := 0
	for _, line := range strings.Split(bannerArt, "\n") {
		if line == "" {
			continue
		}
		if w := lipgloss.Width(line); w > maxWidth {
			maxWidth = w
		}
		rendered.WriteString(baseStyle.Render(line))
		rendered.WriteString("\n")
	}

	subtitleText := "Terminal Catalog Browser"
	subtitleWidth := lipgloss.Width(subtitleText)
	blockWidth := maxWidth
	if blockWidth < subtitleWidth {
		blockWidth = subtitleWidth
	}

	subtitle := lipgloss.NewStyle().
		Foreground(ColorMuted).
		Width(blockWidth).
		Align(lipgloss.Center).
		Render(subtitleText)
	underline := lipgloss.NewStyle().
		Foreground(ColorBorder).
		Width(blockWidth).
		Align(lipgloss.Center).
		Render(strings.Repeat("─", subtitleWidth))

	return "\n" + rendered.String() + "\n" + subtitle + "\n" + underline + "\n"
}
