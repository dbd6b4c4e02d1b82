package components

import "github.com/charmbracelet/lipgloss"

var (
	hintDescStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9ba0bf"))
	keyCapStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#16161d")).
			Background(lipgloss.Color("#888ba4")).
			Bold(true).
			Padding(0, 1)
	segmentStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#2b3a45")).
			Padding(0, 1).
			MarginRight(1)
	statusBarStyle = lipgloss.NewStyle().
			PaddingLeft(2)
)

// StatusBar renders the bottom hint bar, wrapping segments to the width.
func StatusBar(hints []string, width int) string {
	segments := make([]string, 0, len(hints))
	for _, h := range hints {
		segments = append(segments, segmentStyle.Render(h))
	}
	if width <= 0 {
		return statusBarStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, segments...))
	}

	rows := wrapSegments(segments, width)
	if len(rows) == 0 {
		return ""
	}
	block := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return statusBarStyle.Width(width).Align(lipgloss.Center).Render(block)
}

// Hint formats a single keybind hint like "↑/↓ Move".
func Hint(key, desc string) string {
	return hintDescStyle.Render(desc+" ") + keyCapStyle.Render(key)
}

func wrapSegments(segments []string, width int) []string {
	rows := make([]string, 0, 2)
	var current []string
	currentWidth := 0
	for _, seg := range segments {
		segWidth := lipgloss.Width(seg)
		if currentWidth > 0 && currentWidth+segWidth > width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, current...))
			current = []string{seg}
			currentWidth = segWidth
			continue
		}
		current = append(current, seg)
		currentWidth += segWidth
	}
	if len(current) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, current...))
	}
	return rows
}
