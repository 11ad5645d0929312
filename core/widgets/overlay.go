// Package widgets holds low-level drawing primitives shared by pages and
// overlay screens. Nothing here knows about routes or navigation.
package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/pageshell/core/theme"
)

// RenderPopup centres popup in a bordered card over base, keeping the base
// rows visible around it.
func RenderPopup(base, popup string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	canvas := fitCanvas(base, width, height)
	styles := theme.Current()
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Theme.Palette.Focus).
		Padding(1, 2).
		Render(popup)
	cardLines := splitToLines(card, 0)
	cardWidth := maxLineWidth(cardLines)
	if cardWidth <= 0 || len(cardLines) == 0 {
		return canvas
	}
	x := max(0, (width-cardWidth)/2)
	y := max(0, (height-len(cardLines))/2)
	return overlayAt(canvas, cardLines, cardWidth, x, y, width, height)
}

func overlayAt(base string, overlay []string, overlayWidth, x, y, width, height int) string {
	rows := splitToLines(base, height)
	for i, line := range overlay {
		row := y + i
		if row < 0 || row >= len(rows) {
			continue
		}
		target := padRight(rows[row], width)
		left := padRight(ansi.Truncate(target, x, ""), x)
		middle := padRight(line, overlayWidth)
		pos := x + ansi.StringWidth(middle)
		right := dropColumns(target, pos)
		if gap := width - pos - ansi.StringWidth(right); gap > 0 {
			right = strings.Repeat(" ", gap) + right
		}
		rows[row] = left + middle + right
	}
	return strings.Join(rows, "\n")
}

func fitCanvas(s string, width, height int) string {
	lines := splitToLines(s, height)
	for i := range lines {
		lines[i] = padRight(lines[i], width)
	}
	return strings.Join(lines, "\n")
}

func splitToLines(s string, height int) []string {
	lines := strings.Split(s, "\n")
	if height > 0 && len(lines) > height {
		lines = lines[:height]
	}
	for height > 0 && len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}

func maxLineWidth(lines []string) int {
	widest := 0
	for _, line := range lines {
		widest = max(widest, ansi.StringWidth(line))
	}
	return widest
}

func dropColumns(s string, cols int) string {
	if cols <= 0 {
		return s
	}
	return strings.TrimPrefix(s, ansi.Truncate(s, cols, ""))
}

// padRight truncates or pads s to exactly width visible columns.
func padRight(s string, width int) string {
	s = ansi.Truncate(s, width, "")
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
