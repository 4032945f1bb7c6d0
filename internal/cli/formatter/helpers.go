package formatter

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// FormatMinutes renders fractional minutes as "5h 43m", rounding to the
// nearest minute.
func FormatMinutes(minutes float64) string {
	total := int(math.Round(minutes))
	if total <= 0 {
		return "0m"
	}
	h := total / 60
	m := total % 60
	if h > 0 && m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", m)
}

// FormatHours renders hours with one decimal, e.g. "5.7h".
func FormatHours(hours float64) string {
	return fmt.Sprintf("%.1fh", hours)
}

// ClockOffset renders a minute offset from the start of the day as "+02:15".
func ClockOffset(minutes float64) string {
	total := int(math.Round(minutes))
	return fmt.Sprintf("+%02d:%02d", total/60, total%60)
}

// Plural returns "1 mold", "3 molds".
func Plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
