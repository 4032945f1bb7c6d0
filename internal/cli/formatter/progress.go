package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderShareBar renders a workload share as [███░░░░░░░] 30%. Shares are
// fractions in [0, 1]; values outside are clamped.
func RenderShareBar(share float64, width int) string {
	share = min(max(share, 0), 1)
	width = max(width, 2)

	filled := min(int(share*float64(width)+0.5), width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	return fmt.Sprintf("[%s] %3.0f%%", StylePurple.Render(bar), share*100)
}

// RenderSpan draws a phase as a segment of a day-long track: blank up to
// start, filled to end. Critical phases render red.
func RenderSpan(start, end, total float64, width int, critical bool) string {
	width = max(width, 2)
	if total <= 0 {
		return strings.Repeat(" ", width)
	}
	from := min(max(int(start/total*float64(width)+0.5), 0), width)
	to := min(max(int(end/total*float64(width)+0.5), from), width)
	if to == from && end > start && to < width {
		to++
	}

	style := StyleGreen
	if critical {
		style = StyleRed
	}
	return strings.Repeat(" ", from) +
		style.Render(strings.Repeat(filledBlock, to-from)) +
		StyleDim.Render(strings.Repeat(emptyBlock, width-to))
}
