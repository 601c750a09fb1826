package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

func clampRatio(pct float64) float64 {
	if pct < 0 {
		return 0
	}
	if pct > 1 {
		return 1
	}
	return pct
}

// Ratio returns done/goal, or 0 when the goal is not positive.
func Ratio(done, goal float64) float64 {
	if goal <= 0 {
		return 0
	}
	return done / goal
}

func bar(pct float64, width int) string {
	if width < 2 {
		width = 2
	}
	filled := int(clampRatio(pct) * float64(width))
	return strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
}

// TextBar renders an uncolored bar like [████░░░░░░] 40% for chat messages.
// The percentage is not clamped so overshoot stays visible.
func TextBar(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	return fmt.Sprintf("[%s] %.0f%%", bar(pct, width), pct*100)
}

// RenderProgress renders a colored bar for the terminal: green at 66% or
// more, yellow from 33%, red below.
func RenderProgress(pct float64, width int) string {
	pct = clampRatio(pct)
	style := StyleGreen
	if pct < 0.33 {
		style = StyleRed
	} else if pct < 0.66 {
		style = StyleYellow
	}
	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar(pct, width)), pct*100)
}
