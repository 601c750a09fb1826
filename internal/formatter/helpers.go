package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/healthbot/internal/domain"
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
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// FormatMinutes converts raw minutes into a compact form such as "1h 15m".
func FormatMinutes(min int) string {
	if min <= 0 {
		return "0m"
	}
	h := min / 60
	m := min % 60
	if h > 0 && m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", m)
}

// Temperature renders a reading or "unknown" when none was resolved.
func Temperature(c *float64) string {
	if c == nil {
		return "unknown"
	}
	return fmt.Sprintf("%.1f°C", *c)
}

// ModeLabel is the human wording of a water goal reason tag.
func ModeLabel(mode domain.WaterMode) string {
	if mode == domain.WaterElevated {
		return "elevated water consumption"
	}
	return "standard water consumption"
}

// DayLabel renders a calendar day relative to now: Today, Yesterday or a date.
func DayLabel(day, now time.Time) string {
	today := domain.StartOfDay(now)
	d := domain.StartOfDay(day)
	switch {
	case d.Equal(today):
		return "Today"
	case d.Equal(today.AddDate(0, 0, -1)):
		return "Yesterday"
	default:
		return d.Format("Mon, Jan 2")
	}
}

// Signed renders kcal with an explicit sign.
func Signed(v float64) string {
	return fmt.Sprintf("%+.0f", v)
}
