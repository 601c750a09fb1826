// Package formatter renders progress summaries as chat text and as styled
// terminal output.
package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/healthbot/internal/service"
)

const barWidth = 10

// Today renders the daily summary as plain chat text.
func Today(p *service.DailyProgress) string {
	var b strings.Builder
	t := p.Totals

	b.WriteString("📊 Today's progress\n\n")
	fmt.Fprintf(&b, "🌡 %s: %s (%s)\n\n", p.Profile.City, Temperature(p.TemperatureC), ModeLabel(p.WaterMode))
	fmt.Fprintf(&b, "💧 Water: %d / %d ml %s\n", t.WaterML, p.WaterGoalML,
		TextBar(Ratio(float64(t.WaterML), float64(p.WaterGoalML)), barWidth))
	fmt.Fprintf(&b, "   left: %.0f ml\n", p.WaterRemainingML)
	fmt.Fprintf(&b, "🍎 Calories: %.0f / %d kcal %s\n", t.FoodKcal, p.CalorieGoal,
		TextBar(Ratio(t.FoodKcal, float64(p.CalorieGoal)), barWidth))
	fmt.Fprintf(&b, "   left: %.0f kcal\n", p.CaloriesRemaining)
	fmt.Fprintf(&b, "🏃 Burned: %.0f kcal in %s\n", t.BurnedKcal, FormatMinutes(t.WorkoutMin))
	fmt.Fprintf(&b, "⚖ Balance: %s kcal", Signed(p.Balance()))
	return b.String()
}

// Week renders the weekly summary as plain chat text, newest day first.
func Week(w *service.WeeklyProgress) string {
	var b strings.Builder
	t := w.Totals

	b.WriteString("📈 Last 7 days\n\n")
	if len(w.Days) == 0 {
		b.WriteString("No entries yet.")
		return b.String()
	}

	fmt.Fprintf(&b, "Total: 💧 %d ml · 🍎 %.0f kcal · 🏃 %.0f kcal\n", t.WaterML, t.FoodKcal, t.BurnedKcal)
	for _, d := range w.Days {
		fmt.Fprintf(&b, "\n%s:\n", d.Date.Format("2006-01-02"))
		fmt.Fprintf(&b, "  💧 Water: %d ml\n", d.WaterML)
		fmt.Fprintf(&b, "  🍎 Calories: %.0f kcal\n", d.FoodKcal)
		fmt.Fprintf(&b, "  🏃 Burned: %.0f kcal\n", d.BurnedKcal)
	}
	return strings.TrimRight(b.String(), "\n")
}

// TodayStyled renders the daily summary for a terminal.
func TodayStyled(p *service.DailyProgress) string {
	t := p.Totals
	lines := []string{
		fmt.Sprintf("%s %s  %s", Bold(p.Profile.City), Temperature(p.TemperatureC),
			WaterModeStyle(p.WaterMode).Render(ModeLabel(p.WaterMode))),
		"",
		fmt.Sprintf("Water     %s  %d / %d ml",
			RenderProgress(Ratio(float64(t.WaterML), float64(p.WaterGoalML)), 20), t.WaterML, p.WaterGoalML),
		fmt.Sprintf("Calories  %s  %.0f / %d kcal",
			RenderProgress(Ratio(t.FoodKcal, float64(p.CalorieGoal)), 20), t.FoodKcal, p.CalorieGoal),
		"",
		fmt.Sprintf("Burned    %.0f kcal %s", t.BurnedKcal, Dim("("+FormatMinutes(t.WorkoutMin)+")")),
		fmt.Sprintf("Balance   %s", BalanceStyle(p.Balance()).Render(Signed(p.Balance())+" kcal")),
	}
	return RenderBox("Today", strings.Join(lines, "\n"))
}

// WeekStyled renders the weekly summary as a terminal table.
func WeekStyled(w *service.WeeklyProgress) string {
	if len(w.Days) == 0 {
		return RenderBox("Last 7 days", Dim("No entries yet."))
	}
	rows := make([][]string, 0, len(w.Days)+1)
	for _, d := range w.Days {
		rows = append(rows, []string{
			DayLabel(d.Date, w.To),
			fmt.Sprintf("%d", d.WaterML),
			fmt.Sprintf("%.0f", d.FoodKcal),
			fmt.Sprintf("%.0f", d.BurnedKcal),
			Signed(d.Balance()),
		})
	}
	t := w.Totals
	rows = append(rows, []string{
		Bold("Total"),
		fmt.Sprintf("%d", t.WaterML),
		fmt.Sprintf("%.0f", t.FoodKcal),
		fmt.Sprintf("%.0f", t.BurnedKcal),
		Signed(t.Balance()),
	})
	table := RenderTable([]string{"Day", "Water ml", "Food kcal", "Burned kcal", "Balance"}, rows)
	return RenderBox("Last 7 days", strings.TrimRight(table, "\n"))
}
