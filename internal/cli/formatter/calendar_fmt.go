package formatter

import (
	"fmt"
	"strings"

	"github.com/dmarchetti/tempo/internal/contract"
)

// FormatCalendar formats the productivity-annotated day view.
func FormatCalendar(cal *contract.ProductivityCalendar) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("Productivity Calendar %s", cal.Date.Format("Mon Jan 2"))))
	b.WriteString("\n\n")

	rows := make([][]string, 0, len(cal.Hours))
	for _, hour := range cal.Hours {
		scheduled := Dim("-")
		if hour.Scheduled != nil {
			mark := StyleGreen.Render("✓")
			if !hour.Scheduled.Optimal {
				mark = StyleRed.Render("✗")
			}
			scheduled = fmt.Sprintf("%s %s %s", StyleFg.Render(hour.Scheduled.Title), Dim("("+string(hour.Scheduled.Kind)+")"), mark)
		}
		rows = append(rows, []string{
			StyleBlue.Render(fmt.Sprintf("%02d:00", hour.Hour)),
			ScoreStyle(hour.ProductivityScore).Render(fmt.Sprintf("%.2f", hour.ProductivityScore)),
			EnergyStyle(hour.EnergyLevel).Render(hour.EnergyLevel),
			scheduled,
			Dim(hour.Recommendation),
		})
	}
	b.WriteString(RenderTable([]string{"HOUR", "SCORE", "ENERGY", "SCHEDULED", "RECOMMENDATION"}, rows))

	if len(cal.OptimalFocusWindows) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Optimal Focus Windows"))
		b.WriteString("\n\n")
		for _, window := range cal.OptimalFocusWindows {
			b.WriteString(fmt.Sprintf("%s %s %s\n",
				StyleGreen.Render(fmt.Sprintf("%02d:00-%02d:00", window.StartHour, window.EndHour)),
				ScoreStyle(window.ProductivityScore).Render(fmt.Sprintf("%.2f", window.ProductivityScore)),
				Dim(string(window.Quality)+" quality"),
			))
		}
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s\n", Bold("Day score:"), ScoreStyle(cal.DailyProductivity).Render(fmt.Sprintf("%.2f", cal.DailyProductivity))))

	return b.String()
}
