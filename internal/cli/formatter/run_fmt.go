package formatter

import (
	"fmt"
	"strings"

	"github.com/dmarchetti/tempo/internal/contract"
)

// FormatRunResult formats a run result into a styled CLI report.
func FormatRunResult(result *contract.RunResult) string {
	var b strings.Builder

	b.WriteString(StylePurple.Render(fmt.Sprintf("FEATURE: %s", strings.ToUpper(string(result.Feature)))))
	b.WriteString("\n\n")

	b.WriteString(Header(fmt.Sprintf("Executed (%d)", len(result.Executed))))
	b.WriteString("\n\n")
	if len(result.Executed) == 0 {
		b.WriteString(Dim("Nothing cleared the execution gate."))
		b.WriteString("\n")
	} else {
		for i, exec := range result.Executed {
			b.WriteString(fmt.Sprintf("%s %s  %s\n",
				Bold(fmt.Sprintf("%d.", i+1)),
				StyleFg.Render(exec.Title),
				StatusIndicator(exec.Status),
			))
			if exec.Message != "" {
				b.WriteString(fmt.Sprintf("   %s\n", Dim(exec.Message)))
			}
			if exec.Error != "" {
				b.WriteString(fmt.Sprintf("   %s %s\n", StyleRed.Render("ERROR:"), Dim(exec.Error)))
			}
			detail := fmt.Sprintf("confidence %s, gain %.2f", Pct(exec.Confidence), exec.ProductivityGainEstimate)
			if exec.DurationMin > 0 {
				detail += fmt.Sprintf(", %s", FormatMinutes(exec.DurationMin))
			}
			b.WriteString(fmt.Sprintf("   %s\n", Dim(detail)))
			if i < len(result.Executed)-1 {
				b.WriteString("\n")
			}
		}
	}

	b.WriteString("\n")
	b.WriteString(Header(fmt.Sprintf("Suggested (%d)", len(result.Suggested))))
	b.WriteString("\n\n")
	if len(result.Suggested) == 0 {
		b.WriteString(Dim("No further suggestions."))
		b.WriteString("\n")
	} else {
		rows := make([][]string, 0, len(result.Suggested))
		for _, sug := range result.Suggested {
			due := ""
			if sug.DueDate != nil {
				due = RelativeDateStyled(*sug.DueDate, result.GeneratedAt)
			} else if sug.SuggestedTime != nil {
				due = StyleBlue.Render(sug.SuggestedTime.Format("Mon 15:04"))
			}
			rows = append(rows, []string{
				StyleFg.Render(sug.Title),
				ScoreStyle(sug.ImportanceScore).Render(fmt.Sprintf("%.2f", sug.ImportanceScore)),
				Pct(sug.Confidence),
				string(sug.Priority),
				due,
			})
		}
		b.WriteString(RenderTable([]string{"TITLE", "SCORE", "CONF", "PRIORITY", "WHEN"}, rows))
	}

	b.WriteString("\n")
	b.WriteString(formatImpact(result.Impact))

	for _, warning := range result.Warnings {
		b.WriteString(fmt.Sprintf("%s %s\n", StyleYellow.Render("WARN:"), Dim(warning)))
	}

	return b.String()
}

func formatImpact(impact contract.ImpactSummary) string {
	parts := []string{
		StyleGreen.Render(fmt.Sprintf("Successful: %d/%d", impact.SuccessfulCount, impact.ExecutedCount)),
		StyleBlue.Render(fmt.Sprintf("Gain: %.2f", impact.TotalProductivityGain)),
		StyleFg.Render(fmt.Sprintf("Avg confidence: %s", Pct(impact.AverageConfidence))),
	}
	if impact.FocusTimeGainedMin > 0 {
		parts = append(parts, StylePurple.Render(fmt.Sprintf("Focus gained: %s", FormatMinutes(impact.FocusTimeGainedMin))))
	}
	return strings.Join(parts, Dim("  |  ")) + "\n"
}

// FormatMeetingSuggestion formats the proposed meeting slot.
func FormatMeetingSuggestion(s *contract.MeetingSuggestion) string {
	var b strings.Builder
	b.WriteString(Header("Suggested Meeting Time"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s %s\n", Bold("Slot:"), StyleGreen.Render(s.SuggestedTime.Format("Mon Jan 2 15:04"))))
	for _, alt := range s.AlternativeTimes {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("Alt: "), StyleBlue.Render(alt.Format("Mon Jan 2 15:04"))))
	}
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Confidence:"), Pct(s.Confidence)))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Why:"), StyleFg.Render(s.Reasoning)))
	return b.String()
}
