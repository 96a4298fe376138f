package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmarchetti/tempo/internal/cli/formatter"
)

func newCalendarCmd(app *App) *cobra.Command {
	var dateStr string

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show the productivity-annotated calendar for a day",
		RunE: func(cmd *cobra.Command, args []string) error {
			day := time.Now().UTC()
			if dateStr != "" {
				var err error
				if day, err = time.Parse(dateLayout, dateStr); err != nil {
					return fmt.Errorf("parsing --date: %w", err)
				}
			}

			cal, err := app.Insights.ProductivityCalendar(context.Background(), userID(cmd), day)
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatCalendar(cal))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "Day to show (YYYY-MM-DD, default today)")

	return cmd
}

func newSuggestMeetingCmd(app *App) *cobra.Command {
	var minutes int

	cmd := &cobra.Command{
		Use:   "suggest-meeting",
		Short: "Suggest an optimal slot for a new meeting",
		RunE: func(cmd *cobra.Command, args []string) error {
			suggestion, err := app.Insights.SuggestMeetingTime(context.Background(), userID(cmd), minutes, time.Now().UTC())
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatMeetingSuggestion(suggestion))
			return nil
		},
	}

	cmd.Flags().IntVar(&minutes, "minutes", 30, "Meeting duration in minutes")

	return cmd
}
