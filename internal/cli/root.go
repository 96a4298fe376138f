package cli

import (
	"github.com/spf13/cobra"

	"github.com/dmarchetti/tempo/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Runs     service.RunService
	Insights service.InsightService
	Ingest   service.IngestService
}

// NewRootCmd creates the top-level "tempo" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "tempo",
		Short: "Productivity recommendation engine",
	}

	root.PersistentFlags().String("user", "", "User the command acts for")
	_ = root.MarkPersistentFlagRequired("user")

	root.AddCommand(
		newOptimizeCmd(app),
		newPredictCmd(app),
		newReviewCmd(app),
		newCalendarCmd(app),
		newSuggestMeetingCmd(app),
		newSessionCmd(app),
		newEventCmd(app),
		newTaskCmd(app),
		newGoalCmd(app),
		newDeadlineCmd(app),
		newProjectCmd(app),
		newImportCmd(app),
	)

	return root
}

func userID(cmd *cobra.Command) string {
	user, _ := cmd.Flags().GetString("user")
	return user
}
