package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmarchetti/tempo/internal/cli/formatter"
	"github.com/dmarchetti/tempo/internal/contract"
	"github.com/dmarchetti/tempo/internal/domain"
	"github.com/dmarchetti/tempo/internal/repository"
)

const dateLayout = "2006-01-02"

func newOptimizeCmd(app *App) *cobra.Command {
	var fromStr, toStr string

	cmd := &cobra.Command{
		Use:   "optimize",
		Short: "Optimize the schedule window against your productivity pattern",
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, err := parseWindow(fromStr, toStr)
			if err != nil {
				return err
			}

			result, err := app.Runs.Run(context.Background(), contract.NewOptimizeRequest(userID(cmd), from, to))
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatRunResult(result))
			return nil
		},
	}

	cmd.Flags().StringVar(&fromStr, "from", "", "Window start date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&toStr, "to", "", "Window end date (YYYY-MM-DD, default one week out)")

	return cmd
}

func newPredictCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "predict",
		Short: "Predict upcoming tasks and auto-create the confident ones",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Runs.Run(context.Background(), contract.NewPredictRequest(userID(cmd)))
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatRunResult(result))
			return nil
		},
	}
}

func newReviewCmd(app *App) *cobra.Command {
	var feature string

	cmd := &cobra.Command{
		Use:   "review",
		Short: "Review the last cached run for a feature",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !domain.ValidFeatures[feature] {
				return fmt.Errorf("unknown feature %q", feature)
			}

			result, err := app.Runs.CachedResult(context.Background(), userID(cmd), domain.Feature(feature))
			if errors.Is(err, repository.ErrNotFound) {
				fmt.Printf("No cached %s run; run it first.\n", feature)
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatRunResult(result))
			return nil
		},
	}

	cmd.Flags().StringVar(&feature, "feature", string(domain.FeatureScheduleOptimization), "Feature to review (schedule_optimization or task_prediction)")

	return cmd
}

// parseWindow resolves the optimization window, defaulting to the next week.
func parseWindow(fromStr, toStr string) (from, to time.Time, err error) {
	now := time.Now().UTC()
	from = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	to = from.AddDate(0, 0, 7)

	if fromStr != "" {
		if from, err = time.Parse(dateLayout, fromStr); err != nil {
			return from, to, fmt.Errorf("parsing --from: %w", err)
		}
		to = from.AddDate(0, 0, 7)
	}
	if toStr != "" {
		if to, err = time.Parse(dateLayout, toStr); err != nil {
			return from, to, fmt.Errorf("parsing --to: %w", err)
		}
	}
	return from, to, nil
}
