package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmarchetti/tempo/internal/importer"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Bulk-import productivity signals from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := importer.LoadImportSchema(args[0])
			if err != nil {
				return err
			}

			if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
				fmt.Printf("Import file has %d error(s):\n", len(errs))
				for _, e := range errs {
					fmt.Printf("  - %v\n", e)
				}
				return fmt.Errorf("import aborted")
			}

			batch, err := importer.Convert(schema, userID(cmd))
			if err != nil {
				return err
			}

			ctx := context.Background()
			for _, s := range batch.Sessions {
				if err := app.Ingest.LogSession(ctx, s); err != nil {
					return fmt.Errorf("importing session at %s: %w", s.StartedAt.Format(timeLayout), err)
				}
			}
			for _, e := range batch.Events {
				if err := app.Ingest.AddEvent(ctx, e); err != nil {
					return fmt.Errorf("importing event %q: %w", e.Title, err)
				}
			}
			for _, t := range batch.Tasks {
				if err := app.Ingest.AddTask(ctx, t); err != nil {
					return fmt.Errorf("importing task %q: %w", t.Title, err)
				}
			}
			for _, g := range batch.Goals {
				if err := app.Ingest.AddGoal(ctx, g); err != nil {
					return fmt.Errorf("importing goal %q: %w", g.Title, err)
				}
			}
			for _, d := range batch.Deadlines {
				if err := app.Ingest.AddDeadline(ctx, d); err != nil {
					return fmt.Errorf("importing deadline %q: %w", d.Title, err)
				}
			}
			for _, p := range batch.Projects {
				if err := app.Ingest.AddProject(ctx, p); err != nil {
					return fmt.Errorf("importing project %q: %w", p.Name, err)
				}
			}

			fmt.Printf("Imported %d record(s)\n", batch.Count())
			return nil
		},
	}
}
