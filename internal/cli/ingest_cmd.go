package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmarchetti/tempo/internal/domain"
)

const timeLayout = "2006-01-02T15:04"

func newSessionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Record focus sessions",
	}

	var startStr string
	var minutes int
	var score float64
	var interrupted bool

	logCmd := &cobra.Command{
		Use:   "log",
		Short: "Log a completed focus session",
		RunE: func(cmd *cobra.Command, args []string) error {
			started, err := time.Parse(timeLayout, startStr)
			if err != nil {
				return fmt.Errorf("parsing --start: %w", err)
			}

			session := &domain.FocusSession{
				UserID:      userID(cmd),
				StartedAt:   started,
				CompletedAt: started.Add(time.Duration(minutes) * time.Minute),
				Minutes:     minutes,
				FocusScore:  score,
				Interrupted: interrupted,
			}
			if err := app.Ingest.LogSession(context.Background(), session); err != nil {
				return err
			}

			fmt.Printf("Logged session %s (%dm, focus %.2f)\n", session.ID, session.Minutes, session.FocusScore)
			return nil
		},
	}
	logCmd.Flags().StringVar(&startStr, "start", "", "Session start (YYYY-MM-DDTHH:MM)")
	logCmd.Flags().IntVar(&minutes, "minutes", 25, "Session length in minutes")
	logCmd.Flags().Float64Var(&score, "focus", 0.5, "Focus score 0..1")
	logCmd.Flags().BoolVar(&interrupted, "interrupted", false, "Whether the session was interrupted")
	_ = logCmd.MarkFlagRequired("start")

	cmd.AddCommand(logCmd)
	return cmd
}

func newEventCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "event",
		Short: "Manage calendar events",
	}

	var title, kind, startStr string
	var minutes int
	var importance, energy float64
	var pinned, recurring bool

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a calendar event",
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := time.Parse(timeLayout, startStr)
			if err != nil {
				return fmt.Errorf("parsing --start: %w", err)
			}

			event := &domain.CalendarEvent{
				UserID:            userID(cmd),
				Title:             title,
				Kind:              domain.BlockKind(kind),
				StartTime:         start,
				EndTime:           start.Add(time.Duration(minutes) * time.Minute),
				Moveable:          !pinned,
				Recurring:         recurring,
				Importance:        importance,
				EnergyRequirement: energy,
			}
			if err := app.Ingest.AddEvent(context.Background(), event); err != nil {
				return err
			}

			fmt.Printf("Added %s %q at %s\n", event.Kind, event.Title, event.StartTime.Format(timeLayout))
			return nil
		},
	}
	addCmd.Flags().StringVar(&title, "title", "", "Event title")
	addCmd.Flags().StringVar(&kind, "kind", string(domain.BlockMeeting), "Block kind (meeting, task, focus_time, break, buffer)")
	addCmd.Flags().StringVar(&startStr, "start", "", "Start time (YYYY-MM-DDTHH:MM)")
	addCmd.Flags().IntVar(&minutes, "minutes", 60, "Duration in minutes")
	addCmd.Flags().Float64Var(&importance, "importance", 0.5, "Importance 0..1")
	addCmd.Flags().Float64Var(&energy, "energy", 0.5, "Energy requirement 0..1")
	addCmd.Flags().BoolVar(&pinned, "pinned", false, "Event cannot be moved")
	addCmd.Flags().BoolVar(&recurring, "recurring", false, "Event recurs")
	_ = addCmd.MarkFlagRequired("title")
	_ = addCmd.MarkFlagRequired("start")

	cmd.AddCommand(addCmd)
	return cmd
}

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	var title, description, priority, dueStr string
	var estimated int

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task",
		RunE: func(cmd *cobra.Command, args []string) error {
			task := &domain.Task{
				UserID:       userID(cmd),
				Title:        title,
				Description:  description,
				Priority:     domain.Priority(priority),
				EstimatedMin: estimated,
			}
			if dueStr != "" {
				due, err := time.Parse(timeLayout, dueStr)
				if err != nil {
					return fmt.Errorf("parsing --due: %w", err)
				}
				task.DueDate = &due
			}
			if err := app.Ingest.AddTask(context.Background(), task); err != nil {
				return err
			}

			fmt.Printf("Added task %q [%s]\n", task.Title, task.Priority)
			return nil
		},
	}
	addCmd.Flags().StringVar(&title, "title", "", "Task title")
	addCmd.Flags().StringVar(&description, "description", "", "Task description")
	addCmd.Flags().StringVar(&priority, "priority", string(domain.PriorityMedium), "Priority (low, medium, high, critical)")
	addCmd.Flags().StringVar(&dueStr, "due", "", "Due time (YYYY-MM-DDTHH:MM)")
	addCmd.Flags().IntVar(&estimated, "minutes", 25, "Estimated minutes")
	_ = addCmd.MarkFlagRequired("title")

	cmd.AddCommand(addCmd)
	return cmd
}

func newGoalCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage goals",
	}

	var title, kind, deadlineStr string

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add an active goal",
		RunE: func(cmd *cobra.Command, args []string) error {
			goal := &domain.Goal{
				UserID: userID(cmd),
				Title:  title,
				Kind:   kind,
			}
			if deadlineStr != "" {
				deadline, err := time.Parse(dateLayout, deadlineStr)
				if err != nil {
					return fmt.Errorf("parsing --deadline: %w", err)
				}
				goal.Deadline = &deadline
			}
			if err := app.Ingest.AddGoal(context.Background(), goal); err != nil {
				return err
			}

			fmt.Printf("Added %s goal %q\n", goal.Kind, goal.Title)
			return nil
		},
	}
	addCmd.Flags().StringVar(&title, "title", "", "Goal title")
	addCmd.Flags().StringVar(&kind, "kind", "project", "Goal kind (learning, project, habit)")
	addCmd.Flags().StringVar(&deadlineStr, "deadline", "", "Goal deadline (YYYY-MM-DD)")
	_ = addCmd.MarkFlagRequired("title")

	cmd.AddCommand(addCmd)
	return cmd
}

func newDeadlineCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deadline",
		Short: "Manage hard deadlines",
	}

	var title, dateStr string
	var complexity float64

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add an upcoming deadline",
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := time.Parse(timeLayout, dateStr)
			if err != nil {
				return fmt.Errorf("parsing --date: %w", err)
			}

			deadline := &domain.Deadline{
				UserID:     userID(cmd),
				Title:      title,
				Date:       date,
				Complexity: complexity,
			}
			if err := app.Ingest.AddDeadline(context.Background(), deadline); err != nil {
				return err
			}

			fmt.Printf("Added deadline %q at %s\n", deadline.Title, deadline.Date.Format(timeLayout))
			return nil
		},
	}
	addCmd.Flags().StringVar(&title, "title", "", "Deadline title")
	addCmd.Flags().StringVar(&dateStr, "date", "", "Deadline time (YYYY-MM-DDTHH:MM)")
	addCmd.Flags().Float64Var(&complexity, "complexity", 0.5, "Complexity 0..1")
	_ = addCmd.MarkFlagRequired("title")
	_ = addCmd.MarkFlagRequired("date")

	cmd.AddCommand(addCmd)
	return cmd
}

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	var name, milestoneStr string
	var completion float64

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add an active project",
		RunE: func(cmd *cobra.Command, args []string) error {
			project := &domain.Project{
				UserID:        userID(cmd),
				Name:          name,
				CompletionPct: completion,
			}
			if milestoneStr != "" {
				due, err := time.Parse(dateLayout, milestoneStr)
				if err != nil {
					return fmt.Errorf("parsing --milestone: %w", err)
				}
				project.NextMilestoneDue = &due
			}
			if err := app.Ingest.AddProject(context.Background(), project); err != nil {
				return err
			}

			fmt.Printf("Added project %q\n", project.Name)
			return nil
		},
	}
	addCmd.Flags().StringVar(&name, "name", "", "Project name")
	addCmd.Flags().StringVar(&milestoneStr, "milestone", "", "Next milestone due date (YYYY-MM-DD)")
	addCmd.Flags().Float64Var(&completion, "completion", 0, "Completion fraction 0..1")
	_ = addCmd.MarkFlagRequired("name")

	cmd.AddCommand(addCmd)
	return cmd
}
