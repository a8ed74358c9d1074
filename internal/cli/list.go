package cli

import (
	"github.com/spf13/cobra"
)

func listCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all tasks with project information",
		Long: `List every task: incomplete tasks first, then by due date, with tasks
that have no due date last. Shows tag, title, priority, due date, time
worked, status and note count.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := app.store.Load()
			if err != nil {
				return err
			}
			app.println(app.view.List(doc))
			return nil
		},
	}
}

func showCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <tag>",
		Short: "Show detailed information about a specific task",
		Long: `Show a task with its description, notes, due date, every work session
ordered by start time, the total time worked and when it was created.
Tags are matched case-insensitively.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := app.store.Load()
			if err != nil {
				return err
			}
			task, err := doc.FindTask(args[0])
			if err != nil {
				return err
			}
			app.println(app.view.Task(task))
			return nil
		},
	}
}

func statusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show detailed project status and statistics",
		Long: `Show project information, task completion, priority distribution, due
date statistics and work session analytics.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := app.loadProject()
			if err != nil {
				return err
			}
			app.println(app.view.Status(doc))
			return nil
		},
	}
}
