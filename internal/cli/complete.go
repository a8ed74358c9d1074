package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func completeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "complete <tag>",
		Short: "Mark a task as complete using its tag (e.g., PROJ-001)",
		Long: `Mark a task as complete. The tag is matched case-insensitively and
completing a finished task changes nothing.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := app.store.Load()
			if err != nil {
				return err
			}
			task, changed, err := doc.CompleteTask(args[0])
			if err != nil {
				return err
			}
			if !changed {
				app.println(fmt.Sprintf("Task %s is already complete.", task.Tag))
				return nil
			}
			if err := app.store.Save(doc); err != nil {
				return fmt.Errorf("save todo file: %w", err)
			}
			app.success("Task %s marked as complete!", task.Tag)
			return nil
		},
	}
}
