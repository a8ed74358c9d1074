package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func noteCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "note",
		Short: "Manage task notes",
	}
	cmd.AddCommand(noteAddCmd(app), noteResetCmd(app))
	return cmd
}

func noteAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <tag> [text]",
		Short: "Add a new note to a task",
		Long: `Append a note to a task. Without text the existing notes are listed
and you are prompted for the new one; an empty answer adds nothing.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := app.store.Load()
			if err != nil {
				return err
			}
			task, err := doc.FindTask(args[0])
			if err != nil {
				return err
			}

			var text string
			if len(args) == 2 {
				text = args[1]
			} else {
				if len(task.Notes) > 0 {
					app.println("\nExisting notes:")
					app.println(app.view.Notes(task.Notes))
				}
				text, err = app.Prompter.Input("Enter new note", "", false)
				if err != nil {
					return err
				}
			}
			if strings.TrimSpace(text) == "" {
				app.println("No note added.")
				return nil
			}

			if _, err := doc.AddNote(task.Tag, text); err != nil {
				return err
			}
			if err := app.store.Save(doc); err != nil {
				return fmt.Errorf("save todo file: %w", err)
			}
			app.success("Added new note to task %s", task.Tag)
			return nil
		},
	}
}

func noteResetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reset <tag>",
		Short: "Reset (clear) all notes from a task",
		Long:  `List a task's notes and, after confirmation, remove all of them.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := app.store.Load()
			if err != nil {
				return err
			}
			task, err := doc.FindTask(args[0])
			if err != nil {
				return err
			}
			if len(task.Notes) == 0 {
				app.println(app.view.Styles().Warning.Render("Task has no notes to reset."))
				return nil
			}

			app.println("\nCurrent notes:")
			app.println(app.view.Notes(task.Notes))
			ok, err := app.Prompter.Confirm("Are you sure you want to reset all notes?", false)
			if err != nil {
				return err
			}
			if !ok {
				app.println("Operation cancelled.")
				return nil
			}

			n, err := doc.ResetNotes(task.Tag)
			if err != nil {
				return err
			}
			if err := app.store.Save(doc); err != nil {
				return fmt.Errorf("save todo file: %w", err)
			}
			app.Log.Info().Str("tag", task.Tag).Int("removed", n).Msg("notes reset")
			app.success("All notes have been cleared.")
			return nil
		},
	}
}
