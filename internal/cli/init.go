package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sadopc/todo/internal/store"
)

func initCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize a new todo list with project details",
		Long: `Create a todo file and prompt for the project name, description and
task prefix. If a todo list already exists you are asked to confirm
before it is reset; declining aborts.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(app)
		},
	}
}

func runInit(app *App) error {
	exists := app.store.Exists()
	if exists {
		// A corrupt file may still be reset.
		if _, err := app.store.Load(); err != nil {
			var corrupt *store.CorruptDocumentError
			if !errors.As(err, &corrupt) {
				return err
			}
			app.warn("%v", err)
		}
		ok, err := app.Prompter.Confirm("A todo list already exists. Do you want to reset it?", false)
		if err != nil {
			return err
		}
		if !ok {
			return ErrAborted
		}
	}

	name, err := app.Prompter.Input("Project name", "", true)
	if err != nil {
		return err
	}
	description, err := app.Prompter.Input("Project description", "", false)
	if err != nil {
		return err
	}
	prefix, err := app.Prompter.Input("Task prefix (e.g. 'PROJ' for PROJ-001)", "", true)
	if err != nil {
		return err
	}

	doc := store.NewDocument()
	if err := doc.Init(name, description, prefix); err != nil {
		return err
	}
	if err := app.store.Save(doc); err != nil {
		return fmt.Errorf("save todo file: %w", err)
	}
	app.Log.Info().Str("prefix", doc.Project.Prefix).Bool("reset", exists).Msg("initialized project")

	app.success("Initialized new todo list!")
	app.println(fmt.Sprintf("Project: %s", doc.Project.Name))
	app.println(fmt.Sprintf("Description: %s", doc.Project.Description))
	app.println(fmt.Sprintf("Todo file location: %s", app.store.Path()))
	return nil
}
