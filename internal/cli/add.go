package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sadopc/todo/internal/due"
	"github.com/sadopc/todo/internal/store"
)

type addOptions struct {
	title       string
	description string
	priority    string
	due         string
	note        string
}

func addCmd(app *App) *cobra.Command {
	var opts addOptions
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new task interactively",
		Long: `Add a task. You are prompted for the title (required), description,
priority (low, medium or high; default medium), due date and an initial
note. Due dates accept ISO dates and phrases like 'tomorrow' or 'next
friday'; a date that cannot be understood is reported and the task is
created without one. Flags skip the matching prompt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(app, cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.title, "title", "t", "", "Task title")
	cmd.Flags().StringVar(&opts.description, "description", "", "Task description")
	cmd.Flags().StringVarP(&opts.priority, "priority", "p", "", "Priority (low, medium, high)")
	cmd.Flags().StringVar(&opts.due, "due", "", "Due date, e.g. 'tomorrow' or 2025-04-20")
	cmd.Flags().StringVar(&opts.note, "note", "", "Initial note")
	return cmd
}

func runAdd(app *App, cmd *cobra.Command, opts addOptions) error {
	doc, err := app.loadProject()
	if err != nil {
		return err
	}

	ask := func(flag, title string, value *string, required bool) error {
		if cmd.Flags().Changed(flag) {
			return nil
		}
		v, err := app.Prompter.Input(title, *value, required)
		if err != nil {
			return err
		}
		*value = v
		return nil
	}

	if err := ask("title", "Task title", &opts.title, true); err != nil {
		return err
	}
	if err := ask("description", "Description (optional)", &opts.description, false); err != nil {
		return err
	}
	if !cmd.Flags().Changed("priority") {
		opts.priority, err = app.Prompter.Select("Priority", priorityNames(), string(store.PriorityMedium))
		if err != nil {
			return err
		}
	}
	priority, err := store.ParsePriority(opts.priority)
	if err != nil {
		return err
	}
	if err := ask("due", "Due date (optional, e.g., 'tomorrow', 'next friday', '2025-04-20')", &opts.due, false); err != nil {
		return err
	}
	if err := ask("note", "Initial note (optional)", &opts.note, false); err != nil {
		return err
	}

	dueDate, err := app.resolver.Resolve(opts.due)
	if err != nil {
		if !errors.Is(err, due.ErrUnparseable) {
			return err
		}
		app.warn("Could not parse due date, task will be created without one.")
	}

	task, err := doc.AddTask(store.NewTask{
		Title:       opts.title,
		Description: opts.description,
		Priority:    priority,
		Due:         dueDate,
		Note:        opts.note,
	}, app.Now())
	if err != nil {
		return err
	}
	if err := app.store.Save(doc); err != nil {
		return fmt.Errorf("save todo file: %w", err)
	}
	app.Log.Info().Str("tag", task.Tag).Bool("due", dueDate != nil).Msg("task added")

	app.success("Task %s added successfully!", task.Tag)
	return nil
}

func priorityNames() []string {
	names := make([]string, len(store.Priorities))
	for i, p := range store.Priorities {
		names[i] = string(p)
	}
	return names
}
