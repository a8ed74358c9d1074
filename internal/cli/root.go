package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sadopc/todo/internal/view"
)

// NewRootCmd builds the todo command tree around app.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "todo",
		Short: "A single-user task tracker backed by a YAML file",
		Long: `todo keeps a project's tasks in a todo.yaml file: tagged tasks with
priorities, due dates, notes and timed work sessions.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			app.println(app.view.Help(helpEntries(cmd.Root())))
			return nil
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true

	// Global flags
	root.PersistentFlags().StringVarP(&app.filePath, "file", "f", "", "Todo file to use (overrides TODO_FILE)")
	root.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		initCmd(app),
		addCmd(app),
		listCmd(app),
		showCmd(app),
		statusCmd(app),
		completeCmd(app),
		workonCmd(app),
		noteCmd(app),
		exportCmd(app),
	)
	root.SetHelpCommand(helpCmd(app))
	return root
}

func helpCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "help [command]",
		Short: "Show this help message or detailed help for a command",
		RunE: func(cmd *cobra.Command, args []string) error {
			root := cmd.Root()
			if len(args) == 0 {
				app.println(app.view.Help(helpEntries(root)))
				return nil
			}
			target, rest, err := root.Find(args)
			if err != nil || target == root || len(rest) > 0 {
				return fmt.Errorf("command %q not found", strings.Join(args, " "))
			}
			app.println(app.view.CommandDetail(commandHelp(target)))
			return nil
		},
	}
}

// helpEntries lists every runnable command, subcommands spelled out in full.
func helpEntries(root *cobra.Command) []view.CommandHelp {
	var entries []view.CommandHelp
	var walk func(c *cobra.Command)
	walk = func(c *cobra.Command) {
		for _, sub := range c.Commands() {
			if sub.Hidden {
				continue
			}
			if sub.Runnable() {
				entries = append(entries, commandHelp(sub))
			}
			walk(sub)
		}
	}
	walk(root)
	return entries
}

func commandHelp(c *cobra.Command) view.CommandHelp {
	usage := c.Use
	for p := c.Parent(); p != nil && p.HasParent(); p = p.Parent() {
		usage = p.Name() + " " + usage
	}
	if len(c.Aliases) > 0 {
		usage += " (alias: " + strings.Join(c.Aliases, ", ") + ")"
	}
	return view.CommandHelp{
		Usage: usage,
		Short: c.Short,
		Long:  c.Long,
		Flags: c.LocalNonPersistentFlags().FlagUsages(),
	}
}
