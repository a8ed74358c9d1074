package cli

import (
	"github.com/spf13/cobra"

	"github.com/sadopc/todo/internal/export"
)

func exportCmd(app *App) *cobra.Command {
	var format, output string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export work sessions to CSV, JSON or a SQLite snapshot",
		Long: `Write every work session as CSV or JSON, or the whole document as a
SQLite database with projects, tasks, work_sessions and notes tables.
The output defaults to todo-export.<ext> in the current directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}
			if output == "" {
				output = "todo-export." + f.Extension()
			}
			doc, err := app.loadProject()
			if err != nil {
				return err
			}
			if err := export.Write(cmd.Context(), doc, f, output, app.Now()); err != nil {
				return err
			}
			app.Log.Info().Str("format", string(f)).Str("path", output).Msg("exported")
			app.success("Exported %d tasks to %s", len(doc.Tasks), output)
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", string(export.FormatCSV), "Export format (csv, json, sqlite)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file")
	return cmd
}
