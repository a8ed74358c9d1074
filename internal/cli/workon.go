package cli

import (
	"context"
	"fmt"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/sadopc/todo/internal/store"
	"github.com/sadopc/todo/internal/tui"
	"github.com/sadopc/todo/internal/worklog"
)

func workonCmd(app *App) *cobra.Command {
	var minutes int
	cmd := &cobra.Command{
		Use:     "workon <tag>",
		Aliases: []string{"work"},
		Short:   "Work on a specific task for a given duration (default: 25 minutes)",
		Long: `Run a timed work session on a task and record it. Stopping early with
ctrl+c (or q in the timer view) records an interrupted session with the
whole minutes worked; less than a minute records nothing.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			length := app.Config.WorkLength()
			if cmd.Flags().Changed("duration") {
				length = time.Duration(minutes) * time.Minute
			}
			if length <= 0 {
				return fmt.Errorf("duration must be positive, got %d", int(length/time.Minute))
			}
			return runWorkon(cmd.Context(), app, args[0], length)
		},
	}
	cmd.Flags().IntVarP(&minutes, "duration", "d", 25, "Duration in minutes (default from TODO_WORK_DURATION)")
	return cmd
}

func runWorkon(ctx context.Context, app *App, tag string, length time.Duration) error {
	doc, err := app.store.Load()
	if err != nil {
		return err
	}
	task, err := doc.FindTask(tag)
	if err != nil {
		return err
	}

	app.println(fmt.Sprintf("\nWorking on: %s (%s)", task.Title, task.Tag))
	if total := worklog.TotalMinutes(task.WorkSessions); total > 0 {
		app.println(app.view.Styles().Muted.Render("Total time worked: " + worklog.FormatMinutes(total)))
	}

	if len(app.Signals) > 0 {
		var stop context.CancelFunc
		ctx, stop = signal.NotifyContext(ctx, app.Signals...)
		defer stop()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	runner := &worklog.Runner{Clock: app.Clock, Tick: time.Second}
	var outcome worklog.Outcome
	if app.Terminal {
		outcome, err = tui.RunInteractive(ctx, cancel, runner, task, length, app.In, app.Out)
		if err != nil {
			app.Log.Warn().Err(err).Msg("timer view failed")
		}
	} else {
		outcome = tui.RunPlain(ctx, runner, task, length, app.Out)
	}
	app.Log.Debug().
		Str("tag", task.Tag).
		Dur("elapsed", outcome.Elapsed).
		Bool("interrupted", outcome.Interrupted).
		Msg("work session ended")

	if outcome.Interrupted {
		app.println(app.view.Styles().Warning.Render("\nWork session interrupted!"))
	}
	session, ok := outcome.Session()
	if !ok {
		app.println("Less than a minute worked, nothing recorded.")
		return nil
	}
	if err := recordSession(app, task.Tag, session); err != nil {
		return err
	}

	if outcome.Interrupted {
		app.println(fmt.Sprintf("Recorded %s of work on %s.", worklog.FormatMinutes(session.Duration), task.Tag))
	} else {
		app.success("Completed %s work session!", worklog.FormatMinutes(session.Duration))
	}
	return nil
}

// recordSession reloads the document before appending so that changes
// saved by other commands during the session are kept.
func recordSession(app *App, tag string, s store.WorkSession) error {
	doc, err := app.store.Load()
	if err != nil {
		return err
	}
	if _, err := doc.RecordSession(tag, s); err != nil {
		return err
	}
	if err := app.store.Save(doc); err != nil {
		return fmt.Errorf("save todo file: %w", err)
	}
	return nil
}
