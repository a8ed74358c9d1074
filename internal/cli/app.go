// Package cli wires the todo commands to the store, the due date resolver,
// the work session runner and the terminal views.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/sadopc/todo/internal/config"
	"github.com/sadopc/todo/internal/due"
	"github.com/sadopc/todo/internal/store"
	"github.com/sadopc/todo/internal/tui"
	"github.com/sadopc/todo/internal/view"
	"github.com/sadopc/todo/internal/worklog"
)

// ErrAborted is returned when the user declines a confirmation or cancels
// a prompt.
var ErrAborted = tui.ErrAborted

// Prompter asks the user for input. tui.Prompter is the real implementation.
type Prompter interface {
	Input(title, value string, required bool) (string, error)
	Select(title string, options []string, def string) (string, error)
	Confirm(title string, def bool) (bool, error)
}

// App carries everything a command needs. Zero-valued optional fields are
// filled in by NewApp or when the command starts.
type App struct {
	Config *config.Config
	Log    zerolog.Logger

	In  io.Reader
	Out io.Writer
	Err io.Writer
	Now func() time.Time

	Prompter Prompter
	Parser   due.Parser
	Clock    worklog.Clock

	// Terminal selects the interactive prompts and the live timer view.
	Terminal bool
	// Signals interrupt a running work session.
	Signals []os.Signal

	filePath string
	verbose  bool

	store    *store.Store
	view     *view.Renderer
	resolver *due.Resolver
}

func NewApp(cfg *config.Config, log zerolog.Logger) *App {
	return &App{
		Config:   cfg,
		Log:      log,
		In:       os.Stdin,
		Out:      os.Stdout,
		Err:      os.Stderr,
		Now:      time.Now,
		Terminal: isTerminal(os.Stdin) && isTerminal(os.Stdout),
		Signals:  []os.Signal{os.Interrupt, syscall.SIGTERM},
	}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// setup resolves the todo file and builds the per-run collaborators.
func (a *App) setup() error {
	if a.verbose {
		a.Log = a.Log.Level(zerolog.DebugLevel)
	}
	if a.Now == nil {
		a.Now = time.Now
	}

	path, src, err := a.Config.Path(a.filePath)
	if err != nil {
		return err
	}
	a.Log.Debug().Str("path", path).Str("source", string(src)).Msg("resolved todo file")

	a.store, err = store.New(path, a.Log)
	if err != nil {
		return err
	}
	a.view = view.NewRenderer(a.Out, a.Config.NoColor, a.Now)
	if a.Prompter == nil {
		a.Prompter = tui.NewPrompter(a.In, a.Out, !a.Terminal)
	}
	if a.Parser == nil {
		a.Parser = due.NewNaturalParser()
	}
	a.resolver = due.NewResolver(a.Parser, a.Now, a.Log)
	if a.Clock == nil {
		a.Clock = worklog.RealClock
	}
	return nil
}

// loadProject loads the document and requires an initialized project.
func (a *App) loadProject() (*store.Document, error) {
	doc, err := a.store.Load()
	if err != nil {
		return nil, err
	}
	if !doc.Project.Initialized() {
		return nil, store.ErrNotInitialized
	}
	return doc, nil
}

func (a *App) success(format string, args ...any) {
	fmt.Fprintf(a.Out, "%s %s\n", a.view.Styles().Success.Render("✓"), fmt.Sprintf(format, args...))
}

func (a *App) warn(format string, args ...any) {
	fmt.Fprintf(a.Out, "%s %s\n", a.view.Styles().Warning.Render("Warning:"), fmt.Sprintf(format, args...))
}

func (a *App) println(s string) {
	fmt.Fprintln(a.Out, s)
}

// Execute runs the command line and returns the process exit code.
// Reported errors exit 1; an interrupted work session is not an error.
func Execute(ctx context.Context, app *App, args []string) int {
	root := NewRootCmd(app)
	root.SetArgs(args)
	root.SetIn(app.In)
	root.SetOut(app.Out)
	root.SetErr(app.Err)

	if err := root.ExecuteContext(ctx); err != nil {
		app.Log.Debug().Err(err).Msg("command failed")
		fmt.Fprintf(app.Err, "Error: %s\n", userMessage(err))
		return 1
	}
	return 0
}

// userMessage maps domain errors to the text shown to the user.
func userMessage(err error) string {
	var (
		notFound *store.TaskNotFoundError
		corrupt  *store.CorruptDocumentError
	)
	switch {
	case errors.Is(err, ErrAborted):
		return "Aborted."
	case errors.Is(err, store.ErrNotInitialized):
		return "Project not initialized. Please run 'todo init' first."
	case errors.As(err, &notFound):
		return fmt.Sprintf("Task with tag %s not found!", notFound.Tag)
	case errors.As(err, &corrupt):
		return corrupt.Error()
	default:
		return err.Error()
	}
}
