package tui

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/todo/internal/store"
	"github.com/sadopc/todo/internal/worklog"
)

// timerModel shows a running work session. It never decides when the
// session ends: stopping cancels the runner's context and the model quits
// once the runner reports back.
type timerModel struct {
	tag   string
	title string

	current  worklog.Progress
	stopping bool
	done     bool
	outcome  worklog.Outcome

	cancel   context.CancelFunc
	progress progress.Model
	help     help.Model
	width    int
}

func newTimerModel(t *store.Task, length time.Duration, cancel context.CancelFunc) timerModel {
	return timerModel{
		tag:      t.Tag,
		title:    t.Title,
		current:  worklog.Progress{Total: length},
		cancel:   cancel,
		progress: progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		help:     help.New(),
	}
}

func (m timerModel) Init() tea.Cmd {
	return nil
}

func (m timerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.progress.Width = max(10, min(60, msg.Width-20))
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Stop):
			if !m.stopping {
				m.stopping = true
				m.cancel()
			}
		case key.Matches(msg, keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
		return m, nil

	case progressMsg:
		m.current = worklog.Progress(msg)
		return m, nil

	case sessionDoneMsg:
		m.done = true
		m.outcome = msg.outcome
		m.current.Elapsed = msg.outcome.Elapsed
		return m, tea.Quit
	}
	return m, nil
}

func (m timerModel) View() string {
	if m.done {
		return ""
	}
	header := fmt.Sprintf("%s %s", tagStyle.Render(m.tag), titleStyle.Render(m.title))

	clock := timerStyle.Render(formatClock(m.current.Remaining()))
	state := successStyle.Render("working")
	if m.stopping {
		state = warningStyle.Render("stopping...")
	}

	bar := m.progress.ViewAs(m.current.Percent())
	elapsed := mutedStyle.Render(fmt.Sprintf("%s elapsed of %s",
		formatDuration(m.current.Elapsed), formatDuration(m.current.Total)))

	body := lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		clock+"  "+state,
		bar,
		elapsed,
		"",
		m.help.View(keys),
	)
	return panelStyle.Render(body) + "\n"
}

// RunInteractive runs r under a bubbletea timer view until the session
// completes or cancel is called, by the user or by a signal on ctx.
func RunInteractive(ctx context.Context, cancel context.CancelFunc, r *worklog.Runner, t *store.Task, length time.Duration, in io.Reader, out io.Writer) (worklog.Outcome, error) {
	p := tea.NewProgram(newTimerModel(t, length, cancel),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithoutSignalHandler(),
	)

	r.OnTick = func(pr worklog.Progress) { p.Send(progressMsg(pr)) }
	result := make(chan worklog.Outcome, 1)
	go func() {
		o := r.Run(ctx, length)
		result <- o
		p.Send(sessionDoneMsg{outcome: o})
	}()

	if _, err := p.Run(); err != nil {
		cancel()
		return <-result, fmt.Errorf("run timer view: %w", err)
	}
	return <-result, nil
}

// RunPlain runs r and prints one progress line per elapsed minute. It is
// used when stdout is not a terminal.
func RunPlain(ctx context.Context, r *worklog.Runner, t *store.Task, length time.Duration, out io.Writer) worklog.Outcome {
	fmt.Fprintf(out, "Working on %s: %s for %s (press ctrl+c to stop)\n",
		t.Tag, t.Title, worklog.FormatMinutes(int(length/time.Minute)))

	lastMinute := 0
	r.OnTick = func(pr worklog.Progress) {
		minute := int(pr.Elapsed / time.Minute)
		if minute > lastMinute {
			lastMinute = minute
			fmt.Fprintf(out, "  %s elapsed, %s remaining\n",
				formatClock(pr.Elapsed), formatClock(pr.Remaining()))
		}
	}
	return r.Run(ctx, length)
}
