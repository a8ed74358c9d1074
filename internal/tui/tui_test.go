package tui

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/todo/internal/store"
	"github.com/sadopc/todo/internal/worklog"
)

// stepClock advances only when the runner waits on it.
type stepClock struct {
	now time.Time
}

func (c *stepClock) Now() time.Time { return c.now }

func (c *stepClock) After(d time.Duration) <-chan time.Time {
	c.now = c.now.Add(d)
	ch := make(chan time.Time, 1)
	ch <- c.now
	return ch
}

func testTask() *store.Task {
	return &store.Task{Tag: "LN-001", Title: "Write release notes", Priority: store.PriorityMedium}
}

func newTestTimer(t *testing.T) (timerModel, *bool) {
	t.Helper()
	cancelled := false
	m := newTimerModel(testTask(), 25*time.Minute, func() { cancelled = true })
	return m, &cancelled
}

func update(t *testing.T, m timerModel, msg tea.Msg) (timerModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	tm, ok := next.(timerModel)
	if !ok {
		t.Fatalf("Update returned %T, want timerModel", next)
	}
	return tm, cmd
}

// ============================================================
// Timer model
// ============================================================

func TestTimerInitialView(t *testing.T) {
	m, _ := newTestTimer(t)
	if m.Init() != nil {
		t.Fatal("Init should not schedule commands")
	}
	v := m.View()
	for _, want := range []string{"LN-001", "Write release notes", "25:00", "working"} {
		if !strings.Contains(v, want) {
			t.Errorf("view missing %q:\n%s", want, v)
		}
	}
}

func TestTimerProgressUpdatesClock(t *testing.T) {
	m, _ := newTestTimer(t)
	m, cmd := update(t, m, progressMsg{Elapsed: 90 * time.Second, Total: 25 * time.Minute})
	if cmd != nil {
		t.Fatal("progress should not produce a command")
	}
	if m.current.Elapsed != 90*time.Second {
		t.Fatalf("elapsed = %v, want 90s", m.current.Elapsed)
	}
	if v := m.View(); !strings.Contains(v, "23:30") {
		t.Errorf("view should show 23:30 remaining:\n%s", v)
	}
}

func TestTimerStopCancelsOnce(t *testing.T) {
	m, cancelled := newTestTimer(t)
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd != nil {
		t.Fatal("stop should wait for the runner instead of quitting")
	}
	if !*cancelled || !m.stopping {
		t.Fatal("stop key should cancel the session")
	}
	if !strings.Contains(m.View(), "stopping") {
		t.Error("view should show stopping state")
	}

	*cancelled = false
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if *cancelled {
		t.Fatal("cancel should only be called once")
	}
}

func TestTimerDoneQuits(t *testing.T) {
	m, _ := newTestTimer(t)
	out := worklog.Outcome{Planned: 25 * time.Minute, Elapsed: 25 * time.Minute}
	m, cmd := update(t, m, sessionDoneMsg{outcome: out})
	if cmd == nil {
		t.Fatal("done should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("done command should be tea.Quit")
	}
	if !m.done || m.View() != "" {
		t.Fatal("finished timer should render nothing")
	}
}

func TestTimerHelpToggle(t *testing.T) {
	m, _ := newTestTimer(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	if !m.help.ShowAll {
		t.Fatal("? should expand help")
	}
}

func TestTimerWindowResize(t *testing.T) {
	m, _ := newTestTimer(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 50, Height: 20})
	if m.progress.Width != 30 {
		t.Fatalf("progress width = %d, want 30", m.progress.Width)
	}
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 20, Height: 20})
	if m.progress.Width != 10 {
		t.Fatalf("progress width = %d, want minimum 10", m.progress.Width)
	}
}

// ============================================================
// Plain runner output
// ============================================================

func TestRunPlainPrintsEachMinute(t *testing.T) {
	var buf bytes.Buffer
	r := &worklog.Runner{Clock: &stepClock{now: time.Date(2025, 4, 18, 9, 0, 0, 0, time.Local)}, Tick: time.Second}

	out := RunPlain(context.Background(), r, testTask(), 3*time.Minute, &buf)

	if out.Interrupted {
		t.Fatal("session should complete")
	}
	got := buf.String()
	if !strings.Contains(got, "Working on LN-001: Write release notes for 3m") {
		t.Errorf("missing header:\n%s", got)
	}
	if n := strings.Count(got, "elapsed"); n != 2 {
		t.Errorf("progress lines = %d, want 2:\n%s", n, got)
	}
	if !strings.Contains(got, "01:00 elapsed, 02:00 remaining") {
		t.Errorf("missing first minute line:\n%s", got)
	}
}

// ============================================================
// Helpers
// ============================================================

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00:00"},
		{90 * time.Second, "00:01:30"},
		{time.Hour + 5*time.Minute, "01:05:00"},
		{-time.Second, "00:00:00"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{25 * time.Minute, "25:00"},
		{90 * time.Second, "01:30"},
		{90 * time.Minute, "90:00"},
		{-time.Minute, "00:00"},
	}
	for _, tt := range tests {
		if got := formatClock(tt.d); got != tt.want {
			t.Errorf("formatClock(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

// ============================================================
// Key map
// ============================================================

func TestKeyMapHelp(t *testing.T) {
	if len(keys.ShortHelp()) != 2 {
		t.Fatal("short help should list stop and help")
	}
	if len(keys.FullHelp()) != 1 {
		t.Fatal("full help should have one column")
	}
}

// ============================================================
// Prompter (accessible mode)
// ============================================================

func TestLineReaderReturnsOneLinePerRead(t *testing.T) {
	lr := newLineReader(strings.NewReader("first\nsecond\nlast"))
	buf := make([]byte, 64)

	for _, want := range []string{"first\n", "second\n", "last"} {
		n, err := lr.Read(buf)
		if err != nil {
			t.Fatalf("read %q: %v", want, err)
		}
		if got := string(buf[:n]); got != want {
			t.Fatalf("read %q, want %q", got, want)
		}
	}
	if _, err := lr.Read(buf); err != io.EOF {
		t.Fatalf("expected EOF, got %v", err)
	}
}

func TestLineReaderSplitsLongLines(t *testing.T) {
	lr := newLineReader(strings.NewReader("abcdef\n"))
	buf := make([]byte, 4)

	n, _ := lr.Read(buf)
	if string(buf[:n]) != "abcd" {
		t.Fatalf("first chunk = %q", buf[:n])
	}
	n, _ = lr.Read(buf)
	if string(buf[:n]) != "ef\n" {
		t.Fatalf("second chunk = %q", buf[:n])
	}
}

func TestPrompterSequence(t *testing.T) {
	in := strings.NewReader("Launch\n\nLN\n3\ny\n")
	var out bytes.Buffer
	p := NewPrompter(in, &out, true)

	name, err := p.Input("Project name:", "", true)
	if err != nil || name != "Launch" {
		t.Fatalf("name = %q, %v", name, err)
	}
	desc, err := p.Input("Description:", "", false)
	if err != nil || desc != "" {
		t.Fatalf("description = %q, %v", desc, err)
	}
	prefix, err := p.Input("Prefix:", "", true)
	if err != nil || prefix != "LN" {
		t.Fatalf("prefix = %q, %v", prefix, err)
	}
	prio, err := p.Select("Priority:", []string{"low", "medium", "high"}, "medium")
	if err != nil || prio != "high" {
		t.Fatalf("priority = %q, %v", prio, err)
	}
	ok, err := p.Confirm("Continue?", false)
	if err != nil || !ok {
		t.Fatalf("confirm = %v, %v", ok, err)
	}
}

func TestPrompterDefaults(t *testing.T) {
	in := strings.NewReader("\n\n\n")
	var out bytes.Buffer
	p := NewPrompter(in, &out, true)

	title, err := p.Input("Title:", "existing", false)
	if err != nil || title != "existing" {
		t.Fatalf("title = %q, %v", title, err)
	}
	prio, err := p.Select("Priority:", []string{"low", "medium", "high"}, "medium")
	if err != nil || prio != "medium" {
		t.Fatalf("priority = %q, %v", prio, err)
	}
	ok, err := p.Confirm("Reset?", false)
	if err != nil || ok {
		t.Fatalf("confirm = %v, %v", ok, err)
	}
}

func TestPrompterRequiredAtEOF(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader(""), &out, true)

	if _, err := p.Input("Title:", "", true); err == nil {
		t.Fatal("expected error for missing required input")
	}
}
