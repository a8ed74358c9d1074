package view

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sadopc/todo/internal/store"
)

var fixedNow = time.Date(2025, 4, 18, 12, 0, 0, 0, time.Local)

func at(days int) *store.Timestamp {
	ts := store.NewTimestamp(time.Date(2025, 4, 18+days, 23, 59, 59, 0, time.Local))
	return &ts
}

func task(tag string, done bool, due *store.Timestamp) *store.Task {
	return &store.Task{
		Tag:       tag,
		Title:     "task " + tag,
		Priority:  store.PriorityMedium,
		CreatedAt: store.NewTimestamp(fixedNow.Add(-time.Hour)),
		DueDate:   due,
		Completed: done,
	}
}

func tags(tasks []*store.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Tag
	}
	return out
}

func newTestRenderer() (*Renderer, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewRenderer(&buf, true, func() time.Time { return fixedNow }), &buf
}

func TestSortForListing(t *testing.T) {
	in := []*store.Task{
		task("A", true, at(1)),
		task("B", false, nil),
		task("C", false, at(5)),
		task("D", false, at(2)),
	}

	got := SortForListing(in)

	assert.Equal(t, []string{"D", "C", "B", "A"}, tags(got))
	assert.Equal(t, []string{"A", "B", "C", "D"}, tags(in), "input must not be reordered")
}

func TestSortForListingKeepsInsertionOrderOnTies(t *testing.T) {
	in := []*store.Task{
		task("A", false, nil),
		task("B", false, at(1)),
		task("C", false, nil),
		task("D", false, at(1)),
		task("E", true, nil),
		task("F", true, nil),
	}
	assert.Equal(t, []string{"B", "D", "A", "C", "E", "F"}, tags(SortForListing(in)))
}

func TestSessionsByStart(t *testing.T) {
	late := store.NewTimestamp(fixedNow)
	early := store.NewTimestamp(fixedNow.Add(-2 * time.Hour))
	in := []store.WorkSession{{StartedAt: late, Duration: 25}, {StartedAt: early, Duration: 5}}

	got := SessionsByStart(in)

	require.Len(t, got, 2)
	assert.Equal(t, 5, got[0].Duration)
	assert.Equal(t, 25, got[1].Duration)
	assert.Equal(t, 25, in[0].Duration)
}

func TestCalculateStats(t *testing.T) {
	done := task("A", true, nil)
	done.WorkSessions = []store.WorkSession{{StartedAt: store.NewTimestamp(fixedNow), Duration: 30}}
	tasks := []*store.Task{done, task("B", false, nil), task("C", false, nil)}

	st := CalculateStats(tasks, fixedNow)

	assert.Equal(t, 3, st.TotalTasks)
	assert.Equal(t, 1, st.CompletedTasks)
	assert.Equal(t, 2, st.PendingTasks)
	assert.InDelta(t, 33.3, st.CompletionRate(), 0.05)
	assert.Equal(t, 30, st.TotalWorkTime)
	assert.Equal(t, 30, st.CompletedWorkTime)
	assert.Zero(t, st.PendingWorkTime)
	assert.Equal(t, 3, st.NoDueDate)
	assert.Equal(t, 1, st.TotalSessions)
	assert.Equal(t, 1, st.CompletedSessions())
	assert.InDelta(t, 100.0, st.SessionCompletionRate(), 1e-9)
}

func TestCalculateStatsDueBuckets(t *testing.T) {
	earlierToday := store.NewTimestamp(fixedNow.Add(-time.Hour))
	high := task("A", false, &earlierToday)
	high.Priority = store.PriorityHigh
	low := task("B", false, at(-3))
	low.Priority = store.PriorityLow
	tasks := []*store.Task{high, low, task("C", false, at(4))}

	st := CalculateStats(tasks, fixedNow)

	assert.Equal(t, 1, st.DueToday, "same day counts as due today even when past")
	assert.Equal(t, 1, st.OverdueTasks)
	assert.Zero(t, st.NoDueDate)
	assert.Equal(t, 1, st.HighPriority)
	assert.Equal(t, 1, st.MediumPriority)
	assert.Equal(t, 1, st.LowPriority)
}

func TestCalculateStatsEmpty(t *testing.T) {
	st := CalculateStats(nil, fixedNow)
	assert.Zero(t, st.CompletionRate())
	assert.Zero(t, st.SessionCompletionRate())
}

func TestRenderListEmpty(t *testing.T) {
	r, _ := newTestRenderer()
	doc := &store.Document{Project: store.Project{Name: "Launch", Description: "ship it", Prefix: "LN"}}

	out := r.List(doc)

	assert.Contains(t, out, "Project: Launch")
	assert.Contains(t, out, "No tasks found!")
}

func TestRenderList(t *testing.T) {
	r, _ := newTestRenderer()
	a := task("LN-001", false, at(1))
	a.Notes = []string{"first", "second"}
	a.WorkSessions = []store.WorkSession{{StartedAt: store.NewTimestamp(fixedNow), Duration: 75}}
	b := task("LN-002", true, nil)
	doc := &store.Document{Project: store.Project{Name: "Launch", Prefix: "LN"}, Tasks: []*store.Task{b, a}}

	out := r.List(doc)

	for _, want := range []string{"Tag", "Time Worked", "LN-001", "LN-002", "Due tomorrow", "1h 15m", "2 notes", "✓", "✗"} {
		assert.Contains(t, out, want)
	}
	assert.Less(t, bytes.Index([]byte(out), []byte("LN-001")), bytes.Index([]byte(out), []byte("LN-002")))
}

func TestRenderTask(t *testing.T) {
	r, _ := newTestRenderer()
	tk := task("LN-003", false, at(-2))
	tk.Description = "write the docs"
	tk.Notes = []string{"draft done"}
	tk.WorkSessions = []store.WorkSession{
		{StartedAt: store.NewTimestamp(fixedNow), Duration: 10, Interrupted: true},
		{StartedAt: store.NewTimestamp(fixedNow.Add(-24 * time.Hour)), Duration: 25},
	}

	out := r.Task(tk)

	for _, want := range []string{
		"LN-003", "⧖ In Progress", "write the docs", "1. draft done",
		"Overdue by 2 days", "Interrupted", "Total time worked: 35m", "Created: 2025-04-18 11:00",
	} {
		assert.Contains(t, out, want)
	}
	assert.Less(t, bytes.Index([]byte(out), []byte("2025-04-17 12:00")), bytes.Index([]byte(out), []byte("2025-04-18 12:00")))
}

func TestRenderStatus(t *testing.T) {
	r, _ := newTestRenderer()
	done := task("LN-001", true, nil)
	done.WorkSessions = []store.WorkSession{{StartedAt: store.NewTimestamp(fixedNow), Duration: 30}}
	doc := &store.Document{
		Project: store.Project{Name: "Launch", Description: "ship it", Prefix: "LN"},
		Tasks:   []*store.Task{done, task("LN-002", false, nil), task("LN-003", false, nil)},
	}

	out := r.Status(doc)

	for _, want := range []string{"Project Status", "Task Prefix:", "33.3% (1/3 tasks)", "Priority Distribution", "Due Date Status", "Work Sessions", "30m"} {
		assert.Contains(t, out, want)
	}
}

func TestRenderStatusWithoutSessions(t *testing.T) {
	r, _ := newTestRenderer()
	doc := &store.Document{Project: store.Project{Name: "Launch", Prefix: "LN"}, Tasks: []*store.Task{task("LN-001", false, nil)}}
	assert.NotContains(t, r.Status(doc), "Interrupted Sessions")
}

func TestRenderHelp(t *testing.T) {
	r, _ := newTestRenderer()
	cmds := []CommandHelp{{Usage: "list", Short: "List all tasks"}, {Usage: "complete <tag>", Short: "Mark a task as completed"}}

	out := r.Help(cmds)
	assert.Contains(t, out, "todo list")
	assert.Contains(t, out, "Mark a task as completed")

	detail := r.CommandDetail(CommandHelp{Usage: "status"})
	assert.Contains(t, detail, "No description available.")
}
