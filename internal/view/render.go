package view

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/sadopc/todo/internal/due"
	"github.com/sadopc/todo/internal/store"
	"github.com/sadopc/todo/internal/worklog"
)

// Renderer turns documents into terminal output.
type Renderer struct {
	st  *Styles
	now func() time.Time
}

func NewRenderer(w io.Writer, noColor bool, now func() time.Time) *Renderer {
	if now == nil {
		now = time.Now
	}
	return &Renderer{st: NewStyles(w, noColor), now: now}
}

func (r *Renderer) Styles() *Styles {
	return r.st
}

// ProjectHeader is printed above listings when the project has a name.
func (r *Renderer) ProjectHeader(p store.Project) string {
	if p.Name == "" {
		return ""
	}
	return fmt.Sprintf("\n%s %s\n%s %s\n",
		r.st.Label.Render("Project:"), p.Name,
		r.st.Label.Render("Description:"), p.Description)
}

// List renders the project header and the sorted task table.
func (r *Renderer) List(doc *store.Document) string {
	var b strings.Builder
	b.WriteString(r.ProjectHeader(doc.Project))
	if len(doc.Tasks) == 0 {
		b.WriteString(r.st.Warning.Render("No tasks found!"))
		b.WriteString("\n")
		return b.String()
	}

	now := r.now()
	rows := make([][]string, 0, len(doc.Tasks))
	for _, t := range SortForListing(doc.Tasks) {
		rows = append(rows, []string{
			r.st.Tag.Render(t.Tag),
			t.Title,
			r.st.Priority(t.Priority).Render(string(t.Priority)),
			r.dueCell(t.Due(), now),
			worklog.FormatMinutes(worklog.TotalMinutes(t.WorkSessions)),
			r.statusMark(t.Completed),
			r.st.Muted.Render(noteCount(len(t.Notes))),
		})
	}

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(r.st.Border).
		Headers("Tag", "Title", "Priority", "Due Date", "Time Worked", "Status", "Notes").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return r.st.Header
			}
			return r.st.Cell
		})
	b.WriteString(tbl.Render())
	b.WriteString("\n")
	return b.String()
}

func (r *Renderer) dueCell(d *time.Time, now time.Time) string {
	if d == nil {
		return ""
	}
	return r.st.Urgency(due.Classify(d, now)).Render(due.Describe(d, now))
}

func (r *Renderer) statusMark(done bool) string {
	if done {
		return r.st.Success.Render("✓")
	}
	return r.st.Error.Render("✗")
}

func noteCount(n int) string {
	switch n {
	case 0:
		return ""
	case 1:
		return "1 note"
	default:
		return fmt.Sprintf("%d notes", n)
	}
}

// Notes renders a numbered note list.
func (r *Renderer) Notes(notes []string) string {
	var b strings.Builder
	for i, n := range notes {
		fmt.Fprintf(&b, "%s %s\n", r.st.Muted.Render(strconv.Itoa(i+1)+"."), n)
	}
	return b.String()
}

// Task renders the full detail view of one task.
func (r *Renderer) Task(t *store.Task) string {
	now := r.now()
	var b strings.Builder

	fmt.Fprintf(&b, "\n%s: %s\n", r.st.Tag.Render(t.Tag), r.st.Label.Render(t.Title))
	status := r.st.Warning.Render("⧖ In Progress")
	if t.Completed {
		status = r.st.Success.Render("✓ Completed")
	}
	fmt.Fprintf(&b, "Status: %s\n", status)
	fmt.Fprintf(&b, "Priority: %s\n", r.st.Priority(t.Priority).Render(string(t.Priority)))

	if t.Description != "" {
		fmt.Fprintf(&b, "\n%s\n%s\n", r.st.Label.Render("Description:"), t.Description)
	}
	if len(t.Notes) > 0 {
		fmt.Fprintf(&b, "\n%s\n%s", r.st.Label.Render("Notes:"), r.Notes(t.Notes))
	}
	if d := t.Due(); d != nil {
		fmt.Fprintf(&b, "\n%s %s\n", r.st.Label.Render("Due Date:"), r.dueCell(d, now))
	}

	if len(t.WorkSessions) > 0 {
		fmt.Fprintf(&b, "\n%s\n", r.st.Label.Render("Work Sessions:"))
		sessions := SessionsByStart(t.WorkSessions)
		rows := make([][]string, 0, len(sessions))
		for _, s := range sessions {
			state := r.st.Success.Render("Completed")
			if s.Interrupted {
				state = r.st.Warning.Render("Interrupted")
			}
			rows = append(rows, []string{
				s.StartedAt.Format("2006-01-02 15:04"),
				worklog.FormatMinutes(s.Duration),
				state,
			})
		}
		tbl := table.New().
			Border(lipgloss.HiddenBorder()).
			Headers("Date", "Duration", "Status").
			Rows(rows...).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return r.st.Header
				}
				return r.st.Cell
			})
		b.WriteString(tbl.Render())
		fmt.Fprintf(&b, "\n\nTotal time worked: %s\n",
			r.st.Label.Render(worklog.FormatMinutes(worklog.TotalMinutes(t.WorkSessions))))
	}

	fmt.Fprintf(&b, "\nCreated: %s\n", t.CreatedAt.Format("2006-01-02 15:04"))
	return b.String()
}

// Status renders the project statistics report.
func (r *Renderer) Status(doc *store.Document) string {
	st := CalculateStats(doc.Tasks, r.now())
	var b strings.Builder

	fmt.Fprintf(&b, "\n%s\n%s\n", r.st.Title.Render("Project Status"), strings.Repeat("═", 50))
	fmt.Fprintf(&b, "%s %s\n", r.st.Label.Render("Project:"), doc.Project.Name)
	fmt.Fprintf(&b, "%s %s\n", r.st.Label.Render("Description:"), doc.Project.Description)
	fmt.Fprintf(&b, "%s %s\n", r.st.Label.Render("Task Prefix:"), doc.Project.Prefix)

	r.section(&b, "Task Progress", [][2]string{
		{"Completion Rate", fmt.Sprintf("%.1f%% (%d/%d tasks)", st.CompletionRate(), st.CompletedTasks, st.TotalTasks)},
		{"Pending Tasks", strconv.Itoa(st.PendingTasks)},
	})

	r.section(&b, "Priority Distribution", [][2]string{
		{"High Priority", r.st.Error.Render(strconv.Itoa(st.HighPriority))},
		{"Medium Priority", r.st.Warning.Render(strconv.Itoa(st.MediumPriority))},
		{"Low Priority", r.st.Highlight.Render(strconv.Itoa(st.LowPriority))},
	})
	if st.TotalTasks > 0 {
		b.WriteString(r.priorityChart(st))
		b.WriteString("\n")
	}

	r.section(&b, "Due Date Status", [][2]string{
		{"Overdue", r.st.Error.Render(strconv.Itoa(st.OverdueTasks))},
		{"Due Today", r.st.Warning.Render(strconv.Itoa(st.DueToday))},
		{"No Due Date", strconv.Itoa(st.NoDueDate)},
	})

	if st.TotalSessions > 0 {
		r.section(&b, "Work Sessions", [][2]string{
			{"Total Sessions", strconv.Itoa(st.TotalSessions)},
			{"Completed Sessions", fmt.Sprintf("%d (%.1f%%)", st.CompletedSessions(), st.SessionCompletionRate())},
			{"Interrupted Sessions", strconv.Itoa(st.InterruptedSessions)},
			{"Total Time Worked", worklog.FormatMinutes(st.TotalWorkTime)},
			{"Time on Completed Tasks", worklog.FormatMinutes(st.CompletedWorkTime)},
			{"Time on Pending Tasks", worklog.FormatMinutes(st.PendingWorkTime)},
		})
	}

	fmt.Fprintf(&b, "\n%s\n", r.st.Muted.Render("Use 'todo list' for detailed task information"))
	return b.String()
}

func (r *Renderer) section(b *strings.Builder, title string, rows [][2]string) {
	fmt.Fprintf(b, "\n%s\n%s\n", r.st.Label.Render(title), strings.Repeat("─", 30))
	width := 0
	for _, row := range rows {
		width = max(width, lipgloss.Width(row[0]))
	}
	label := r.st.Label.Width(width + 2)
	for _, row := range rows {
		fmt.Fprintf(b, "%s%s\n", label.Render(row[0]), row[1])
	}
}

func (r *Renderer) priorityChart(st Stats) string {
	chart := barchart.New(30, 8)
	bars := []barchart.BarData{
		{Label: "High", Values: []barchart.BarValue{{Name: "high", Value: float64(st.HighPriority), Style: r.st.Error}}},
		{Label: "Med", Values: []barchart.BarValue{{Name: "medium", Value: float64(st.MediumPriority), Style: r.st.Warning}}},
		{Label: "Low", Values: []barchart.BarValue{{Name: "low", Value: float64(st.LowPriority), Style: r.st.Highlight}}},
	}
	chart.PushAll(bars)
	chart.Draw()
	return chart.View()
}

// CommandHelp describes one command for the help listing.
type CommandHelp struct {
	Usage string
	Short string
	Long  string
	Flags string
}

// Help renders the command overview.
func (r *Renderer) Help(cmds []CommandHelp) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\n", r.st.Title.Render("Todo App Commands:"))
	width := 0
	for _, c := range cmds {
		width = max(width, lipgloss.Width("todo "+c.Usage))
	}
	usage := r.st.Success.Width(width + 2)
	for _, c := range cmds {
		fmt.Fprintf(&b, "%s%s\n", usage.Render("todo "+c.Usage), c.Short)
	}
	fmt.Fprintf(&b, "\n%s\n", r.st.Muted.Render("For detailed help on any command, use: todo help <command>"))
	return b.String()
}

// CommandDetail renders the help page of a single command.
func (r *Renderer) CommandDetail(c CommandHelp) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n%s todo %s\n", r.st.Title.Render("Command:"), c.Usage)
	desc := c.Long
	if desc == "" {
		desc = c.Short
	}
	if desc == "" {
		desc = "No description available."
	}
	fmt.Fprintf(&b, "\n%s\n%s\n", r.st.Label.Render("Description:"), desc)
	if c.Flags != "" {
		fmt.Fprintf(&b, "\n%s\n%s", r.st.Label.Render("Options:"), c.Flags)
	}
	return b.String()
}
