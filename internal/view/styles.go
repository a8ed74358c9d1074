package view

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/sadopc/todo/internal/due"
	"github.com/sadopc/todo/internal/store"
)

// Color palette
var (
	colorPrimary   = lipgloss.Color("#6C63FF")
	colorMuted     = lipgloss.Color("#666666")
	colorSuccess   = lipgloss.Color("#2ECC71")
	colorWarning   = lipgloss.Color("#F39C12")
	colorError     = lipgloss.Color("#E74C3C")
	colorSubtle    = lipgloss.Color("#414868")
	colorHighlight = lipgloss.Color("#7AA2F7")
)

// Styles holds every style used by the renderers, bound to one output.
type Styles struct {
	r *lipgloss.Renderer

	Title     lipgloss.Style
	Label     lipgloss.Style
	Tag       lipgloss.Style
	Muted     lipgloss.Style
	Success   lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
	Highlight lipgloss.Style
	Cell      lipgloss.Style
	Header    lipgloss.Style
	Border    lipgloss.Style
}

// NewStyles detects the color profile of w. noColor forces plain output.
func NewStyles(w io.Writer, noColor bool) *Styles {
	r := lipgloss.NewRenderer(w)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Styles{
		r:         r,
		Title:     r.NewStyle().Bold(true).Foreground(colorPrimary),
		Label:     r.NewStyle().Bold(true),
		Tag:       r.NewStyle().Bold(true).Foreground(colorHighlight),
		Muted:     r.NewStyle().Foreground(colorMuted),
		Success:   r.NewStyle().Foreground(colorSuccess),
		Warning:   r.NewStyle().Foreground(colorWarning),
		Error:     r.NewStyle().Foreground(colorError),
		Highlight: r.NewStyle().Foreground(colorHighlight),
		Cell:      r.NewStyle().Padding(0, 1),
		Header:    r.NewStyle().Bold(true).Foreground(colorPrimary).Padding(0, 1),
		Border:    r.NewStyle().Foreground(colorSubtle),
	}
}

// Priority colors a priority name: high red, medium yellow, low blue.
func (s *Styles) Priority(p store.Priority) lipgloss.Style {
	switch p {
	case store.PriorityHigh:
		return s.Error
	case store.PriorityMedium:
		return s.Warning
	default:
		return s.Highlight
	}
}

// Urgency colors a deadline by how close it is.
func (s *Styles) Urgency(u due.Urgency) lipgloss.Style {
	switch u {
	case due.Overdue:
		return s.Error
	case due.Soon:
		return s.Warning
	case due.Normal:
		return s.Success
	default:
		return s.Muted
	}
}
