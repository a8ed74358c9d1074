// Package due turns free-form due date text into end-of-day deadlines and
// describes how close a deadline is.
package due

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ErrUnparseable is matched by every *ParseError.
var ErrUnparseable = errors.New("unparseable due date")

// ParseError reports due date text that no parser understood. Callers
// treat it as a warning: the task is still created, without a deadline.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("could not parse due date %q: %v", e.Input, e.Err)
	}
	return fmt.Sprintf("could not parse due date %q", e.Input)
}

func (e *ParseError) Is(target error) bool {
	return target == ErrUnparseable
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parser maps text to a calendar time relative to base.
type Parser interface {
	Parse(text string, base time.Time) (time.Time, error)
}

type Resolver struct {
	parser Parser
	now    func() time.Time
	log    zerolog.Logger
}

func NewResolver(p Parser, now func() time.Time, log zerolog.Logger) *Resolver {
	if now == nil {
		now = time.Now
	}
	return &Resolver{parser: p, now: now, log: log}
}

// Resolve parses text into 23:59:59 local time of the named day. Empty
// text means no deadline and returns nil without error.
func (r *Resolver) Resolve(text string) (*time.Time, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	t, err := r.parser.Parse(text, r.now())
	if err != nil {
		r.log.Debug().Err(err).Str("input", text).Msg("due date not understood")
		return nil, &ParseError{Input: text, Err: err}
	}
	eod := EndOfDay(t)
	return &eod, nil
}

// EndOfDay moves t to 23:59:59 local time on the same calendar day.
func EndOfDay(t time.Time) time.Time {
	t = t.Local()
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, time.Local)
}

// SameDay reports whether a and b fall on the same local calendar day.
func SameDay(a, b time.Time) bool {
	a, b = a.Local(), b.Local()
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

const day = 24 * time.Hour

// daysUntil is the whole number of days from now to due, rounded toward
// negative infinity, so anything already past is at least one day overdue.
func daysUntil(due, now time.Time) int {
	d := due.Sub(now)
	days := int(d / day)
	if d < 0 && d%day != 0 {
		days--
	}
	return days
}

// Describe renders a deadline relative to now, e.g. "Due tomorrow".
func Describe(due *time.Time, now time.Time) string {
	if due == nil {
		return "-"
	}
	switch days := daysUntil(*due, now); {
	case days < 0:
		return fmt.Sprintf("Overdue by %d days", -days)
	case days == 0:
		return "Due today"
	case days == 1:
		return "Due tomorrow"
	default:
		return fmt.Sprintf("Due in %d days", days)
	}
}

type Urgency int

const (
	NoDeadline Urgency = iota
	Normal
	Soon
	Overdue
)

// SoonWindow is how close a deadline must be to count as Soon.
const SoonWindow = 2 * day

// Classify buckets a deadline into an urgency tier.
func Classify(due *time.Time, now time.Time) Urgency {
	switch {
	case due == nil:
		return NoDeadline
	case due.Before(now):
		return Overdue
	case due.Before(now.Add(SoonWindow)):
		return Soon
	default:
		return Normal
	}
}

func (u Urgency) String() string {
	switch u {
	case Normal:
		return "normal"
	case Soon:
		return "soon"
	case Overdue:
		return "overdue"
	default:
		return "none"
	}
}
