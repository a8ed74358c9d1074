// Package export writes the work history of a todo document to CSV, JSON
// or a SQLite snapshot.
package export

import (
	"context"
	"fmt"
	"time"

	"github.com/sadopc/todo/internal/store"
	"github.com/sadopc/todo/internal/view"
)

// Format names an export target.
type Format string

const (
	FormatCSV    Format = "csv"
	FormatJSON   Format = "json"
	FormatSQLite Format = "sqlite"
)

var Formats = []Format{FormatCSV, FormatJSON, FormatSQLite}

func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown export format %q (want csv, json or sqlite)", s)
}

// Extension is the default file extension for the format.
func (f Format) Extension() string {
	if f == FormatSQLite {
		return "db"
	}
	return string(f)
}

// Write exports doc to path in the given format.
func Write(ctx context.Context, doc *store.Document, f Format, path string, now time.Time) error {
	switch f {
	case FormatCSV:
		return ToCSV(doc, path)
	case FormatJSON:
		return ToJSON(doc, path, now)
	case FormatSQLite:
		return ToSQLite(ctx, doc, path)
	default:
		return fmt.Errorf("unknown export format %q", f)
	}
}

// sessionRow is one work session together with the task it belongs to.
type sessionRow struct {
	Tag           string
	Title         string
	Priority      store.Priority
	TaskCompleted bool
	Session       store.WorkSession
}

// sessionRows flattens every work session in document order, each task's
// sessions ordered by start time.
func sessionRows(doc *store.Document) []sessionRow {
	var rows []sessionRow
	for _, t := range doc.Tasks {
		for _, s := range view.SessionsByStart(t.WorkSessions) {
			rows = append(rows, sessionRow{
				Tag:           t.Tag,
				Title:         t.Title,
				Priority:      t.Priority,
				TaskCompleted: t.Completed,
				Session:       s,
			})
		}
	}
	return rows
}

// formatMinutes renders minutes as HH:MM:00.
func formatMinutes(minutes int) string {
	return fmt.Sprintf("%02d:%02d:00", minutes/60, minutes%60)
}
