package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sadopc/todo/internal/store"
	"github.com/sadopc/todo/internal/worklog"
)

type jsonExport struct {
	ExportedAt   string        `json:"exported_at"`
	Project      string        `json:"project"`
	Prefix       string        `json:"prefix"`
	Count        int           `json:"count"`
	TotalMinutes int           `json:"total_minutes"`
	Sessions     []jsonSession `json:"sessions"`
}

type jsonSession struct {
	Tag           string `json:"tag"`
	Title         string `json:"title"`
	Priority      string `json:"priority"`
	StartedAt     string `json:"started_at"`
	DurationMin   int    `json:"duration_minutes"`
	Duration      string `json:"duration"`
	Interrupted   bool   `json:"interrupted"`
	TaskCompleted bool   `json:"task_completed"`
}

// ToJSON writes every work session as an indented JSON document.
func ToJSON(doc *store.Document, path string, now time.Time) error {
	export := jsonExport{
		ExportedAt: now.UTC().Format(time.RFC3339),
		Project:    doc.Project.Name,
		Prefix:     doc.Project.Prefix,
		Sessions:   []jsonSession{},
	}

	for _, r := range sessionRows(doc) {
		export.Sessions = append(export.Sessions, jsonSession{
			Tag:           r.Tag,
			Title:         r.Title,
			Priority:      string(r.Priority),
			StartedAt:     r.Session.StartedAt.Format(time.RFC3339),
			DurationMin:   r.Session.Duration,
			Duration:      formatMinutes(r.Session.Duration),
			Interrupted:   r.Session.Interrupted,
			TaskCompleted: r.TaskCompleted,
		})
	}
	export.Count = len(export.Sessions)
	for _, t := range doc.Tasks {
		export.TotalMinutes += worklog.TotalMinutes(t.WorkSessions)
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
