package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/sadopc/todo/internal/store"
)

var csvHeader = []string{"Project", "Tag", "Title", "Priority", "Started", "Duration (min)", "Duration", "Interrupted", "Task Completed"}

// ToCSV writes one row per work session.
func ToCSV(doc *store.Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return err
	}

	for _, r := range sessionRows(doc) {
		row := []string{
			doc.Project.Name,
			r.Tag,
			r.Title,
			string(r.Priority),
			r.Session.StartedAt.String(),
			strconv.Itoa(r.Session.Duration),
			formatMinutes(r.Session.Duration),
			strconv.FormatBool(r.Session.Interrupted),
			strconv.FormatBool(r.TaskCompleted),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("write csv file: %w", err)
	}
	return f.Close()
}
