package export

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/sadopc/todo/internal/store"
)

const schemaVersion = 1

// ToSQLite writes a relational snapshot of the whole document to path,
// replacing any file already there.
func ToSQLite(ctx context.Context, doc *store.Document, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create export directory: %w", err)
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("replace snapshot: %w", err)
	}

	db, err := openSnapshot(path)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := migrate(ctx, db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin snapshot: %w", err)
	}
	defer tx.Rollback()

	if err := insertDocument(ctx, tx, doc); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit snapshot: %w", err)
	}
	return db.Close()
}

func openSnapshot(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("exec pragma: %w", err)
	}
	return db, nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	var version int
	if err := db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("read user_version: %w", err)
	}
	if version >= schemaVersion {
		return nil
	}
	if version < 1 {
		if err := migrateV1(ctx, db); err != nil {
			return err
		}
	}
	_, err := db.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", schemaVersion))
	return err
}

func migrateV1(ctx context.Context, db *sql.DB) error {
	const ddl = `
	CREATE TABLE IF NOT EXISTS projects (
		id               INTEGER PRIMARY KEY AUTOINCREMENT,
		name             TEXT NOT NULL,
		description      TEXT NOT NULL DEFAULT '',
		prefix           TEXT NOT NULL,
		next_task_number INTEGER NOT NULL DEFAULT 1
	);

	CREATE TABLE IF NOT EXISTS tasks (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		project_id  INTEGER NOT NULL REFERENCES projects(id),
		tag         TEXT NOT NULL UNIQUE,
		title       TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		priority    TEXT NOT NULL DEFAULT 'medium',
		created_at  TEXT NOT NULL,
		due_date    TEXT,
		completed   INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS work_sessions (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		task_id     INTEGER NOT NULL REFERENCES tasks(id),
		started_at  TEXT NOT NULL,
		duration    INTEGER NOT NULL DEFAULT 0,
		interrupted INTEGER NOT NULL DEFAULT 0
	);

	CREATE INDEX IF NOT EXISTS idx_sessions_task  ON work_sessions(task_id);
	CREATE INDEX IF NOT EXISTS idx_sessions_start ON work_sessions(started_at);

	CREATE TABLE IF NOT EXISTS notes (
		id       INTEGER PRIMARY KEY AUTOINCREMENT,
		task_id  INTEGER NOT NULL REFERENCES tasks(id),
		position INTEGER NOT NULL,
		body     TEXT NOT NULL,
		UNIQUE(task_id, position)
	);
	`
	_, err := db.ExecContext(ctx, ddl)
	return err
}

func insertDocument(ctx context.Context, tx *sql.Tx, doc *store.Document) error {
	p := doc.Project
	res, err := tx.ExecContext(ctx,
		`INSERT INTO projects (name, description, prefix, next_task_number) VALUES (?, ?, ?, ?)`,
		p.Name, p.Description, p.Prefix, p.NextTaskNumber,
	)
	if err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	projectID, _ := res.LastInsertId()

	for _, t := range doc.Tasks {
		var due *string
		if t.DueDate != nil {
			s := t.DueDate.String()
			due = &s
		}
		res, err := tx.ExecContext(ctx,
			`INSERT INTO tasks (project_id, tag, title, description, priority, created_at, due_date, completed)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			projectID, t.Tag, t.Title, t.Description, string(t.Priority), t.CreatedAt.String(), due, t.Completed,
		)
		if err != nil {
			return fmt.Errorf("insert task %s: %w", t.Tag, err)
		}
		taskID, _ := res.LastInsertId()

		for _, s := range t.WorkSessions {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO work_sessions (task_id, started_at, duration, interrupted) VALUES (?, ?, ?, ?)`,
				taskID, s.StartedAt.String(), s.Duration, s.Interrupted,
			); err != nil {
				return fmt.Errorf("insert session for %s: %w", t.Tag, err)
			}
		}
		for i, n := range t.Notes {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO notes (task_id, position, body) VALUES (?, ?, ?)`,
				taskID, i+1, n,
			); err != nil {
				return fmt.Errorf("insert note for %s: %w", t.Tag, err)
			}
		}
	}
	return nil
}

// ReadSQLite loads a snapshot written by ToSQLite back into a document.
func ReadSQLite(ctx context.Context, path string) (*store.Document, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("open snapshot: %w", err)
	}
	db, err := openSnapshot(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	doc := store.NewDocument()
	var projectID int64
	err = db.QueryRowContext(ctx,
		`SELECT id, name, description, prefix, next_task_number FROM projects ORDER BY id LIMIT 1`,
	).Scan(&projectID, &doc.Project.Name, &doc.Project.Description, &doc.Project.Prefix, &doc.Project.NextTaskNumber)
	if err != nil {
		return nil, fmt.Errorf("read project: %w", err)
	}

	rows, err := db.QueryContext(ctx,
		`SELECT id, tag, title, description, priority, created_at, due_date, completed
		 FROM tasks WHERE project_id = ? ORDER BY id`, projectID)
	if err != nil {
		return nil, fmt.Errorf("read tasks: %w", err)
	}
	defer rows.Close()

	ids := map[*store.Task]int64{}
	for rows.Next() {
		var (
			id        int64
			t         store.Task
			priority  string
			createdAt string
			due       sql.NullString
		)
		if err := rows.Scan(&id, &t.Tag, &t.Title, &t.Description, &priority, &createdAt, &due, &t.Completed); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		t.Priority = store.Priority(priority)
		if t.CreatedAt, err = store.ParseTimestamp(createdAt); err != nil {
			return nil, fmt.Errorf("task %s created_at: %w", t.Tag, err)
		}
		if due.Valid {
			ts, err := store.ParseTimestamp(due.String)
			if err != nil {
				return nil, fmt.Errorf("task %s due_date: %w", t.Tag, err)
			}
			t.DueDate = &ts
		}
		t.WorkSessions = []store.WorkSession{}
		t.Notes = []string{}
		doc.Tasks = append(doc.Tasks, &t)
		ids[&t] = id
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read tasks: %w", err)
	}
	rows.Close()

	for _, t := range doc.Tasks {
		if err := readChildren(ctx, db, ids[t], t); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

func readChildren(ctx context.Context, db *sql.DB, taskID int64, t *store.Task) error {
	rows, err := db.QueryContext(ctx,
		`SELECT started_at, duration, interrupted FROM work_sessions WHERE task_id = ? ORDER BY id`, taskID)
	if err != nil {
		return fmt.Errorf("read sessions for %s: %w", t.Tag, err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			s       store.WorkSession
			started string
		)
		if err := rows.Scan(&started, &s.Duration, &s.Interrupted); err != nil {
			return fmt.Errorf("scan session: %w", err)
		}
		if s.StartedAt, err = store.ParseTimestamp(started); err != nil {
			return fmt.Errorf("session started_at: %w", err)
		}
		t.WorkSessions = append(t.WorkSessions, s)
	}
	if err := rows.Err(); err != nil {
		return err
	}
	// The pool holds a single connection.
	rows.Close()

	notes, err := db.QueryContext(ctx, `SELECT body FROM notes WHERE task_id = ? ORDER BY position`, taskID)
	if err != nil {
		return fmt.Errorf("read notes for %s: %w", t.Tag, err)
	}
	defer notes.Close()
	for notes.Next() {
		var body string
		if err := notes.Scan(&body); err != nil {
			return fmt.Errorf("scan note: %w", err)
		}
		t.Notes = append(t.Notes, body)
	}
	return notes.Err()
}
