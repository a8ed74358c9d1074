package store

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Store reads and writes the whole todo document at path. There is no
// locking: concurrent writers race and the last save wins.
type Store struct {
	path string
	log  zerolog.Logger
}

// New returns a store for the YAML document at path. The file need not exist.
func New(path string, log zerolog.Logger) (*Store, error) {
	if path == "" {
		return nil, errors.New("todo file path is empty")
	}
	return &Store{path: path, log: log}, nil
}

func (s *Store) Path() string {
	return s.path
}

// Exists reports whether the document file is present on disk.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Load reads the document. A missing or empty file yields an empty
// document; undecodable content is a *CorruptDocumentError.
func (s *Store) Load() (*Document, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.log.Debug().Str("path", s.path).Msg("todo file missing, starting empty")
		return NewDocument(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read todo file: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return NewDocument(), nil
	}

	doc := NewDocument()
	if err := yaml.Unmarshal(data, doc); err != nil {
		return nil, &CorruptDocumentError{Path: s.path, Err: err}
	}
	if err := doc.Validate(); err != nil {
		return nil, &CorruptDocumentError{Path: s.path, Err: err}
	}
	s.log.Debug().Str("path", s.path).Int("tasks", len(doc.Tasks)).Msg("loaded todo file")
	return doc, nil
}

// Save writes the whole document, creating the parent directory if needed.
func (s *Store) Save(doc *Document) error {
	data, err := Encode(doc)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create todo directory: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write todo file: %w", err)
	}
	s.log.Debug().Str("path", s.path).Int("tasks", len(doc.Tasks)).Msg("saved todo file")
	return nil
}

// Encode renders the document as YAML with keys in declaration order.
func Encode(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode todo document: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode todo document: %w", err)
	}
	return buf.Bytes(), nil
}
