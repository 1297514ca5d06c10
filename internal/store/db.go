// Package store reads and writes the to-do database: a single JSON file
// holding the whole task list.
//
// There is no locking. Each call is one whole-file read or replacement, so
// concurrent writers race and the last one wins.
package store

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/calvinalkan/jane/internal/fs"
	"github.com/calvinalkan/jane/internal/todo"
)

const (
	filePerms  = 0o600
	jsonIndent = "    "
)

// DB is a database file bound to one path for its lifetime.
type DB struct {
	fs   fs.FS
	path string
}

// Open binds a DB to path. It does not touch the filesystem.
func Open(fsys fs.FS, path string) *DB {
	return &DB{fs: fsys, path: path}
}

// Path returns the file path the DB is bound to.
func (db *DB) Path() string {
	return db.path
}

// Read loads the full task list.
//
// Returns an empty list and an error wrapping [todo.ErrRead] if the file
// cannot be read, or [todo.ErrParse] if it is not a JSON task array.
func (db *DB) Read() ([]todo.Task, error) {
	data, err := db.fs.ReadFile(db.path)
	if err != nil {
		return []todo.Task{}, fmt.Errorf("%w: %w", todo.ErrRead, err)
	}

	tasks, err := decode(data)
	if err != nil {
		return []todo.Task{}, fmt.Errorf("%w: %s: %w", todo.ErrParse, db.path, err)
	}

	return tasks, nil
}

// Write replaces the file with tasks. On failure the previous content is
// left in place and the error wraps [todo.ErrWrite].
func (db *DB) Write(tasks []todo.Task) error {
	data, err := encode(tasks)
	if err != nil {
		return fmt.Errorf("%w: %w", todo.ErrWrite, err)
	}

	if err := db.fs.WriteFileAtomic(db.path, data, filePerms); err != nil {
		return fmt.Errorf("%w: %w", todo.ErrWrite, err)
	}

	return nil
}

// Init writes an empty task list to path, creating the file if needed.
// An existing database is overwritten without confirmation.
func Init(fsys fs.FS, path string) error {
	return Open(fsys, path).Write([]todo.Task{})
}

func decode(data []byte) ([]todo.Task, error) {
	var tasks []todo.Task

	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, err
	}

	// "null" decodes to a nil slice.
	if tasks == nil {
		tasks = []todo.Task{}
	}

	return tasks, nil
}

func encode(tasks []todo.Task) ([]byte, error) {
	if tasks == nil {
		tasks = []todo.Task{}
	}

	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetIndent("", jsonIndent)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(tasks); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Compile-time interface check.
var _ todo.Storage = (*DB)(nil)
