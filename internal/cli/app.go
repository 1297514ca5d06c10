package cli

import (
	"errors"
	"fmt"

	"github.com/calvinalkan/jane/internal/config"
	"github.com/calvinalkan/jane/internal/fs"
	"github.com/calvinalkan/jane/internal/store"
	"github.com/calvinalkan/jane/internal/todo"

	"github.com/charmbracelet/log"
)

var (
	errNoDatabase       = errors.New(`no database configured (run "jane init")`)
	errDatabaseNotFound = errors.New("database not found")
)

// App holds what commands need besides their arguments.
type App struct {
	Config *config.Config
	Env    map[string]string
	FS     fs.FS
	Log    *log.Logger
	Prompt Prompter
}

// openDB returns the configured database. It fails if no database is
// configured or the file does not exist.
func (a *App) openDB() (*store.DB, error) {
	path := a.Config.DatabaseAbs
	if path == "" {
		return nil, errNoDatabase
	}

	exists, err := a.FS.Exists(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", todo.ErrRead, err)
	}

	if !exists {
		return nil, fmt.Errorf(`%w: %s (run "jane init")`, errDatabaseNotFound, path)
	}

	a.Log.Debug("using database", "path", path)

	return store.Open(a.FS, path), nil
}

// service returns a task service for the configured database.
func (a *App) service() (*todo.Service, error) {
	db, err := a.openDB()
	if err != nil {
		return nil, err
	}

	return todo.NewService(db), nil
}
