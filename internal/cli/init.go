package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/calvinalkan/jane/internal/config"
	"github.com/calvinalkan/jane/internal/store"

	flag "github.com/spf13/pflag"
)

var (
	errDBPathRequired = errors.New("database location is required")
	errNoConfigHome   = errors.New("cannot determine config location (set HOME or use --config)")
	errUnexpectedArgs = errors.New("unexpected arguments")
)

// InitCmd returns the init command.
func InitCmd(app *App) *Command {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	fs.String("db-path", "", "Location of the to-do database")

	return &Command{
		Flags: fs,
		Usage: "init [--db-path <path>]",
		Short: "Create the to-do database",
		Long: `Create an empty to-do database and record its location in the config file.

Without --db-path the location is asked for interactively. An existing
database at that location is emptied.`,
		Exec: func(ctx context.Context, io *IO, args []string) error {
			return execInit(ctx, io, app, fs, args)
		},
	}
}

func execInit(ctx context.Context, io *IO, app *App, fs *flag.FlagSet, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("%w: %v", errUnexpectedArgs, args)
	}

	dbPath, _ := fs.GetString("db-path")

	if !fs.Changed("db-path") {
		def := app.Config.DatabaseAbs
		if def == "" {
			def = config.DefaultDatabasePath(app.Env)
		}

		answer, err := app.Prompt.Ask(ctx, "To-do database location? ", def)
		if err != nil {
			return err
		}

		dbPath = answer
	}

	if dbPath == "" {
		return errDBPathRequired
	}

	if !filepath.IsAbs(dbPath) {
		dbPath = filepath.Join(app.Config.EffectiveCwd, dbPath)
	}

	configPath := app.Config.WritePath(app.Env)
	if configPath == "" {
		return errNoConfigHome
	}

	if err := config.SetDatabase(app.FS, configPath, dbPath); err != nil {
		return fmt.Errorf("creating config file failed: %w", err)
	}

	app.Log.Debug("config written", "path", configPath, "database", dbPath)

	if err := store.Init(app.FS, dbPath); err != nil {
		return fmt.Errorf("creating database file failed: %w", err)
	}

	io.Success("The to-do database has been successfully created at location %s", dbPath)

	return nil
}
