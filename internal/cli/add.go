package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/calvinalkan/jane/internal/todo"

	flag "github.com/spf13/pflag"
)

var (
	errDescriptionRequired = errors.New("description is required")
	errInvalidPriority     = fmt.Errorf("invalid priority (must be %d-%d)", todo.MinPriority, todo.MaxPriority)
)

// AddCmd returns the add command.
func AddCmd(app *App) *Command {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	fs.IntP("priority", "p", todo.DefaultPriority, "Priority 1-3 (1=most urgent)")

	return &Command{
		Flags: fs,
		Usage: "add <description...> [flags]",
		Short: "Add a new to-do",
		Long: `Add a new to-do. All arguments are joined with spaces to form the description.

Use -- before a description that starts with a dash.`,
		Exec: func(_ context.Context, io *IO, args []string) error {
			return execAdd(io, app, fs, args)
		},
	}
}

func execAdd(io *IO, app *App, fs *flag.FlagSet, args []string) error {
	if len(args) == 0 {
		return errDescriptionRequired
	}

	priority, _ := fs.GetInt("priority")
	if !todo.IsValidPriority(priority) {
		return fmt.Errorf("%w: %d", errInvalidPriority, priority)
	}

	svc, err := app.service()
	if err != nil {
		return err
	}

	task, err := svc.Add(args, priority)
	if err != nil {
		return fmt.Errorf("adding to-do failed: %w", err)
	}

	app.Log.Debug("to-do added", "description", task.Description, "priority", task.Priority)

	io.Success("To-do: %q has been added with priority: %d", task.Description, task.Priority)

	return nil
}
