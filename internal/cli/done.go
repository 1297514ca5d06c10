package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	flag "github.com/spf13/pflag"
)

var (
	errIDRequired = errors.New("to-do id is required")
	errInvalidID  = errors.New("to-do id must be a number")
)

// SetDoneCmd returns the set-done command.
func SetDoneCmd(app *App) *Command {
	return &Command{
		Flags:   flag.NewFlagSet("set-done", flag.ContinueOnError),
		Usage:   "set-done <id>",
		Aliases: []string{"done"},
		Short:   "Mark a to-do as done",
		Long:    "Mark the to-do with the given id (as shown by list) as done.",
		Exec: func(_ context.Context, io *IO, args []string) error {
			return execSetDone(io, app, args)
		},
	}
}

func execSetDone(io *IO, app *App, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}

	svc, err := app.service()
	if err != nil {
		return err
	}

	task, err := svc.SetDone(id)
	if err != nil {
		return fmt.Errorf("completing to-do # %d failed: %w", id, err)
	}

	app.Log.Debug("to-do completed", "id", id)

	io.Success("To-do # %d %q completed!", id, task.Description)

	return nil
}

// parseID reads the single to-do id argument.
func parseID(args []string) (int, error) {
	if len(args) == 0 {
		return 0, errIDRequired
	}

	if len(args) > 1 {
		return 0, fmt.Errorf("%w: %v", errUnexpectedArgs, args[1:])
	}

	id, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errInvalidID, args[0])
	}

	return id, nil
}
