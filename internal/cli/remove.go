package cli

import (
	"context"
	"fmt"

	flag "github.com/spf13/pflag"
)

// RemoveCmd returns the remove command.
func RemoveCmd(app *App) *Command {
	fs := flag.NewFlagSet("remove", flag.ContinueOnError)
	fs.BoolP("force", "f", false, "Remove without confirmation")

	return &Command{
		Flags:   fs,
		Usage:   "remove <id> [flags]",
		Aliases: []string{"rm"},
		Short:   "Remove a to-do",
		Long: `Remove the to-do with the given id. Asks for confirmation unless --force is set.

All to-dos after it move up one id.`,
		Exec: func(ctx context.Context, io *IO, args []string) error {
			return execRemove(ctx, io, app, fs, args)
		},
	}
}

func execRemove(ctx context.Context, io *IO, app *App, fs *flag.FlagSet, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}

	svc, err := app.service()
	if err != nil {
		return err
	}

	if force, _ := fs.GetBool("force"); !force {
		task, err := svc.Get(id)
		if err != nil {
			return fmt.Errorf("removing to-do # %d failed: %w", id, err)
		}

		ok, err := app.Prompt.Confirm(ctx, fmt.Sprintf("Delete to-do # %d: %s?", id, task.Description))
		if err != nil {
			return err
		}

		if !ok {
			io.Println("Operation canceled")
			return nil
		}
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	task, err := svc.Remove(id)
	if err != nil {
		return fmt.Errorf("removing to-do # %d failed: %w", id, err)
	}

	app.Log.Debug("to-do removed", "id", id)

	io.Success("To-do # %d: %q was removed", id, task.Description)

	return nil
}
