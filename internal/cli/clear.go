package cli

import (
	"context"
	"fmt"

	flag "github.com/spf13/pflag"
)

// ClearCmd returns the clear command.
func ClearCmd(app *App) *Command {
	fs := flag.NewFlagSet("clear", flag.ContinueOnError)
	fs.BoolP("force", "f", false, "Remove without confirmation")

	return &Command{
		Flags: fs,
		Usage: "clear [flags]",
		Short: "Remove all to-dos",
		Long:  "Remove all to-dos. Asks for confirmation unless --force is set. A corrupt database is emptied too.",
		Exec: func(ctx context.Context, io *IO, args []string) error {
			return execClear(ctx, io, app, fs, args)
		},
	}
}

func execClear(ctx context.Context, io *IO, app *App, fs *flag.FlagSet, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("%w: %v", errUnexpectedArgs, args)
	}

	svc, err := app.service()
	if err != nil {
		return err
	}

	if force, _ := fs.GetBool("force"); !force {
		ok, err := app.Prompt.Confirm(ctx, "Delete all to-dos?")
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

	if err := svc.RemoveAll(); err != nil {
		return fmt.Errorf("removing to-dos failed: %w", err)
	}

	app.Log.Debug("all to-dos removed")

	io.Success("All to-dos were removed.")

	return nil
}
