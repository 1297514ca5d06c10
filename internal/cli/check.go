package cli

import (
	"context"
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"
)

var errSchemaViolations = errors.New("database does not match the to-do schema")

// CheckCmd returns the check command.
func CheckCmd(app *App) *Command {
	return &Command{
		Flags: flag.NewFlagSet("check", flag.ContinueOnError),
		Usage: "check",
		Short: "Validate the database file",
		Long:  "Validate the database file against the to-do JSON schema and print every problem found.",
		Exec: func(_ context.Context, io *IO, args []string) error {
			return execCheck(io, app, args)
		},
	}
}

func execCheck(io *IO, app *App, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("%w: %v", errUnexpectedArgs, args)
	}

	db, err := app.openDB()
	if err != nil {
		return err
	}

	result, err := db.Check()
	if err != nil {
		return err
	}

	if result.Valid() {
		io.Success("ok (%d tasks)", result.Tasks)
		return nil
	}

	for _, v := range result.Violations {
		io.Println(v.String())
	}

	return fmt.Errorf("%w: %d problem(s) in %s", errSchemaViolations, len(result.Violations), db.Path())
}
