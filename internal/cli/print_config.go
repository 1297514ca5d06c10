package cli

import (
	"context"

	flag "github.com/spf13/pflag"
)

// PrintConfigCmd returns the print-config command.
func PrintConfigCmd(app *App) *Command {
	return &Command{
		Flags: flag.NewFlagSet("print-config", flag.ContinueOnError),
		Usage: "print-config",
		Short: "Show resolved configuration",
		Long:  "Display the effective configuration and which files it was loaded from.",
		Exec: func(_ context.Context, io *IO, _ []string) error {
			return execPrintConfig(io, app)
		},
	}
}

func execPrintConfig(io *IO, app *App) error {
	cfg := app.Config

	io.Println("effective_cwd=" + cfg.EffectiveCwd)

	if cfg.DatabaseAbs != "" {
		io.Println("database=" + cfg.DatabaseAbs)
		io.Println("database_source=" + cfg.Sources.Database)
	} else {
		io.Println("database=(not configured)")
	}

	io.Println("color=" + cfg.Color)
	io.Println("log_level=" + cfg.LogLevel)

	io.Println("")
	io.Println("# sources")

	if cfg.Sources.Global == "" && cfg.Sources.Project == "" && cfg.Sources.Explicit == "" {
		io.Println("(defaults only)")
		return nil
	}

	if cfg.Sources.Global != "" {
		io.Println("global_config=" + cfg.Sources.Global)
	}

	if cfg.Sources.Project != "" {
		io.Println("project_config=" + cfg.Sources.Project)
	}

	if cfg.Sources.Explicit != "" {
		io.Println("explicit_config=" + cfg.Sources.Explicit)
	}

	return nil
}
