// Package cli implements the command-line interface for jane.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/calvinalkan/jane/internal/config"
	"github.com/calvinalkan/jane/internal/fs"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	flag "github.com/spf13/pflag"
)

// Version is the jane version, overridden at build time with -ldflags.
var Version = "0.3.0" //nolint:gochecknoglobals // set by the linker

const appName = "jane"

// Run is the main entry point. Returns exit code.
//
// sigCh may be nil. A signal on it cancels the running command, which
// abandons any pending prompt.
func Run(stdin io.Reader, out io.Writer, errOut io.Writer, args []string, env map[string]string, sigCh <-chan os.Signal) int {
	globalFlags := newGlobalFlagSet()

	if len(args) > 0 {
		args = args[1:]
	}

	if err := globalFlags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage(out, globalFlags)
			return 0
		}

		fprintln(errOut, "error:", err)
		fprintln(errOut)
		printUsage(errOut, globalFlags)

		return 1
	}

	if v, _ := globalFlags.GetBool("version"); v {
		fprintln(out, appName, "v"+Version)
		return 0
	}

	if help, _ := globalFlags.GetBool("help"); help || globalFlags.NArg() == 0 {
		printUsage(out, globalFlags)
		return 0
	}

	fsys := fs.NewReal()

	workDir, _ := globalFlags.GetString("cwd")
	configPath, _ := globalFlags.GetString("config")
	dbPath, _ := globalFlags.GetString("db")

	cfg, err := config.Load(config.LoadInput{
		FS:               fsys,
		WorkDirOverride:  workDir,
		ConfigPath:       configPath,
		DatabaseOverride: dbPath,
		HasDatabaseFlag:  globalFlags.Changed("db"),
		Env:              env,
	})
	if err != nil {
		fprintln(errOut, "error:", err)
		return 1
	}

	if noColor, _ := globalFlags.GetBool("no-color"); noColor || env["NO_COLOR"] != "" {
		cfg.Color = config.ColorNever
	}

	verbose, _ := globalFlags.GetBool("verbose")
	logger := newLogger(errOut, cfg, env, verbose)

	logger.Debug("config loaded",
		"cwd", cfg.EffectiveCwd,
		"global", cfg.Sources.Global,
		"project", cfg.Sources.Project,
		"explicit", cfg.Sources.Explicit,
		"database", cfg.DatabaseAbs,
		"database_source", cfg.Sources.Database,
	)

	app := &App{
		Config: &cfg,
		Env:    env,
		FS:     fsys,
		Log:    logger,
		Prompt: NewPrompter(stdin, out),
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if sigCh != nil {
		go func() {
			select {
			case sig := <-sigCh:
				logger.Debug("signal received", "signal", sig)
				cancel()
			case <-ctx.Done():
			}
		}()
	}

	ioCtx := NewIO(out, errOut, NewStyles(out, cfg.Color))

	name := globalFlags.Arg(0)
	for _, cmd := range commands(app) {
		if cmd.Matches(name) {
			return cmd.Run(ctx, ioCtx, globalFlags.Args()[1:])
		}
	}

	ioCtx.Error(fmt.Errorf("unknown command: %s", name))
	fprintln(errOut)
	printUsage(errOut, globalFlags)

	return 1
}

// commands returns all commands in help order.
func commands(app *App) []*Command {
	return []*Command{
		InitCmd(app),
		AddCmd(app),
		ListCmd(app),
		SetDoneCmd(app),
		RemoveCmd(app),
		ClearCmd(app),
		CheckCmd(app),
		PrintConfigCmd(app),
	}
}

func newGlobalFlagSet() *flag.FlagSet {
	flags := flag.NewFlagSet(appName, flag.ContinueOnError)
	flags.SetInterspersed(false)
	flags.SetOutput(&strings.Builder{}) // discard pflag output

	flags.StringP("cwd", "C", "", "Run as if started in `dir`")
	flags.StringP("config", "c", "", "Use specified config `file`")
	flags.String("db", "", "Use the database at `path` instead of the configured one")
	flags.Bool("no-color", false, "Disable colored output")
	flags.Bool("verbose", false, "Log diagnostics to stderr")
	flags.BoolP("version", "v", false, "Show the version and exit")
	flags.BoolP("help", "h", false, "Show help")

	return flags
}

// newLogger builds the diagnostics logger. Level precedence (highest wins):
// config log_level, $JANE_LOG_LEVEL, --verbose.
func newLogger(w io.Writer, cfg config.Config, env map[string]string, verbose bool) *log.Logger {
	level := log.WarnLevel

	if parsed, err := log.ParseLevel(cfg.LogLevel); err == nil {
		level = parsed
	}

	if parsed, err := log.ParseLevel(env["JANE_LOG_LEVEL"]); err == nil && env["JANE_LOG_LEVEL"] != "" {
		level = parsed
	}

	if verbose {
		level = log.DebugLevel
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:  level,
		Prefix: appName,
	})

	if cfg.Color == config.ColorNever {
		logger.SetColorProfile(termenv.Ascii)
	}

	return logger
}

func fprintln(w io.Writer, a ...any) {
	_, _ = fmt.Fprintln(w, a...)
}

func printUsage(w io.Writer, globalFlags *flag.FlagSet) {
	fprintln(w, `jane - personal to-do list manager

Usage: jane [global flags] <command> [args]

Commands:`)

	for _, cmd := range commands(&App{}) {
		fprintln(w, cmd.HelpLine())
	}

	fprintln(w)
	fprintln(w, "Global flags:")

	var buf strings.Builder
	globalFlags.SetOutput(&buf)
	globalFlags.PrintDefaults()
	globalFlags.SetOutput(&strings.Builder{})

	_, _ = fmt.Fprint(w, buf.String())

	fprintln(w)
	fprintln(w, `Run "jane <command> --help" for command flags.`)
}
