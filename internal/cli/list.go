package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/calvinalkan/jane/internal/todo"

	flag "github.com/spf13/pflag"
)

// ListCmd returns the list command.
func ListCmd(app *App) *Command {
	return &Command{
		Flags:   flag.NewFlagSet("list", flag.ContinueOnError),
		Usage:   "list",
		Aliases: []string{"ls"},
		Short:   "List all to-dos",
		Long:    "List all to-dos with their id, priority and done state. Ids are positions and change when a to-do before them is removed.",
		Exec: func(_ context.Context, io *IO, args []string) error {
			return execList(io, app, args)
		},
	}
}

func execList(io *IO, app *App, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("%w: %v", errUnexpectedArgs, args)
	}

	svc, err := app.service()
	if err != nil {
		return err
	}

	tasks, err := svc.List()
	if err != nil {
		return fmt.Errorf("listing to-dos failed: %w", err)
	}

	app.Log.Debug("to-dos listed", "count", len(tasks))

	if len(tasks) == 0 {
		io.Notice("There is no task in the to-do list yet")
		return nil
	}

	printTable(io, tasks)

	return nil
}

const (
	idWidth       = 8
	priorityWidth = 13
	doneWidth     = 9
)

func printTable(io *IO, tasks []todo.Task) {
	styles := io.Styles()

	header := formatColumns("ID.", "Priority", "Done") + "Description"
	rule := strings.Repeat("-", len(header))

	io.Println()
	io.Println(styles.Header.Render("To-do list:"))
	io.Println()
	io.Println(styles.Header.Render(header))
	io.Println(styles.Row.Render(rule))

	for i, task := range tasks {
		columns := formatColumns(
			strconv.Itoa(i+1),
			"("+strconv.Itoa(task.Priority)+")",
			"("+strconv.FormatBool(task.Done)+")",
		)

		style := styles.Row
		if task.Done {
			style = styles.Done
		}

		// Render rewrites tabs and pads multi-line text, so the description
		// is printed as stored.
		io.Println(style.Render(columns) + task.Description)
	}

	io.Println(styles.Row.Render(rule))
}

func formatColumns(id, priority, done string) string {
	return fmt.Sprintf("%-*s| %-*s| %-*s| ", idWidth, id, priorityWidth, priority, doneWidth, done)
}
