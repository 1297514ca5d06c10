package cli_test

import (
	"testing"

	"github.com/calvinalkan/jane/internal/cli"
	"github.com/calvinalkan/jane/internal/todo"

	"github.com/google/go-cmp/cmp"
)

func newCLIWithTasks(t *testing.T, descriptions ...string) *cli.CLI {
	t.Helper()

	c := cli.NewCLI(t)
	c.Init()

	for _, d := range descriptions {
		c.MustRun("add", d)
	}

	return c
}

func descriptions(tasks []todo.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, task.Description)
	}

	return out
}

func Test_Remove_Confirmed(t *testing.T) {
	t.Parallel()

	for _, answer := range []string{"y\n", "Y\n", "yes\n", "maybe\ny\n"} {
		c := newCLIWithTasks(t, "a", "b", "c")

		stdout, stderr, code := c.RunWithInput(answer, "remove", "2")
		if code != 0 {
			t.Fatalf("answer %q: exit=%d stderr=%s", answer, code, stderr)
		}

		cli.AssertContains(t, stdout, "Delete to-do # 2: b? [y/N]: ")
		cli.AssertContains(t, stdout, `To-do # 2: "b" was removed`)

		if diff := cmp.Diff([]string{"a", "c"}, descriptions(c.ReadDB())); diff != "" {
			t.Errorf("answer %q: db mismatch (-want +got):\n%s", answer, diff)
		}
	}
}

func Test_Remove_Declined(t *testing.T) {
	t.Parallel()

	for _, answer := range []string{"n\n", "no\n", "\n", ""} {
		c := newCLIWithTasks(t, "a", "b")

		stdout, stderr, code := c.RunWithInput(answer, "rm", "1")
		if code != 0 {
			t.Fatalf("answer %q: exit=%d stderr=%s", answer, code, stderr)
		}

		cli.AssertContains(t, stdout, "Operation canceled")
		cli.AssertNotContains(t, stdout, "was removed")

		if got, want := len(c.ReadDB()), 2; got != want {
			t.Errorf("answer %q: len(db)=%d, want=%d", answer, got, want)
		}
	}
}

func Test_Remove_Force_Skips_Prompt(t *testing.T) {
	t.Parallel()

	c := newCLIWithTasks(t, "a", "b", "c")

	stdout := c.MustRun("remove", "-f", "1")

	if got, want := stdout, `To-do # 1: "a" was removed`; got != want {
		t.Errorf("stdout=%q, want=%q", got, want)
	}

	// ids shift down after a removal
	c.MustRun("remove", "--force", "1")

	if diff := cmp.Diff([]string{"c"}, descriptions(c.ReadDB())); diff != "" {
		t.Errorf("db mismatch (-want +got):\n%s", diff)
	}
}

func Test_Remove_Bad_Id_Does_Not_Prompt(t *testing.T) {
	t.Parallel()

	c := newCLIWithTasks(t, "a", "b")

	stdout, stderr, code := c.RunWithInput("y\n", "remove", "3")

	if got, want := code, 1; got != want {
		t.Errorf("exitCode=%d, want=%d", got, want)
	}

	cli.AssertNotContains(t, stdout, "[y/N]")
	cli.AssertContains(t, stderr, "error: removing to-do # 3 failed: invalid to-do id: 3 (must be 1-2)")

	if got, want := len(c.ReadDB()), 2; got != want {
		t.Errorf("len(db)=%d, want=%d", got, want)
	}
}

func Test_Remove_Errors(t *testing.T) {
	t.Parallel()

	c := newCLIWithTasks(t, "a")

	cli.AssertContains(t, c.MustFail("remove"), "error: to-do id is required")
	cli.AssertContains(t, c.MustFail("remove", "-f", "x"), "to-do id must be a number")
	cli.AssertContains(t, c.MustFail("remove", "-f", "-1"), "unknown shorthand flag")
	cli.AssertContains(t, c.MustFail("remove", "-f", "--", "-1"), "invalid to-do id: -1")
}
