package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/calvinalkan/jane/internal/todo"
)

// CLI provides a clean interface for running CLI commands in tests.
// It manages a temp working directory, a temp HOME and environment variables.
type CLI struct {
	t    *testing.T
	Dir  string
	Home string
	Env  map[string]string
}

// NewCLI creates a new test CLI with a temp directory and temp HOME.
func NewCLI(t *testing.T) *CLI {
	t.Helper()

	root := t.TempDir()
	dir := filepath.Join(root, "work")
	home := filepath.Join(root, "alice")

	for _, d := range []string{dir, home} {
		if err := os.MkdirAll(d, 0o750); err != nil {
			t.Fatalf("failed to create %s: %v", d, err)
		}
	}

	return &CLI{
		t:    t,
		Dir:  dir,
		Home: home,
		Env:  map[string]string{"HOME": home},
	}
}

// Run executes the CLI with the given args and returns stdout, stderr, and exit code.
// Args should not include "jane" or "--cwd" - those are added automatically.
func (r *CLI) Run(args ...string) (string, string, int) {
	return r.RunWithInput("", args...)
}

// RunWithInput executes the CLI with stdin and returns stdout, stderr, and exit code.
// stdin must be a string or io.Reader; panics otherwise.
func (r *CLI) RunWithInput(stdin any, args ...string) (string, string, int) {
	var inReader io.Reader
	switch v := stdin.(type) {
	case string:
		inReader = strings.NewReader(v)
	case io.Reader:
		inReader = v
	default:
		panic(fmt.Sprintf("stdin must be string or io.Reader, got %T", stdin))
	}

	var outBuf, errBuf bytes.Buffer

	fullArgs := append([]string{"jane", "--cwd", r.Dir}, args...)
	code := Run(inReader, &outBuf, &errBuf, fullArgs, r.Env, nil)

	return outBuf.String(), errBuf.String(), code
}

// MustRun executes the CLI and fails the test if the command returns non-zero.
// Returns trimmed stdout on success.
func (r *CLI) MustRun(args ...string) string {
	r.t.Helper()

	stdout, stderr, code := r.Run(args...)
	if code != 0 {
		r.t.Fatalf("command %v failed with exit code %d\nstderr: %s", args, code, stderr)
	}

	return strings.TrimSpace(stdout)
}

// MustFail executes the CLI and fails the test if the command succeeds.
// Also fails if stdout is not empty. Returns trimmed stderr.
func (r *CLI) MustFail(args ...string) string {
	r.t.Helper()

	stdout, stderr, code := r.Run(args...)
	if code == 0 {
		r.t.Fatalf("command %v should have failed but succeeded\nstdout: %s", args, stdout)
	}

	if stdout != "" {
		r.t.Fatalf("command %v failed but stdout should be empty\nstdout: %s", args, stdout)
	}

	return strings.TrimSpace(stderr)
}

// DBPath returns the database path used by [CLI.Init].
func (r *CLI) DBPath() string {
	return filepath.Join(r.Dir, "todo.json")
}

// ConfigPath returns the global config path under the temp HOME.
func (r *CLI) ConfigPath() string {
	return filepath.Join(r.Home, ".config", "jane", "config.toml")
}

// Init runs "init --db-path" for [CLI.DBPath] and fails the test on error.
func (r *CLI) Init() {
	r.t.Helper()

	r.MustRun("init", "--db-path", r.DBPath())
}

// ReadDB reads and decodes the database file.
func (r *CLI) ReadDB() []todo.Task {
	r.t.Helper()

	content, err := os.ReadFile(r.DBPath())
	if err != nil {
		r.t.Fatalf("failed to read database: %v", err)
	}

	var tasks []todo.Task
	if err := json.Unmarshal(content, &tasks); err != nil {
		r.t.Fatalf("failed to decode database: %v\ncontent:\n%s", err, content)
	}

	return tasks
}

// WriteDB writes raw content to the database file.
func (r *CLI) WriteDB(content string) {
	r.t.Helper()

	if err := os.WriteFile(r.DBPath(), []byte(content), 0o600); err != nil {
		r.t.Fatalf("failed to write database: %v", err)
	}
}

// AssertContains fails the test if content doesn't contain substr.
func AssertContains(t *testing.T, content, substr string) {
	t.Helper()

	if !strings.Contains(content, substr) {
		t.Errorf("content should contain %q\ncontent:\n%s", substr, content)
	}
}

// AssertNotContains fails the test if content contains substr.
func AssertNotContains(t *testing.T, content, substr string) {
	t.Helper()

	if strings.Contains(content, substr) {
		t.Errorf("content should NOT contain %q\ncontent:\n%s", substr, content)
	}
}
