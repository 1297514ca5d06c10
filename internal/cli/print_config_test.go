package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/calvinalkan/jane/internal/cli"
)

func Test_Print_Config_Defaults(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stdout := c.MustRun("print-config")

	want := "effective_cwd=" + c.Dir + "\n" +
		"database=(not configured)\n" +
		"color=auto\n" +
		"log_level=warn\n" +
		"\n" +
		"# sources\n" +
		"(defaults only)"

	if got := stdout; got != want {
		t.Errorf("stdout=\n%s\nwant=\n%s", got, want)
	}
}

func Test_Print_Config_Project_Overrides_Global(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.Init()

	project := filepath.Join(c.Dir, ".jane.json")
	if err := os.WriteFile(project, []byte(`{
	// local list
	"database": "local.json",
	"color": "never",
}`), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	stdout := c.MustRun("print-config")

	cli.AssertContains(t, stdout, "database="+filepath.Join(c.Dir, "local.json"))
	cli.AssertContains(t, stdout, "database_source=project")
	cli.AssertContains(t, stdout, "color=never")
	cli.AssertContains(t, stdout, "global_config="+c.ConfigPath())
	cli.AssertContains(t, stdout, "project_config="+project)

	cli.AssertContains(t, c.MustRun("--db", "x.json", "print-config"), "database_source=flag")
}

func Test_Print_Config_Invalid_Config(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	if err := os.WriteFile(filepath.Join(c.Dir, ".jane.json"), []byte(`{"color": "purple"}`), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	cli.AssertContains(t, c.MustFail("print-config"), "error: invalid color mode")
	cli.AssertContains(t, c.MustFail("-c", "missing.json", "print-config"), "error: config file not found")
}
