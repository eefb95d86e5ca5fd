package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/herald-dev/herald/pkg/cli"
	"github.com/m-mizutani/gt"
)

func TestOutputs_WriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output")
	t.Setenv("GITHUB_OUTPUT", path)

	out := cli.NewOutputs()
	out.Set("skipped", "false")
	out.Set("version", "1.2.3")

	gt.NoError(t, out.Write(t.Context()))

	data := gt.R1(os.ReadFile(path)).NoError(t)
	gt.String(t, string(data)).Contains("skipped=false\n")
	gt.String(t, string(data)).Contains("version=1.2.3\n")
}

func TestOutputs_WriteMultiline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output")
	t.Setenv("GITHUB_OUTPUT", path)

	out := cli.NewOutputs()
	out.Set("release_body", "First line\n\nSecond line")

	gt.NoError(t, out.Write(t.Context()))

	data := gt.R1(os.ReadFile(path)).NoError(t)
	content := string(data)
	gt.String(t, content).Contains("release_body<<HERALD_EOF_release_body\n")
	gt.String(t, content).Contains("First line\n\nSecond line\nHERALD_EOF_release_body\n")
}

func TestOutputs_WriteAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output")
	gt.NoError(t, os.WriteFile(path, []byte("existing=1\n"), 0644))
	t.Setenv("GITHUB_OUTPUT", path)

	out := cli.NewOutputs()
	out.Set("version", "2.0.0")

	gt.NoError(t, out.Write(t.Context()))

	data := gt.R1(os.ReadFile(path)).NoError(t)
	gt.String(t, string(data)).Contains("existing=1\n")
	gt.String(t, string(data)).Contains("version=2.0.0\n")
}

func TestOutputs_WriteWithoutFile(t *testing.T) {
	t.Setenv("GITHUB_OUTPUT", "")

	out := cli.NewOutputs()
	out.Set("version", "1.0.0")

	gt.NoError(t, out.Write(t.Context()))
}
