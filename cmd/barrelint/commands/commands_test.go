package commands_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devindavies/barrelint/cmd/barrelint/commands"
	"github.com/devindavies/barrelint/internal/adapters/config"
	"github.com/devindavies/barrelint/internal/adapters/logger"
	"github.com/devindavies/barrelint/internal/adapters/resolver"
	"github.com/devindavies/barrelint/internal/adapters/scanner"
	"github.com/devindavies/barrelint/internal/app"
	"github.com/devindavies/barrelint/internal/build"
	"github.com/devindavies/barrelint/internal/core/domain"
)

func newCLI(out io.Writer) *commands.CLI {
	a := app.New(
		config.NewFileConfigLoader(),
		resolver.New(),
		scanner.New(),
		logger.NewWithWriter(io.Discard),
	)
	a.SetOutput(out)

	cli := commands.New(a)
	cli.SetOutput(out, io.Discard)
	return cli
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	cli := newCLI(&out)
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, build.Version+"\n", out.String())
}

func TestCheckCommand_CleanTree(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "index.js")
	require.NoError(t, os.WriteFile(src, []byte("export const x = 1;\n"), 0o600))

	var out bytes.Buffer
	cli := newCLI(&out)
	cli.SetArgs([]string{"check", tmp, "--config", filepath.Join(tmp, ".barrelint.yaml")})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Empty(t, out.String())
}

func TestCheckCommand_ReportsIssues(t *testing.T) {
	tmp := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(tmp, "lib"), 0o755))
	files := map[string]string{
		"index.js":   "import { a } from \"./lib\";\n",
		"lib/index.js": "export { a } from \"./a\";\nexport { b } from \"./b\";\nexport { c } from \"./c\";\n",
		"lib/a.js":   "export const a = 1;\n",
		"lib/b.js":   "export const b = 1;\n",
		"lib/c.js":   "export const c = 1;\n",
	}
	for rel, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(tmp, rel), []byte(content), 0o600))
	}

	var out bytes.Buffer
	cli := newCLI(&out)
	cli.SetArgs([]string{
		"check", filepath.Join(tmp, "index.js"),
		"--config", filepath.Join(tmp, ".barrelint.yaml"),
		"--max-graph-size", "2",
	})

	err := cli.Execute(context.Background())
	require.ErrorIs(t, err, domain.ErrLintIssuesFound)
	assert.Contains(t, out.String(), "module graph of 3 modules")
	assert.Contains(t, out.String(), "maximum allowed size of 2 modules")
}

func TestCheckCommand_UnknownFlag(t *testing.T) {
	cli := newCLI(io.Discard)
	cli.SetArgs([]string{"check", "--bogus"})
	require.Error(t, cli.Execute(context.Background()))
}
