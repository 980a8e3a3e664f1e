package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCLIDocs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, generateCLIDocs(dir))

	for _, name := range []string{"index.md", "serve.md", "summary.md", "version.md"} {
		assert.FileExists(t, filepath.Join(dir, name))
	}

	serve, err := os.ReadFile(filepath.Join(dir, "serve.md"))
	require.NoError(t, err)
	for _, want := range []string{
		"# launchdash serve",
		"launchdash serve [flags]",
		"| `--port` | `ui.port`<br>`LAUNCHDASH_UI_PORT` | `8050` |",
		"| `--open` | `ui.auto_open`<br>`LAUNCHDASH_UI_AUTO_OPEN` | `false` |",
		"## Global Options",
		"`-v, --verbose`",
	} {
		assert.Contains(t, string(serve), want)
	}

	index, err := os.ReadFile(filepath.Join(dir, "index.md"))
	require.NoError(t, err)
	assert.Contains(t, string(index), "[`summary`](summary.md)")
	assert.Contains(t, string(index), "- `json`: the computed figures as JSON")
	assert.Contains(t, string(index), "`--config`")

	completion, err := os.ReadFile(filepath.Join(dir, "completion.md"))
	require.NoError(t, err)
	assert.Contains(t, string(completion), "## Arguments")
	assert.Contains(t, string(completion), "- `powershell`")
}

func TestGenerateConfigDocs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, generateConfigDocs(dir))

	data, err := os.ReadFile(filepath.Join(dir, "configuration.md"))
	require.NoError(t, err)
	page := string(data)

	assert.Contains(t, page, "DO NOT EDIT")
	assert.Contains(t, page, "`LAUNCHDASH_UI_PORT`")
	assert.Contains(t, page, "`8050`")
	assert.Contains(t, page, "`dashboard.mark_interval`")
}

func TestDedent(t *testing.T) {
	got := dedent("\n  # one\n  launchdash serve\n\n    --open\n")
	assert.Equal(t, "# one\nlaunchdash serve\n\n  --open", got)
}
