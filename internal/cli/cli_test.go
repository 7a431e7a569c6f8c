package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shaibs3/pagecatalog/internal/catalogfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const smallCatalog = `
category "animation" {
  label       = "Animation"
  description = "Motion."
}

page "spin" {
  title      = "Spin"
  category   = "animation"
  difficulty = "beginner"
  tags       = ["CSS"]
}
`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func writeCatalog(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.hcl")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestCategoriesCommand(t *testing.T) {
	out, err := run(t, "categories")
	require.NoError(t, err)
	for _, id := range []string{"ui-basics", "layout", "animation", "react-hooks", "next-features"} {
		assert.Contains(t, out, id)
	}
}

func TestListCommand(t *testing.T) {
	out, err := run(t, "list", "--category", "layout")
	require.NoError(t, err)
	assert.Contains(t, out, "flexbox-layout")
	assert.Contains(t, out, "grid-layout")
	assert.NotContains(t, out, "hello-world")

	out, err = run(t, "list", "--category", "animation", "--difficulty", "advanced")
	require.NoError(t, err)
	assert.Contains(t, out, "no pages match")

	_, err = run(t, "list", "--category", "cooking")
	require.ErrorContains(t, err, `unknown category "cooking"`)

	_, err = run(t, "list", "--difficulty", "expert")
	require.ErrorContains(t, err, `unknown difficulty "expert"`)
}

func TestShowCommand(t *testing.T) {
	out, err := run(t, "show", "grid-layout")
	require.NoError(t, err)
	assert.Contains(t, out, "Grid Layout")
	assert.Contains(t, out, "/examples/layout/grid-layout")
	assert.Contains(t, out, "Intermediate")

	_, err = run(t, "show", "nonexistent")
	require.ErrorContains(t, err, `page "nonexistent" not found`)
}

func TestCatalogFlag(t *testing.T) {
	path := writeCatalog(t, smallCatalog)

	out, err := run(t, "--catalog", path, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "spin")
	assert.NotContains(t, out, "grid-layout")
}

func TestValidateCommand(t *testing.T) {
	out, err := run(t, "validate", writeCatalog(t, smallCatalog))
	require.NoError(t, err)
	assert.Contains(t, out, "1 categories, 1 pages")

	_, err = run(t, "validate", writeCatalog(t, `page "a" { category = "layout" }`))
	require.ErrorContains(t, err, "failed to decode catalog file")
}

func TestExportCommand(t *testing.T) {
	out, err := run(t, "export", "--format", "json")
	require.NoError(t, err)
	var doc struct {
		Pages []json.RawMessage `json:"pages"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Len(t, doc.Pages, 13)

	out, err = run(t, "export", "--format", "hcl")
	require.NoError(t, err)
	r, err := catalogfile.Parse([]byte(out), "export.hcl")
	require.NoError(t, err)
	assert.Equal(t, 13, r.Len())

	_, err = run(t, "export", "--format", "toml")
	require.ErrorContains(t, err, "unsupported export format: toml")
}

func TestBuildCommand(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, "build", "--out", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote 19 files")

	_, err = os.Stat(filepath.Join(dir, "examples", "layout", "grid-layout", "index.html"))
	require.NoError(t, err)

	_, err = run(t, "build", "--out", dir, "--watch")
	require.ErrorContains(t, err, "--watch needs a --catalog file")
}

func TestConfigFile(t *testing.T) {
	path := writeCatalog(t, smallCatalog)
	cfg := filepath.Join(t.TempDir(), "catalogctl.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("catalog: "+path+"\n"), 0o644))

	out, err := run(t, "--config", cfg, "categories")
	require.NoError(t, err)
	assert.Contains(t, out, "animation")
	assert.NotContains(t, out, "react-hooks")

	_, err = run(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "categories")
	require.ErrorContains(t, err, "failed to read config file")
}

func TestWatchFile(t *testing.T) {
	path := writeCatalog(t, smallCatalog)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- watchFile(ctx, path, 20*time.Millisecond, zap.NewNop(), func() { calls.Add(1) })
	}()

	// give the watcher time to register before writing
	time.Sleep(100 * time.Millisecond)
	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(path, []byte(smallCatalog), 0o644))
	}

	require.Eventually(t, func() bool { return calls.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)
	cancel()
	require.NoError(t, <-done)
}
