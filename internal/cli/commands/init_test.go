package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docnav-labs/docnav/internal/cli/output"
	"github.com/docnav-labs/docnav/internal/nav"
)

func testRenderer() (*output.Renderer, *bytes.Buffer) {
	buf := new(bytes.Buffer)
	return output.NewRenderer(buf, buf, output.ModeMarkdown), buf
}

func TestRunInit_CreatesSite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "site")
	r, buf := testRenderer()

	require.NoError(t, runInit(r, dir, false))

	for _, rel := range []string{
		"docnav.yaml",
		"docs/nav.yaml",
		"docs/getting-started.md",
		"docs/guides/writing.md",
	} {
		_, err := os.Stat(filepath.Join(dir, filepath.FromSlash(rel)))
		assert.NoError(t, err, "expected %s to exist", rel)
	}
	assert.Contains(t, buf.String(), "initialized")

	// The scaffolded manifest must load and point at existing files.
	tree, err := nav.LoadManifest(filepath.Join(dir, "docs", "nav.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 2, tree.TotalDocumentCount())
	assert.Empty(t, nav.Validate(tree))
}

func TestInitManifestScaffold_KeepsDisplayNames(t *testing.T) {
	// The scaffold text must parse with the manifest schema as written;
	// a key drift here silently degrades every display name to its raw
	// file name.
	tree, err := nav.ParseManifest([]byte(initManifest))
	require.NoError(t, err)

	require.Len(t, tree.RootFiles, 1)
	assert.Equal(t, "Getting Started", tree.RootFiles[0].DisplayName)

	require.Len(t, tree.Folders, 1)
	assert.Equal(t, "Guides", tree.Folders[0].DisplayName)
	require.Len(t, tree.Folders[0].Files, 1)
	assert.Equal(t, "Writing Documents", tree.Folders[0].Files[0].DisplayName)
}

func TestRunInit_RefusesExistingConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "docnav.yaml"), []byte("port: 1\n"), 0600))
	r, _ := testRenderer()

	err := runInit(r, dir, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestRunInit_ForceOverwrites(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "docnav.yaml"), []byte("port: 1\n"), 0600))
	r, _ := testRenderer()

	require.NoError(t, runInit(r, dir, true))

	data, err := os.ReadFile(filepath.Join(dir, "docnav.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "docs_dir: docs")
}
