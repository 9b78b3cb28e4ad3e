package commands

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docnav-labs/docnav/internal/config"
	"github.com/docnav-labs/docnav/internal/nav"
)

func TestRunTree_Markdown(t *testing.T) {
	setupSite(t, checkManifest, "intro.md", "guides/writing.md")

	out, err := runCommand(t, NewTreeCommand())

	require.NoError(t, err)
	assert.Contains(t, out, "# Check Docs (2 documents)")
	assert.Contains(t, out, "- [Introduction](/docs/intro)")
	assert.Contains(t, out, "- **Guides/** (1)")
	assert.Contains(t, out, "  - [Writing](/docs/guides/writing)")
}

func TestRunTree_JSON(t *testing.T) {
	setupSite(t, checkManifest, "intro.md", "guides/writing.md")
	cfg := config.GetCurrent()
	cfg.Output = "json"

	out, err := runCommand(t, NewTreeCommand())
	require.NoError(t, err)

	var rows []nav.Row
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 3)
	assert.Equal(t, nav.RowFile, rows[0].Kind)
	assert.Equal(t, nav.RowFolder, rows[1].Kind)
	assert.True(t, rows[1].Expanded)
	assert.Equal(t, 1, rows[2].Depth)
}

func TestFolderPaths_Recursive(t *testing.T) {
	folders := []nav.DocFolder{
		{FullPath: "a", SubFolders: []nav.DocFolder{
			{FullPath: "a/b", SubFolders: []nav.DocFolder{{FullPath: "a/b/c"}}},
		}},
		{FullPath: "d"},
	}

	assert.Equal(t, []string{"a", "a/b", "a/b/c", "d"}, folderPaths(folders))
}
