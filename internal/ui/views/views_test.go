package views

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docnav-labs/docnav/internal/nav"
)

func sampleSidebar() SidebarData {
	return SidebarData{
		SiteTitle: "Framework Docs",
		Current:   "/docs/core/guard",
		Total:     3,
		Rows: []nav.Row{
			{Kind: nav.RowFile, Name: "react-introduction", DisplayName: "Introduction", Link: "/docs/react-introduction"},
			{Kind: nav.RowFolder, Depth: 0, Name: "core", DisplayName: "Core", FullPath: "core", Count: 2, Expanded: true},
			{Kind: nav.RowFile, Depth: 1, Name: "guard", DisplayName: "Guards", Link: "/docs/core/guard", Active: true},
		},
	}
}

func TestSidebar(t *testing.T) {
	out, err := Sidebar(sampleSidebar())
	require.NoError(t, err)

	assert.Contains(t, out, `id="sidebar"`)
	assert.Contains(t, out, "Framework Docs")
	assert.Contains(t, out, "3 docs")
	assert.Contains(t, out, `href="/docs/react-introduction"`)
	assert.Contains(t, out, `@post('/api/nav/toggle/core?current=/docs/core/guard')`)
	assert.Contains(t, out, `class="row file active"`)
	// Expanded folders show the open caret.
	assert.Contains(t, out, "▾")
}

func TestSidebarCollapsedFolder(t *testing.T) {
	data := sampleSidebar()
	data.Rows[1].Expanded = false
	data.Rows = data.Rows[:2]

	out, err := Sidebar(data)
	require.NoError(t, err)

	assert.Contains(t, out, "▸", "collapsed folders show the closed caret")
	assert.NotContains(t, out, `href="/docs/core/guard"`)
}

func TestPage(t *testing.T) {
	var sb strings.Builder
	err := Page(&sb, PageData{
		Title:     "Guards",
		SiteTitle: "Framework Docs",
		Sidebar:   sampleSidebar(),
		Content:   "<h1>Guards</h1>",
	})
	require.NoError(t, err)

	out := sb.String()
	assert.Contains(t, out, "<!doctype html>")
	assert.Contains(t, out, "<title>Guards - Framework Docs</title>")
	assert.Contains(t, out, "<h1>Guards</h1>", "rendered markdown passes through unescaped")
	assert.NotContains(t, out, "data-on-load", "reload wiring is dev-only")
}

func TestPageDevMode(t *testing.T) {
	var sb strings.Builder
	err := Page(&sb, PageData{Title: "Home", SiteTitle: "Docs", Dev: true})
	require.NoError(t, err)
	assert.Contains(t, sb.String(), `data-on-load="@get('/reload')"`)
}

func TestPageNotFound(t *testing.T) {
	var sb strings.Builder
	err := Page(&sb, PageData{Title: "Missing", SiteTitle: "Docs", NotFound: true})
	require.NoError(t, err)
	assert.Contains(t, sb.String(), "Document not found")
}
