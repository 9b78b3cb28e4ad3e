package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDocsDir(t *testing.T) *Store {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "core"), 0750))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "react-introduction.md"),
		[]byte("# Introduction\n\nWelcome to the docs.\n"), 0600))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "core", "decorator.md"),
		[]byte("# Decorators\n\nUse `@Injectable()`.\n"), 0600))

	return NewStore(dir)
}

func TestFilePathPreservesFolderSegments(t *testing.T) {
	s := NewStore("/srv/docs")

	tests := []struct {
		treePath string
		expected string
	}{
		{"react-introduction", filepath.Join("/srv/docs", "react-introduction.md")},
		{"core/decorator", filepath.Join("/srv/docs", "core", "decorator.md")},
		{"init/env-config/dotenv", filepath.Join("/srv/docs", "init", "env-config", "dotenv.md")},
	}

	for _, tt := range tests {
		t.Run(tt.treePath, func(t *testing.T) {
			assert.Equal(t, tt.expected, s.FilePath(tt.treePath))
		})
	}
}

func TestRaw(t *testing.T) {
	s := setupDocsDir(t)

	data, err := s.Raw("core/decorator")
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Decorators")

	_, err = s.Raw("core/missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRawRejectsEscapingPaths(t *testing.T) {
	s := setupDocsDir(t)

	for _, p := range []string{"", "..", "../etc/passwd", "core/../../x", "/abs", "core//decorator"} {
		_, err := s.Raw(p)
		assert.ErrorIs(t, err, ErrNotFound, "path %q must not resolve", p)
	}
}

func TestHTML(t *testing.T) {
	s := setupDocsDir(t)

	out, err := s.HTML("react-introduction")
	require.NoError(t, err)
	assert.Contains(t, out, "<h1 id=\"introduction\">Introduction</h1>")
	assert.Contains(t, out, "Welcome to the docs.")
}

func TestRenderHTML(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		contains string
	}{
		{
			name:     "heading",
			src:      "# Title",
			contains: "<h1",
		},
		{
			name:     "inline code",
			src:      "run `docnav serve`",
			contains: "<code>docnav serve</code>",
		},
		{
			name:     "gfm table",
			src:      "| a | b |\n|---|---|\n| 1 | 2 |",
			contains: "<table>",
		},
		{
			name:     "autolink",
			src:      "see https://example.com",
			contains: "<a href=\"https://example.com\"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := RenderHTML([]byte(tt.src))
			require.NoError(t, err)
			assert.Contains(t, out, tt.contains)
		})
	}
}
