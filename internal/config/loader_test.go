package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("docs-dir", "", "")
	fs.String("manifest", "", "")
	fs.Int("port", 0, "")
	fs.Bool("watch", false, "")
	fs.Bool("verbose", false, "")
	return fs
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultDocsDir, cfg.DocsDir)
	assert.Equal(t, DefaultManifest, cfg.Manifest)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultOutput, cfg.Output)
	assert.False(t, cfg.Watch)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "docnav.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"docs_dir: content\nport: 9000\nwatch: true\n"), 0600))

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "content", cfg.DocsDir)
	assert.Equal(t, 9000, cfg.Port)
	assert.True(t, cfg.Watch)
	// Untouched keys keep their defaults.
	assert.Equal(t, DefaultManifest, cfg.Manifest)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	assert.Error(t, err)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "docnav.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: 9000\n"), 0600))

	t.Setenv("DOCNAV_PORT", "9100")
	t.Setenv("DOCNAV_DOCS_DIR", "elsewhere")

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Port)
	assert.Equal(t, "elsewhere", cfg.DocsDir)
}

func TestLoadFlagsOverrideEverything(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "docnav.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: 9000\n"), 0600))
	t.Setenv("DOCNAV_PORT", "9100")

	fs := newFlagSet()
	require.NoError(t, fs.Parse([]string{"--port", "9200", "--docs-dir", "flagged"}))

	cfg, err := Load(path, fs)
	require.NoError(t, err)

	assert.Equal(t, 9200, cfg.Port)
	assert.Equal(t, "flagged", cfg.DocsDir)
}

func TestLoadUnsetFlagsDoNotOverride(t *testing.T) {
	fs := newFlagSet()
	require.NoError(t, fs.Parse(nil))

	cfg, err := Load("", fs)
	require.NoError(t, err)

	assert.Equal(t, DefaultPort, cfg.Port, "default flag values must not clobber defaults")
}
