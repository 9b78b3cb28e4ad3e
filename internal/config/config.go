// Package config loads docnav configuration the same way for every
// entry point: defaults, then docnav.yaml, then DOCNAV_* environment
// variables, then CLI flags.
package config

// Config file names searched in the working directory.
const (
	ConfigFileName    = "docnav.yaml"
	ConfigFileNameAlt = "docnav.yml"
)

// Default configuration values.
const (
	DefaultDocsDir  = "docs"
	DefaultManifest = "docs/nav.yaml"
	DefaultPort     = 8787
	DefaultOutput   = "auto"
)

// Config holds the resolved docnav configuration.
type Config struct {
	// DocsDir is the directory holding the markdown documents, laid out to
	// mirror the navigation tree.
	DocsDir string `koanf:"docs_dir"`

	// Manifest is the path to the navigation manifest YAML.
	Manifest string `koanf:"manifest"`

	// Port is the web server port.
	Port int `koanf:"port"`

	// Watch rebuilds the tree and reloads connected browsers when the
	// manifest or a document changes.
	Watch bool `koanf:"watch"`

	// SessionSecret signs the cookie session carrying sidebar expand
	// state. Generated per process when empty.
	SessionSecret string `koanf:"session_secret"`

	// Output selects CLI output format: auto, text, markdown, json.
	Output string `koanf:"output"`

	Verbose bool `koanf:"verbose"`
}
