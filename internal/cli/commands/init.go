package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/docnav-labs/docnav/internal/cli/output"
)

const initConfig = `# docnav configuration
docs_dir: docs
manifest: docs/nav.yaml
port: 8787
watch: false
`

const initManifest = `title: My Documentation
files:
  - name: getting-started
    display_name: Getting Started
folders:
  - name: guides
    display_name: Guides
    files:
      - name: writing
        display_name: Writing Documents
`

const initGettingStarted = `# Getting Started

Welcome to your documentation site.

Run ` + "`docnav serve`" + ` and open the printed URL to browse it, or
` + "`docnav browse`" + ` to stay in the terminal.
`

const initWriting = `# Writing Documents

Documents are plain markdown files under the docs directory. The layout on
disk mirrors the navigation tree: a document listed in the ` + "`guides`" + `
folder lives at ` + "`docs/guides/<name>.md`" + `.

Add new documents to ` + "`docs/nav.yaml`" + ` and run ` + "`docnav check`" + `
to verify every entry has its file.
`

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new docnav site",
		Long: `Initialize a new documentation site with default structure.

This creates:
  - docnav.yaml configuration file
  - docs/ directory for markdown documents
  - docs/nav.yaml navigation manifest
  - two sample documents`,
		Example: `  # Initialize in current directory
  docnav init

  # Initialize in a new directory
  docnav init my-docs

  # Force overwrite existing config
  docnav init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			return runInit(NewCommandContextWithoutTree(cmd).Renderer, dir, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing configuration")

	return cmd
}

func runInit(r *output.Renderer, dir string, force bool) error {
	if dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	configPath := filepath.Join(dir, "docnav.yaml")
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("docnav.yaml already exists. Use --force to overwrite")
	}

	files := []struct {
		path    string
		content string
	}{
		{configPath, initConfig},
		{filepath.Join(dir, "docs", "nav.yaml"), initManifest},
		{filepath.Join(dir, "docs", "getting-started.md"), initGettingStarted},
		{filepath.Join(dir, "docs", "guides", "writing.md"), initWriting},
	}

	for _, f := range files {
		if err := os.MkdirAll(filepath.Dir(f.path), 0750); err != nil {
			return fmt.Errorf("failed to create %s: %w", filepath.Dir(f.path), err)
		}
		if err := os.WriteFile(f.path, []byte(f.content), 0600); err != nil {
			return fmt.Errorf("failed to write %s: %w", f.path, err)
		}
		r.Printf("created %s\n", f.path)
	}

	r.Println("")
	r.Success("Documentation site initialized!")
	r.Println("")
	r.Println("Next steps:")
	r.Println("  1. Edit docs/nav.yaml to shape the navigation tree")
	r.Println("  2. Add markdown files under docs/")
	r.Println("  3. Run 'docnav serve' to view the site")

	return nil
}
