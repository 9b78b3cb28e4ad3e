package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/docnav-labs/docnav/internal/nav"
)

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the manifest against the docs directory",
		Long: `Validate the navigation manifest and the documents it points at.

Reports duplicate folder paths, colliding file names, empty names, and
manifest entries whose markdown file is missing on disk. Exits non-zero
when problems are found, so it fits CI pipelines.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd)
		},
	}
}

func runCheck(cmd *cobra.Command) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	r := cmdCtx.Renderer

	problems := nav.Validate(cmdCtx.Tree)
	for _, f := range cmdCtx.Tree.Flatten() {
		path := cmdCtx.Store.FilePath(f.Path())
		if _, err := os.Stat(path); err != nil {
			problems = append(problems, fmt.Errorf("document %q has no file at %s", f.Path(), path))
		}
	}

	if len(problems) == 0 {
		r.Printf("OK: %d documents, manifest %s\n", cmdCtx.Tree.TotalDocumentCount(), cmdCtx.Cfg.Manifest)
		return nil
	}

	for _, p := range problems {
		r.Errorf("problem: %v\n", p)
	}
	return fmt.Errorf("%d problem(s) found", len(problems))
}
