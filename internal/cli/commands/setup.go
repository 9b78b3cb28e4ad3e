package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/docnav-labs/docnav/internal/cli/output"
	"github.com/docnav-labs/docnav/internal/config"
	"github.com/docnav-labs/docnav/internal/content"
	"github.com/docnav-labs/docnav/internal/nav"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Tree     *nav.DocTree
	Store    *content.Store
	Renderer *output.Renderer
}

// NewCommandContext loads the manifest and wires the content store and
// renderer for commands that read the documentation tree.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	cmdCtx := NewCommandContextWithoutTree(cmd)

	tree, err := nav.LoadManifest(cmdCtx.Cfg.Manifest)
	if err != nil {
		return nil, fmt.Errorf("failed to load manifest: %w", err)
	}
	cmdCtx.Tree = tree
	cmdCtx.Store = content.NewStore(cmdCtx.Cfg.DocsDir)

	return cmdCtx, nil
}

// NewCommandContextWithoutTree wires config, logger, and renderer only.
func NewCommandContextWithoutTree(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	return &CommandContext{
		Cfg:      cfg,
		Logger:   config.GetLogger(cmd.Context()),
		Renderer: output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.Output)),
	}
}

// getConfig returns the current configuration, falling back to environment
// variables with defaults when the root command has not loaded one.
func getConfig() *config.Config {
	if cfg := config.GetCurrent(); cfg != nil {
		return cfg
	}
	return &config.Config{
		DocsDir:  getEnvOrDefault("DOCNAV_DOCS_DIR", config.DefaultDocsDir),
		Manifest: getEnvOrDefault("DOCNAV_MANIFEST", config.DefaultManifest),
		Port:     config.DefaultPort,
		Output:   config.DefaultOutput,
	}
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
