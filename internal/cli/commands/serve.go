package commands

import (
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/docnav-labs/docnav/internal/ui"
)

// ServeOptions holds options for the serve command.
type ServeOptions struct {
	Port      int
	NoBrowser bool
	Watch     bool
	Dev       bool
}

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	opts := &ServeOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the documentation site server",
		Long: `Start a local web server for the documentation site.

The server renders the navigation manifest as a collapsible sidebar and the
markdown documents as HTML pages. Expand state lives in a browser cookie,
so each visitor keeps their own open folders.`,
		Example: `  # Serve on the default port
  docnav serve

  # Serve on a custom port and rebuild on file changes
  docnav serve --port 3000 --watch

  # Serve without auto-opening the browser
  docnav serve --no-browser`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, opts)
		},
	}

	cmd.Flags().IntVar(&opts.Port, "port", 0, "Port to serve on (default: 8787)")
	cmd.Flags().BoolVar(&opts.NoBrowser, "no-browser", false, "Don't auto-open browser")
	cmd.Flags().BoolVar(&opts.Watch, "watch", false, "Rebuild and reload on file changes")
	cmd.Flags().BoolVar(&opts.Dev, "dev", false, "Dev mode: push browser reloads over SSE")

	return cmd
}

func runServe(cmd *cobra.Command, opts *ServeOptions) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	cfg := cmdCtx.Cfg

	port := cfg.Port
	if opts.Port != 0 {
		port = opts.Port
	}
	watch := cfg.Watch
	if cmd.Flags().Changed("watch") {
		watch = opts.Watch
	}

	if _, err := os.Stat(cfg.DocsDir); os.IsNotExist(err) {
		return fmt.Errorf("docs directory does not exist: %s", cfg.DocsDir)
	}

	server := ui.NewServer(ui.Config{
		Tree:          cmdCtx.Tree,
		DocsDir:       cfg.DocsDir,
		ManifestPath:  cfg.Manifest,
		Port:          port,
		Watch:         watch,
		SessionSecret: sessionSecret(cfg.SessionSecret),
		Logger:        cmdCtx.Logger,
		Dev:           opts.Dev,
	})

	if !opts.NoBrowser {
		go openBrowser(fmt.Sprintf("http://localhost:%d", port))
	}

	fmt.Printf("Serving %d documents on http://localhost:%d\n", cmdCtx.Tree.TotalDocumentCount(), port)
	fmt.Println("Press Ctrl+C to stop")

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := server.Serve(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

// sessionSecret picks the cookie signing key: config wins, otherwise a
// fresh random key per process. Restarting the server then resets every
// visitor's expand state, which is fine for a docs site.
func sessionSecret(configured string) string {
	if configured != "" {
		return configured
	}
	return uuid.NewString()
}

// openBrowser opens the default browser to the specified URL.
func openBrowser(url string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url) //nolint:noctx
	case "linux":
		cmd = exec.Command("xdg-open", url) //nolint:noctx
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url) //nolint:noctx
	default:
		return
	}

	_ = cmd.Start()
}
