// Package ui provides the web server for the documentation site.
package ui

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/sessions"
	"golang.org/x/sync/errgroup"

	"github.com/docnav-labs/docnav/internal/content"
	"github.com/docnav-labs/docnav/internal/nav"
	"github.com/docnav-labs/docnav/internal/ui/features/common"
	"github.com/docnav-labs/docnav/internal/ui/notifier"
	"github.com/docnav-labs/docnav/internal/ui/router"
)

// Server is the documentation site server.
type Server struct {
	source       *common.TreeSource
	store        *content.Store
	sessionStore *sessions.CookieStore
	port         int
	watch        bool
	docsDir      string
	manifestPath string
	logger       *slog.Logger
	notifier     *notifier.Notifier
	isDev        bool
}

// Config holds configuration for the documentation server.
type Config struct {
	Tree          *nav.DocTree
	DocsDir       string
	ManifestPath  string
	Port          int
	Watch         bool
	SessionSecret string
	Logger        *slog.Logger
	Dev           bool
}

// NewServer creates a new documentation server instance.
func NewServer(cfg Config) *Server {
	sessionStore := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	sessionStore.MaxAge(86400 * 30) // 30 days
	sessionStore.Options.Path = "/"
	sessionStore.Options.HttpOnly = true
	sessionStore.Options.SameSite = http.SameSiteLaxMode

	return &Server{
		source:       common.NewTreeSource(cfg.Tree),
		store:        content.NewStore(cfg.DocsDir),
		sessionStore: sessionStore,
		port:         cfg.Port,
		watch:        cfg.Watch,
		docsDir:      cfg.DocsDir,
		manifestPath: cfg.ManifestPath,
		logger:       cfg.Logger,
		notifier:     notifier.New(),
		isDev:        cfg.Dev,
	}
}

// Serve starts the server and blocks until the context is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("starting documentation server", "addr", fmt.Sprintf("http://localhost:%d", s.port))

	eg, egctx := errgroup.WithContext(ctx)

	r := chi.NewMux()
	r.Use(
		middleware.Logger,
		middleware.Recoverer,
		middleware.Compress(5),
	)

	router.SetupRoutes(r, s.source, s.store, s.sessionStore, s.notifier, s.logger, s.isDev)

	srv := &http.Server{
		Addr:    addr,
		Handler: r,
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	if s.watch {
		eg.Go(func() error {
			return s.watchFiles(egctx)
		})
	}

	eg.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Debug("shutting down documentation server...")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}

// Notifier returns the server's notifier for SSE updates.
func (s *Server) Notifier() *notifier.Notifier {
	return s.notifier
}

// watchFiles watches the docs directory and the manifest for changes and
// rebuilds the tree.
func (s *Server) watchFiles(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	if err := watchDirRecursive(watcher, s.docsDir); err != nil {
		s.logger.Error("failed to watch docs directory", "error", err)
		// Don't fail - continue without watching
	}
	if dir := filepath.Dir(s.manifestPath); dir != s.docsDir {
		if err := watcher.Add(dir); err != nil {
			s.logger.Error("failed to watch manifest directory", "error", err)
		}
	}

	var debounceTimer *time.Timer

	for {
		select {
		case <-ctx.Done():
			return nil

		case event := <-watcher.Events:
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}

			ext := filepath.Ext(event.Name)
			if ext != ".md" && ext != ".yaml" && ext != ".yml" {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(100*time.Millisecond, func() {
				s.logger.Debug("file changed, rebuilding tree", "file", event.Name)
				s.rebuild()
			})

		case err := <-watcher.Errors:
			s.logger.Error("watcher error", "error", err)
		}
	}
}

// rebuild reloads the manifest, swaps the tree, and notifies SSE clients.
// A manifest that fails to parse keeps the previous tree serving.
func (s *Server) rebuild() {
	tree, err := nav.LoadManifest(s.manifestPath)
	if err != nil {
		s.logger.Error("manifest reload failed", "error", err)
		return
	}
	s.source.Replace(tree)
	s.notifier.Broadcast()
}

// watchDirRecursive adds a directory and all subdirectories to the watcher.
func watchDirRecursive(watcher *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
}
