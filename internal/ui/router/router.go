// Package router sets up HTTP routes for the UI server.
package router

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/docnav-labs/docnav/internal/content"
	"github.com/docnav-labs/docnav/internal/ui/features/common"
	documentFeature "github.com/docnav-labs/docnav/internal/ui/features/document"
	navFeature "github.com/docnav-labs/docnav/internal/ui/features/nav"
	"github.com/docnav-labs/docnav/internal/ui/notifier"
	"github.com/docnav-labs/docnav/internal/ui/resources"
)

// SetupRoutes configures all routes for the UI server.
func SetupRoutes(
	router chi.Router,
	source *common.TreeSource,
	store *content.Store,
	sessionStore *sessions.CookieStore,
	notify *notifier.Notifier,
	logger *slog.Logger,
	isDev bool,
) {
	// Hot reload endpoint for dev mode
	if isDev {
		setupReload(router, notify)
	}

	// Static assets
	router.Handle("/static/*", resources.Handler())

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	// Feature routes
	navFeature.SetupRoutes(router, source, sessionStore, logger)
	documentFeature.SetupRoutes(router, source, store, sessionStore, logger, isDev)
}

// setupReload keeps one SSE connection open per browser tab and pushes a
// reload script whenever the notifier broadcasts, which the watcher does
// after every tree rebuild. The once reload covers server restarts: a tab
// reconnecting to a fresh process refreshes itself immediately.
func setupReload(router chi.Router, notify *notifier.Notifier) {
	var hotReloadOnce sync.Once

	router.Get("/reload", func(w http.ResponseWriter, r *http.Request) {
		sse := datastar.NewSSE(w, r)
		reload := func() { _ = sse.ExecuteScript("window.location.reload()") }
		hotReloadOnce.Do(reload)

		id, changes := notify.Subscribe()
		defer notify.Unsubscribe(id)

		select {
		case <-changes:
			reload()
		case <-r.Context().Done():
		}
	})
}
