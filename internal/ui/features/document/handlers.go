// Package document provides the document pages for the web UI: the
// server-rendered shell around each markdown document plus a JSON API for
// the rendered content.
package document

import (
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"github.com/docnav-labs/docnav/internal/content"
	navcore "github.com/docnav-labs/docnav/internal/nav"
	"github.com/docnav-labs/docnav/internal/ui/features/common"
	"github.com/docnav-labs/docnav/internal/ui/views"
)

// Handlers provides HTTP handlers for document pages.
type Handlers struct {
	source       *common.TreeSource
	store        *content.Store
	sessionStore sessions.Store
	logger       *slog.Logger
	isDev        bool
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(source *common.TreeSource, store *content.Store, sessionStore sessions.Store, logger *slog.Logger, isDev bool) *Handlers {
	return &Handlers{
		source:       source,
		store:        store,
		sessionStore: sessionStore,
		logger:       logger,
		isDev:        isDev,
	}
}

// Home redirects to the first document in the tree, or renders an empty
// shell when the manifest lists nothing.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	tree := h.source.Tree()
	if files := tree.Flatten(); len(files) > 0 {
		http.Redirect(w, r, navcore.LinkFor(files[0]), http.StatusFound)
		return
	}
	h.renderPage(w, r, tree, views.PageData{
		Title:     tree.Title,
		SiteTitle: tree.Title,
	}, "")
}

// Page renders a document page. The wildcard carries the full tree path,
// folder segments included.
func (h *Handlers) Page(w http.ResponseWriter, r *http.Request) {
	treePath := chi.URLParam(r, "*")
	tree := h.source.Tree()
	currentLocation := navcore.LinkPrefix + treePath

	file, ok := tree.FindFile(treePath)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		h.renderPage(w, r, tree, views.PageData{
			Title:     "Not Found",
			SiteTitle: tree.Title,
			NotFound:  true,
		}, currentLocation)
		return
	}

	html, err := h.store.HTML(file.Path())
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			// Listed in the manifest but missing on disk.
			h.logger.Warn("document listed but missing on disk", "path", file.Path())
			w.WriteHeader(http.StatusNotFound)
			h.renderPage(w, r, tree, views.PageData{
				Title:     file.DisplayName,
				SiteTitle: tree.Title,
				NotFound:  true,
			}, currentLocation)
			return
		}
		h.logger.Error("failed to render document", "path", file.Path(), "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.renderPage(w, r, tree, views.PageData{
		Title:     file.DisplayName,
		SiteTitle: tree.Title,
		Content:   template.HTML(html), //nolint:gosec // rendered from trusted local markdown
	}, currentLocation)
}

func (h *Handlers) renderPage(w http.ResponseWriter, r *http.Request, tree *navcore.DocTree, data views.PageData, currentLocation string) {
	state := common.LoadTreeState(h.sessionStore, r)
	data.Dev = h.isDev
	data.Sidebar = views.SidebarData{
		SiteTitle: tree.Title,
		Rows:      navcore.Walk(tree, state, currentLocation),
		Current:   currentLocation,
		Total:     tree.TotalDocumentCount(),
	}
	if err := views.Page(w, data); err != nil {
		h.logger.Error("failed to render page", "error", err)
	}
}

// documentPayload is the JSON shape for a rendered document.
type documentPayload struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Path        string `json:"path"`
	Link        string `json:"link"`
	HTML        string `json:"html"`
}

// API returns the rendered document as JSON.
func (h *Handlers) API(w http.ResponseWriter, r *http.Request) {
	treePath := chi.URLParam(r, "*")

	file, ok := h.source.Tree().FindFile(treePath)
	if !ok {
		common.RespondError(w, http.StatusNotFound, "document not found")
		return
	}

	html, err := h.store.HTML(file.Path())
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			common.RespondError(w, http.StatusNotFound, "document not found")
			return
		}
		common.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	common.RespondJSON(w, http.StatusOK, documentPayload{
		Name:        file.Name,
		DisplayName: file.DisplayName,
		Path:        file.Path(),
		Link:        navcore.LinkFor(file),
		HTML:        html,
	})
}
