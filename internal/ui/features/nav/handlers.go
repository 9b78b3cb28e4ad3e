// Package nav provides the sidebar feature for the web UI: the rendered
// tree rows, the toggle endpoint, and site summary data.
package nav

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
	"github.com/starfederation/datastar-go/datastar"

	navcore "github.com/docnav-labs/docnav/internal/nav"
	"github.com/docnav-labs/docnav/internal/ui/features/common"
	"github.com/docnav-labs/docnav/internal/ui/views"
)

// Handlers provides HTTP handlers for the sidebar feature.
type Handlers struct {
	source       *common.TreeSource
	sessionStore sessions.Store
	logger       *slog.Logger
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(source *common.TreeSource, sessionStore sessions.Store, logger *slog.Logger) *Handlers {
	return &Handlers{
		source:       source,
		sessionStore: sessionStore,
		logger:       logger,
	}
}

// Toggle flips the expand state of one folder in the visitor's session and
// patches the re-rendered sidebar over SSE. Unknown folder paths toggle a
// dormant flag and still succeed: toggle is total.
func (h *Handlers) Toggle(w http.ResponseWriter, r *http.Request) {
	fullPath := chi.URLParam(r, "*")
	current := r.URL.Query().Get("current")

	state := common.LoadTreeState(h.sessionStore, r)
	state.Toggle(fullPath)
	if err := common.SaveTreeState(h.sessionStore, r, w, state); err != nil {
		h.logger.Error("failed to save sidebar session", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	tree := h.source.Tree()
	fragment, err := views.Sidebar(views.SidebarData{
		SiteTitle: tree.Title,
		Rows:      navcore.Walk(tree, state, current),
		Current:   current,
		Total:     tree.TotalDocumentCount(),
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	sse := datastar.NewSSE(w, r)
	if err := sse.PatchElements(fragment); err != nil {
		_ = sse.ConsoleError(err)
	}
}

// TreeRows returns the renderer-contract rows as JSON: folder rows with
// counts and expansion flags, file rows with links and active flags,
// depth-first with collapsed subtrees omitted.
func (h *Handlers) TreeRows(w http.ResponseWriter, r *http.Request) {
	state := common.LoadTreeState(h.sessionStore, r)
	current := r.URL.Query().Get("current")

	rows := navcore.Walk(h.source.Tree(), state, current)
	if rows == nil {
		rows = []navcore.Row{}
	}
	common.RespondJSON(w, http.StatusOK, rows)
}

// siteInfo is the payload for the site summary endpoint.
type siteInfo struct {
	Title         string `json:"title"`
	DocumentCount int    `json:"document_count"`
	FolderCount   int    `json:"folder_count"`
}

// Site returns the site title and aggregate counts.
func (h *Handlers) Site(w http.ResponseWriter, _ *http.Request) {
	tree := h.source.Tree()
	common.RespondJSON(w, http.StatusOK, siteInfo{
		Title:         tree.Title,
		DocumentCount: tree.TotalDocumentCount(),
		FolderCount:   countFolders(tree.Folders),
	})
}

func countFolders(folders []navcore.DocFolder) int {
	n := len(folders)
	for _, d := range folders {
		n += countFolders(d.SubFolders)
	}
	return n
}
