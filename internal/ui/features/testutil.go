// Package features provides shared test utilities for UI feature tests.
package features

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/require"

	"github.com/docnav-labs/docnav/internal/content"
	"github.com/docnav-labs/docnav/internal/nav"
	"github.com/docnav-labs/docnav/internal/ui/features/common"
	"github.com/docnav-labs/docnav/internal/ui/notifier"
)

// TestDoc describes one markdown document for a fixture, addressed by its
// tree path ("core/decorator" puts decorator.md inside the core folder).
type TestDoc struct {
	Path     string
	Title    string
	Markdown string
}

// TestFixture holds everything a feature handler test needs.
type TestFixture struct {
	Source       *common.TreeSource
	Store        *content.Store
	SessionStore *sessions.CookieStore
	Notifier     *notifier.Notifier
	Logger       *slog.Logger
	DocsDir      string
}

// SetupTestFixture writes the given documents into a temp docs directory,
// builds the matching tree, and wires the shared collaborators.
func SetupTestFixture(t *testing.T, docs ...TestDoc) *TestFixture {
	t.Helper()

	docsDir := t.TempDir()
	tree := &nav.DocTree{Title: "Test Docs"}

	for _, d := range docs {
		markdown := d.Markdown
		if markdown == "" {
			markdown = "# " + d.title() + "\n\nBody of " + d.Path + ".\n"
		}

		rel := filepath.FromSlash(d.Path) + ".md"
		full := filepath.Join(docsDir, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0750))
		require.NoError(t, os.WriteFile(full, []byte(markdown), 0600))

		addDoc(tree, d)
	}

	return &TestFixture{
		Source:       common.NewTreeSource(tree),
		Store:        content.NewStore(docsDir),
		SessionStore: NewTestSessionStore(),
		Notifier:     notifier.New(),
		Logger:       slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})),
		DocsDir:      docsDir,
	}
}

// NewTestSessionStore creates a cookie session store with a fixed test key.
func NewTestSessionStore() *sessions.CookieStore {
	return sessions.NewCookieStore([]byte("test-secret-key-32-bytes-long!!!"))
}

// RequestWithPathParam wraps a request with a chi wildcard URL param so
// handlers can be invoked without a full router.
func RequestWithPathParam(r *http.Request, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("*", value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func (d TestDoc) title() string {
	if d.Title != "" {
		return d.Title
	}
	return d.Path
}

// addDoc grows the tree to hold the document, creating each ancestor folder
// on first use.
func addDoc(tree *nav.DocTree, d TestDoc) {
	segs := strings.Split(d.Path, "/")
	name := segs[len(segs)-1]

	if len(segs) == 1 {
		tree.RootFiles = append(tree.RootFiles, nav.DocFile{Name: name, DisplayName: d.title()})
		return
	}

	folders := &tree.Folders
	prefix := ""
	var folder *nav.DocFolder
	for _, seg := range segs[:len(segs)-1] {
		if prefix == "" {
			prefix = seg
		} else {
			prefix = prefix + "/" + seg
		}
		folder = nil
		for i := range *folders {
			if (*folders)[i].FullPath == prefix {
				folder = &(*folders)[i]
				break
			}
		}
		if folder == nil {
			*folders = append(*folders, nav.DocFolder{Name: seg, DisplayName: seg, FullPath: prefix})
			folder = &(*folders)[len(*folders)-1]
		}
		folders = &folder.SubFolders
	}
	folder.Files = append(folder.Files, nav.DocFile{Name: name, DisplayName: d.title(), Folder: prefix})
}
