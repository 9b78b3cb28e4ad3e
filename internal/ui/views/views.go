// Package views renders the server-side HTML for the documentation site:
// the full page shell and the sidebar fragment that gets patched over SSE
// when a folder is toggled.
package views

import (
	"embed"
	"html/template"
	"io"
	"strings"

	"github.com/docnav-labs/docnav/internal/nav"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var tmpl = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// SidebarData feeds the sidebar fragment.
type SidebarData struct {
	SiteTitle string
	Rows      []nav.Row
	// Current is the active route, threaded through toggle requests so a
	// re-rendered sidebar keeps the right file highlighted.
	Current string
	Total   int
}

// PageData feeds the full page shell.
type PageData struct {
	Title     string
	SiteTitle string
	Dev       bool
	Sidebar   SidebarData
	Content   template.HTML
	NotFound  bool
}

// Page writes the full document page.
func Page(w io.Writer, data PageData) error {
	return tmpl.ExecuteTemplate(w, "page", data)
}

// Sidebar renders the sidebar fragment to a string for SSE element
// patching.
func Sidebar(data SidebarData) (string, error) {
	var sb strings.Builder
	if err := tmpl.ExecuteTemplate(&sb, "sidebar", data); err != nil {
		return "", err
	}
	return sb.String(), nil
}
