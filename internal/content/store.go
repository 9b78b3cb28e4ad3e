// Package content locates and renders the markdown behind a document tree
// path. It is the loading collaborator the navigation core delegates to:
// nav decides which paths exist, content turns a path into displayable
// output and owns the not-found case.
package content

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned when no markdown file backs the requested path.
var ErrNotFound = errors.New("document not found")

// Store reads raw document markdown from a docs directory whose layout
// mirrors the navigation tree: the folder segments of a tree path map to
// subdirectories and the trailing segment to "{name}.md".
type Store struct {
	docsDir string
}

// NewStore creates a store rooted at docsDir.
func NewStore(docsDir string) *Store {
	return &Store{docsDir: docsDir}
}

// FilePath returns the on-disk location for a tree path such as
// "core/decorator". Folder segments are preserved exactly; only the
// trailing segment grows the .md extension.
func (s *Store) FilePath(treePath string) string {
	return filepath.Join(s.docsDir, filepath.FromSlash(treePath)+".md")
}

// Raw returns the markdown source for a tree path.
func (s *Store) Raw(treePath string) ([]byte, error) {
	if !validTreePath(treePath) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, treePath)
	}
	data, err := os.ReadFile(s.FilePath(treePath))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %q", ErrNotFound, treePath)
		}
		return nil, fmt.Errorf("failed to read document %q: %w", treePath, err)
	}
	return data, nil
}

// HTML returns the document rendered to HTML.
func (s *Store) HTML(treePath string) (string, error) {
	src, err := s.Raw(treePath)
	if err != nil {
		return "", err
	}
	return RenderHTML(src)
}

// validTreePath rejects paths that could escape the docs directory. Tree
// paths come from URLs, not from the trusted manifest, so this one check
// stays in the collaborator.
func validTreePath(treePath string) bool {
	if treePath == "" || strings.HasPrefix(treePath, "/") {
		return false
	}
	for _, seg := range strings.Split(treePath, "/") {
		if seg == "" || seg == "." || seg == ".." {
			return false
		}
	}
	return true
}
