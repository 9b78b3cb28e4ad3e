// Package common provides shared plumbing for UI features: the live tree
// source, the session-backed expand state, and JSON responses.
package common

import (
	"sync"

	"github.com/docnav-labs/docnav/internal/nav"
)

// TreeSource hands features the current document tree. The tree itself is
// immutable; in watch mode the server swaps in a freshly built one, so
// reads go through a lock while the navigation core stays lock-free.
type TreeSource struct {
	mu   sync.RWMutex
	tree *nav.DocTree
}

// NewTreeSource creates a source serving the given tree.
func NewTreeSource(tree *nav.DocTree) *TreeSource {
	return &TreeSource{tree: tree}
}

// Tree returns the current document tree.
func (s *TreeSource) Tree() *nav.DocTree {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree
}

// Replace swaps in a newly built tree.
func (s *TreeSource) Replace(tree *nav.DocTree) {
	s.mu.Lock()
	s.tree = tree
	s.mu.Unlock()
}
