package nav

import "sort"

// TreeState is the set of folder fullPaths the user has opened. Every
// folder starts collapsed, including identifiers the state has never seen.
// A TreeState belongs to exactly one navigation surface (one HTTP session,
// one TUI model); operations are synchronous and unlocked.
type TreeState struct {
	expanded map[string]struct{}
}

// NewTreeState creates a TreeState with the given folders already
// expanded. With no arguments everything is collapsed.
func NewTreeState(expanded ...string) *TreeState {
	s := &TreeState{expanded: make(map[string]struct{}, len(expanded))}
	for _, p := range expanded {
		s.expanded[p] = struct{}{}
	}
	return s
}

// IsExpanded reports whether the folder at fullPath is currently open.
func (s *TreeState) IsExpanded(fullPath string) bool {
	_, ok := s.expanded[fullPath]
	return ok
}

// Toggle flips the expand state of exactly one folder. Ancestors and
// descendants keep their own flags: collapsing a parent hides an expanded
// child but does not clear it. Toggling twice restores the prior state.
func (s *TreeState) Toggle(fullPath string) {
	if _, ok := s.expanded[fullPath]; ok {
		delete(s.expanded, fullPath)
		return
	}
	s.expanded[fullPath] = struct{}{}
}

// Paths returns the expanded fullPaths in sorted order, suitable for
// storing in a session cookie.
func (s *TreeState) Paths() []string {
	paths := make([]string, 0, len(s.expanded))
	for p := range s.expanded {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
