package nav

// LinkPrefix is the route prefix every document link starts with.
const LinkPrefix = "/docs/"

// LinkFor returns the route path for a document. Identical files always
// yield identical links; because file names are unique within a folder and
// folder fullPaths are unique across the tree, distinct files yield
// distinct links.
func LinkFor(f DocFile) string {
	return LinkPrefix + f.Path()
}

// IsActive reports whether a link is the currently displayed page.
// Matching is exact: a parent folder's path never counts as active just
// because a descendant is open.
func IsActive(link, currentLocation string) bool {
	return link == currentLocation
}
