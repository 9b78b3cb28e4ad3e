package nav

// RowKind distinguishes the two row variants a renderer deals with.
type RowKind string

const (
	RowFolder RowKind = "folder"
	RowFile   RowKind = "file"
)

// Row is one visible line of the navigation sidebar. Folder rows carry the
// aggregate document count and the expansion flag; file rows carry the
// route link and the active flag.
type Row struct {
	Kind        RowKind `json:"kind"`
	Depth       int     `json:"depth"`
	Name        string  `json:"name"`
	DisplayName string  `json:"display_name"`

	// Folder rows only.
	FullPath string `json:"full_path,omitempty"`
	Count    int    `json:"count,omitempty"`
	Expanded bool   `json:"expanded,omitempty"`

	// File rows only.
	Link   string `json:"link,omitempty"`
	Active bool   `json:"active,omitempty"`
}

// IsFolder reports whether the row is a folder row.
func (r Row) IsFolder() bool {
	return r.Kind == RowFolder
}

// Walk flattens the tree into the rows a renderer draws, depth-first in
// stored order: root files, then each folder's own row followed — only
// while the folder is expanded — by its direct files and its subfolders at
// depth+1. A collapsed folder contributes a single row; its descendants
// keep their own expand flags but stay hidden until it reopens.
func Walk(tree *DocTree, state *TreeState, currentLocation string) []Row {
	var rows []Row
	for _, f := range tree.RootFiles {
		rows = append(rows, fileRow(f, 0, currentLocation))
	}
	for _, d := range tree.Folders {
		rows = walkFolder(rows, d, 0, state, currentLocation)
	}
	return rows
}

func walkFolder(rows []Row, d DocFolder, depth int, state *TreeState, currentLocation string) []Row {
	expanded := state.IsExpanded(d.FullPath)
	rows = append(rows, Row{
		Kind:        RowFolder,
		Depth:       depth,
		Name:        d.Name,
		DisplayName: d.DisplayName,
		FullPath:    d.FullPath,
		Count:       d.CountFiles(),
		Expanded:    expanded,
	})
	if !expanded {
		return rows
	}
	for _, f := range d.Files {
		rows = append(rows, fileRow(f, depth+1, currentLocation))
	}
	for _, sub := range d.SubFolders {
		rows = walkFolder(rows, sub, depth+1, state, currentLocation)
	}
	return rows
}

func fileRow(f DocFile, depth int, currentLocation string) Row {
	link := LinkFor(f)
	return Row{
		Kind:        RowFile,
		Depth:       depth,
		Name:        f.Name,
		DisplayName: f.DisplayName,
		Link:        link,
		Active:      IsActive(link, currentLocation),
	}
}
