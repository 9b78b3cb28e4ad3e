// Package nav holds the navigation model for a documentation site: the
// static folder/file tree, route-path derivation, expand/collapse state,
// and the flattened row contract consumed by renderers.
package nav

// DocFile is a leaf document. Name is unique within its containing folder
// and doubles as the trailing route segment. Folder is the fullPath of the
// containing folder, empty for root-level files.
type DocFile struct {
	Name        string `json:"name" yaml:"name"`
	DisplayName string `json:"display_name" yaml:"display_name"`
	Folder      string `json:"folder,omitempty" yaml:"-"`
}

// Path returns the tree position of the file as a slash-joined path:
// "{folder}/{name}" for nested files, "{name}" for root files.
func (f DocFile) Path() string {
	if f.Folder == "" {
		return f.Name
	}
	return f.Folder + "/" + f.Name
}

// DocFolder is a uniquely-pathed container of files and nested folders.
// FullPath is slash-joined from the root and unique across the tree.
// A folder exclusively owns its Files and SubFolders; there are no parent
// back-references, so the structure is acyclic by construction.
type DocFolder struct {
	Name        string      `json:"name"`
	DisplayName string      `json:"display_name"`
	FullPath    string      `json:"full_path"`
	Files       []DocFile   `json:"files"`
	SubFolders  []DocFolder `json:"folders,omitempty"`
}

// CountFiles returns the number of leaf documents under the folder,
// including every nested subfolder. An empty folder counts 0 and is still
// a valid, visible node.
func (d DocFolder) CountFiles() int {
	n := len(d.Files)
	for _, sub := range d.SubFolders {
		n += sub.CountFiles()
	}
	return n
}

// DocTree is the full document hierarchy. It is built once from the
// manifest at startup and read-only thereafter.
type DocTree struct {
	Title     string      `json:"title"`
	RootFiles []DocFile   `json:"files"`
	Folders   []DocFolder `json:"folders"`
}

// TotalDocumentCount returns the number of leaf documents in the whole
// tree: root files plus the recursive count of every top-level folder.
func (t *DocTree) TotalDocumentCount() int {
	n := len(t.RootFiles)
	for _, d := range t.Folders {
		n += d.CountFiles()
	}
	return n
}

// Flatten returns every leaf document in depth-first order: root files
// first, then each folder's files followed by its subfolders.
func (t *DocTree) Flatten() []DocFile {
	files := make([]DocFile, 0, t.TotalDocumentCount())
	files = append(files, t.RootFiles...)
	for _, d := range t.Folders {
		files = appendFolderFiles(files, d)
	}
	return files
}

func appendFolderFiles(files []DocFile, d DocFolder) []DocFile {
	files = append(files, d.Files...)
	for _, sub := range d.SubFolders {
		files = appendFolderFiles(files, sub)
	}
	return files
}

// FindFile looks up a document by its tree path (DocFile.Path form).
// The second return is false when no document sits at that path.
func (t *DocTree) FindFile(path string) (DocFile, bool) {
	for _, f := range t.Flatten() {
		if f.Path() == path {
			return f, true
		}
	}
	return DocFile{}, false
}

// FindFolder looks up a folder by its fullPath.
func (t *DocTree) FindFolder(fullPath string) (DocFolder, bool) {
	return findFolder(t.Folders, fullPath)
}

func findFolder(folders []DocFolder, fullPath string) (DocFolder, bool) {
	for _, d := range folders {
		if d.FullPath == fullPath {
			return d, true
		}
		if sub, ok := findFolder(d.SubFolders, fullPath); ok {
			return sub, true
		}
	}
	return DocFolder{}, false
}
