package nav

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Manifest is the on-disk navigation descriptor. Order matters: files and
// folders appear in the sidebar exactly as listed.
type Manifest struct {
	Title   string           `yaml:"title"`
	Files   []fileDescriptor `yaml:"files"`
	Folders []folderDesc     `yaml:"folders"`
}

type fileDescriptor struct {
	Name        string `yaml:"name"`
	DisplayName string `yaml:"display_name"`
}

type folderDesc struct {
	Name        string           `yaml:"name"`
	DisplayName string           `yaml:"display_name"`
	Path        string           `yaml:"path"`
	Files       []fileDescriptor `yaml:"files"`
	Folders     []folderDesc     `yaml:"folders"`
}

// LoadManifest reads and builds the document tree from a YAML manifest.
func LoadManifest(path string) (*DocTree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	return ParseManifest(data)
}

// ParseManifest builds the document tree from raw manifest YAML. Folder
// fullPaths default to their slash-joined position in the hierarchy when
// the manifest does not set them explicitly; file folder references are
// always derived from the containing folder.
func ParseManifest(data []byte) (*DocTree, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	return m.Build(), nil
}

// Build converts the manifest into an immutable DocTree.
func (m *Manifest) Build() *DocTree {
	tree := &DocTree{Title: m.Title}
	for _, fd := range m.Files {
		tree.RootFiles = append(tree.RootFiles, buildFile(fd, ""))
	}
	for _, dd := range m.Folders {
		tree.Folders = append(tree.Folders, buildFolder(dd, ""))
	}
	return tree
}

func buildFile(fd fileDescriptor, folder string) DocFile {
	display := fd.DisplayName
	if display == "" {
		display = fd.Name
	}
	return DocFile{Name: fd.Name, DisplayName: display, Folder: folder}
}

func buildFolder(dd folderDesc, parentPath string) DocFolder {
	fullPath := dd.Path
	if fullPath == "" {
		fullPath = dd.Name
		if parentPath != "" {
			fullPath = parentPath + "/" + dd.Name
		}
	}
	display := dd.DisplayName
	if display == "" {
		display = dd.Name
	}
	folder := DocFolder{Name: dd.Name, DisplayName: display, FullPath: fullPath}
	for _, fd := range dd.Files {
		folder.Files = append(folder.Files, buildFile(fd, fullPath))
	}
	for _, sub := range dd.Folders {
		folder.SubFolders = append(folder.SubFolders, buildFolder(sub, fullPath))
	}
	return folder
}

// Validate checks the caller-upheld invariants the runtime trusts: folder
// fullPaths unique across the tree and file names unique among siblings.
// The navigation operations never run these checks themselves; this is for
// `docnav check` and tests.
func Validate(tree *DocTree) []error {
	var errs []error
	seen := make(map[string]struct{})
	errs = append(errs, validateFiles("", tree.RootFiles)...)
	for _, d := range tree.Folders {
		errs = append(errs, validateFolder(d, seen)...)
	}
	return errs
}

func validateFolder(d DocFolder, seen map[string]struct{}) []error {
	var errs []error
	if d.Name == "" {
		errs = append(errs, fmt.Errorf("folder %q has no name", d.FullPath))
	}
	if _, dup := seen[d.FullPath]; dup {
		errs = append(errs, fmt.Errorf("duplicate folder path %q", d.FullPath))
	}
	seen[d.FullPath] = struct{}{}

	errs = append(errs, validateFiles(d.FullPath, d.Files)...)
	for _, sub := range d.SubFolders {
		errs = append(errs, validateFolder(sub, seen)...)
	}
	return errs
}

func validateFiles(folder string, files []DocFile) []error {
	var errs []error
	names := make(map[string]struct{}, len(files))
	for _, f := range files {
		if f.Name == "" {
			errs = append(errs, fmt.Errorf("file in folder %q has no name", folder))
			continue
		}
		if _, dup := names[f.Name]; dup {
			errs = append(errs, fmt.Errorf("duplicate file name %q in folder %q", f.Name, folder))
		}
		names[f.Name] = struct{}{}
	}
	return errs
}
