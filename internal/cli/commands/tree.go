package commands

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/docnav-labs/docnav/internal/cli/output"
	"github.com/docnav-labs/docnav/internal/nav"
)

// NewTreeCommand creates the tree command.
func NewTreeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Print the documentation tree",
		Long: `Print the full documentation tree with per-folder document counts.

Output adapts to environment:
  - Terminal: styled table
  - Piped/Scripted: markdown list

Use --output to override: auto, text, markdown, json`,
		Example: `  # Print the tree (auto-detect output format)
  docnav tree

  # Print the tree as JSON
  docnav tree --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTree(cmd)
		},
	}

	return cmd
}

func runTree(cmd *cobra.Command) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	// Expand everything so the listing shows the full tree.
	state := nav.NewTreeState(folderPaths(cmdCtx.Tree.Folders)...)
	rows := nav.Walk(cmdCtx.Tree, state, "")

	r := cmdCtx.Renderer
	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(rows)
	case output.ModeMarkdown:
		treeMarkdown(r, cmdCtx.Tree, rows)
		return nil
	default:
		treeText(r, cmdCtx.Tree, rows)
		return nil
	}
}

func treeText(r *output.Renderer, tree *nav.DocTree, rows []nav.Row) {
	r.Header(1, fmt.Sprintf("%s (%d documents)", tree.Title, tree.TotalDocumentCount()))

	t := table.NewWriter()
	t.SetOutputMirror(r.Writer())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Name", "Docs", "Link"})

	for _, row := range rows {
		indent := strings.Repeat("  ", row.Depth)
		if row.IsFolder() {
			t.AppendRow(table.Row{indent + row.DisplayName + "/", row.Count, ""})
		} else {
			t.AppendRow(table.Row{indent + row.DisplayName, "", row.Link})
		}
	}
	t.Render()
}

func treeMarkdown(r *output.Renderer, tree *nav.DocTree, rows []nav.Row) {
	r.Println(output.FormatHeader(1, fmt.Sprintf("%s (%d documents)", tree.Title, tree.TotalDocumentCount())))
	r.Println("")
	for _, row := range rows {
		indent := strings.Repeat("  ", row.Depth)
		if row.IsFolder() {
			r.Printf("%s- **%s/** (%d)\n", indent, row.DisplayName, row.Count)
		} else {
			r.Printf("%s- [%s](%s)\n", indent, row.DisplayName, row.Link)
		}
	}
}

func folderPaths(folders []nav.DocFolder) []string {
	var paths []string
	for _, d := range folders {
		paths = append(paths, d.FullPath)
		paths = append(paths, folderPaths(d.SubFolders)...)
	}
	return paths
}
