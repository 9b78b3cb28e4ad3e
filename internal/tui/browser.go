// Package tui provides the terminal documentation browser: a collapsible
// tree pane next to a scrollable rendered document view.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/docnav-labs/docnav/internal/content"
	"github.com/docnav-labs/docnav/internal/nav"
)

const treePaneWidth = 34

// Model is the bubbletea model for the documentation browser.
type Model struct {
	tree  *nav.DocTree
	state *nav.TreeState
	store *content.Store

	rows    []nav.Row
	cursor  int
	current string // link of the open document

	viewport   viewport.Model
	mdRenderer *glamour.TermRenderer
	ready      bool
	width      int
	height     int
	status     string
}

// NewModel creates a browser over the given tree and content store. All
// folders start collapsed.
func NewModel(tree *nav.DocTree, store *content.Store) Model {
	m := Model{
		tree:  tree,
		state: nav.NewTreeState(),
		store: store,
	}
	m.rebuildRows()
	return m
}

// Run starts the browser and blocks until the user quits.
func Run(tree *nav.DocTree, store *content.Store) error {
	p := tea.NewProgram(NewModel(tree, store), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("browser error: %w", err)
	}
	return nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		contentWidth := max(msg.Width-treePaneWidth-4, 20)
		contentHeight := max(msg.Height-3, 5)
		if !m.ready {
			m.viewport = viewport.New(contentWidth, contentHeight)
			m.ready = true
		} else {
			m.viewport.Width = contentWidth
			m.viewport.Height = contentHeight
		}
		m.mdRenderer, _ = glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(min(contentWidth, 100)),
		)
		// Re-render the open document at the new width.
		if m.current != "" {
			m.openPath(strings.TrimPrefix(m.current, nav.LinkPrefix))
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "j", "down":
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
			return m, nil

		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case "g", "home":
			m.cursor = 0
			return m, nil

		case "G", "end":
			m.cursor = max(len(m.rows)-1, 0)
			return m, nil

		case "enter", " ", "l", "right":
			m.activate()
			return m, nil

		case "h", "left":
			// Collapse the folder under the cursor.
			if m.cursor < len(m.rows) {
				if row := m.rows[m.cursor]; row.IsFolder() && row.Expanded {
					m.state.Toggle(row.FullPath)
					m.rebuildRows()
				}
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// activate toggles a folder row or opens a file row.
func (m *Model) activate() {
	if m.cursor >= len(m.rows) {
		return
	}
	row := m.rows[m.cursor]
	if row.IsFolder() {
		m.state.Toggle(row.FullPath)
		m.rebuildRows()
		return
	}
	m.current = row.Link
	m.openPath(strings.TrimPrefix(row.Link, nav.LinkPrefix))
	m.rebuildRows()
}

func (m *Model) openPath(treePath string) {
	raw, err := m.store.Raw(treePath)
	if err != nil {
		m.status = fmt.Sprintf("cannot open %s: %v", treePath, err)
		m.viewport.SetContent(m.status)
		return
	}
	m.status = ""

	rendered := string(raw)
	if m.mdRenderer != nil {
		if out, rerr := m.mdRenderer.Render(string(raw)); rerr == nil {
			rendered = out
		}
	}
	m.viewport.SetContent(rendered)
	m.viewport.GotoTop()
}

// rebuildRows recomputes the visible rows and clamps the cursor.
func (m *Model) rebuildRows() {
	m.rows = nav.Walk(m.tree, m.state, m.current)
	if m.cursor >= len(m.rows) {
		m.cursor = max(len(m.rows)-1, 0)
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	treePane := treePaneStyle.Height(m.height - 2).Render(m.renderTree())
	contentPane := contentPaneStyle.Render(m.viewport.View())
	panes := lipgloss.JoinHorizontal(lipgloss.Top, treePane, contentPane)

	return panes + "\n" + m.renderFooter()
}

func (m Model) renderTree() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", titleStyle.Render(m.tree.Title))
	fmt.Fprintf(&b, "%s\n\n", mutedStyle.Render(fmt.Sprintf("%d documents", m.tree.TotalDocumentCount())))

	visible := max(m.height-7, 1)
	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}
	end := min(start+visible, len(m.rows))

	for i := start; i < end; i++ {
		b.WriteString(m.renderRow(i))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderRow(i int) string {
	row := m.rows[i]
	indent := strings.Repeat("  ", row.Depth)

	var line string
	if row.IsFolder() {
		caret := "▸"
		if row.Expanded {
			caret = "▾"
		}
		line = fmt.Sprintf("%s%s %s %s", indent, caret,
			folderStyle.Render(row.DisplayName),
			mutedStyle.Render(fmt.Sprintf("(%d)", row.Count)))
	} else {
		name := row.DisplayName
		if row.Active {
			name = activeStyle.Render(name)
		}
		line = fmt.Sprintf("%s  %s", indent, name)
	}

	if i == m.cursor {
		return cursorStyle.Render("> ") + line
	}
	return "  " + line
}

func (m Model) renderFooter() string {
	if m.status != "" {
		return errorStyle.Render(m.status)
	}
	return helpStyle.Render("j/k move · enter open/toggle · h collapse · q quit")
}
