package commands

import (
	"github.com/spf13/cobra"

	"github.com/docnav-labs/docnav/internal/tui"
)

// NewBrowseCommand creates the browse command.
func NewBrowseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the documentation in the terminal",
		Long: `Open a terminal browser for the documentation tree.

The left pane shows the collapsible folder tree; the right pane renders the
selected document. Navigate with j/k, open or toggle with enter, quit with q.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			return tui.Run(cmdCtx.Tree, cmdCtx.Store)
		},
	}
}
