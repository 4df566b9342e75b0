package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/andareed/siftly-bikeshare/logging"
)

func (a *app) browseCmd() *cobra.Command {
	var f selectionFlags
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Scroll through the filtered trips in a full-screen table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, table, err := a.loadSelection(cmd, &f)
			if err != nil {
				return err
			}
			logging.Infof("browse: %s (%d trips)", sel, table.Len())

			p := tea.NewProgram(newBrowseModel(sel, table),
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			_, err = p.Run()
			return err
		},
	}
	f.register(cmd)
	return cmd
}
