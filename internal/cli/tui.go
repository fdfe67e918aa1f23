// SPDX-License-Identifier: MIT

package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/stoic/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Balance equations interactively",
	Long: `Opens an input line that previews the balanced equation while you type.
Press enter to keep a result in the history, esc or ctrl+c to quit.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		p := tea.NewProgram(
			tui.New(session.styles, session.options...),
			tea.WithAltScreen(),
			tea.WithInput(cmd.InOrStdin()),
			tea.WithOutput(cmd.OutOrStdout()),
		)
		_, err := p.Run()

		return err
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
