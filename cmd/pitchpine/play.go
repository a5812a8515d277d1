package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/napolitain/pitch-pine-trail/internal/game"
	"github.com/napolitain/pitch-pine-trail/internal/tui"
)

func newPlayCmd() *cobra.Command {
	var altScreen bool

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play interactively in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := loadParams()
			if err != nil {
				return err
			}

			// the TUI owns stdout, so debug output goes to stderr only
			session := game.NewSession(params, resolveSeed(cmd), newLogger(cmd.ErrOrStderr()))

			var opts []tea.ProgramOption
			if altScreen {
				opts = append(opts, tea.WithAltScreen())
			}
			if err := tui.Run(session, opts...); err != nil {
				return fmt.Errorf("terminal UI: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&altScreen, "fullscreen", true, "Use the terminal's alternate screen")
	return cmd
}
