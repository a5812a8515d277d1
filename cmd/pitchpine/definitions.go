package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/napolitain/pitch-pine-trail/internal/models"
	"github.com/napolitain/pitch-pine-trail/internal/tui"
)

func newDefinitionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "definitions",
		Short: "Explain the stand metrics and the management actions",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			termColor := color.New(color.FgCyan, color.Bold)

			for _, d := range tui.Definitions {
				termColor.Fprintf(out, "%s: ", d.Term)
				fmt.Fprintln(out, d.Meaning)
			}

			fmt.Fprintln(out)
			termColor.Fprintln(out, "Actions:")
			for _, a := range models.AllActions() {
				fmt.Fprintf(out, "   %s. %s\n", a.Code(), a.Label())
			}
		},
	}
}
