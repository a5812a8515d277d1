package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/napolitain/pitch-pine-trail/internal/game"
	"github.com/napolitain/pitch-pine-trail/internal/models"
	"github.com/napolitain/pitch-pine-trail/internal/strategy"
)

func newSimulateCmd() *cobra.Command {
	var (
		actionList   string
		strategyName string
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Play a scripted game and print the stand decade by decade",
		Example: `  pitchpine simulate --actions 1,2,1,4,1,1,3,1,1,1 --seed 7
  pitchpine simulate --strategy adaptive --seed 7`,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := loadParams()
			if err != nil {
				return err
			}

			var (
				policy  game.Policy
				actions []models.Action
			)
			switch {
			case strategyName != "":
				st, err := strategy.ByName(strategyName)
				if err != nil {
					return err
				}
				policy = st.Choose
			case actionList != "":
				actions, err = models.ParseActionList(actionList)
				if err != nil {
					return fmt.Errorf("invalid --actions: %w", err)
				}
			default:
				return fmt.Errorf("one of --actions or --strategy is required")
			}

			out := cmd.OutOrStdout()
			printBanner(out, "Scripted Simulation")

			session := game.NewSession(params, resolveSeed(cmd), newLogger(cmd.ErrOrStderr()))
			if policy != nil {
				session.Run(policy)
			} else {
				playScript(session, actions)
			}
			printSimulation(out, session)
			return nil
		},
	}

	cmd.Flags().StringVarP(&actionList, "actions", "a", "", "Comma separated action codes (1=none, 2=light thin, 3=heavy thin, 4=burn)")
	cmd.Flags().StringVar(&strategyName, "strategy", "", "Play a built-in strategy instead of a fixed script")
	return cmd
}

// playScript plays actions in order until the game ends or the script runs out
func playScript(session *game.Session, actions []models.Action) {
	for _, a := range actions {
		if _, err := session.Play(a); err != nil {
			return
		}
	}
}

func printSimulation(w io.Writer, session *game.Session) {
	turns := session.Turns()

	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"Year", "Action", "QMD", "TPA", "BA", "Carbon", "CI", "Fire", "SPB", "Event"}),
	)
	for _, tr := range turns {
		st := tr.Status
		event := ""
		if tr.Event != nil {
			event = tr.Event.Description
		}
		if tr.NewlyColonized {
			event = joinNonEmpty(event, "Pine snakes arrived")
		}
		table.Append([]string{
			fmt.Sprintf("%d", st.Year),
			tr.Action.Label(),
			fmt.Sprintf("%.2f", st.QMD),
			fmt.Sprintf("%d", st.TPA),
			fmt.Sprintf("%.1f", st.BA),
			fmt.Sprintf("%.1f", st.Carbon),
			fmt.Sprintf("%.1f", st.CI),
			string(st.FireRisk),
			string(st.BeetleRisk),
			event,
		})
	}
	table.Render()

	fmt.Fprintln(w)
	outcome := session.Outcome()
	switch {
	case outcome == models.OutcomeCompleted:
		fmt.Fprintln(w, color.New(color.FgGreen, color.Bold).Sprintf("✓ Rotation completed in year %d", session.Status().Year))
	case outcome.IsLoss():
		fmt.Fprintln(w, color.New(color.FgRed, color.Bold).Sprintf("✗ Game over in year %d: %s", session.Status().Year, outcome))
	default:
		fmt.Fprintln(w, color.New(color.FgYellow).Sprintf("… Script ended in year %d before the rotation finished", session.Status().Year))
	}
	if !quiet {
		fmt.Fprintln(w)
		fmt.Fprint(w, session.Summary())
	}
}

func joinNonEmpty(a, b string) string {
	if a == "" {
		return b
	}
	return a + "; " + b
}
