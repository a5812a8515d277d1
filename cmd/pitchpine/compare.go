package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/napolitain/pitch-pine-trail/internal/strategy"
)

func newCompareCmd() *cobra.Command {
	var runs int

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare the built-in management strategies over many seeded games",
		RunE: func(cmd *cobra.Command, args []string) error {
			if runs <= 0 {
				return fmt.Errorf("--runs must be positive, got %d", runs)
			}
			params, err := loadParams()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printBanner(out, "Strategy Comparison")

			firstSeed := resolveSeed(cmd)
			if !quiet {
				color.New(color.FgYellow).Fprintf(out, "🔄 Playing %d games per strategy from seed %d...\n\n", runs, firstSeed)
			}

			best, results := strategy.CompareAll(params, strategy.BuiltIn(), firstSeed, runs, newLogger(cmd.ErrOrStderr()))
			printComparison(out, best, results)
			return nil
		},
	}

	cmd.Flags().IntVarP(&runs, "runs", "n", 200, "Games per strategy")
	return cmd
}

func printComparison(w io.Writer, best strategy.Result, results []strategy.Result) {
	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"", "Strategy", "Completed", "Wildfire", "SPB", "Low BA", "Snakes", "Carbon", "BA", "Years"}),
	)
	for _, r := range results {
		marker := ""
		if r.Strategy.Name == best.Strategy.Name {
			marker = "✓"
		}
		table.Append([]string{
			marker,
			r.Strategy.Name,
			fmt.Sprintf("%.0f%%", 100*r.CompletionRate()),
			fmt.Sprintf("%d", r.Wildfires),
			fmt.Sprintf("%d", r.BeetleLosses),
			fmt.Sprintf("%d", r.LowBALosses),
			fmt.Sprintf("%.0f%%", 100*r.SnakeRate()),
			fmt.Sprintf("%.1f", r.MeanCarbon),
			fmt.Sprintf("%.1f", r.MeanBA),
			fmt.Sprintf("%.0f", r.MeanYears),
		})
	}
	table.Render()

	color.New(color.FgGreen, color.Bold).Fprintf(w, "\n✓ Best strategy: %s (%s)\n", best.Strategy.Name, best.Strategy.Description)
}
