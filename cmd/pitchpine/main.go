package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/napolitain/pitch-pine-trail/internal/loader"
	"github.com/napolitain/pitch-pine-trail/internal/models"
)

var (
	dataDir    string
	configFile string
	seed       int64
	verbose    bool
	quiet      bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pitchpine",
		Short: "Pitch Pine Trail forest management simulation",
		Long: `Manage a New Jersey pitch pine stand for 100 years, one decade at a time.
Each turn you thin, burn or leave the stand alone, then nature rolls
for wildfire and Southern Pine Beetle outbreaks.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&dataDir, "data", "d", "data", "Path to data directory holding params.yaml")
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to a JSON or YAML params file (overrides --data)")
	rootCmd.PersistentFlags().Int64VarP(&seed, "seed", "s", 0, "Random seed (default: current time)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging to stderr")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Minimal output")

	rootCmd.AddCommand(
		newPlayCmd(),
		newSimulateCmd(),
		newCompareCmd(),
		newDefinitionsCmd(),
	)
	return rootCmd
}

// loadParams resolves the parameter table from --config or --data
func loadParams() (models.Params, error) {
	if configFile != "" {
		return loader.LoadParams(configFile)
	}
	return loader.LoadParamsDir(dataDir)
}

// resolveSeed returns --seed when given, otherwise a time based seed
func resolveSeed(cmd *cobra.Command) int64 {
	if cmd.Flags().Changed("seed") {
		return seed
	}
	return time.Now().UnixNano()
}

func newLogger(w io.Writer) *log.Logger {
	if !verbose {
		return log.New(io.Discard)
	}
	logger := log.NewWithOptions(w, log.Options{
		Prefix:          "pitchpine",
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
	})
	logger.SetLevel(log.DebugLevel)
	return logger
}

func printBanner(w io.Writer, subtitle string) {
	if quiet {
		return
	}
	titleColor := color.New(color.FgGreen, color.Bold)
	titleColor.Fprintln(w, "\n╭───────────────────────────╮")
	titleColor.Fprintln(w, "│  Pitch Pine Trail         │")
	titleColor.Fprintf(w, "│  %-25s│\n", subtitle)
	titleColor.Fprintln(w, "╰───────────────────────────╯")
	fmt.Fprintln(w)
}
