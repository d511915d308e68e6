package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/solver/internal/solver"
)

var (
	evalWorkers int
	evalVerbose bool
)

func init() {
	evalCmd.Flags().IntVar(&evalWorkers, "workers", 0, "concurrent target runs (0 = GOMAXPROCS)")
	evalCmd.Flags().BoolVar(&evalVerbose, "verbose", false, "print one line per target word")
}

// eval scores the strategy against every word in the solutions dictionary
// and prints a guesses histogram, the words that blew the 6-guess budget,
// and the average.
var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Evaluate the strategy over the full dictionary",
	RunE: func(cmd *cobra.Command, args []string) error {
		dicts, err := loadDictionaries()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		var progress func(solver.TargetResult)
		if evalVerbose {
			progress = func(r solver.TargetResult) {
				if r.Err != nil {
					fmt.Fprintf(out, "target %s: %v\n", r.Target, r.Err)
					return
				}
				fmt.Fprintf(out, "target %s: %d guesses\n", r.Target, len(r.Guesses))
			}
		}

		report, err := solver.Evaluate(cmd.Context(), dicts, solver.NewOpeningCache(), evalWorkers, progress)
		if err != nil {
			return err
		}

		biggest := 0
		for _, count := range report.Histogram {
			if count > biggest {
				biggest = count
			}
		}

		fmt.Fprintln(out, "guesses histogram:")
		for _, n := range report.GuessCounts() {
			count := report.Histogram[n]
			// Widest bucket gets 40 cells; the rest scale down.
			width := count * 40 / biggest
			if width == 0 {
				width = 1
			}
			bar := strings.Repeat("█", width)
			if n > solver.FailThreshold {
				bar = tileMiss.Sprint(bar)
			} else {
				bar = tileHit.Sprint(bar)
			}
			fmt.Fprintf(out, "%2d guesses: %4d words %s\n", n, count, bar)
		}
		if len(report.Failed) > 0 {
			fmt.Fprintf(out, "failed (over %d guesses): %s\n", solver.FailThreshold, strings.Join(report.Failed, ", "))
		}
		fmt.Fprintf(out, "targets: %d  average guesses: %.3f\n", report.Targets, report.Average())
		return nil
	},
}
