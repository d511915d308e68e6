package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/solver/internal/feedback"
	"github.com/robalobadob/wordle/apps/solver/internal/solver"
)

// solve replays the engine against a known target word and prints the guess
// sequence it took.
var solveCmd = &cobra.Command{
	Use:   "solve <target>",
	Short: "Solve a known target word unattended",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dicts, err := loadDictionaries()
		if err != nil {
			return err
		}
		target := strings.ToLower(strings.TrimSpace(args[0]))
		if !feedback.IsWord(target) {
			return fmt.Errorf("target %q must be %d lowercase letters", args[0], feedback.WordLen)
		}
		out := cmd.OutOrStdout()

		guesses, err := solver.SolveTarget(dicts, solver.NewOpeningCache(), target)
		var ce *solver.ContradictionError
		if errors.As(err, &ce) {
			for _, g := range guesses {
				fmt.Fprintln(out, renderTiles(g, feedback.Score(g, target)))
			}
			return fmt.Errorf("%q is not in the solutions dictionary (gave up after %d guesses)", target, len(guesses))
		}
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "Guessed %s in %d guesses:\n", emphasis.Sprint(target), len(guesses))
		for _, g := range guesses {
			fmt.Fprintln(out, renderTiles(g, feedback.Score(g, target)))
		}
		return nil
	},
}
