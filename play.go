package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/solver/internal/feedback"
	"github.com/robalobadob/wordle/apps/solver/internal/solver"
)

// play drives an interactive loop against a real game the user is playing
// elsewhere: print the suggested guess, read the C/L/X feedback line the
// game showed, repeat. Malformed feedback re-prompts; contradictory
// feedback aborts with the engine's error.
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Interactive solving against a real game",
	RunE: func(cmd *cobra.Command, args []string) error {
		dicts, err := loadDictionaries()
		if err != nil {
			return err
		}
		sess := solver.NewSession(dicts, solver.NewOpeningCache())
		out := cmd.OutOrStdout()
		sc := bufio.NewScanner(cmd.InOrStdin())

		for {
			guess, err := sess.Suggest()
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Guess: %s  (%d candidate(s) left)\n", emphasis.Sprint(guess), sess.Remaining())
			if sess.Remaining() == 1 {
				fmt.Fprintln(out, "That's the last possible solution in this dictionary.")
				return nil
			}

			fmt.Fprint(out, "Feedback (C/L/X = correct position/wrong position/letter unused): ")
			if !sc.Scan() {
				return sc.Err()
			}
			fb, err := feedback.Parse(strings.TrimSpace(sc.Text()))
			if err != nil {
				fmt.Fprintln(out, err)
				continue
			}
			fmt.Fprintln(out, renderTiles(guess, fb))

			if err := sess.Observe(guess, fb); err != nil {
				return err
			}
			if sess.State() == solver.StateSolved {
				fmt.Fprintf(out, "Solved: %s in %d guesses.\n", emphasis.Sprint(sess.Solution()), len(sess.History()))
				return nil
			}
		}
	},
}
