package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

var rootCmd = &cobra.Command{
	Use:   "solver",
	Short: "Wordle solving engine",
	Long:  `Picks guesses that shrink the set of possible solutions as fast as possible; plays interactively, replays known targets, or scores itself against the whole dictionary.`,
}

var flagUniqueLetters bool

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(serveCmd)

	rootCmd.PersistentFlags().BoolVar(&flagUniqueLetters, "unique-letters", false,
		"drop words containing repeated letters from the dictionaries")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadDictionaries resolves word lists from the environment
// (WORDS_ANSWERS_FILE / WORDS_ALLOWED_FILE, falling back to the embedded
// defaults), honoring the root flags.
func loadDictionaries() (*words.Dictionaries, error) {
	var opts []words.Option
	if flagUniqueLetters {
		opts = append(opts, words.UniqueLetters())
	}
	return words.FromEnv(opts...)
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
