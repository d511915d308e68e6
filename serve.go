package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/solver/internal/httpserver"
	"github.com/robalobadob/wordle/apps/solver/internal/solver"
	"github.com/robalobadob/wordle/apps/solver/internal/store"
)

// serve runs the JSON suggestion service. Sessions live in memory only.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP suggestion service",
	RunE: func(cmd *cobra.Command, args []string) error {
		dicts, err := loadDictionaries()
		if err != nil {
			return err
		}
		sols, allowed := dicts.Stats()

		srv := httpserver.New(dicts, solver.NewOpeningCache(), store.NewMemoryStore())
		port := getEnv("PORT", "5176")
		log.Info().Str("port", port).Int("solutions", sols).Int("allowed", allowed).Msg("starting solver service")
		if err := srv.Start(":" + port); err != nil {
			log.Error().Err(err).Msg("server exited")
			return err
		}
		return nil
	},
}
