package main

import (
	"os"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"arcarena/internal/arena"
	"arcarena/internal/config"
	"arcarena/internal/game"
	"arcarena/internal/geom"
	"arcarena/internal/logging"
	"arcarena/internal/player"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		logging.New(false, os.Stderr).Fatal().Err(err).Msg("bad configuration")
	}
	logger := logging.New(cfg.Debug.On, os.Stderr)
	logging.Install(logger, cfg.Debug.On)

	if !slices.Contains(arena.RoundSets(), cfg.Round.RoundSet) {
		log.Fatal().Str("round_set", cfg.Round.RoundSet).
			Str("known", strings.Join(arena.RoundSets(), ", ")).
			Err(arena.ErrUnknownRoundSet).Msg("cannot start")
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Info().Uint64("seed", seed).Str("round_set", cfg.Round.RoundSet).Int("robots", cfg.Robots).Msg("arc arena starting")

	err = game.RunDesktop(game.Options{
		Settings: cfg,
		Log:      logger,
		Rand:     geom.NewRand(seed),
		Roster:   &player.RosterStore{Path: cfg.Player.RosterFile},
	})
	if err != nil {
		log.Fatal().Err(err).Msg("game stopped")
	}
}
