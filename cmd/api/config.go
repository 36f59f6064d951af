package main

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/doodleduel/doodleduel-backend/internal"
	"github.com/doodleduel/doodleduel-backend/internal/game"
	"github.com/doodleduel/doodleduel-backend/internal/server"
	"github.com/doodleduel/doodleduel-backend/internal/words"
)

type Config struct {
	dist         string
	drawTime     uint8
	maxRounds    uint8
	maxUsers     uint8
	pickWordTime uint8
	port         int
	wordsFile    string
}

func (c *Config) validate() error {
	if c.port < 1 || c.port > 65535 {
		return fmt.Errorf("invalid port (must be between 1-65535 inclusive): %d", c.port)
	}
	if c.pickWordTime < 1 {
		return fmt.Errorf("invalid pick-word-time (must be at least 1): %d", c.pickWordTime)
	}
	if c.drawTime < 1 {
		return fmt.Errorf("invalid draw-time (must be at least 1): %d", c.drawTime)
	}
	if c.maxUsers < internal.MinPlayersToStart {
		return fmt.Errorf("invalid max-users (must be at least %d): %d", internal.MinPlayersToStart, c.maxUsers)
	}
	if c.maxRounds < 1 {
		return fmt.Errorf("invalid max-rounds (must be at least 1): %d", c.maxRounds)
	}
	return nil
}

func newCmd(cfg *Config) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("DOODLEDUEL")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "doodleduel",
		Short:         "Real-time backend for a multiplayer draw-and-guess game.",
		Args:          cobra.ExactArgs(0),
		SilenceErrors: true,
		Version:       releaseVersion,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			return run(cfg)
		},
	}

	fs := cmd.Flags()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.StringVar(&cfg.dist, "dist", "", "directory with frontend assets to serve under /dist/ (env: DOODLEDUEL_DIST)")
	fs.Uint8Var(&cfg.drawTime, "draw-time", internal.DrawTimeLimit, "seconds a drawer has per turn (env: DOODLEDUEL_DRAW_TIME)")
	fs.Uint8Var(&cfg.maxRounds, "max-rounds", internal.DefaultMaxRounds, "rounds per game (env: DOODLEDUEL_MAX_ROUNDS)")
	fs.Uint8Var(&cfg.maxUsers, "max-users", internal.DefaultMaxUsers, "seats per room (env: DOODLEDUEL_MAX_USERS)")
	fs.Uint8Var(&cfg.pickWordTime, "pick-word-time", internal.PickWordTimeLimit, "seconds a drawer has to pick a word (env: DOODLEDUEL_PICK_WORD_TIME)")
	fs.IntVarP(&cfg.port, "port", "p", 8080, "port to listen on (env: DOODLEDUEL_PORT)")
	fs.StringVar(&cfg.wordsFile, "words-file", "", "CSV word list to replace the built-in one (env: DOODLEDUEL_WORDS_FILE)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("doodleduel v{{.Version}}\n")

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	return cmd
}

func run(cfg *Config) error {
	if cfg.wordsFile != "" {
		if err := words.LoadCSV(cfg.wordsFile); err != nil {
			return fmt.Errorf("loading word list: %w", err)
		}
		log.Printf("[run] loaded word list from %s", cfg.wordsFile)
	}

	hub := game.NewHub(game.Config{
		MaxUsers:     cfg.maxUsers,
		MaxRounds:    cfg.maxRounds,
		PickWordTime: cfg.pickWordTime,
		DrawTime:     cfg.drawTime,
		TickInterval: time.Second,
	})

	srv := server.NewServer(cfg.port, cfg.dist, hub)
	log.Printf("[run] listening on %s", srv.Addr)
	return srv.ListenAndServe()
}
