package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/homeward/internal/config"
	"github.com/vovakirdan/homeward/internal/content"
	"github.com/vovakirdan/homeward/internal/core"
	"github.com/vovakirdan/homeward/internal/game"
	"github.com/vovakirdan/homeward/internal/platform/tui"
	"github.com/vovakirdan/homeward/internal/registry"
	"github.com/vovakirdan/homeward/internal/storage"
	"github.com/vovakirdan/homeward/internal/worlds/journey"
)

var (
	flagDifficulty string
	flagTouch      bool
	flagWatch      bool
	flagSheet      string
)

var playCmd = &cobra.Command{
	Use:   "play [world]",
	Short: "Play a world",
	Long: `Start the journey on the given world (default: journey).

Controls:
  WASD/Arrows  - Move
  Enter/Esc    - Close dialog
  I            - Inventory
  T            - Answer Mom's call
  R            - Try again (after game over)
  ?            - Help
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower Mom, more time
  normal - Default tuning
  hard   - Faster Mom, less time

Touch mode shows an on-screen direction pad you can hold with the mouse
and gives Mom the slower touch speed.

Examples:
  homeward play
  homeward play --difficulty hard
  homeward play --touch
  homeward play --config ./my-tuning.yaml --watch
  homeward play --sheet ./glyphs.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().BoolVar(&flagTouch, "touch", false, "Show the on-screen pad and use the touch pursuer speed")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the tuning file when it changes (applies on next run)")
	playCmd.Flags().StringVar(&flagSheet, "sheet", "", "Path to a custom glyph sheet YAML")
}

func runPlay(_ *cobra.Command, args []string) error {
	worldID := journey.ID
	if len(args) == 1 {
		worldID = args[0]
	}
	if !registry.Exists(worldID) {
		return fmt.Errorf("unknown world %q, run 'homeward list' to see available worlds", worldID)
	}

	difficulty, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return err
	}

	logger, closer, err := newLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("run history disabled", "err", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	_, err = playWorld(session{
		worldID:    worldID,
		difficulty: difficulty,
		store:      store,
		logger:     logger,
		config:     runtimeConfig(),
	})
	return err
}

// session is everything needed to start one play screen.
type session struct {
	worldID    string
	difficulty config.DifficultyPreset
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
}

// playWorld builds the world and game for s and runs the play screen.
// It reports whether the ending was reached.
func playWorld(s session) (bool, error) {
	tuning, source, err := config.Load(flagConfig)
	if err != nil {
		return false, err
	}
	tuning = config.ApplyPreset(tuning, s.difficulty)
	if flagTouch {
		tuning.Input.Device = config.DeviceTouch
	}
	if source == "" {
		source = "embedded"
	}
	s.logger.Info("tuning loaded", "source", source, "difficulty", s.difficulty, "device", tuning.Input.Device)

	cat, err := content.Default()
	if err != nil {
		return false, err
	}
	w, err := registry.Create(s.worldID, s.config.Seed)
	if err != nil {
		return false, err
	}

	g := game.New(w, tuning,
		game.WithLogger(s.logger),
		game.WithCatalog(cat),
		game.WithViewport(s.config.ScreenW, s.config.ScreenH-2),
	)

	var watcher *config.Watcher
	if flagWatch {
		if source == "embedded" {
			s.logger.Warn("nothing to watch, tuning comes from the embedded defaults")
		} else if watcher, err = config.NewWatcher(source); err != nil {
			s.logger.Warn("config watcher disabled", "err", err)
			watcher = nil
		} else {
			defer watcher.Close()
			s.logger.Info("watching tuning", "path", watcher.Path())
		}
	}

	return tui.Run(tui.Options{
		Game:       g,
		Store:      s.store,
		Watcher:    watcher,
		Difficulty: s.difficulty,
		Logger:     s.logger,
		SheetPath:  flagSheet,
		TickRate:   s.config.TickRate,
		Touch:      flagTouch,
	})
}
