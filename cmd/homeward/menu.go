package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/homeward/internal/config"
	"github.com/vovakirdan/homeward/internal/platform/tui"
	"github.com/vovakirdan/homeward/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the world picker menu",
	Long: `Start Homeward in interactive menu mode.

Pick a world and a difficulty, then play. After a journey ends you
return to the menu. Tab opens the run history.

Controls:
  Up/Down/j/k     - Navigate worlds
  Left/Right      - Change difficulty
  Enter/Space     - Play
  Tab             - Run history
  Q/Esc           - Quit

Examples:
  homeward menu
  homeward menu --touch
  homeward menu --db ./runs.db`,
	RunE: runMenu,
}

func init() {
	// Play flags work here too
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Initial difficulty preset: easy, normal, hard")
	menuCmd.Flags().BoolVar(&flagTouch, "touch", false, "Show the on-screen pad and use the touch pursuer speed")
	menuCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the tuning file when it changes (applies on next run)")
	menuCmd.Flags().StringVar(&flagSheet, "sheet", "", "Path to a custom glyph sheet YAML")
}

func runMenu(_ *cobra.Command, _ []string) error {
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

	cfg := runtimeConfig()

	for {
		result, err := tui.RunMenu(difficulty, cfg.ScreenW, cfg.ScreenH)
		if err != nil {
			return err
		}
		cfg.ScreenW, cfg.ScreenH = result.Width, result.Height
		difficulty = result.Difficulty

		if result.Quit {
			return nil
		}

		if result.WantsRuns {
			goBack, err := tui.RunRuns(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if goBack {
				continue
			}
			return nil
		}

		finished, err := playWorld(session{
			worldID:    result.WorldID,
			difficulty: difficulty,
			store:      store,
			logger:     logger,
			config:     cfg,
		})
		if err != nil {
			fmt.Printf("Error running %s: %v\n", result.WorldID, err)
			logger.Error("play failed", "world", result.WorldID, "err", err)
			continue
		}
		logger.Info("journey closed", "world", result.WorldID, "finished", finished)
	}
}
