package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/homeward/internal/assets"
	"github.com/vovakirdan/homeward/internal/camera"
	"github.com/vovakirdan/homeward/internal/config"
	"github.com/vovakirdan/homeward/internal/platform/tui"
	"github.com/vovakirdan/homeward/internal/registry"
	"github.com/vovakirdan/homeward/internal/render"
	"github.com/vovakirdan/homeward/internal/worlds/journey"
)

var (
	flagMapStep  int
	flagMapPlain bool
)

var mapCmd = &cobra.Command{
	Use:   "map [world]",
	Short: "Print the whole map of a world",
	Long: `Render the entire world as it looks at a given step, with both
characters on their spawn points. Barriers of later steps stay closed.

Examples:
  homeward map
  homeward map --step 2
  homeward map --seed 7 --plain > map.txt
  homeward map --sheet ./glyphs.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMap,
}

func init() {
	mapCmd.Flags().IntVar(&flagMapStep, "step", 0, "Progress step to render (0 = nothing discovered)")
	mapCmd.Flags().BoolVar(&flagMapPlain, "plain", false, "Print without colors")
	mapCmd.Flags().StringVar(&flagSheet, "sheet", "", "Path to a custom glyph sheet YAML")
}

func runMap(_ *cobra.Command, args []string) error {
	worldID := journey.ID
	if len(args) == 1 {
		worldID = args[0]
	}

	w, err := registry.Create(worldID, flagSeed)
	if err != nil {
		return err
	}
	if flagMapStep < 0 || flagMapStep > w.Steps() {
		return fmt.Errorf("--step must be between 0 and %d", w.Steps())
	}

	sheet, err := assets.Load(flagSheet)
	if err != nil {
		return err
	}
	if err := sheet.Check(w); err != nil {
		return err
	}

	tuning, _, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	proj := camera.Projection{CellW: tuning.View.CellW, CellH: tuning.View.CellH}

	screen := render.DrawWorld(w, sheet, proj, flagMapStep)
	if flagMapPlain {
		fmt.Println(screen.String())
		return nil
	}
	fmt.Println(tui.RenderScreen(screen))
	return nil
}
