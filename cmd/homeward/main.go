// homeward is a small real-time adventure played in the terminal: walk the
// road, visit every story place before 21:00 and stay ahead of Mom.
//
// Usage:
//
//	homeward list              - List available worlds
//	homeward play [world]      - Play a world (default: journey)
//	homeward menu              - Start menu with world picker and run history
//	homeward map [world]       - Print the whole map
//	homeward runs [world]      - Show recorded runs
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Decoration and dialog seed (0 = world default)
//	--db <path>         - Run history database (default: ~/.homeward/runs.db)
//	--config <path>     - Tuning YAML
//	--log <path>        - Log file, "-" for stderr, "off" to discard
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/homeward/internal/core"

	// Import worlds to register them
	_ "github.com/vovakirdan/homeward/internal/worlds/journey"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogPath  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "homeward",
	Short: "Homeward - get home before 21:00",
	Long: `Homeward is a small top-down adventure for the terminal.

Walk the road, discover the story places in order and collect their
keepsakes. The clock runs from 13:00 to 21:00 and Mom is on her way.

Available commands:
  list     - Show all available worlds
  play     - Play a world directly
  menu     - Interactive start menu
  map      - Print the whole map of a world
  runs     - View run history

Examples:
  homeward play
  homeward play --touch --difficulty easy
  homeward menu
  homeward map --step 3
  homeward runs --best`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Decoration and dialog seed (0 = world default)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.homeward/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.homeward/homeward.log", `Log file ("-" for stderr, "off" to discard)`)
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(mapCmd)
	rootCmd.AddCommand(runsCmd)
}

// newLogger opens the log destination. The returned closer releases the
// log file, if any.
func newLogger() (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var (
		w      io.Writer
		closer io.Closer = io.NopCloser(nil)
	)
	switch flagLogPath {
	case "off", "":
		w = io.Discard
	case "-":
		w = os.Stderr
	default:
		path := expandHome(flagLogPath)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "homeward",
		Level:           level,
	})
	return logger, closer, nil
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}

// runtimeConfig builds the session settings from the global flags and the
// size of stdout, falling back to the defaults when it is not a terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
