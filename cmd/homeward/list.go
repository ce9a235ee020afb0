package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/homeward/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available worlds",
	Long:  `Shows a list of all worlds registered in Homeward.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	worlds := registry.List()

	if len(worlds) == 0 {
		fmt.Println("No worlds available.")
		return
	}

	fmt.Println("Available worlds:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, w := range worlds {
		maxIDLen = max(maxIDLen, len(w.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, w := range worlds {
		fmt.Printf("  %-*s  %s\n", maxIDLen, w.ID, w.Title)
	}

	fmt.Println()
	fmt.Println("Run 'homeward play <id>' to play a world.")
}
