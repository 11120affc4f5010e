package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/zxrescue/internal/platform/tui"
	"github.com/vovakirdan/zxrescue/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start at the title menu",
	Long: `Start in interactive menu mode.

Type a seed or roll a random one, pick a difficulty, and fly. After a game
ends, press B to return to the menu.

Controls:
  Up/Down/Tab  - Navigate menu
  Left/Right   - Change difficulty
  Enter        - Select
  Ctrl+C       - Quit

Examples:
  zxrescue menu
  zxrescue menu --fps 30
  zxrescue menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	gameCfg, preset, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, logFile := openLogger()
	defer logFile.Close()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	runErr := tui.RunApp(store, gameCfg, preset, runtimeConfig(), logger)

	// Cleanup
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
