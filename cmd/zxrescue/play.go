package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/zxrescue/internal/config"
	"github.com/vovakirdan/zxrescue/internal/platform/tui"
	"github.com/vovakirdan/zxrescue/internal/sim"
	"github.com/vovakirdan/zxrescue/internal/storage"
)

var flagRandomSeed bool

var playCmd = &cobra.Command{
	Use:   "play [seed]",
	Short: "Fly a session",
	Long: `Fly a session on the given seed. Without a seed the title menu opens
first so you can type one or roll a random one.

Controls:
  A/D, Left/Right  - Turn
  W/S, Up/Down     - Speed up / slow down (below zero flies backwards)
  R / F            - Climb / descend
  L                - Land assist
  V                - Flip the view south-up
  M                - Enlarge the minimap
  Mouse wheel      - Camera tilt
  P/Esc            - Pause
  N                - New game (after game over)
  B                - Back to menu (paused or game over)
  Ctrl+S           - Screenshot to ~/.zxrescue/screenshots
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Five lives, longer clock, mild hazards that grow each round
  normal - Three lives, hazards grow each round
  hard   - Two lives, shorter clock, aircraft fly lower
  fixed  - No round scaling

Examples:
  zxrescue play
  zxrescue play ZXRESCUE
  zxrescue play --random --difficulty hard
  zxrescue play MYSEED --config ./my-rescue.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagRandomSeed, "random", false, "Fly a freshly rolled seed")
}

func runPlay(_ *cobra.Command, args []string) {
	gameCfg, preset, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, logFile := openLogger()
	defer logFile.Close()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	cfg := runtimeConfig()

	seed := ""
	switch {
	case len(args) == 1:
		seed = args[0]
	case flagRandomSeed:
		seed = tui.RandomSeed()
	}

	if seed == "" {
		if err := tui.RunApp(store, gameCfg, preset, cfg, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if flagDifficulty != "" {
		config.ApplyPreset(&gameCfg, preset)
	}
	opts := []sim.Option{sim.WithLogger(logger.With("seed", seed))}
	if store != nil {
		opts = append(opts, sim.WithSaver(store))
	}
	session, err := sim.NewSession(gameCfg, seed, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("session started", "seed", session.Seed())

	cfg.SeedText = session.Seed()
	back, err := tui.Run(session, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
	if back {
		if err := tui.RunApp(store, gameCfg, preset, cfg, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			os.Exit(1)
		}
	}
}
