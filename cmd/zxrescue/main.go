// zxrescue is a helicopter rescue game played top-down in the terminal.
//
// Usage:
//
//	zxrescue play [seed]     - Fly a session (menu first when no seed is given)
//	zxrescue menu            - Start at the title menu
//	zxrescue gen [seed]      - Generate a world and print its layout
//	zxrescue scores          - Show the rescue log
//	zxrescue serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Set host frame rate (default: 60)
//	--config <path>      - Load game config from YAML
//	--difficulty <name>  - easy, normal, hard, fixed
//	--db <path>          - Set database path (default: ~/.zxrescue/scores.db)
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

	"github.com/vovakirdan/zxrescue/internal/config"
	"github.com/vovakirdan/zxrescue/internal/core"
	"github.com/vovakirdan/zxrescue/internal/platform/tui"
)

var (
	// Global flags
	flagFPS        int
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagTheme      string
	flagLogPath    string
	flagVerbose    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "zxrescue",
	Short: "ZX Rescue - fly supply runs over a generated archipelago",
	Long: `ZX Rescue is a terminal helicopter game. Every seed grows its own
archipelago; winch the supply crates off the islands, dodge the cyclone and
the crossing aircraft, and land back on the base pad before the clock runs out.

Available commands:
  play     - Fly a session
  menu     - Interactive title menu
  gen      - Print a generated world
  scores   - View the rescue log
  serve    - Start SSH server for remote play

Examples:
  zxrescue play
  zxrescue play ZXRESCUE --difficulty hard
  zxrescue gen ZXRESCUE --map
  zxrescue serve --ssh :2222`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		theme, ok := tui.ThemeByName(flagTheme)
		if !ok {
			return fmt.Errorf("unknown theme %q (want default, spectrum, mono)", flagTheme)
		}
		tui.SetTheme(theme)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Host frame rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.zxrescue/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "default", "Color theme: default, spectrum, mono")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.zxrescue/zxrescue.log", "Log file path (- for stderr)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log at debug level")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadGameConfig loads the game config and resolves --difficulty. The
// preset is applied when a session is built.
func loadGameConfig() (config.Config, config.DifficultyPreset, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, "", err
	}
	preset := config.DifficultyNormal
	if flagDifficulty != "" {
		p, ok := config.ParsePreset(flagDifficulty)
		if !ok {
			return cfg, "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard, fixed)", flagDifficulty)
		}
		preset = p
	}
	return cfg, preset, nil
}

// runtimeConfig sizes the screen from the controlling terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	return cfg
}

// openLogger returns the logger for a terminal session. The screen belongs
// to the game, so logs go to a file unless --log is "-".
func openLogger() (*log.Logger, io.Closer) {
	opts := log.Options{ReportTimestamp: true, Prefix: "zxrescue"}
	if flagVerbose {
		opts.Level = log.DebugLevel
	}

	if flagLogPath == "-" {
		return log.NewWithOptions(os.Stderr, opts), io.NopCloser(nil)
	}

	path := expandHome(flagLogPath)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
		if f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600); err == nil {
			return log.NewWithOptions(f, opts), f
		}
	}
	return log.New(io.Discard), io.NopCloser(nil)
}

func expandHome(path string) string {
	if rest, ok := strings.CutPrefix(path, "~"); ok {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, rest)
		}
	}
	return path
}
