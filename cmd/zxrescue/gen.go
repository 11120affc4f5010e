package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/zxrescue/internal/config"
	"github.com/vovakirdan/zxrescue/internal/core"
	"github.com/vovakirdan/zxrescue/internal/world"
)

var (
	flagGenRound int
	flagGenMap   bool
	flagGenWidth int
)

var genCmd = &cobra.Command{
	Use:   "gen [seed]",
	Short: "Generate a world and print its layout",
	Long: `Generates the archipelago for a seed and round and lists its islands,
helipads, crates and refugees. With --map an overview is drawn as well:

  ~ sea   . : + ^ land by height   B base pad   H helipad   C crate   R refugee

Examples:
  zxrescue gen
  zxrescue gen ZXRESCUE --round 3 --map
  zxrescue gen MYSEED --map --width 120`,
	Args: cobra.MaximumNArgs(1),
	Run:  runGen,
}

func init() {
	genCmd.Flags().IntVar(&flagGenRound, "round", 1, "Round to generate")
	genCmd.Flags().BoolVar(&flagGenMap, "map", false, "Draw an overview map")
	genCmd.Flags().IntVar(&flagGenWidth, "width", 80, "Overview width in columns")
}

func runGen(_ *cobra.Command, args []string) {
	cfg, _, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	seed := cfg.Session.DefaultSeed
	if len(args) == 1 {
		seed = args[0]
	}

	w, err := world.Generate(cfg, seed, flagGenRound)
	if err != nil {
		var genErr *world.GenerationError
		if errors.As(err, &genErr) {
			fmt.Fprintf(os.Stderr, "No acceptable world for %q round %d after %d attempts:\n", genErr.Seed, genErr.Round, genErr.Attempts)
			for _, r := range genErr.Reasons {
				fmt.Fprintf(os.Stderr, "  %s\n", r)
			}
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	printWorld(w, cfg)

	if flagGenMap {
		width := max(16, flagGenWidth)
		scr := core.NewScreen(width, width/2)
		w.DrawOverview(scr)
		fmt.Println()
		fmt.Println(scr.String())
	}
}

func printWorld(w *world.World, cfg config.Config) {
	fmt.Printf("Seed %q round %d (retry %d)\n", w.SeedText, w.Round, w.Attempt)
	fmt.Printf("Grid %dx%d over %.0f units, %d land cells\n", w.N, w.N, w.Size, w.LandCells())
	fmt.Println()

	fmt.Printf("Islands (%d):\n", len(w.Islands))
	fmt.Printf("  %-6s  %-16s  %6s  %9s  %s\n", "ID", "Name", "Cells", "Buildings", "Center")
	fmt.Printf("  %-6s  %-16s  %6s  %9s  %s\n", "--", "----", "-----", "---------", "------")
	for i, is := range w.Islands {
		mark := ""
		if i == w.BaseIsland {
			mark = "  (base)"
		}
		fmt.Printf("  %-6s  %-16s  %6d  %9d  %7.1f,%7.1f%s\n",
			is.ID, is.Name, len(is.Cells), is.Buildings, is.Center.X, is.Center.Z, mark)
	}
	fmt.Println()

	fmt.Printf("Helipads (%d):\n", len(w.Helipads))
	for _, p := range w.Helipads {
		fmt.Printf("  %-8s  island %-6s  %7.1f,%7.1f  deck %.2f\n", p.ID, p.IslandID, p.X, p.Z, p.Y)
	}
	fmt.Println()

	fmt.Printf("Crates (%d of %d requested):\n", len(w.Crates), cfg.Placement.CrateCount)
	for _, c := range w.Crates {
		fmt.Printf("  %-8s  %-16s  %7.1f,%7.1f\n", c.ID, c.IslandName, c.X, c.Z)
	}
	fmt.Println()

	fmt.Printf("Refugees (%d):\n", len(w.Refugees))
	for _, r := range w.Refugees {
		fmt.Printf("  %-8s  island %-6s  %-8s  %7.1f,%7.1f\n", r.ID, r.IslandID, r.Type, r.X, r.Z)
	}
	fmt.Println()

	cp := w.CyclonePath
	fmt.Printf("Cyclone roams %.1fx%.1f around %.1f,%.1f\n", cp.RadX, cp.RadZ, cp.CenterX, cp.CenterZ)
	fmt.Printf("Obstacles: %d, trees: %d, rock pillars: %d\n", len(w.Obstacles), len(w.Trees), len(w.Occluders))
}
