package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/zxrescue/internal/config"
	"github.com/vovakirdan/zxrescue/internal/platform/tui"
	"github.com/vovakirdan/zxrescue/internal/storage"
)

var (
	flagScoresSeed   string
	flagScoresLimit  int
	flagScoresRecent bool
	flagScoresTUI    bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the rescue log",
	Long: `Display the best recorded runs, optionally for one seed.

Examples:
  zxrescue scores
  zxrescue scores --seed ZXRESCUE
  zxrescue scores --recent --limit 20
  zxrescue scores --tui`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresSeed, "seed", "", "Only runs on this seed")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "Most recent runs instead of best")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse the log interactively")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresTUI {
		cfg := runtimeConfig()
		if _, err := tui.RunScoreboard(store, flagScoresSeed, cfg.ScreenW, cfg.ScreenH); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	var runs []storage.RunEntry
	title := "Best runs"
	if flagScoresRecent {
		title = "Recent runs"
		runs, err = store.RecentRuns(flagScoresLimit)
	} else {
		runs, err = store.TopRuns(flagScoresSeed, flagScoresLimit)
		if flagScoresSeed != "" {
			title += " - " + flagScoresSeed
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	fmt.Println(title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'zxrescue play' to fly the first sortie!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-16s  %-5s  %-6s  %-8s  %-13s  %s\n",
		"Rank", "Score", "Seed", "Round", "Crates", "Refugees", "End", "Date")
	fmt.Printf("  %-4s  %-8s  %-16s  %-5s  %-6s  %-8s  %-13s  %s\n",
		"----", "-----", "----", "-----", "------", "--------", "---", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %-16s  %-5d  %-6d  %-8d  %-13s  %s\n",
			i+1, r.Score, r.Seed, r.Round, r.Crates, r.Refugees, r.EndReason,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	key := config.DefaultConfig().Session.HighScoreKey
	if gameCfg, _, err := loadGameConfig(); err == nil {
		key = gameCfg.Session.HighScoreKey
	}
	if hs, err := store.HighScore(key); err == nil {
		fmt.Printf("High score: %d\n", hs)
	}
	if st, err := store.Stats(); err == nil && st.Runs > 0 {
		fmt.Printf("%d runs, average %.0f, %d crates and %d refugees brought home\n",
			st.Runs, st.AvgScore, st.TotalCrates, st.TotalRefugees)
	}
}
