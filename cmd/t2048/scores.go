package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores for a mode",
	Long: `Display the top 10 scores for a mode (default: the campaign),
with the largest tile and the number of moves of each game.

Examples:
  t2048 scores
  t2048 scores 2048_endless`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func runScores(_ *cobra.Command, args []string) {
	gameID := t2048.IDCampaign
	if len(args) > 0 {
		gameID = args[0]
	}

	title, ok := modeTitle(gameID)
	if !ok {
		fatalf("unknown game mode %q\nRun 't2048 list' to see available modes.", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatalf("opening scores database: %v", err)
	}
	defer store.Close()

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		store.Close()
		fatalf("retrieving scores: %v", err)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 't2048 play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-5s  %s\n", "Rank", "Score", "Tile", "Moves", "Board", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-5s  %s\n", "----", "-----", "----", "-----", "-----", "----")
	for i, e := range scores {
		board := fmt.Sprintf("%dx%d", e.BoardSize, e.BoardSize)
		fmt.Printf("  %-4d  %-8d  %-6d  %-6d  %-5s  %s\n",
			i+1, e.Score, e.MaxTile, e.Moves, board, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Printf("Games: %d  Best: %d  Best tile: %d  Average: %.0f\n",
			stats.GamesCount, stats.HighScore, stats.BestTile, stats.AvgScore)
	}
}

func modeTitle(gameID string) (string, bool) {
	for _, g := range registry.List() {
		if g.ID == gameID {
			return g.Title, true
		}
	}
	return "", false
}
