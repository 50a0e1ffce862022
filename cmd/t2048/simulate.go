package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/engine"
)

var flagGames int

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run random-move games and print statistics",
	Long: `Play games headless with a bot that picks a random direction every
move, then print the score distribution, the largest tiles reached and
the observed share of spawned 4 tiles.

The spawn distribution comes from the config (--config, --difficulty).

Examples:
  t2048 simulate
  t2048 simulate --games 1000 --size 3
  t2048 simulate --seed 42 --difficulty hard`,
	Run: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagGames, "games", 100, "Number of games to play")
}

// simReport aggregates the outcome of simulated games.
type simReport struct {
	Seed     int64
	Dist     engine.Distribution // as read back from the generator
	Scores   []int               // sorted ascending
	MaxTiles map[int]int         // max tile -> games
	Moves    int
	Spawns   int
	Fours    int
}

// simulate plays n random-move games on size×size boards.
func simulate(n, size int, dist engine.Distribution, seed int64) (simReport, error) {
	report := simReport{Seed: seed, MaxTiles: make(map[int]int)}
	rng := rand.New(rand.NewSource(seed))
	dirs := []engine.Direction{engine.Up, engine.Down, engine.Left, engine.Right}

	eng, err := engine.New(size, engine.WithRand(rng), engine.WithDistribution(dist))
	if err != nil {
		return simReport{}, fmt.Errorf("simulate: %w", err)
	}
	report.Dist = eng.Generator().Distribution()

	for range n {
		for _, sp := range eng.Reset() {
			report.count(sp)
		}
		for eng.HasAnyValidMove() {
			res, err := eng.ApplyMove(dirs[rng.Intn(len(dirs))])
			if err != nil {
				return simReport{}, fmt.Errorf("simulate: %w", err)
			}
			if res.Spawned != nil {
				report.count(*res.Spawned)
			}
		}
		report.Scores = append(report.Scores, eng.Score())
		report.MaxTiles[eng.MaxTile()]++
		report.Moves += eng.Moves()
	}

	slices.Sort(report.Scores)
	return report, nil
}

func (r *simReport) count(sp engine.Spawn) {
	r.Spawns++
	if sp.Value == 4 {
		r.Fours++
	}
}

// FourRate is the share of spawned tiles that were 4s.
func (r simReport) FourRate() float64 {
	if r.Spawns == 0 {
		return 0
	}
	return float64(r.Fours) / float64(r.Spawns)
}

// Percentile returns the score at p (0-100) using nearest rank.
func (r simReport) Percentile(p int) int {
	if len(r.Scores) == 0 {
		return 0
	}
	idx := (p*len(r.Scores)+99)/100 - 1
	return r.Scores[core.Clamp(idx, 0, len(r.Scores)-1)]
}

// Print writes the report in a human-readable layout.
func (r simReport) Print(w io.Writer) {
	games := len(r.Scores)
	fmt.Fprintf(w, "Games: %d  Seed: %d\n", games, r.Seed)
	if total := r.Dist.Total(); total > 0 {
		parts := make([]string, len(r.Dist))
		for i, d := range r.Dist {
			parts[i] = fmt.Sprintf("%d %.1f%%", d.Value, 100*d.Weight/total)
		}
		fmt.Fprintf(w, "Spawns: %s\n", strings.Join(parts, ", "))
	}
	if games == 0 {
		return
	}

	total := 0
	for _, s := range r.Scores {
		total += s
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Score  min %d  p25 %d  median %d  p75 %d  max %d  mean %.1f\n",
		r.Scores[0], r.Percentile(25), r.Percentile(50), r.Percentile(75), r.Scores[games-1],
		float64(total)/float64(games))
	fmt.Fprintf(w, "Moves  %.1f per game\n", float64(r.Moves)/float64(games))

	tiles := make([]int, 0, len(r.MaxTiles))
	for t := range r.MaxTiles {
		tiles = append(tiles, t)
	}
	slices.Sort(tiles)

	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %-6s  %-6s  %s\n", "Tile", "Games", "Share")
	for _, t := range tiles {
		fmt.Fprintf(w, "  %-6d  %-6d  %5.1f%%\n", t, r.MaxTiles[t], 100*float64(r.MaxTiles[t])/float64(games))
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Spawned 4s: %d of %d (%.2f%%)\n", r.Fours, r.Spawns, 100*r.FourRate())
}

func runSimulate(_ *cobra.Command, _ []string) {
	if flagGames < 1 {
		fatalf("--games must be at least 1")
	}

	gameCfg, err := loadGameConfig()
	if err != nil {
		fatalf("%v", err)
	}

	report, err := simulate(flagGames, gameCfg.Board.Size, gameCfg.Distribution(), core.ResolveSeed(flagSeed))
	if err != nil {
		fatalf("%v", err)
	}
	report.Print(os.Stdout)
}
