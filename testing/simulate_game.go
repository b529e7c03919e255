// Command simulate_game plays whole school days with the autoplay bot and
// prints the final stats of each run.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tatianab/school-days/internal/app"
	"github.com/tatianab/school-days/internal/autoplay"
	"github.com/tatianab/school-days/internal/config"
	"github.com/tatianab/school-days/internal/models"
)

func main() {
	days := flag.Int("days", 3, "number of school days to play")
	skill := flag.Float64("skill", 0.7, "chance of answering a question correctly")
	seed := flag.Uint64("seed", 1, "random seed for the bot")
	verbose := flag.Bool("v", false, "print everything the bot is shown")
	outDir := flag.String("out", "", "directory to export each day's stats to as YAML")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger, closer, err := app.NewLogger(cfg, os.Stderr)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer closer.Close()

	ctx := context.Background()
	g, err := app.New(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("Failed to load game: %v", err)
	}
	defer g.Close()

	var totalGPA float64
	for day := 1; day <= *days; day++ {
		fmt.Printf("--- Day %d ---\n", day)

		bot := autoplay.New(rand.New(rand.NewPCG(*seed, uint64(day))), g.Words(), *skill)
		bot.Name = fmt.Sprintf("Student %d", day)
		if *verbose {
			bot.Transcript = os.Stdout
		}

		s, err := g.NewSession(bot, bot.Name)
		if err != nil {
			log.Fatalf("Failed to start session: %v", err)
		}
		if err := s.Play(ctx, bot); err != nil {
			fmt.Printf("Error playing day %d: %v\n", day, err)
			continue
		}

		out, err := yaml.Marshal(s.Player.Stats())
		if err != nil {
			log.Fatalf("Failed to encode stats: %v", err)
		}
		fmt.Print(string(out))
		fmt.Printf("Decisions: %d, Auto-continues: %d\n", bot.Decisions, bot.Continues)
		for _, r := range s.Registry.Results() {
			fmt.Printf("Mini-game %s: %d/%d correct, +%d points\n", r.ID, r.Correct, r.Total, r.Points)
		}
		fmt.Printf("Verdict: %s\n", app.Verdict(s.Player.GPA()))
		if *outDir != "" {
			path, err := models.ExportStats(*outDir, fmt.Sprintf("day-%d", day), s.Player.Stats())
			if err != nil {
				log.Fatalf("Failed to export stats: %v", err)
			}
			fmt.Printf("Stats exported to %s\n", path)
		}
		fmt.Println()
		totalGPA += s.Player.GPA()
	}

	if *days > 0 {
		fmt.Printf("Average GPA over %d days: %.2f\n", *days, totalGPA/float64(*days))
	}
}
