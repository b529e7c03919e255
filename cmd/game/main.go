// Command game plays one School Days school day in the terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/tatianab/school-days/internal/app"
	"github.com/tatianab/school-days/internal/config"
	"github.com/tatianab/school-days/internal/tui"
)

func main() {
	os.Exit(run())
}

func run() int {
	// A missing .env file is fine; the environment may already be set.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "game: load .env: %v\n", err)
		return 1
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "game: %v\n", err)
		return 1
	}

	fs := flag.NewFlagSet("game", flag.ContinueOnError)
	fs.BoolVar(&cfg.Plain, "plain", cfg.Plain, "use numbered line prompts instead of interactive widgets")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 picks one)")
	fs.StringVar(&cfg.StoryFile, "story", cfg.StoryFile, "YAML story file (empty uses the built-in school day)")
	fs.StringVar(&cfg.WordsFile, "words", cfg.WordsFile, "five-letter word list for the word puzzle")
	fs.StringVar(&cfg.ReportCard, "report", cfg.ReportCard, "write a PDF report card to this path")
	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	logger, closer, err := app.NewLogger(cfg, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "game: %v\n", err)
		return 1
	}
	defer closer.Close()
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, err := app.New(ctx, cfg, logger)
	if err != nil {
		slog.Error("failed to load game", "err", err)
		return 1
	}
	defer g.Close()
	slog.Debug("game starting", "session", g.SessionID(), "seed", g.Seed(), "plain", cfg.Plain)

	err = g.Play(ctx, tui.New(os.Stdin, os.Stdout, cfg.Plain))
	switch {
	case err == nil:
		return 0
	case errors.Is(err, tui.ErrInterrupted), errors.Is(err, context.Canceled):
		fmt.Println("\nThanks for visiting Jefferson High. See you next time!")
		return 0
	}
	slog.Error("game error", "err", err)
	return 1
}
