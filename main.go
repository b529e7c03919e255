package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/tatianab/school-days/internal/app"
	"github.com/tatianab/school-days/internal/config"
	"github.com/tatianab/school-days/internal/tui"
)

func main() {
	if err := start(); err != nil && !errors.Is(err, tui.ErrInterrupted) {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func start() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger, closer, err := app.NewLogger(cfg, os.Stderr)
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx := context.Background()
	g, err := app.New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer g.Close()
	return g.Play(ctx, tui.New(os.Stdin, os.Stdout, cfg.Plain))
}
