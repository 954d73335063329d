package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"time"

	"github.com/iamasit07/4-in-a-row/engine/internal/cli"
	"github.com/iamasit07/4-in-a-row/engine/internal/config"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Bootstrap(true)

	depth := flag.Int("depth", cfg.SearchDepth, "search depth in plies")
	difficulty := flag.String("difficulty", "", "easy, medium or hard (overrides -depth)")
	parallel := flag.Bool("parallel", cfg.ParallelSearch, "search root moves in parallel")
	first := flag.String("first", "random", "who moves first: player, computer or random")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	go func() {
		// a second interrupt gets the default behaviour and kills the process
		<-ctx.Done()
		stop()
	}()

	opts := cli.Options{
		Depth:      *depth,
		Difficulty: *difficulty,
		Parallel:   *parallel,
		First:      *first,
		Seed:       uint64(time.Now().UnixNano()),
	}
	if err := cli.Play(ctx, os.Stdin, os.Stdout, opts); err != nil {
		if errors.Is(err, context.Canceled) {
			log.Info().Msg("game interrupted")
			os.Exit(130)
		}
		log.Fatal().Err(err).Msg("game aborted")
	}
}
