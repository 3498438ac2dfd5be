package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SystemBuilders/noticeboard/internal/boardservice"
	"github.com/SystemBuilders/noticeboard/internal/config"
	"github.com/SystemBuilders/noticeboard/internal/idgen"
	"github.com/SystemBuilders/noticeboard/internal/node"
	"github.com/rs/zerolog"
)

func main() {
	path := flag.String("config", "", "path to a YAML configuration file")
	flag.Parse()

	cfg, err := config.Load(*path)
	if err != nil {
		zerolog.New(os.Stderr).Fatal().Err(err).Msg("loading configuration")
	}

	log := newLogger(cfg.Log)

	ids, err := idgen.New(cfg.IDs.Generator)
	if err != nil {
		log.Fatal().Err(err).Msg("creating id generator")
	}
	sb := boardservice.NewSafeBoard(log, ids, boardservice.WithMaxIDAttempts(cfg.IDs.MaxAttempts))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := node.New(cfg.Listen, sb, log).Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func newLogger(cfg config.Log) zerolog.Logger {
	// Level was checked by config.Load.
	lvl, _ := cfg.ParseLevel()

	if cfg.Console {
		out := zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}
		return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stdout).Level(lvl).With().Timestamp().Logger()
}
