package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/sirupsen/logrus"
	"holdem-tournament/internal/config"
	"holdem-tournament/internal/rng"
	"holdem-tournament/pkg/tournament"
)

// Version is the runner version
var Version = "v0.0.0-dev"

var jsonEvents = flag.Bool("json", false, "write every event to stdout as JSON")

func main() {
	flag.Parse()
	setupLogger()

	cfg := config.Instance()
	settings := cfg.Settings()

	var random rng.Generator = rng.Crypto{}
	if settings.Seed != 0 {
		random = rng.NewSeeded(settings.Seed)
	}

	logger := logrus.WithField("version", Version)

	var sink tournament.Sink = tournament.LogSink{Logger: logger}
	if *jsonEvents {
		sink = tournament.Sinks{sink, tournament.NewJSONSink(os.Stdout)}
	}

	t, err := tournament.New(logger, settings, random, sink)
	if err != nil {
		logrus.WithError(err).Fatal("could not create tournament")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	standings, err := t.Run(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("tournament did not complete")
	}

	for _, p := range standings {
		logger.WithFields(logrus.Fields{
			"rank":  p.Rank,
			"chips": p.Chips,
			"won":   p.Stats.HandsWon,
		}).Info(p.Name)
	}
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
