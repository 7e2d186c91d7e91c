package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lox/handhistory/cmd/handhistory/shared"
	"github.com/lox/handhistory/internal/config"
	"github.com/lox/handhistory/internal/handhistory"
	"github.com/lox/handhistory/internal/importer"
)

// WatchCmd polls a directory and imports every hand from new transcript
// files as they appear.
type WatchCmd struct {
	Config string `short:"c" default:"handhistory.hcl" help:"Path to HCL config file"`
	Dir    string `help:"Directory to watch (overrides config)"`
	Once   bool   `help:"Scan once and exit instead of polling"`
}

func (cmd WatchCmd) Run() error {
	cfg, err := config.Load(cmd.Config)
	if err != nil {
		return err
	}
	if cmd.Dir != "" {
		cfg.Import.Dir = cmd.Dir
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger := shared.SetupLogger(cfg.Log.Level)
	sink := handhistory.NewLogSink(logger)

	room, err := handhistory.Open(cfg.Parser.Room, handhistory.RoomOptions{
		Sink:   sink,
		Logger: logger,
	})
	if err != nil {
		return err
	}

	handler := func(hh *handhistory.HandHistory) {
		logger.Info("imported hand",
			"room", hh.Room,
			"id", hh.ID,
			"game", hh.Game,
			"pot", hh.TotalPot.String(),
			"winners", hh.Winners)
	}

	opts := []importer.Option{
		importer.WithInterval(time.Duration(cfg.Import.IntervalSeconds) * time.Second),
		importer.WithWorkers(cfg.Import.Workers),
		importer.WithSink(sink),
		importer.WithLogger(logger),
	}
	if cfg.Import.StateFile != "" {
		opts = append(opts, importer.WithStateFile(cfg.Import.StateFile))
	}
	imp := importer.New(cfg.Import.Dir, room, handler, opts...)

	ctx := shared.SetupSignalHandlerWithLogger(logger)
	if cmd.Once {
		return imp.Scan(ctx)
	}

	logger.Info("watching for hand history files",
		"dir", cfg.Import.Dir,
		"interval", cfg.Import.IntervalSeconds,
		"room", cfg.Parser.Room)
	if err := imp.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
