package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/lox/handhistory/cmd/handhistory/shared"
	"github.com/lox/handhistory/internal/handhistory"
	"github.com/lox/handhistory/internal/render"

	// Register room grammars.
	_ "github.com/lox/handhistory/internal/room/pokerstars"
)

// ParseCmd parses transcript files (or stdin) and prints each hand.
type ParseCmd struct {
	Files  []string `arg:"" optional:"" name:"file" help:"Transcript files to parse (reads stdin when empty)"`
	Room   string   `default:"pokerstars" help:"Room grammar to use"`
	Format string   `default:"pretty" enum:"pretty,json" help:"Output format"`
	Quiet  bool     `short:"q" help:"Suppress anomaly output"`
	Debug  bool     `help:"Enable debug logging"`
}

func (cmd ParseCmd) Run() error {
	level := "info"
	if cmd.Debug {
		level = "debug"
	}
	logger := shared.SetupLogger(level)

	var sink handhistory.Sink = handhistory.NewLogSink(logger)
	if cmd.Quiet {
		sink = handhistory.DiscardSink{}
	}

	room, err := handhistory.Open(cmd.Room, handhistory.RoomOptions{
		Sink:   sink,
		Logger: logger,
	})
	if err != nil {
		return err
	}

	inputs, err := cmd.readInputs()
	if err != nil {
		return err
	}

	parsed := 0
	failed := 0
	for _, input := range inputs {
		name, text := input.name, input.text
		for idx, raw := range handhistory.SplitHands(text) {
			hh, err := room.Parse(raw)
			if err != nil {
				failed++
				logger.Error("unparseable hand", "source", name, "hand", idx+1, "err", err)
				continue
			}
			parsed++
			if err := cmd.print(hh); err != nil {
				return err
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d hands failed to parse", failed, parsed+failed)
	}
	if parsed == 0 {
		return fmt.Errorf("no hands found in input")
	}
	return nil
}

type parseInput struct {
	name string
	text string
}

// readInputs returns the transcript text per source, in argument order.
// With no file arguments it reads a single transcript from stdin.
func (cmd ParseCmd) readInputs() ([]parseInput, error) {
	if len(cmd.Files) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return []parseInput{{name: "stdin", text: string(data)}}, nil
	}

	inputs := make([]parseInput, 0, len(cmd.Files))
	for _, path := range cmd.Files {
		data, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, parseInput{name: path, text: string(data)})
	}
	return inputs, nil
}

func (cmd ParseCmd) print(hh *handhistory.HandHistory) error {
	switch cmd.Format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(hh)
	default:
		out := render.Hand(hh)
		if !strings.HasSuffix(out, "\n") {
			out += "\n"
		}
		_, err := fmt.Print(out)
		return err
	}
}

// RoomsCmd lists the registered room grammars.
type RoomsCmd struct{}

func (cmd RoomsCmd) Run() error {
	for _, name := range handhistory.Rooms() {
		fmt.Println(name)
	}
	return nil
}
