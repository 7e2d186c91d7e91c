// Package importer watches a directory of room client log files and feeds
// every hand they contain through a room parser. Hands are independent, so
// discovered files are parsed by a bounded pool of workers; a hand that
// fails fatally is reported and skipped, never stopping the watcher.
package importer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/handhistory/internal/handhistory"
)

const (
	defaultInterval = 5 * time.Second
	defaultWorkers  = 4
)

// Handler receives each successfully parsed hand.
type Handler func(hh *handhistory.HandHistory)

// Importer polls a directory for new transcript files.
type Importer struct {
	dir       string
	room      handhistory.Room
	handler   Handler
	sink      handhistory.Sink
	logger    *log.Logger
	clock     quartz.Clock
	interval  time.Duration
	workers   int
	statePath string

	mu   sync.Mutex
	seen map[string]bool
}

// Option configures an Importer.
type Option func(*Importer)

// WithClock injects the clock driving the poll loop. Tests pass a
// quartz mock to advance time deterministically.
func WithClock(clock quartz.Clock) Option {
	return func(i *Importer) { i.clock = clock }
}

// WithInterval sets the poll interval.
func WithInterval(interval time.Duration) Option {
	return func(i *Importer) { i.interval = interval }
}

// WithWorkers bounds the number of files parsed concurrently.
func WithWorkers(workers int) Option {
	return func(i *Importer) {
		if workers > 0 {
			i.workers = workers
		}
	}
}

// WithSink injects the anomaly sink shared with the parser.
func WithSink(sink handhistory.Sink) Option {
	return func(i *Importer) {
		if sink != nil {
			i.sink = sink
		}
	}
}

// WithLogger injects a logger.
func WithLogger(logger *log.Logger) Option {
	return func(i *Importer) { i.logger = logger.WithPrefix("importer") }
}

// WithStateFile persists the set of processed files across restarts.
// Without it the importer starts from scratch every run.
func WithStateFile(path string) Option {
	return func(i *Importer) { i.statePath = path }
}

// New creates an importer for the given directory and room grammar.
func New(dir string, room handhistory.Room, handler Handler, opts ...Option) *Importer {
	i := &Importer{
		dir:      dir,
		room:     room,
		handler:  handler,
		sink:     handhistory.DiscardSink{},
		clock:    quartz.NewReal(),
		interval: defaultInterval,
		workers:  defaultWorkers,
		seen:     make(map[string]bool),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Run polls until the context is cancelled. The directory is scanned once
// immediately, then on every tick.
func (i *Importer) Run(ctx context.Context) error {
	if err := i.loadState(); err != nil {
		i.logf(func(l *log.Logger) { l.Warn("could not load importer state", "err", err) })
	}

	if err := i.Scan(ctx); err != nil {
		return err
	}

	ticker := i.clock.NewTicker(i.interval, "importer", "poll")
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := i.Scan(ctx); err != nil {
				return err
			}
		}
	}
}

// Scan parses every not-yet-processed transcript file in the directory,
// up to `workers` files at a time. Exported so one-shot callers can run a
// single pass without the poll loop.
func (i *Importer) Scan(ctx context.Context) error {
	files, err := i.discover()
	if err != nil {
		i.logf(func(l *log.Logger) { l.Error("scan failed", "dir", i.dir, "err", err) })
		return nil // transient; retry next tick
	}
	if len(files) == 0 {
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(i.workers)
	for _, path := range files {
		path := path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			i.importFile(path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	i.mu.Lock()
	for _, path := range files {
		i.seen[filepath.Base(path)] = true
	}
	i.mu.Unlock()
	if err := i.saveState(); err != nil {
		i.logf(func(l *log.Logger) { l.Warn("could not save importer state", "err", err) })
	}
	return nil
}

// discover lists unprocessed .txt files, sorted for deterministic order.
func (i *Importer) discover() ([]string, error) {
	entries, err := os.ReadDir(i.dir)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}
		if i.seen[entry.Name()] {
			continue
		}
		files = append(files, filepath.Join(i.dir, entry.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// importFile parses every hand in one file. A fatal hand is reported and
// skipped; the rest of the file still imports.
func (i *Importer) importFile(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		i.sink.Report(handhistory.Anomaly{
			Severity: handhistory.SeverityError,
			Message:  fmt.Sprintf("unreadable file %s: %v", path, err),
		})
		return
	}
	hands := handhistory.SplitHands(string(data))
	imported := 0
	for _, raw := range hands {
		hh, err := i.room.Parse(raw)
		if err != nil {
			i.sink.Report(handhistory.Anomaly{
				Severity: handhistory.SeverityError,
				Message:  fmt.Sprintf("unparseable hand in %s: %v", path, err),
			})
			continue
		}
		imported++
		if i.handler != nil {
			i.handler(hh)
		}
	}
	i.logf(func(l *log.Logger) {
		l.Info("imported file", "path", path, "hands", imported, "skipped", len(hands)-imported)
	})
}

func (i *Importer) logf(fn func(l *log.Logger)) {
	if i.logger != nil {
		fn(i.logger)
	}
}
