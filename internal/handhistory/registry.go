package handhistory

import (
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"
)

// Room parses one poker room's transcript format into the shared result
// model. New rooms plug in by implementing Room and registering a factory;
// the core never needs to change.
type Room interface {
	// Name returns the registry name of the room grammar.
	Name() string
	// ParseHeader parses only the first header line: identity, stakes,
	// classification and timestamp. Cheap lookahead for indexing.
	ParseHeader(raw string) (*HandHistory, error)
	// Parse parses the whole transcript. The only error it returns is the
	// room's fatal header failure; everything else degrades to defaults
	// and is reported to the anomaly sink.
	Parse(raw string) (*HandHistory, error)
}

// RoomOptions carries the injectable collaborators a room factory may use.
type RoomOptions struct {
	Sink   Sink
	Logger *log.Logger
}

// RoomFactory builds a Room with the given collaborators.
type RoomFactory func(opts RoomOptions) Room

var (
	registryMu sync.RWMutex
	registry   = make(map[string]RoomFactory)
)

// Register makes a room grammar available by name. Registering a duplicate
// name panics; rooms register once from package init.
func Register(name string, factory RoomFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("handhistory: room %q already registered", name))
	}
	registry[name] = factory
}

// Open builds the named room grammar.
func Open(name string, opts RoomOptions) (Room, error) {
	registryMu.RLock()
	factory, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("handhistory: unknown room %q (registered: %v)", name, Rooms())
	}
	if opts.Sink == nil {
		opts.Sink = DiscardSink{}
	}
	return factory(opts), nil
}

// Rooms returns the registered room names, sorted.
func Rooms() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
