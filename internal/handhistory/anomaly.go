package handhistory

import (
	"sync"

	"github.com/charmbracelet/log"
)

// Severity classifies how far a recovered parse issue degraded the result.
type Severity int

const (
	// SeverityWarning covers discarded lines and vocabulary fallbacks.
	SeverityWarning Severity = iota
	// SeverityError covers whole sections replaced by their defaults.
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Anomaly is one recovered, non-fatal parse issue. Line carries the
// offending transcript line when one exists.
type Anomaly struct {
	Severity Severity
	Message  string
	Line     string
}

// Sink receives anomalies as they are detected. Implementations must
// tolerate concurrent Report calls: hands parse independently and callers
// may share one sink across parallel workers.
type Sink interface {
	Report(a Anomaly)
}

// MemorySink collects anomalies in memory, for tests and batch diagnostics.
type MemorySink struct {
	mu        sync.Mutex
	anomalies []Anomaly
}

// NewMemorySink creates an empty in-memory sink.
func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

// Report implements Sink.
func (s *MemorySink) Report(a Anomaly) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.anomalies = append(s.anomalies, a)
}

// Anomalies returns a copy of everything reported so far.
func (s *MemorySink) Anomalies() []Anomaly {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Anomaly(nil), s.anomalies...)
}

// Reset discards collected anomalies.
func (s *MemorySink) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.anomalies = nil
}

// LogSink forwards anomalies to a logger. The logger handles its own
// synchronization, so LogSink is safe for concurrent use.
type LogSink struct {
	logger *log.Logger
}

// NewLogSink creates a sink that logs anomalies with the given logger.
func NewLogSink(logger *log.Logger) *LogSink {
	return &LogSink{logger: logger.WithPrefix("parser")}
}

// Report implements Sink.
func (s *LogSink) Report(a Anomaly) {
	switch a.Severity {
	case SeverityError:
		s.logger.Error(a.Message, "line", a.Line)
	default:
		s.logger.Warn(a.Message, "line", a.Line)
	}
}

// DiscardSink drops all anomalies. Used when callers only want the hand.
type DiscardSink struct{}

// Report implements Sink.
func (DiscardSink) Report(Anomaly) {}
