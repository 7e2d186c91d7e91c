package handhistory

import (
	"fmt"
	"sync"
	"testing"
)

func TestMemorySink(t *testing.T) {
	sink := NewMemorySink()
	sink.Report(Anomaly{Severity: SeverityWarning, Message: "discarded line", Line: "garbage"})
	sink.Report(Anomaly{Severity: SeverityError, Message: "summary missing"})

	anomalies := sink.Anomalies()
	if len(anomalies) != 2 {
		t.Fatalf("Anomalies() returned %d, want 2", len(anomalies))
	}
	if anomalies[0].Severity != SeverityWarning || anomalies[0].Line != "garbage" {
		t.Errorf("unexpected first anomaly: %+v", anomalies[0])
	}
	if anomalies[1].Severity != SeverityError {
		t.Errorf("unexpected second anomaly: %+v", anomalies[1])
	}

	sink.Reset()
	if got := sink.Anomalies(); len(got) != 0 {
		t.Errorf("Anomalies() after Reset returned %d, want 0", len(got))
	}
}

func TestMemorySinkConcurrent(t *testing.T) {
	sink := NewMemorySink()
	const workers = 8
	const reports = 100

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < reports; i++ {
				sink.Report(Anomaly{
					Severity: SeverityWarning,
					Message:  fmt.Sprintf("worker %d report %d", w, i),
				})
			}
		}(w)
	}
	wg.Wait()

	if got := len(sink.Anomalies()); got != workers*reports {
		t.Errorf("Anomalies() returned %d, want %d", got, workers*reports)
	}
}

func TestMemorySinkCopies(t *testing.T) {
	sink := NewMemorySink()
	sink.Report(Anomaly{Message: "one"})

	got := sink.Anomalies()
	got[0].Message = "mutated"
	if sink.Anomalies()[0].Message != "one" {
		t.Error("Anomalies() should return a copy")
	}
}

func TestSeverityString(t *testing.T) {
	if SeverityWarning.String() != "warning" {
		t.Errorf("SeverityWarning.String() = %q", SeverityWarning.String())
	}
	if SeverityError.String() != "error" {
		t.Errorf("SeverityError.String() = %q", SeverityError.String())
	}
	if Severity(99).String() != "unknown" {
		t.Errorf("Severity(99).String() = %q", Severity(99).String())
	}
}

func TestDiscardSink(t *testing.T) {
	// Must not panic, that is the whole contract.
	DiscardSink{}.Report(Anomaly{Message: "dropped"})
}
