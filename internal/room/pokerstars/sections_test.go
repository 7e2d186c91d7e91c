package pokerstars

import "testing"

func TestSplitSections(t *testing.T) {
	raw := `PokerStars Hand #1: Hold'em No Limit ($0.01/$0.02) - 2020/01/01 12:00:00 ET
Table 'T1' 6-max Seat #1 is the button
Seat 1: a ($1 in chips)
*** HOLE CARDS ***
Dealt to a [Ah Kd]
*** FLOP *** [4c Js 7c]
a: bets $0.10
*** SHOW DOWN ***
a: shows [Ah Kd]
*** SUMMARY ***
Total pot $0.10 | Rake $0`

	sm := splitSections(raw)

	header, ok := sm.get("HEADER")
	if !ok {
		t.Fatal("HEADER section missing")
	}
	if len(header) != 3 {
		t.Errorf("HEADER has %d lines, want 3: %v", len(header), header)
	}

	for _, name := range []string{"HOLE_CARDS", "FLOP", "SHOW_DOWN", "SUMMARY"} {
		if !sm.has(name) {
			t.Errorf("section %s missing", name)
		}
	}
	if sm.has("TURN") {
		t.Error("TURN should be absent")
	}

	// The marker line stays as the first line of its section.
	flop, _ := sm.get("FLOP")
	if len(flop) != 2 || flop[0] != "*** FLOP *** [4c Js 7c]" {
		t.Errorf("FLOP lines = %v", flop)
	}
}

func TestSplitSectionsNormalizesNames(t *testing.T) {
	sm := splitSections("header\n***  show down  ***\nline")
	if !sm.has("SHOW_DOWN") {
		t.Errorf("sections = %v", sm.order)
	}
}

func TestSplitSectionsRepeatedMarker(t *testing.T) {
	sm := splitSections("h\n*** FLOP ***\none\n*** FLOP ***\ntwo")
	flop, _ := sm.get("FLOP")
	// Both blocks accumulate under one name so no line is lost.
	if len(flop) != 4 {
		t.Errorf("FLOP lines = %v", flop)
	}
	if len(sm.order) != 2 {
		t.Errorf("order = %v", sm.order)
	}
}

func TestSplitSectionsCRLFAndBlankLines(t *testing.T) {
	sm := splitSections("header one\r\n\r\nheader two\r\n*** SUMMARY ***\r\npot line\r\n")
	header, _ := sm.get("HEADER")
	if len(header) != 2 {
		t.Errorf("HEADER lines = %v", header)
	}
	summary, _ := sm.get("SUMMARY")
	if len(summary) != 2 {
		t.Errorf("SUMMARY lines = %v", summary)
	}
}

func TestSplitSectionsEmpty(t *testing.T) {
	sm := splitSections("")
	header, ok := sm.get("HEADER")
	if !ok {
		t.Fatal("HEADER should always exist")
	}
	if len(header) != 0 {
		t.Errorf("HEADER lines = %v", header)
	}
}
