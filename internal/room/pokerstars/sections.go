package pokerstars

import (
	"regexp"
	"strings"
)

// Sections are delimited by marker lines like "*** FLOP *** [4c Js 7c]".
// The marker line stays as the first line of its section because it may
// carry the board card list.
var sectionMarkerRe = regexp.MustCompile(`^\*\*\*\s*(.+?)\s*\*\*\*`)

// sectionMap holds the transcript partitioned into named line blocks,
// preserving order of appearance. Everything before the first marker is
// the HEADER section.
type sectionMap struct {
	order  []string
	blocks map[string][]string
}

func splitSections(raw string) *sectionMap {
	sm := &sectionMap{blocks: make(map[string][]string)}
	current := "HEADER"
	sm.order = append(sm.order, current)
	sm.blocks[current] = nil

	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	for _, line := range strings.Split(strings.TrimSpace(raw), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if m := sectionMarkerRe.FindStringSubmatch(line); m != nil {
			current = sectionName(m[1])
			if _, exists := sm.blocks[current]; !exists {
				sm.order = append(sm.order, current)
			}
			// A repeated marker name appends to the earlier block so
			// downstream parsers still see every line.
		}
		sm.blocks[current] = append(sm.blocks[current], line)
	}
	return sm
}

// sectionName canonicalizes a marker label: "SHOW DOWN" -> "SHOW_DOWN".
func sectionName(label string) string {
	return strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(label)), " ", "_")
}

// get returns a section's lines and whether the section exists.
func (sm *sectionMap) get(name string) ([]string, bool) {
	lines, ok := sm.blocks[name]
	return lines, ok
}

// has reports whether the named section appeared in the transcript.
func (sm *sectionMap) has(name string) bool {
	_, ok := sm.blocks[name]
	return ok
}
