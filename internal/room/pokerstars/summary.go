package pokerstars

import (
	"regexp"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/lox/handhistory/internal/deck"
)

var (
	potRe             = regexp.MustCompile(`^Total pot \$?(?P<pot>\d+(?:\.\d+)?) \| Rake \$?(?P<rake>\d+(?:\.\d+)?)`)
	collectedWinnerRe = regexp.MustCompile(`^Seat \d+: (?P<name>.+?) collected \(\$?(?P<amount>\d+(?:\.\d+)?)\)`)
	showedWonRe       = regexp.MustCompile(`^Seat \d+: (?P<name>.+?) showed \[.+?\] and won`)
)

// parsePot extracts total pot and rake from the summary pot line. A missing
// or malformed line defaults both to zero.
func (h *hand) parsePot() {
	h.hh.TotalPot = decimal.Zero
	h.hh.Rake = decimal.Zero
	lines, ok := h.sections.get("SUMMARY")
	if !ok {
		h.errorf("", "summary section missing, pot and rake default to zero")
		return
	}
	for _, line := range lines {
		m := namedGroups(potRe, line)
		if m == nil {
			continue
		}
		h.hh.TotalPot = h.amountOrZero(m["pot"], line)
		h.hh.Rake = h.amountOrZero(m["rake"], line)
		return
	}
	h.errorf("", "summary pot line missing, pot and rake default to zero")
}

// parseBoard extracts the final board from the first bracketed card list in
// the summary. Absent when no such line exists.
func (h *hand) parseBoard() {
	lines, ok := h.sections.get("SUMMARY")
	if !ok {
		return
	}
	for _, line := range lines {
		m := bracketRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		var board []deck.Card
		for _, token := range strings.Fields(m[1]) {
			card, err := deck.ParseCard(token)
			if err != nil {
				h.warnf(line, "bad board card %q", token)
				continue
			}
			board = append(board, card)
		}
		h.hh.Board = board
		return
	}
}

// parseWinners accumulates the winner set from both summary line shapes:
// "Seat N: name collected ($amt)" and "Seat N: name showed [...] and won".
// A player matching both shapes appears once; the result is sorted so
// identical input always yields identical output.
func (h *hand) parseWinners() {
	lines, ok := h.sections.get("SUMMARY")
	if !ok {
		return
	}
	set := make(map[string]struct{})
	for _, line := range lines {
		if m := collectedWinnerRe.FindStringSubmatch(line); m != nil {
			set[m[1]] = struct{}{}
			continue
		}
		if m := showedWonRe.FindStringSubmatch(line); m != nil {
			set[m[1]] = struct{}{}
		}
	}
	if len(set) == 0 {
		return
	}
	winners := make([]string, 0, len(set))
	for name := range set {
		winners = append(winners, name)
	}
	sort.Strings(winners)
	h.hh.Winners = winners
}
