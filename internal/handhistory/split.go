package handhistory

import "strings"

// SplitHands splits a room client log file into one raw transcript per
// hand. Rooms separate hands with blank-line runs and never print blank
// lines inside a hand, so a blank line ends the current chunk.
func SplitHands(text string) []string {
	lines := strings.Split(text, "\n")
	var hands []string
	cur := make([]string, 0, 64)
	flush := func() {
		if len(cur) == 0 {
			return
		}
		hand := strings.TrimSpace(strings.Join(cur, "\n"))
		if hand != "" {
			hands = append(hands, hand)
		}
		cur = cur[:0]
	}
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		cur = append(cur, line)
	}
	flush()
	return hands
}
