package pokerstars

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/lox/handhistory/internal/deck"
	"github.com/lox/handhistory/internal/handhistory"
)

var (
	bracketRe        = regexp.MustCompile(`\[([^\]]+)\]`)
	uncalledAmountRe = regexp.MustCompile(`\((\$?\d+(?:\.\d+)?)\)`)
	uncalledNameRe   = regexp.MustCompile(`returned to (.+)$`)
	collectedRe      = regexp.MustCompile(`^(?P<name>.+?) collected \$?(?P<amount>\d+(?:\.\d+)?) from pot`)
	muckRe           = regexp.MustCompile(`^(?P<name>.+?): (?:doesn't show hand|mucks)`)
	joinRe           = regexp.MustCompile(`^(?P<name>.+?) joins the table at seat #(?P<seat>\d+)$`)
)

const chatMarker = ` said, "`

// parseStreetLines turns one street's line block into a Street. The first
// line is the section marker and may carry the board; the rest are
// classified one by one, each failure degrading to a reported skip.
func (h *hand) parseStreetLines(lines []string) *handhistory.Street {
	street := &handhistory.Street{}
	if len(lines) == 0 {
		return street
	}
	h.parseStreetCards(street, lines[0])
	h.parseStreetActions(street, lines[1:])
	return street
}

// parseStreetCards extracts community cards from the marker line. Turn and
// river markers print the prior board and the new card in separate bracket
// groups ("*** TURN *** [Th 8h 5c] [Qd]"), so all groups are concatenated:
// positions 1-3 are the flop, the 4th the turn, the 5th the river.
func (h *hand) parseStreetCards(street *handhistory.Street, markerLine string) {
	var tokens []string
	for _, m := range bracketRe.FindAllStringSubmatch(markerLine, -1) {
		tokens = append(tokens, strings.Fields(m[1])...)
	}
	cards := make([]deck.Card, 0, len(tokens))
	for _, token := range tokens {
		card, err := deck.ParseCard(token)
		if err != nil {
			h.warnf(markerLine, "bad board card %q", token)
			continue
		}
		cards = append(cards, card)
	}
	if len(cards) == 0 {
		return
	}
	if len(cards) > 3 {
		street.Cards = cards[:3]
	} else {
		street.Cards = cards
	}
	if len(cards) > 3 {
		turn := cards[3]
		street.TurnCard = &turn
	}
	if len(cards) > 4 {
		river := cards[4]
		street.RiverCard = &river
	}
}

// parseStreetActions classifies action lines in priority order. An empty
// result stays nil so a present-but-unparseable section is distinguishable
// from a missing one.
func (h *hand) parseStreetActions(street *handhistory.Street, lines []string) {
	var actions []handhistory.PlayerAction
	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "Uncalled bet"):
			if action, ok := h.parseUncalled(line); ok {
				actions = append(actions, action)
			}
		case strings.Contains(line, "collected"):
			if action, ok := h.parseCollected(line); ok {
				street.Pot = action.Amount
				actions = append(actions, action)
			}
		case strings.Contains(line, "doesn't show hand") || strings.Contains(line, "mucks"):
			if action, ok := h.parseMuck(line); ok {
				actions = append(actions, action)
			}
		case strings.Contains(line, "joins the table"):
			h.parseJoin(line)
		case strings.Contains(line, chatMarker):
			// Table chat never becomes an action.
		case strings.Contains(line, ": "):
			if action, ok := h.parsePlayerAction(line); ok {
				actions = append(actions, action)
			}
		default:
			h.warnf(line, "unrecognized action line")
		}
	}
	if len(actions) > 0 {
		street.Actions = actions
	}
}

// parseUncalled handles "Uncalled bet ($0.40) returned to EsAyy".
func (h *hand) parseUncalled(line string) (handhistory.PlayerAction, bool) {
	amountMatch := uncalledAmountRe.FindStringSubmatch(line)
	nameMatch := uncalledNameRe.FindStringSubmatch(line)
	if amountMatch == nil || nameMatch == nil {
		h.warnf(line, "malformed uncalled bet line")
		return handhistory.PlayerAction{}, false
	}
	return handhistory.PlayerAction{
		Name:   nameMatch[1],
		Action: handhistory.ActionReturn,
		Amount: parseAmount(amountMatch[1]),
	}, true
}

// parseCollected handles "EsAyy collected $0.37 from pot". The collected
// amount doubles as the street's running pot.
func (h *hand) parseCollected(line string) (handhistory.PlayerAction, bool) {
	m := collectedRe.FindStringSubmatch(line)
	if m == nil {
		h.warnf(line, "malformed collected line")
		return handhistory.PlayerAction{}, false
	}
	return handhistory.PlayerAction{
		Name:   m[1],
		Action: handhistory.ActionWin,
		Amount: parseAmount(m[2]),
	}, true
}

// parseMuck handles "PlayerX: doesn't show hand" and "PlayerX: mucks".
func (h *hand) parseMuck(line string) (handhistory.PlayerAction, bool) {
	m := muckRe.FindStringSubmatch(line)
	if m == nil {
		h.warnf(line, "malformed muck line")
		return handhistory.PlayerAction{}, false
	}
	return handhistory.PlayerAction{Name: m[1], Action: handhistory.ActionMuck}, true
}

// parseJoin seats a mid-hand arrival. Joins are roster events, not actions;
// an occupied seat is reported and left untouched.
func (h *hand) parseJoin(line string) {
	m := joinRe.FindStringSubmatch(line)
	if m == nil {
		h.warnf(line, "malformed join line")
		return
	}
	name := m[1]
	seat, err := strconv.Atoi(m[2])
	if err != nil || seat < 1 || seat > len(h.hh.Players) {
		h.warnf(line, "join seat %q out of range", m[2])
		return
	}
	occupant := &h.hh.Players[seat-1]
	if !occupant.IsEmptySeat() {
		h.warnf(line, "seat %d already occupied by %q, %q cannot join", seat, occupant.Name, name)
		return
	}
	*occupant = handhistory.Player{Name: name, Seat: seat}
}

// parsePlayerAction handles generic "name: action [amount ...]" lines.
// An explicit all-in never carries an amount: the trailing number is the
// resulting stack total, not the wagered delta, and attributing it would
// be ambiguous. For the rest, the amount is always the first token after
// the keyword ("raises $0.10 to $0.15" records 0.10).
func (h *hand) parsePlayerAction(line string) (handhistory.PlayerAction, bool) {
	name, rest, _ := strings.Cut(line, ": ")
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		h.warnf(line, "empty action")
		return handhistory.PlayerAction{}, false
	}
	token := strings.ToUpper(fields[0])
	if token == "ALL-IN" {
		return handhistory.PlayerAction{Name: name, Action: handhistory.ActionAllIn}, true
	}
	action, ok := handhistory.ParseAction(token)
	if !ok {
		h.warnf(line, "unknown action %q", fields[0])
		return handhistory.PlayerAction{}, false
	}
	pa := handhistory.PlayerAction{Name: name, Action: action}
	switch action {
	case handhistory.ActionBet, handhistory.ActionCall, handhistory.ActionRaise, handhistory.ActionPost:
		// First numeric token after the keyword: "raises $0.10 to $0.15"
		// records 0.10, "posts small blind $0.25" records 0.25.
		for _, field := range fields[1:] {
			if amount := parseAmount(field); amount != nil {
				pa.Amount = amount
				break
			}
		}
	}
	return pa, true
}
