// Package handhistory defines the result model shared by all room parsers:
// the HandHistory aggregate, its players, streets and actions, the closed
// vocabularies they draw from, the anomaly side channel, and the room
// registry. Room-specific grammars live under internal/room.
package handhistory

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lox/handhistory/internal/deck"
)

// Player is one seat in the roster. Unfilled seats hold the empty-seat
// sentinel so the roster length stays equal to the table's max seats.
type Player struct {
	Name  string          `json:"name"`
	Stack decimal.Decimal `json:"stack"`
	Seat  int             `json:"seat"`
	Combo *deck.Combo     `json:"combo,omitempty"`
}

// EmptySeat returns the sentinel player for an unoccupied seat.
func EmptySeat(seat int) Player {
	return Player{Name: fmt.Sprintf("Empty Seat %d", seat), Stack: decimal.Zero, Seat: seat}
}

// IsEmptySeat reports whether the player is the empty-seat sentinel.
func (p Player) IsEmptySeat() bool {
	return strings.HasPrefix(p.Name, "Empty Seat ")
}

// PlayerAction is one parsed action line. Amount is nil when the action
// carries no amount (check, fold, muck, all-in) or when the amount token
// could not be converted.
type PlayerAction struct {
	Name   string           `json:"name"`
	Action Action           `json:"action"`
	Amount *decimal.Decimal `json:"amount,omitempty"`
}

// Street is one betting round's community cards and ordered actions.
// Cards holds up to three flop cards; rooms that print all revealed cards
// on one marker line spill the fourth and fifth into TurnCard and RiverCard.
// Actions is nil, not empty, when the section parsed to nothing.
type Street struct {
	Cards     []deck.Card      `json:"cards,omitempty"`
	TurnCard  *deck.Card       `json:"turn_card,omitempty"`
	RiverCard *deck.Card       `json:"river_card,omitempty"`
	Actions   []PlayerAction   `json:"actions,omitempty"`
	Pot       *decimal.Decimal `json:"pot,omitempty"`
}

// AllCards returns the street's cards in reveal order.
func (s *Street) AllCards() []deck.Card {
	cards := append([]deck.Card(nil), s.Cards...)
	if s.TurnCard != nil {
		cards = append(cards, *s.TurnCard)
	}
	if s.RiverCard != nil {
		cards = append(cards, *s.RiverCard)
	}
	return cards
}

// PlayerNames returns the distinct acting players in first-action order.
func (s *Street) PlayerNames() []string {
	if len(s.Actions) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(s.Actions))
	names := make([]string, 0, len(s.Actions))
	for _, action := range s.Actions {
		if _, ok := seen[action.Name]; ok {
			continue
		}
		seen[action.Name] = struct{}{}
		names = append(names, action.Name)
	}
	return names
}

// HandHistory is the structured representation of one played hand. It is
// assembled by a room parser and immutable afterwards. Optional fields hold
// their zero value when the transcript did not yield them.
type HandHistory struct {
	Room string `json:"room"`
	Raw  string `json:"-"`

	// Identity and classification
	ID              string   `json:"id"`
	TournamentID    string   `json:"tournament_id,omitempty"`
	TournamentLevel string   `json:"tournament_level,omitempty"`
	GameType        GameType `json:"game_type"`
	Game            Game     `json:"game"`
	Limit           Limit    `json:"limit"`

	// Stakes
	Currency   Currency        `json:"currency,omitempty"`
	MoneyType  MoneyType       `json:"money_type"`
	SmallBlind decimal.Decimal `json:"small_blind"`
	BigBlind   decimal.Decimal `json:"big_blind"`
	BuyIn      decimal.Decimal `json:"buy_in,omitempty"`
	BuyInRake  decimal.Decimal `json:"buy_in_rake,omitempty"`
	Ante       decimal.Decimal `json:"ante,omitempty"`

	// Timestamp, normalized to UTC. Zero when the header date failed to parse.
	Date time.Time `json:"date"`

	// Table
	TableName  string `json:"table_name,omitempty"`
	MaxPlayers int    `json:"max_players"`
	ButtonSeat int    `json:"button_seat,omitempty"`
	HeroSeat   int    `json:"hero_seat,omitempty"`

	// Roster: length always equals MaxPlayers, seat n at index n-1.
	Players []Player `json:"players"`

	// Streets
	PreflopActions []string `json:"preflop_actions,omitempty"`
	Flop           *Street  `json:"flop,omitempty"`
	Turn           *Street  `json:"turn,omitempty"`
	River          *Street  `json:"river,omitempty"`

	// Outcome
	ShowDown bool            `json:"show_down"`
	TotalPot decimal.Decimal `json:"total_pot"`
	Rake     decimal.Decimal `json:"rake"`
	Board    []deck.Card     `json:"board,omitempty"`
	Winners  []string        `json:"winners,omitempty"`

	// Button and Hero point into Players so combo annotations stay
	// consistent across both views. Nil when unresolved.
	Button *Player `json:"-"`
	Hero   *Player `json:"-"`
}

// PlayerAt returns the roster entry for a 1-based seat number, or nil when
// the seat is out of range.
func (h *HandHistory) PlayerAt(seat int) *Player {
	if seat < 1 || seat > len(h.Players) {
		return nil
	}
	return &h.Players[seat-1]
}

// FindPlayer returns the roster entry with the given name, or nil.
func (h *HandHistory) FindPlayer(name string) *Player {
	for i := range h.Players {
		if h.Players[i].Name == name {
			return &h.Players[i]
		}
	}
	return nil
}

// SeatedPlayers returns the non-empty roster entries in seat order.
func (h *HandHistory) SeatedPlayers() []Player {
	players := make([]Player, 0, len(h.Players))
	for _, p := range h.Players {
		if !p.IsEmptySeat() {
			players = append(players, p)
		}
	}
	return players
}

func (h *HandHistory) String() string {
	return fmt.Sprintf("<%s hand #%s>", h.Room, h.ID)
}
