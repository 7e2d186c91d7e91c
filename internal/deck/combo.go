package deck

import (
	"fmt"
	"strings"
)

// Combo is a two-card hole combination, as revealed by a "Dealt to" line.
type Combo struct {
	First  Card
	Second Card
}

// NewCombo creates a combo from two cards
func NewCombo(first, second Card) Combo {
	return Combo{First: first, Second: second}
}

// ParseCombo parses a combo from compact ("AhKd") or spaced ("Ah Kd") notation.
func ParseCombo(s string) (Combo, error) {
	compact := strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	cards, err := ParseCards(compact)
	if err != nil {
		return Combo{}, fmt.Errorf("invalid combo %q: %w", s, err)
	}
	if len(cards) != 2 {
		return Combo{}, fmt.Errorf("invalid combo %q: expected 2 cards, got %d", s, len(cards))
	}
	return Combo{First: cards[0], Second: cards[1]}, nil
}

// MustParseCombo parses a combo and panics on error (for tests)
func MustParseCombo(s string) Combo {
	combo, err := ParseCombo(s)
	if err != nil {
		panic(err)
	}
	return combo
}

// String returns the compact notation (e.g. "AhKd")
func (c Combo) String() string {
	return c.First.String() + c.Second.String()
}

// Symbol returns the display form (e.g. "A♥ K♦")
func (c Combo) Symbol() string {
	return c.First.Symbol() + " " + c.Second.Symbol()
}

// Cards returns the combo as a slice
func (c Combo) Cards() []Card {
	return []Card{c.First, c.Second}
}

// MarshalText encodes the combo in compact notation
func (c Combo) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes a combo from compact notation
func (c *Combo) UnmarshalText(text []byte) error {
	combo, err := ParseCombo(string(text))
	if err != nil {
		return err
	}
	*c = combo
	return nil
}
