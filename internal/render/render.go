// Package render produces a styled terminal view of a parsed hand.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/handhistory/internal/deck"
	"github.com/lox/handhistory/internal/handhistory"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true).
			Padding(0, 1)

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true)

	redCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	blackCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA")).
			Bold(true)

	winnerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

// Hand renders a full hand view: header, roster, streets and summary.
func Hand(hh *handhistory.HandHistory) string {
	var b strings.Builder

	title := fmt.Sprintf("%s hand #%s", hh.Room, hh.ID)
	if hh.GameType == handhistory.GameTypeTournament {
		title += fmt.Sprintf(" (tournament #%s)", hh.TournamentID)
	}
	b.WriteString(headerStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%s %s %s/%s", hh.Game, hh.Limit,
		hh.SmallBlind.String(), hh.BigBlind.String())))
	if !hh.Date.IsZero() {
		b.WriteString(dimStyle.Render("  " + hh.Date.Format("2006-01-02 15:04:05 UTC")))
	}
	b.WriteString("\n\n")

	renderRoster(&b, hh)
	renderStreets(&b, hh)
	renderSummary(&b, hh)

	return b.String()
}

func renderRoster(b *strings.Builder, hh *handhistory.HandHistory) {
	if hh.TableName != "" {
		fmt.Fprintf(b, "%s (%d-max)\n", hh.TableName, hh.MaxPlayers)
	}
	winners := make(map[string]bool, len(hh.Winners))
	for _, name := range hh.Winners {
		winners[name] = true
	}
	for _, player := range hh.Players {
		if player.IsEmptySeat() {
			fmt.Fprintf(b, "  %s\n", dimStyle.Render(fmt.Sprintf("Seat %d: (empty)", player.Seat)))
			continue
		}
		line := fmt.Sprintf("Seat %d: %s (%s)", player.Seat, player.Name, player.Stack.String())
		if player.Seat == hh.ButtonSeat {
			line += " [D]"
		}
		if player.Combo != nil {
			line += " " + Cards(player.Combo.Cards())
		}
		if winners[player.Name] {
			line = winnerStyle.Render(line)
		}
		fmt.Fprintf(b, "  %s\n", line)
	}
	b.WriteString("\n")
}

func renderStreets(b *strings.Builder, hh *handhistory.HandHistory) {
	if len(hh.PreflopActions) > 0 {
		b.WriteString(sectionStyle.Render("PREFLOP"))
		b.WriteString("\n")
		for _, line := range hh.PreflopActions {
			fmt.Fprintf(b, "  %s\n", line)
		}
	}
	renderStreet(b, "FLOP", hh.Flop)
	renderStreet(b, "TURN", hh.Turn)
	renderStreet(b, "RIVER", hh.River)
}

func renderStreet(b *strings.Builder, name string, street *handhistory.Street) {
	if street == nil {
		return
	}
	b.WriteString(sectionStyle.Render(name))
	if cards := street.AllCards(); len(cards) > 0 {
		b.WriteString(" " + Cards(cards))
	}
	b.WriteString("\n")
	for _, action := range street.Actions {
		line := fmt.Sprintf("%s %s", action.Name, strings.ToLower(string(action.Action)))
		if action.Amount != nil {
			line += " " + action.Amount.String()
		}
		fmt.Fprintf(b, "  %s\n", line)
	}
}

func renderSummary(b *strings.Builder, hh *handhistory.HandHistory) {
	b.WriteString(sectionStyle.Render("SUMMARY"))
	b.WriteString("\n")
	fmt.Fprintf(b, "  Total pot %s | Rake %s\n", hh.TotalPot.String(), hh.Rake.String())
	if len(hh.Board) > 0 {
		fmt.Fprintf(b, "  Board %s\n", Cards(hh.Board))
	}
	if len(hh.Winners) > 0 {
		fmt.Fprintf(b, "  Won by %s\n", winnerStyle.Render(strings.Join(hh.Winners, ", ")))
	}
}

// Cards renders a card list with suit symbols, red suits highlighted.
func Cards(cards []deck.Card) string {
	parts := make([]string, len(cards))
	for i, card := range cards {
		if card.IsRed() {
			parts[i] = redCardStyle.Render(card.Symbol())
		} else {
			parts[i] = blackCardStyle.Render(card.Symbol())
		}
	}
	return strings.Join(parts, " ")
}
