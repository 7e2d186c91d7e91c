// Package pokerstars parses PokerStars tournament and cash-game hand
// history transcripts into the shared handhistory result model.
//
// Parsing is tolerant by design: only a header line that fails the grammar
// aborts a hand. Every other malformed fragment is reported to the anomaly
// sink and replaced by its field's default, so a caller always receives
// either a complete HandHistory or the single fatal error.
package pokerstars

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"

	"github.com/lox/handhistory/internal/deck"
	"github.com/lox/handhistory/internal/handhistory"
)

// RoomName is the registry name of this grammar.
const RoomName = "pokerstars"

var (
	tableRe = regexp.MustCompile(`^Table '(?P<table_name>.+)' (?P<max_players>\d+)-max Seat #(?P<button>\d+) is the button$`)
	seatRe  = regexp.MustCompile(`^Seat (?P<seat>\d+): (?P<name>.+?) \(\$?(?P<stack>\d+(?:\.\d+)?) in chips\)$`)
	heroRe  = regexp.MustCompile(`^Dealt to (?P<hero_name>.+?) \[(?P<card1>\S{2}) (?P<card2>\S{2})\]$`)
	anteRe  = regexp.MustCompile(`posts the ante \$?(?P<ante>\d+(?:\.\d+)?)$`)
)

func init() {
	handhistory.Register(RoomName, func(opts handhistory.RoomOptions) handhistory.Room {
		options := []Option{WithSink(opts.Sink)}
		if opts.Logger != nil {
			options = append(options, WithLogger(opts.Logger))
		}
		return New(options...)
	})
}

// Parser parses PokerStars transcripts. One Parser may be shared across
// goroutines: each Parse call works on its own state and the sink is the
// only shared collaborator.
type Parser struct {
	sink   handhistory.Sink
	logger *log.Logger
	loc    *time.Location
}

// Option configures a Parser.
type Option func(*Parser)

// WithSink injects the anomaly sink. Nil restores the discarding default.
func WithSink(sink handhistory.Sink) Option {
	return func(p *Parser) {
		if sink == nil {
			sink = handhistory.DiscardSink{}
		}
		p.sink = sink
	}
}

// WithLogger injects a logger for parse-level diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(p *Parser) { p.logger = logger.WithPrefix(RoomName) }
}

// WithLocation overrides the room's reporting time zone. Only useful for
// transcripts doctored into another zone; the room itself reports in ET.
func WithLocation(loc *time.Location) Option {
	return func(p *Parser) { p.loc = loc }
}

// New creates a Parser. Without options anomalies are discarded and
// timestamps are interpreted in the room's reporting zone (US Eastern).
func New(opts ...Option) *Parser {
	p := &Parser{
		sink: handhistory.DiscardSink{},
		loc:  reportingZone(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// reportingZone resolves US Eastern, falling back to a fixed offset when no
// tz database is available.
func reportingZone() *time.Location {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		return time.FixedZone("ET", -5*60*60)
	}
	return loc
}

// Name implements handhistory.Room.
func (p *Parser) Name() string { return RoomName }

// hand is the working state for one parse pass. It is discarded when the
// assembled HandHistory is returned.
type hand struct {
	parser   *Parser
	sections *sectionMap
	hh       *handhistory.HandHistory

	// tableLine is the index of the table-description line within HEADER,
	// -1 when it was never found. Seat lines start right after it.
	tableLine  int
	buttonSeat int
}

// ParseHeader parses only the first header line, for cheap inspection of
// identity, stakes, classification and date without touching the body.
func (p *Parser) ParseHeader(raw string) (*handhistory.HandHistory, error) {
	h := p.newHand(raw)
	if err := h.parseHeader(); err != nil {
		return nil, err
	}
	h.sections = nil
	return h.hh, nil
}

// Parse parses a whole transcript. The states run in a fixed sequence;
// each one past the header catches its own failures, reports them, and
// leaves its field at the default so the sequence never stalls.
func (p *Parser) Parse(raw string) (*handhistory.HandHistory, error) {
	h := p.newHand(raw)
	if err := h.parseHeader(); err != nil {
		return nil, err
	}
	h.parseTable()
	h.parseRoster()
	h.parseButton()
	h.parseHero()
	h.parseAnte()
	h.parsePreflop()
	h.hh.Flop = h.parseSection("FLOP")
	h.hh.Turn = h.parseSection("TURN")
	h.hh.River = h.parseSection("RIVER")
	h.hh.ShowDown = h.sections.has("SHOW_DOWN")
	h.parsePot()
	h.parseBoard()
	h.parseWinners()

	if p.logger != nil {
		p.logger.Debug("parsed hand",
			"id", h.hh.ID,
			"game_type", h.hh.GameType,
			"players", len(h.hh.SeatedPlayers()),
			"winners", len(h.hh.Winners))
	}

	// Finalize: drop the working buffers, the record is complete.
	h.sections = nil
	return h.hh, nil
}

func (p *Parser) newHand(raw string) *hand {
	return &hand{
		parser:    p,
		sections:  splitSections(raw),
		hh:        &handhistory.HandHistory{Room: RoomName, Raw: raw},
		tableLine: -1,
	}
}

// parseTable finds the table-description line in the header block. Failure
// leaves MaxPlayers zero and the button unresolved.
func (h *hand) parseTable() {
	lines, _ := h.sections.get("HEADER")
	for i, line := range lines {
		m := namedGroups(tableRe, line)
		if m == nil {
			continue
		}
		h.tableLine = i
		h.hh.TableName = m["table_name"]
		h.hh.MaxPlayers, _ = strconv.Atoi(m["max_players"])
		h.buttonSeat, _ = strconv.Atoi(m["button"])
		return
	}
	h.errorf("", "table line missing or malformed, roster unavailable")
}

// parseRoster builds the fixed-length roster from the seat lines following
// the table line, in file order, stopping at the first non-matching line.
func (h *hand) parseRoster() {
	h.hh.Players = make([]handhistory.Player, h.hh.MaxPlayers)
	for i := range h.hh.Players {
		h.hh.Players[i] = handhistory.EmptySeat(i + 1)
	}
	if h.tableLine < 0 {
		return
	}
	lines, _ := h.sections.get("HEADER")
	for _, line := range lines[h.tableLine+1:] {
		m := namedGroups(seatRe, line)
		if m == nil {
			break // end of the seat-line run
		}
		seat, _ := strconv.Atoi(m["seat"])
		if seat < 1 || seat > len(h.hh.Players) {
			h.warnf(line, "seat %d outside %d-max table", seat, h.hh.MaxPlayers)
			continue
		}
		stack, err := decimal.NewFromString(m["stack"])
		if err != nil {
			h.warnf(line, "unparseable stack %q", m["stack"])
			stack = decimal.Zero
		}
		h.hh.Players[seat-1] = handhistory.Player{Name: m["name"], Stack: stack, Seat: seat}
	}
}

// parseButton resolves the button seat read from the table line to the
// roster entry at that seat.
func (h *hand) parseButton() {
	if h.tableLine < 0 {
		return // already reported by parseTable
	}
	player := h.hh.PlayerAt(h.buttonSeat)
	if player == nil {
		h.errorf("", "button seat %d unresolvable", h.buttonSeat)
		return
	}
	h.hh.ButtonSeat = h.buttonSeat
	h.hh.Button = player
}

// parseHero locates the "Dealt to" line and annotates the named roster
// entry with the revealed combo. The header block is searched first, then
// the hole-cards block where real transcripts place the line. Button and
// hero are pointers into the roster, so a hero on the button keeps both
// views consistent for free. No "Dealt to" line means no hero, which is
// normal.
func (h *hand) parseHero() {
	for _, name := range []string{"HEADER", "HOLE_CARDS"} {
		lines, _ := h.sections.get(name)
		for _, line := range lines {
			m := namedGroups(heroRe, line)
			if m == nil {
				continue
			}
			player := h.hh.FindPlayer(m["hero_name"])
			if player == nil {
				h.warnf(line, "hero %q not in roster", m["hero_name"])
				return
			}
			combo, err := deck.ParseCombo(m["card1"] + m["card2"])
			if err != nil {
				h.warnf(line, "bad hole cards: %v", err)
				return
			}
			player.Combo = &combo
			h.hh.Hero = player
			h.hh.HeroSeat = player.Seat
			return
		}
	}
}

// parseAnte records the table ante from the first ante-post line. Hands
// without antes are the common case.
func (h *hand) parseAnte() {
	for _, name := range []string{"HEADER", "HOLE_CARDS"} {
		lines, _ := h.sections.get(name)
		for _, line := range lines {
			m := namedGroups(anteRe, line)
			if m == nil {
				continue
			}
			h.hh.Ante = h.amountOrZero(m["ante"], line)
			return
		}
	}
}

// parsePreflop captures the raw preflop action lines: everything in the
// hole-cards block past the marker and the hero's deal line. Preflop is a
// light capture, not a parsed street.
func (h *hand) parsePreflop() {
	lines, ok := h.sections.get("HOLE_CARDS")
	if !ok || len(lines) < 2 {
		return
	}
	var preflop []string
	for _, line := range lines[1:] {
		if heroRe.MatchString(line) {
			continue
		}
		preflop = append(preflop, line)
	}
	h.hh.PreflopActions = preflop
}

// parseSection parses one board street, or returns nil when the section
// is absent.
func (h *hand) parseSection(name string) *handhistory.Street {
	lines, ok := h.sections.get(name)
	if !ok {
		return nil
	}
	return h.parseStreetLines(lines)
}

func (h *hand) warnf(line, format string, args ...any) {
	h.parser.sink.Report(handhistory.Anomaly{
		Severity: handhistory.SeverityWarning,
		Message:  fmt.Sprintf(format, args...),
		Line:     line,
	})
}

func (h *hand) errorf(line, format string, args ...any) {
	h.parser.sink.Report(handhistory.Anomaly{
		Severity: handhistory.SeverityError,
		Message:  fmt.Sprintf(format, args...),
		Line:     line,
	})
}
