package pokerstars

import (
	"fmt"
	"regexp"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lox/handhistory/internal/handhistory"
)

// headerRe matches the single first line of a hand, e.g.
//
//	PokerStars Hand #243920121372: Hold'em No Limit ($0.01/$0.02 USD) - 2025/01/05 19:12:03 ET
//	PokerStars Hand #243920121373: Tournament #3218921043, $0.91+$0.09 USD Hold'em No Limit - Level IV (25/50) - 2025/01/05 19:40:00 ET
//
// The tournament clause and the cash-blind clause are mutually exclusive
// branches; freerolls carry no buy-in. Everything after a successful match
// degrades field by field, but a non-match is fatal for the whole hand.
var headerRe = regexp.MustCompile(
	`^PokerStars\s+Hand\s+#(?P<ident>\d+):\s+` +
		`(?:Tournament\s+#(?P<tournament_ident>\d+),\s+` +
		`(?:(?P<freeroll>Freeroll)` +
		`|\$(?P<buyin>\d+(?:\.\d+)?)(?:\+\$(?P<buyin_rake>\d+(?:\.\d+)?))?(?:\s+(?P<currency>[A-Z]+))?` +
		`)\s+)?` +
		`(?P<game>.+?)\s+` +
		`(?P<limit>(?:Pot\s+|No\s+|)Limit)\s+` +
		`(?:-\s+Level\s+(?P<level>\S+)\s+)?` +
		`\((?:(?P<sb>\d+)/(?P<bb>\d+)` +
		`|\$(?P<cash_sb>\d+(?:\.\d+)?)/\$?(?P<cash_bb>\d+(?:\.\d+)?)(?:\s+(?P<cash_currency>\S+))?` +
		`)\)\s+` +
		`-\s+(?P<date>\d{4}/\d{2}/\d{2} \d{2}:\d{2}:\d{2})\s+\w{2,4}`)

// dateLayout is the room's timestamp format, reported in reportingZone.
const dateLayout = "2006/01/02 15:04:05"

// parseHeader extracts identity, stakes, classification and timestamp from
// the first header line. A non-matching line is the one fatal condition of
// the whole parse.
func (h *hand) parseHeader() error {
	headerLines, _ := h.sections.get("HEADER")
	if len(headerLines) == 0 {
		return fmt.Errorf("pokerstars: empty transcript: %w", handhistory.ErrHeaderMismatch)
	}
	line := headerLines[0]
	groups := namedGroups(headerRe, line)
	if groups == nil {
		return fmt.Errorf("pokerstars: header line %q: %w", line, handhistory.ErrHeaderMismatch)
	}

	hh := h.hh
	hh.ID = groups["ident"]

	// Blinds: whole chips for tournaments, dollar amounts for cash.
	hh.SmallBlind = h.amountOrZero(firstNonEmpty(groups["sb"], groups["cash_sb"]), line)
	hh.BigBlind = h.amountOrZero(firstNonEmpty(groups["bb"], groups["cash_bb"]), line)

	var currencyToken string
	if groups["tournament_ident"] != "" {
		hh.GameType = handhistory.GameTypeTournament
		hh.TournamentID = groups["tournament_ident"]
		hh.TournamentLevel = groups["level"]
		hh.BuyIn = h.amountOrZero(groups["buyin"], line)
		hh.BuyInRake = h.amountOrZero(groups["buyin_rake"], line)
		currencyToken = groups["currency"]
	} else {
		hh.GameType = handhistory.GameTypeCash
		currencyToken = groups["cash_currency"]
	}

	// A freeroll has no currency token but is still a real-money game.
	if groups["freeroll"] != "" && currencyToken == "" {
		currencyToken = "USD"
	}

	if currencyToken == "" {
		hh.MoneyType = handhistory.MoneyPlay
		hh.Currency = handhistory.CurrencyNone
	} else {
		hh.MoneyType = handhistory.MoneyReal
		currency, ok := handhistory.ParseCurrency(currencyToken)
		if !ok {
			h.warnf(line, "unknown currency %q", currencyToken)
		}
		hh.Currency = currency
	}

	game, ok := handhistory.ParseGame(groups["game"])
	if !ok {
		h.warnf(line, "unknown game %q", groups["game"])
	}
	hh.Game = game

	limit, ok := handhistory.ParseLimit(groups["limit"])
	if !ok {
		h.warnf(line, "unknown limit %q", groups["limit"])
	}
	hh.Limit = limit

	// The trailing zone token is decorative: the room always reports in its
	// fixed zone, so the timestamp is interpreted there and normalized to UTC.
	date, err := time.ParseInLocation(dateLayout, groups["date"], h.parser.loc)
	if err != nil {
		h.warnf(line, "unparseable date %q: %v", groups["date"], err)
	} else {
		hh.Date = date.UTC()
	}
	return nil
}

// amountOrZero converts a regex-captured numeric token, reporting and
// defaulting to zero when conversion fails or the token is absent.
func (h *hand) amountOrZero(token, line string) decimal.Decimal {
	if token == "" {
		return decimal.Zero
	}
	amount, err := decimal.NewFromString(token)
	if err != nil {
		h.warnf(line, "unparseable amount %q", token)
		return decimal.Zero
	}
	return amount
}

// namedGroups returns the named captures of the first match, or nil when
// the pattern does not match at all. Empty captures are omitted.
func namedGroups(re *regexp.Regexp, s string) map[string]string {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return nil
	}
	groups := make(map[string]string)
	for i, name := range re.SubexpNames() {
		if name != "" && m[i] != "" {
			groups[name] = m[i]
		}
	}
	return groups
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
