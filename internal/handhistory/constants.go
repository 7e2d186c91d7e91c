package handhistory

import "strings"

// Action is the closed vocabulary of things a player can do on a street.
type Action string

const (
	ActionBet    Action = "BET"
	ActionCall   Action = "CALL"
	ActionCheck  Action = "CHECK"
	ActionFold   Action = "FOLD"
	ActionRaise  Action = "RAISE"
	ActionPost   Action = "POST"
	ActionAllIn  Action = "ALL_IN"
	ActionReturn Action = "RETURN"
	ActionWin    Action = "WIN"
	ActionMuck   Action = "MUCK"
)

// actionTokens maps the keywords rooms print to the action vocabulary.
// Transcripts use third-person forms ("bets", "folds"), older formats the
// bare keyword, so both are accepted.
var actionTokens = map[string]Action{
	"BET":    ActionBet,
	"BETS":   ActionBet,
	"CALL":   ActionCall,
	"CALLS":  ActionCall,
	"CHECK":  ActionCheck,
	"CHECKS": ActionCheck,
	"FOLD":   ActionFold,
	"FOLDS":  ActionFold,
	"RAISE":  ActionRaise,
	"RAISES": ActionRaise,
	"POST":   ActionPost,
	"POSTS":  ActionPost,
	"ALL-IN": ActionAllIn,
}

// ParseAction maps an upper-cased action keyword into the vocabulary.
func ParseAction(token string) (Action, bool) {
	action, ok := actionTokens[strings.ToUpper(token)]
	return action, ok
}

// GameType distinguishes cash games from tournaments.
type GameType string

const (
	GameTypeCash       GameType = "CASH"
	GameTypeTournament GameType = "TOUR"
)

// Game is the closed vocabulary of game variants.
type Game string

const (
	GameHoldem    Game = "HOLDEM"
	GameOmaha     Game = "OMAHA"
	GameOmahaHiLo Game = "OMAHA_HILO"
	GameRazz      Game = "RAZZ"
	GameStud      Game = "STUD"
	GameUnknown   Game = "UNKNOWN"
)

var gameTokens = map[string]Game{
	"HOLD'EM":     GameHoldem,
	"HOLDEM":      GameHoldem,
	"OMAHA":       GameOmaha,
	"OMAHA HI/LO": GameOmahaHiLo,
	"RAZZ":        GameRazz,
	"7 CARD STUD": GameStud,
	"STUD":        GameStud,
}

// ParseGame maps a free-text game token into the vocabulary. Unmapped text
// yields GameUnknown and ok=false.
func ParseGame(token string) (Game, bool) {
	game, ok := gameTokens[strings.ToUpper(strings.TrimSpace(token))]
	if !ok {
		return GameUnknown, false
	}
	return game, true
}

// Limit is the closed vocabulary of betting structures.
type Limit string

const (
	LimitNo      Limit = "NL"
	LimitPot     Limit = "PL"
	LimitFixed   Limit = "FL"
	LimitUnknown Limit = "UNKNOWN"
)

var limitTokens = map[string]Limit{
	"NO LIMIT":  LimitNo,
	"NO_LIMIT":  LimitNo,
	"POT LIMIT": LimitPot,
	"POT_LIMIT": LimitPot,
	"LIMIT":     LimitFixed,
}

// ParseLimit maps a free-text limit token into the vocabulary. Unmapped text
// yields LimitUnknown and ok=false.
func ParseLimit(token string) (Limit, bool) {
	limit, ok := limitTokens[strings.ToUpper(strings.TrimSpace(token))]
	if !ok {
		return LimitUnknown, false
	}
	return limit, true
}

// Currency is the closed vocabulary of currencies rooms report.
// The zero value means no currency token was present.
type Currency string

const (
	CurrencyNone Currency = ""
	CurrencyUSD  Currency = "USD"
	CurrencyEUR  Currency = "EUR"
	CurrencyGBP  Currency = "GBP"
	CurrencyCAD  Currency = "CAD"
	CurrencyAUD  Currency = "AUD"
)

var currencyTokens = map[string]Currency{
	"USD": CurrencyUSD,
	"EUR": CurrencyEUR,
	"GBP": CurrencyGBP,
	"CAD": CurrencyCAD,
	"AUD": CurrencyAUD,
}

// ParseCurrency maps a currency token into the vocabulary. Unmapped text
// yields CurrencyNone and ok=false.
func ParseCurrency(token string) (Currency, bool) {
	currency, ok := currencyTokens[strings.ToUpper(strings.TrimSpace(token))]
	if !ok {
		return CurrencyNone, false
	}
	return currency, true
}

// MoneyType distinguishes real-money from play-money hands.
type MoneyType string

const (
	MoneyReal MoneyType = "REAL"
	MoneyPlay MoneyType = "PLAY"
)
