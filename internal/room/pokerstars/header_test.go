package pokerstars

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lox/handhistory/internal/handhistory"
)

func TestParseHeaderCash(t *testing.T) {
	p := New()
	hh, err := p.ParseHeader("PokerStars Hand #243920121372: Hold'em No Limit ($0.01/$0.02 USD) - 2025/01/05 19:12:03 ET")
	if err != nil {
		t.Fatalf("ParseHeader() error = %v", err)
	}

	if hh.ID != "243920121372" {
		t.Errorf("ID = %q", hh.ID)
	}
	if hh.GameType != handhistory.GameTypeCash {
		t.Errorf("GameType = %v", hh.GameType)
	}
	if hh.Game != handhistory.GameHoldem {
		t.Errorf("Game = %v", hh.Game)
	}
	if hh.Limit != handhistory.LimitNo {
		t.Errorf("Limit = %v", hh.Limit)
	}
	if hh.Currency != handhistory.CurrencyUSD {
		t.Errorf("Currency = %v", hh.Currency)
	}
	if hh.MoneyType != handhistory.MoneyReal {
		t.Errorf("MoneyType = %v", hh.MoneyType)
	}
	if !hh.SmallBlind.Equal(decimal.RequireFromString("0.01")) {
		t.Errorf("SmallBlind = %v", hh.SmallBlind)
	}
	if !hh.BigBlind.Equal(decimal.RequireFromString("0.02")) {
		t.Errorf("BigBlind = %v", hh.BigBlind)
	}

	want, _ := time.ParseInLocation(dateLayout, "2025/01/05 19:12:03", reportingZone())
	if !hh.Date.Equal(want) {
		t.Errorf("Date = %v, want %v", hh.Date, want.UTC())
	}
	if hh.Date.Location() != time.UTC {
		t.Errorf("Date location = %v, want UTC", hh.Date.Location())
	}
}

func TestParseHeaderTournament(t *testing.T) {
	p := New()
	hh, err := p.ParseHeader("PokerStars Hand #105024000105: Tournament #797469411, $3.19+$0.31 USD Hold'em No Limit - Level I (10/20) - 2013/10/04 13:53:27 ET")
	if err != nil {
		t.Fatalf("ParseHeader() error = %v", err)
	}

	if hh.GameType != handhistory.GameTypeTournament {
		t.Errorf("GameType = %v", hh.GameType)
	}
	if hh.TournamentID != "797469411" {
		t.Errorf("TournamentID = %q", hh.TournamentID)
	}
	if hh.TournamentLevel != "I" {
		t.Errorf("TournamentLevel = %q", hh.TournamentLevel)
	}
	if !hh.BuyIn.Equal(decimal.RequireFromString("3.19")) {
		t.Errorf("BuyIn = %v", hh.BuyIn)
	}
	if !hh.BuyInRake.Equal(decimal.RequireFromString("0.31")) {
		t.Errorf("BuyInRake = %v", hh.BuyInRake)
	}
	if hh.Currency != handhistory.CurrencyUSD {
		t.Errorf("Currency = %v", hh.Currency)
	}
	if !hh.SmallBlind.Equal(decimal.NewFromInt(10)) {
		t.Errorf("SmallBlind = %v", hh.SmallBlind)
	}
	if !hh.BigBlind.Equal(decimal.NewFromInt(20)) {
		t.Errorf("BigBlind = %v", hh.BigBlind)
	}
}

func TestParseHeaderFreeroll(t *testing.T) {
	p := New()
	hh, err := p.ParseHeader("PokerStars Hand #105034215446: Tournament #797536898, Freeroll  Hold'em No Limit - Level I (10/20) - 2013/10/04 17:00:21 ET")
	if err != nil {
		t.Fatalf("ParseHeader() error = %v", err)
	}

	// Freerolls carry no currency token but are still real-money games.
	if hh.MoneyType != handhistory.MoneyReal {
		t.Errorf("MoneyType = %v", hh.MoneyType)
	}
	if hh.Currency != handhistory.CurrencyUSD {
		t.Errorf("Currency = %v", hh.Currency)
	}
	if !hh.BuyIn.IsZero() {
		t.Errorf("BuyIn = %v, want zero", hh.BuyIn)
	}
}

func TestParseHeaderPlayMoney(t *testing.T) {
	p := New()
	hh, err := p.ParseHeader("PokerStars Hand #105025168298: Hold'em No Limit (10/20) - 2013/10/04 14:18:10 ET")
	if err != nil {
		t.Fatalf("ParseHeader() error = %v", err)
	}

	if hh.MoneyType != handhistory.MoneyPlay {
		t.Errorf("MoneyType = %v", hh.MoneyType)
	}
	if hh.Currency != handhistory.CurrencyNone {
		t.Errorf("Currency = %v", hh.Currency)
	}
	if hh.GameType != handhistory.GameTypeCash {
		t.Errorf("GameType = %v", hh.GameType)
	}
}

func TestParseHeaderVocabularyFallback(t *testing.T) {
	sink := handhistory.NewMemorySink()
	p := New(WithSink(sink))
	hh, err := p.ParseHeader("PokerStars Hand #9: Badugi Limit ($1/$2 XBT) - 2020/06/01 09:00:00 ET")
	if err != nil {
		t.Fatalf("ParseHeader() error = %v", err)
	}

	if hh.Game != handhistory.GameUnknown {
		t.Errorf("Game = %v, want unknown fallback", hh.Game)
	}
	if hh.Currency != handhistory.CurrencyNone {
		t.Errorf("Currency = %v, want none fallback", hh.Currency)
	}
	// Both unmapped tokens are reported, not fatal.
	if got := len(sink.Anomalies()); got < 2 {
		t.Errorf("anomalies = %d, want at least 2: %v", got, sink.Anomalies())
	}
}

func TestParseHeaderFatal(t *testing.T) {
	p := New()
	for _, raw := range []string{
		"",
		"garbage that is not a hand",
		"PokerStars Hand #: missing id",
		"888poker Hand #123: Hold'em No Limit ($1/$2) - 2020/01/01 12:00:00 ET",
	} {
		_, err := p.Parse(raw)
		if err == nil {
			t.Errorf("Parse(%q) should fail", raw)
			continue
		}
		if !errors.Is(err, handhistory.ErrHeaderMismatch) {
			t.Errorf("Parse(%q) error = %v, want ErrHeaderMismatch", raw, err)
		}
	}
}
