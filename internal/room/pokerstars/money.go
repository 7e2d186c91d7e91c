package pokerstars

import (
	"strings"

	"github.com/shopspring/decimal"
)

// parseAmount converts a monetary token to an exact decimal, stripping
// currency symbols and group separators. It returns nil when no amount is
// recoverable; callers treat that as a present-but-unknown amount.
func parseAmount(token string) *decimal.Decimal {
	cleaned := strings.NewReplacer("$", "", "€", "", "£", "", ",", "").Replace(token)
	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return nil
	}
	return &amount
}
