package importer

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// currencySuffixes are ISO codes some exports append to amounts,
// e.g. "8 019,40 PLN".
var currencySuffixes = []string{
	"PLN", "EUR", "USD", "GBP", "CHF", "CZK", "SEK", "NOK", "DKK",
	"CAD", "AUD", "JPY", "CNY", "INR", "BRL", "MXN", "KRW", "RUB",
}

// parseAmount parses a single amount cell. Currency symbols and thousands
// separators are stripped, and a parenthesised value is negative per
// accounting convention: "(100.00)" is -100.00.
func parseAmount(s string, format NumberFormat) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Decimal{}, fmt.Errorf("%w: empty amount", ErrAmountParse)
	}

	s = stripCurrencySuffix(s)

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}

	switch format {
	case FormatEU:
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	case FormatEUSpace:
		s = strings.ReplaceAll(s, " ", "")
		s = strings.ReplaceAll(s, ",", ".")
	default:
		s = strings.ReplaceAll(s, ",", "")
	}

	// Drop currency symbols and any other decoration.
	var b strings.Builder

	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}

	cleaned := b.String()
	if cleaned == "" {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrAmountParse, s)
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrAmountParse, s)
	}

	if negative && d.IsPositive() {
		d = d.Neg()
	}

	return d, nil
}

func stripCurrencySuffix(s string) string {
	for _, code := range currencySuffixes {
		if strings.HasSuffix(s, code) {
			return strings.TrimSpace(s[:len(s)-len(code)])
		}
	}

	return s
}
