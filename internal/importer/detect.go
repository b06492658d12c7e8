package importer

import "strings"

// Header name fragments used for column auto-detection, checked in order
// against lowercased headers.
var (
	datePatterns   = []string{"date", "transaction date", "trans date", "txn date", "txndate", "posted", "post date", "dt"}
	descPatterns   = []string{"description", "desc", "memo", "payee", "merchant", "details", "narration"}
	amountPatterns = []string{"amount", "amt", "total", "transaction amount"}
	debitPatterns  = []string{"debit", "dr", "withdrawal", "debit amount"}
	creditPatterns = []string{"credit", "cr", "deposit", "credit amount"}

	// Weaker description candidates, only used when nothing above matched.
	descFallbackPatterns = []string{"name", "type", "ref", "reference", "category"}
)

// Detect guesses a column mapping from CSV headers. A single amount column
// is preferred; debit/credit columns are only considered when no amount
// column exists. ok is false when no usable date or amount columns were
// found, in which case the caller has to supply a mapping by hand.
func Detect(headers []string) (Mapping, bool) {
	var m Mapping

	m.Date = matchHeader(headers, datePatterns, "")
	m.Amount = matchHeader(headers, amountPatterns, "")

	if m.Amount != "" {
		m.Mode = ModeSingle
	} else {
		for _, header := range headers {
			lower := strings.ToLower(header)

			if m.Debit == "" && containsAny(lower, debitPatterns) {
				m.Debit = header
			}

			if m.Credit == "" && containsAny(lower, creditPatterns) {
				m.Credit = header
			}
		}

		m.Mode = ModeDebitCredit
	}

	m.Description = matchHeader(headers, descPatterns, m.Date)
	if m.Description == "" {
		m.Description = matchHeader(headers, descFallbackPatterns, m.Date)
	}

	ok := m.Date != "" && (m.Amount != "" || (m.Debit != "" && m.Credit != ""))

	return m, ok
}

// matchHeader returns the first header matching any pattern, skipping the
// named column so the date column cannot double as the description.
func matchHeader(headers, patterns []string, skip string) string {
	for _, header := range headers {
		if header == skip {
			continue
		}

		if containsAny(strings.ToLower(header), patterns) {
			return header
		}
	}

	return ""
}

func containsAny(s string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(s, p) {
			return true
		}
	}

	return false
}
