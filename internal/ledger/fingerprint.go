package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FingerprintVersion identifies the normalization rules behind a stored
// fingerprint. Bump it when NormalizeDescription or the serialization below
// changes, then recompute fingerprints; transaction IDs are never touched.
const FingerprintVersion = 1

// Fingerprint derives the dedup key for a transaction: a SHA-256 over the
// account, ISO date, fixed two-decimal amount, and normalized description,
// truncated to 16 hex characters. Two imports of the same logical
// transaction yield the same fingerprint no matter which column layout or
// feed produced them.
//
// Transaction IDs and tags are deliberately excluded so repeated imports
// stay idempotent and user tagging never changes the key.
func Fingerprint(accountID uuid.UUID, date time.Time, amount decimal.Decimal, normalizedDesc string) string {
	input := strings.Join([]string{
		"v" + strconv.Itoa(FingerprintVersion),
		accountID.String(),
		date.Format(time.DateOnly),
		amount.StringFixed(2),
		normalizedDesc,
	}, "|")

	sum := sha256.Sum256([]byte(input))

	return hex.EncodeToString(sum[:8])
}
