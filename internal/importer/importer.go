// Package importer turns bank CSV exports into canonical ledger records.
// Exports are messy: encodings vary, headers sit below junk rows, amounts
// come signed, parenthesised, or split across debit/credit columns, and
// dates show up in half a dozen layouts. The caller supplies a Profile
// describing the layout; Detect can guess one from the headers.
package importer

import "errors"

var (
	// ErrMalformedRow means the column mapping references a column the row
	// does not have.
	ErrMalformedRow = errors.New("malformed row")

	ErrDateParse   = errors.New("unparseable date")
	ErrAmountParse = errors.New("unparseable amount")
)
