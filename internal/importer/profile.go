package importer

import "fmt"

// Mode selects how a row's amount is read.
type Mode string

const (
	// ModeSingle reads one signed amount column.
	ModeSingle Mode = "single"
	// ModeDebitCredit reads separate debit and credit columns.
	ModeDebitCredit Mode = "debit_credit"
)

// NumberFormat names the thousands/decimal separator convention of the file.
type NumberFormat string

const (
	// FormatUS is 1,234.56.
	FormatUS NumberFormat = "us"
	// FormatEU is 1.234,56.
	FormatEU NumberFormat = "eu"
	// FormatEUSpace is 1 234,56.
	FormatEUSpace NumberFormat = "eu_space"
)

// Mapping names the columns of interest in a CSV export.
type Mapping struct {
	Mode        Mode   `json:"mode"`
	Date        string `json:"date"`
	Description string `json:"description,omitempty"`
	Amount      string `json:"amount,omitempty"`
	Debit       string `json:"debit,omitempty"`
	Credit      string `json:"credit,omitempty"`
}

// requiredCols returns the column names that must be present in the header
// row for this mapping to apply.
func (m Mapping) requiredCols() []string {
	cols := []string{m.Date}

	switch m.Mode {
	case ModeSingle:
		cols = append(cols, m.Amount)
	case ModeDebitCredit:
		cols = append(cols, m.Debit, m.Credit)
	}

	if m.Description != "" {
		cols = append(cols, m.Description)
	}

	return cols
}

func (m Mapping) validate() error {
	if m.Date == "" {
		return fmt.Errorf("%w: no date column mapped", ErrMalformedRow)
	}

	switch m.Mode {
	case ModeSingle:
		if m.Amount == "" {
			return fmt.Errorf("%w: no amount column mapped", ErrMalformedRow)
		}
	case ModeDebitCredit:
		if m.Debit == "" || m.Credit == "" {
			return fmt.Errorf("%w: debit and credit columns must both be mapped", ErrMalformedRow)
		}
	default:
		return fmt.Errorf("%w: unknown mapping mode %q", ErrMalformedRow, m.Mode)
	}

	return nil
}

// Options adjust sign handling for exports that break the usual conventions.
type Options struct {
	// FlipSigns negates every amount after all other rules. Credit card
	// statements list charges as positive.
	FlipSigns bool `json:"flip_signs,omitempty"`

	// DebitNegative negates positive debit values, for exports whose debit
	// column is unsigned.
	DebitNegative bool `json:"debit_negative,omitempty"`
}

// Profile describes the layout of one bank's CSV export. Named profiles are
// persisted by the caller; the parser only consumes the value.
type Profile struct {
	Mapping Mapping `json:"mapping"`

	// DateFormat is a Go reference layout tried before the built-in
	// candidates, for files whose dates are ambiguous.
	DateFormat string `json:"date_format,omitempty"`

	// SkipRows is the number of leading junk lines before the header.
	SkipRows int `json:"skip_rows,omitempty"`

	NumberFormat NumberFormat `json:"number_format,omitempty"`
	Options      Options      `json:"options,omitempty"`
}
