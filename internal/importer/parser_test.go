package importer_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline/ledgerline/internal/importer"
)

func TestParser_CommaDelimited(t *testing.T) {
	csv := `Date,Description,Amount
2025-01-15,COFFEE SHOP,-4.50
2025-01-16,"PAYROLL, INC","2,500.00"
2025-01-17,REFUND,(25.00)
`

	p := importer.NewParser()
	result, err := p.Parse(strings.NewReader(csv), singleProfile())
	require.NoError(t, err)
	require.Len(t, result.Records, 3)
	assert.Empty(t, result.Errors)

	assert.Equal(t, date(2025, 1, 15), result.Records[0].Date)
	assert.Equal(t, "COFFEE SHOP", result.Records[0].Description)
	assert.True(t, result.Records[0].Amount.Equal(decimal.RequireFromString("-4.50")))

	assert.Equal(t, "PAYROLL, INC", result.Records[1].Description)
	assert.True(t, result.Records[1].Amount.Equal(decimal.RequireFromString("2500.00")))

	assert.True(t, result.Records[2].Amount.Equal(decimal.RequireFromString("-25.00")))
}

func TestParser_SemicolonWithJunkRows(t *testing.T) {
	// European export: report metadata above the header, semicolons, EU
	// number format. The header is found by searching, not by offset.
	csv := `Account statement;export 2025-02-01
Customer;JANE DOE

Date;Description;Amount
15-01-2025;INSTITUTO GESTAO;-588,74
16-01-2025;WIRE IN;8.608,52
`

	profile := singleProfile()
	profile.NumberFormat = importer.FormatEU

	p := importer.NewParser()
	result, err := p.Parse(strings.NewReader(csv), profile)
	require.NoError(t, err)
	require.Len(t, result.Records, 2)
	assert.Empty(t, result.Errors)

	assert.Equal(t, date(2025, 1, 15), result.Records[0].Date)
	assert.True(t, result.Records[0].Amount.Equal(decimal.RequireFromString("-588.74")))
	assert.True(t, result.Records[1].Amount.Equal(decimal.RequireFromString("8608.52")))
}

func TestParser_SkipRows(t *testing.T) {
	// The junk line would otherwise win the delimiter sniff.
	csv := `statement,for,account,one,two,three,four
Date;Description;Amount
2025-01-15;COFFEE;-4.50
`

	profile := singleProfile()
	profile.SkipRows = 1

	p := importer.NewParser()
	result, err := p.Parse(strings.NewReader(csv), profile)
	require.NoError(t, err)
	require.Len(t, result.Records, 1)
	assert.Equal(t, "COFFEE", result.Records[0].Description)
}

func TestParser_DebitCreditColumns(t *testing.T) {
	csv := `Date,Description,Debit,Credit
2025-01-15,GROCERIES,54.10,
2025-01-16,SALARY,,2500.00
`

	profile := debitCreditProfile()
	profile.Options.DebitNegative = true

	p := importer.NewParser()
	result, err := p.Parse(strings.NewReader(csv), profile)
	require.NoError(t, err)
	require.Len(t, result.Records, 2)

	assert.True(t, result.Records[0].Amount.Equal(decimal.RequireFromString("-54.10")))
	assert.True(t, result.Records[1].Amount.Equal(decimal.RequireFromString("2500.00")))
}

func TestParser_RowErrorsReported(t *testing.T) {
	csv := `Date,Description,Amount
2025-01-15,COFFEE,-4.50
total,,not-a-number
2025-01-17,LUNCH,-12.00
`

	p := importer.NewParser()
	result, err := p.Parse(strings.NewReader(csv), singleProfile())
	require.NoError(t, err)

	require.Len(t, result.Records, 2)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, 3, result.Errors[0].Row)
	assert.Contains(t, result.Errors[0].Reason, "date")
}

func TestParser_HeaderNotFound(t *testing.T) {
	csv := `Foo,Bar
1,2
`

	p := importer.NewParser()
	_, err := p.Parse(strings.NewReader(csv), singleProfile())
	assert.ErrorIs(t, err, importer.ErrMalformedRow)
}

func TestParser_BlankRowsSkipped(t *testing.T) {
	csv := `Date,Description,Amount
2025-01-15,COFFEE,-4.50

2025-01-16,LUNCH,-12.00
`

	p := importer.NewParser()
	result, err := p.Parse(strings.NewReader(csv), singleProfile())
	require.NoError(t, err)
	assert.Len(t, result.Records, 2)
	assert.Empty(t, result.Errors)
}
