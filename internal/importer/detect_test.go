package importer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline/ledgerline/internal/importer"
)

func TestDetect(t *testing.T) {
	type testCase struct {
		name    string
		headers []string
		want    importer.Mapping
		wantOK  bool
	}

	tests := []testCase{
		{
			name:    "SingleAmount",
			headers: []string{"Transaction Date", "Amount", "Memo"},
			want: importer.Mapping{
				Mode:        importer.ModeSingle,
				Date:        "Transaction Date",
				Amount:      "Amount",
				Description: "Memo",
			},
			wantOK: true,
		},
		{
			name:    "DebitCredit",
			headers: []string{"Date", "Payee", "Debit", "Credit"},
			want: importer.Mapping{
				Mode:        importer.ModeDebitCredit,
				Date:        "Date",
				Debit:       "Debit",
				Credit:      "Credit",
				Description: "Payee",
			},
			wantOK: true,
		},
		{
			name:    "AmountPreferredOverDebitCredit",
			headers: []string{"Posted", "Description", "Transaction Amount", "Debit", "Credit"},
			want: importer.Mapping{
				Mode:        importer.ModeSingle,
				Date:        "Posted",
				Amount:      "Transaction Amount",
				Description: "Description",
			},
			wantOK: true,
		},
		{
			name:    "DescriptionFallback",
			headers: []string{"Date", "Amount", "Reference"},
			want: importer.Mapping{
				Mode:        importer.ModeSingle,
				Date:        "Date",
				Amount:      "Amount",
				Description: "Reference",
			},
			wantOK: true,
		},
		{
			name:    "NothingUsable",
			headers: []string{"Foo", "Bar"},
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := importer.Detect(tt.headers)
			require.Equal(t, tt.wantOK, ok)

			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
