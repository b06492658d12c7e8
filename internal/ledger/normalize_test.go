package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ledgerline/ledgerline/internal/ledger"
)

func TestNormalizeDescription(t *testing.T) {
	type testCase struct {
		name  string
		input string
		want  string
	}

	tests := []testCase{
		{
			name:  "Lowercases",
			input: "AMAZON MARKETPLACE",
			want:  "amazon marketplace",
		},
		{
			name:  "CollapsesWhitespace",
			input: "  Uber   *Trip \t Help ",
			want:  "uber *trip help",
		},
		{
			name:  "RemovesNullTokens",
			input: "Payment null null",
			want:  "payment",
		},
		{
			name:  "NullIsCaseInsensitive",
			input: "NULL transfer Null",
			want:  "transfer",
		},
		{
			name:  "NullOnlyWholeWord",
			input: "nullify annullment",
			want:  "nullify annullment",
		},
		{
			name:  "Empty",
			input: "",
			want:  "",
		},
		{
			name:  "OnlyNulls",
			input: "null null",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ledger.NormalizeDescription(tt.input))
		})
	}
}
