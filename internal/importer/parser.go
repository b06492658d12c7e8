package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	enc "github.com/ledgerline/ledgerline/internal/encoding"
	"github.com/ledgerline/ledgerline/internal/ledger"
)

// Parser reads a CSV export and produces canonical records for
// reconciliation. The header row is located by searching for the profile's
// mapped columns, so a wrong SkipRows only costs a few wasted rows.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// ParseResult carries the rows that normalized cleanly and, separately, the
// rows that did not. Row errors do not abort the parse.
type ParseResult struct {
	Records []ledger.CanonicalRecord
	Errors  []ledger.RowError
}

func (p *Parser) Parse(r io.Reader, profile Profile) (*ParseResult, error) {
	if err := profile.Mapping.validate(); err != nil {
		return nil, err
	}

	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	data, err := io.ReadAll(utf8r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	data = skipLines(data, profile.SkipRows)

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = sniffDelimiter(data)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	headerIdx, cols := findHeader(rows, profile.Mapping)
	if cols == nil {
		return nil, fmt.Errorf("%w: no header row with columns %v", ErrMalformedRow, profile.Mapping.requiredCols())
	}

	result := &ParseResult{}

	for i, row := range rows[headerIdx+1:] {
		if blankRow(row) {
			continue
		}

		// 1-based line number in the original file, for error reports.
		rowNum := profile.SkipRows + headerIdx + i + 2

		record, err := NormalizeRow(rowValues(row, cols), profile)
		if err != nil {
			result.Errors = append(result.Errors, ledger.RowError{Row: rowNum, Reason: err.Error()})
			continue
		}

		result.Records = append(result.Records, record)
	}

	return result, nil
}

// skipLines drops n leading lines. Exports from some banks preface the real
// header with report metadata.
func skipLines(data []byte, n int) []byte {
	for ; n > 0; n-- {
		idx := bytes.IndexByte(data, '\n')
		if idx < 0 {
			return nil
		}

		data = data[idx+1:]
	}

	return data
}

// sniffDelimiter counts candidate separators over the leading lines and
// picks the most frequent. Semicolons are common in European exports, tabs
// in spreadsheet copies; comma is the fallback.
func sniffDelimiter(data []byte) rune {
	var commas, semicolons, tabs int

	lines := 0
	for line := range bytes.Lines(data) {
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}

		commas += bytes.Count(line, []byte{','})
		semicolons += bytes.Count(line, []byte{';'})
		tabs += bytes.Count(line, []byte{'\t'})

		lines++
		if lines == 10 {
			break
		}
	}

	switch {
	case semicolons > commas && semicolons > tabs:
		return ';'
	case tabs > commas && tabs > semicolons:
		return '\t'
	default:
		return ','
	}
}

// colIndex maps header names to their position in a row.
type colIndex map[string]int

// findHeader scans for the first row containing every mapped column.
// Header cells are trimmed and a leading # is dropped, a convention some
// exports use to mark the header line.
func findHeader(rows [][]string, m Mapping) (int, colIndex) {
	required := m.requiredCols()

	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			name := strings.TrimPrefix(strings.TrimSpace(cell), "#")
			if name != "" {
				cols[name] = i
			}
		}

		matched := true

		for _, name := range required {
			if _, ok := cols[name]; !ok {
				matched = false
				break
			}
		}

		if matched {
			return rowIdx, cols
		}
	}

	return 0, nil
}

// rowValues turns a positional row into the name-keyed shape NormalizeRow
// expects. Cells beyond the row's length read as empty, so truncated rows
// fail on content rather than on shape.
func rowValues(row []string, cols colIndex) map[string]string {
	values := make(map[string]string, len(cols))

	for name, idx := range cols {
		if idx < len(row) {
			values[name] = row[idx]
		} else {
			values[name] = ""
		}
	}

	return values
}

func blankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}

	return true
}
