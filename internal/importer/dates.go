package importer

import (
	"fmt"
	"time"
)

// dateLayouts are tried in order; the first that parses wins, so for an
// ambiguous numeric date like 01-02-2025 the US month-first reading is the
// default. A Profile.DateFormat is tried ahead of all of these.
var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"02/01/2006",
	"01-02-2006",
	"02-01-2006",
	"2006/01/02",
}

func parseDate(s, preferred string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty date", ErrDateParse)
	}

	if preferred != "" {
		if t, err := time.Parse(preferred, s); err == nil {
			return t, nil
		}
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrDateParse, s)
}
