package ledger

import (
	"strings"
	"time"

	"github.com/dankic7/dolgovi/internal/domain/errors"
)

// ISODate is the canonical date layout used everywhere in the system.
const ISODate = "2006-01-02"

// dateLayouts are tried in this fixed order; the first one that parses into
// a real calendar date wins.
var dateLayouts = []string{
	ISODate,
	"02.01.2006",
	"02/01/2006",
	"02-01-2006",
}

// NormalizeDate parses a user-entered date in any of the accepted layouts
// and returns it in canonical YYYY-MM-DD form. Returns an INVALID_DATE error
// when no layout matches or the date does not exist on the calendar.
// Idempotent on its own output.
func NormalizeDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", errors.NewInvalidDateError("date must not be empty")
	}
	for _, layout := range dateLayouts {
		// time.Parse rejects impossible calendar dates (e.g. 31.02.2024),
		// so a successful parse is already a real date.
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		return t.Format(ISODate), nil
	}
	return "", errors.NewInvalidDateError("date must look like YYYY-MM-DD or DD.MM.YYYY")
}
