package values

import (
	"time"

	"github.com/curaedu/cura/core"
)

// WeekStart returns 00:00 on the most recent Monday on or before t, in
// t's location. A response counts toward the current week iff it was
// created at or after this instant.
func WeekStart(t time.Time) time.Time {
	days := (int(t.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	y, m, d := t.AddDate(0, 0, -days).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// NextStatement picks the first statement, in the given order, whose id is
// not in responded. Selection is deterministic and stateless; it fails
// with a core.NotFoundError when no statement survives the filter.
func NextStatement(all []Statement, responded map[string]bool) (Statement, error) {
	for _, s := range all {
		if !responded[s.ID] {
			return s, nil
		}
	}
	return Statement{}, core.NewNotFoundError("statement")
}
