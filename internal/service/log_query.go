package service

import (
	"alcyxob/exercise-tracker/internal/domain"
	"time"
)

// LogQuery carries the optional bounds of a log request. Nil means the
// corresponding constraint is absent.
type LogQuery struct {
	From  *time.Time // Inclusive lower bound, day granularity
	To    *time.Time // Inclusive upper bound, day granularity
	Limit *int       // Prefix truncation; 0 means an empty result
}

// Accepted layouts for date parameters. The primary form is the plain
// calendar date; RFC3339 is tolerated for clients that send full timestamps.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

// parseDate parses a date parameter using the accepted layouts.
func parseDate(s string) (time.Time, error) {
	var err error
	for _, layout := range dateLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// dayOf truncates a timestamp to its UTC calendar day. Bounds and exercise
// dates are compared at day granularity, so any time-of-day is discarded.
func dayOf(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// FilterExercises applies the log query to an append-ordered exercise
// sequence: inclusive from/to bounds (both must hold when both are present),
// then prefix truncation by limit. The relative order of surviving entries
// is exactly their order in the input; nothing is sorted.
func FilterExercises(exercises []domain.Exercise, query LogQuery) []domain.Exercise {
	out := make([]domain.Exercise, 0, len(exercises))
	for _, e := range exercises {
		day := dayOf(e.Date)
		if query.From != nil && day.Before(dayOf(*query.From)) {
			continue
		}
		if query.To != nil && day.After(dayOf(*query.To)) {
			continue
		}
		out = append(out, e)
	}
	if query.Limit != nil && len(out) > *query.Limit {
		out = out[:*query.Limit]
	}
	return out
}
