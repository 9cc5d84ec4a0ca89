// Package planner implements the itinerary and budget consistency logic
// for GlobeTrotter: date-range validation, the budget guard, the by-city
// and by-day itinerary projections, the completion progress score, and
// travel-day detection.
//
// Everything here is a pure function over data the caller has already
// loaded. The package does no I/O, holds no state, and never mutates its
// inputs, so every derivation is deterministic and restartable. The
// original app scattered divergent copies of these rules across page
// components; this package is their single home, and every write path
// must go through it.
package planner

import (
	"fmt"
	"time"

	"github.com/Vasundra417/globetrottter-odoo-hackathon/internal/domain"
)

const dateLayout = "2006-01-02"

// dateOnly strips the time-of-day component so comparisons operate on
// calendar dates regardless of how the timestamp was constructed.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ValidateWithin checks that candidate falls inside [start, end] inclusive.
// The field label names the date in the error message (e.g. "arrival_date").
//
// If either bound is nil the bounds have not been loaded yet, and the
// check fails with domain.ErrNotLoaded rather than passing silently. The
// original client skipped validation entirely until trip metadata
// finished loading; treating missing bounds as a hard precondition
// failure closes that race.
func ValidateWithin(candidate time.Time, start, end *time.Time, field string) error {
	if start == nil || end == nil {
		return fmt.Errorf("%w: cannot validate %s before trip dates are loaded", domain.ErrNotLoaded, field)
	}

	d := dateOnly(candidate)
	lo := dateOnly(*start)
	hi := dateOnly(*end)

	if d.Before(lo) || d.After(hi) {
		return fmt.Errorf("%w: %s must fall between %s and %s",
			domain.ErrValidation, field, lo.Format(dateLayout), hi.Format(dateLayout))
	}
	return nil
}

// ValidateStopDates checks the stop-level ordering rule: arrival must not
// be after departure. This is reported distinctly from an out-of-range
// failure so the client can attach the message to the right field pair.
func ValidateStopDates(arrival, departure time.Time) error {
	if dateOnly(arrival).After(dateOnly(departure)) {
		return fmt.Errorf("%w: arrival_date must not be after departure_date", domain.ErrValidation)
	}
	return nil
}
