package planner

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Vasundra417/globetrottter-odoo-hackathon/internal/domain"
)

// CityStop is one entry of the by-city itinerary projection: a stop with
// its activities in chronological order.
type CityStop struct {
	Stop       domain.Stop       `json:"stop"`
	Activities []domain.Activity `json:"activities"`
}

// ItineraryDay is one calendar day of the by-day projection. Days with no
// activities still appear, with an empty slice and a zero cost.
type ItineraryDay struct {
	Date       time.Time     `json:"date"`
	Activities []DayActivity `json:"activities"`
	// TotalCost sums the costs of the day's activities.
	TotalCost decimal.Decimal `json:"total_cost"`
}

// DayActivity is an activity annotated with its parent stop's location,
// since the by-day view has no stop grouping to carry that context.
type DayActivity struct {
	Activity domain.Activity `json:"activity"`
	CityName string          `json:"city_name"`
	Country  string          `json:"country"`
}

// ByCity produces the city-grouped itinerary: stops ordered by
// sequence_order ascending (ties broken by arrival date, then by ID so
// the order is deterministic), each carrying its activities ordered by
// scheduled date then start time. Inputs are not mutated.
func ByCity(stops []domain.Stop, activities []domain.Activity) []CityStop {
	ordered := sortedStops(stops)

	byStop := make(map[uuid.UUID][]domain.Activity, len(ordered))
	for _, a := range activities {
		byStop[a.StopID] = append(byStop[a.StopID], a)
	}

	out := make([]CityStop, 0, len(ordered))
	for _, s := range ordered {
		acts := make([]domain.Activity, 0, len(byStop[s.ID]))
		acts = append(acts, byStop[s.ID]...)
		sort.SliceStable(acts, func(i, j int) bool {
			return lessActivity(acts[i], acts[j])
		})
		out = append(out, CityStop{Stop: s, Activities: acts})
	}
	return out
}

// ByDay produces one entry per calendar day from the trip's start date to
// its end date inclusive. Each activity is matched to its day by
// scheduled date and annotated with the parent stop's city and country.
//
// A trip whose end date precedes its start date is corrupted stored
// state, not bad input, so the failure is domain.ErrDataIntegrity. The
// same goes for an activity referencing a stop that is not in the
// snapshot.
func ByDay(trip domain.Trip, stops []domain.Stop, activities []domain.Activity) ([]ItineraryDay, error) {
	start := dateOnly(trip.StartDate)
	end := dateOnly(trip.EndDate)
	if end.Before(start) {
		return nil, fmt.Errorf("%w: trip %s end date %s precedes start date %s",
			domain.ErrDataIntegrity, trip.ID, end.Format(dateLayout), start.Format(dateLayout))
	}

	stopByID := make(map[uuid.UUID]domain.Stop, len(stops))
	for _, s := range stops {
		stopByID[s.ID] = s
	}

	byDate := make(map[time.Time][]DayActivity)
	for _, a := range activities {
		parent, ok := stopByID[a.StopID]
		if !ok {
			return nil, fmt.Errorf("%w: activity %s references unknown stop %s",
				domain.ErrDataIntegrity, a.ID, a.StopID)
		}
		d := dateOnly(a.DateScheduled)
		byDate[d] = append(byDate[d], DayActivity{
			Activity: a,
			CityName: parent.CityName,
			Country:  parent.Country,
		})
	}

	var days []ItineraryDay
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		acts := make([]DayActivity, 0, len(byDate[d]))
		acts = append(acts, byDate[d]...)
		sort.SliceStable(acts, func(i, j int) bool {
			return lessActivity(acts[i].Activity, acts[j].Activity)
		})

		cost := decimal.Zero
		for _, da := range acts {
			if da.Activity.Cost != nil {
				cost = cost.Add(*da.Activity.Cost)
			}
		}

		days = append(days, ItineraryDay{
			Date:       d,
			Activities: acts,
			TotalCost:  cost,
		})
	}
	return days, nil
}

// sortedStops returns a copy of stops in itinerary order:
// sequence_order, then arrival date, then ID.
func sortedStops(stops []domain.Stop) []domain.Stop {
	ordered := append([]domain.Stop(nil), stops...)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.SequenceOrder != b.SequenceOrder {
			return a.SequenceOrder < b.SequenceOrder
		}
		if !a.ArrivalDate.Equal(b.ArrivalDate) {
			return a.ArrivalDate.Before(b.ArrivalDate)
		}
		return strings.Compare(a.ID.String(), b.ID.String()) < 0
	})
	return ordered
}

// lessActivity orders activities by scheduled date, then start time.
// Activities without a start time sort before timed ones on the same day.
func lessActivity(a, b domain.Activity) bool {
	da, db := dateOnly(a.DateScheduled), dateOnly(b.DateScheduled)
	if !da.Equal(db) {
		return da.Before(db)
	}
	return startTime(a) < startTime(b)
}

func startTime(a domain.Activity) string {
	if a.TimeStart == nil {
		return ""
	}
	return *a.TimeStart
}
