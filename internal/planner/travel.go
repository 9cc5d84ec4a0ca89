package planner

import (
	"time"

	"github.com/Vasundra417/globetrottter-odoo-hackathon/internal/domain"
)

// Transport mode hints attached to detected travel days. These are a
// heuristic default — crossing a border suggests a flight, staying in
// the same country suggests ground transport — not a routing result.
const (
	ModeFlight = "flight"
	ModeGround = "ground"
)

// maxTransitGapDays is the largest gap, in whole days, between one
// stop's departure and the next stop's arrival that still counts as a
// transit day. Larger gaps are treated as rest or buffer days.
const maxTransitGapDays = 1

// TravelDay is a detected transition between two consecutive stops.
type TravelDay struct {
	FromCity    string `json:"from_city"`
	FromCountry string `json:"from_country"`
	ToCity      string `json:"to_city"`
	ToCountry   string `json:"to_country"`
	// Date is the departure date of the origin stop.
	Date time.Time `json:"date"`
	// Mode is the transport hint: ModeFlight across borders, ModeGround
	// otherwise.
	Mode string `json:"mode"`
	// EstimatedTime is a rough duration for well-known city pairs and
	// empty otherwise; it is a lookup, not a computation.
	EstimatedTime string `json:"estimated_time,omitempty"`
}

// knownRoutes holds rough durations for a handful of popular city pairs.
// Anything not listed here is left unestimated.
var knownRoutes = map[string]string{
	"Paris-Rome":      "2h flight",
	"Rome-Barcelona":  "2.5h flight",
	"London-Paris":    "2.5h train",
	"Tokyo-Osaka":     "2.5h train",
	"New York-Boston": "4h drive",
}

// TravelDays scans consecutive stop pairs in itinerary order and emits a
// record for each transition whose day gap is 0 or 1. The input is not
// mutated; stops are re-sorted into sequence order internally.
func TravelDays(stops []domain.Stop) []TravelDay {
	ordered := sortedStops(stops)

	out := make([]TravelDay, 0)
	for i := 0; i+1 < len(ordered); i++ {
		from, to := ordered[i], ordered[i+1]

		gap := wholeDays(from.DepartureDate, to.ArrivalDate)
		if gap < 0 || gap > maxTransitGapDays {
			continue
		}

		mode := ModeGround
		if from.Country != to.Country {
			mode = ModeFlight
		}

		out = append(out, TravelDay{
			FromCity:      from.CityName,
			FromCountry:   from.Country,
			ToCity:        to.CityName,
			ToCountry:     to.Country,
			Date:          dateOnly(from.DepartureDate),
			Mode:          mode,
			EstimatedTime: knownRoutes[from.CityName+"-"+to.CityName],
		})
	}
	return out
}

// wholeDays returns the number of whole calendar days from a to b.
func wholeDays(a, b time.Time) int {
	return int(dateOnly(b).Sub(dateOnly(a)).Hours() / 24)
}
