package planner_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vasundra417/globetrottter-odoo-hackathon/internal/domain"
	"github.com/Vasundra417/globetrottter-odoo-hackathon/internal/planner"
)

func stop(city, country string, seq int, arrive, depart int) domain.Stop {
	return domain.Stop{
		ID:            uuid.New(),
		CityName:      city,
		Country:       country,
		SequenceOrder: seq,
		ArrivalDate:   date(2024, 1, arrive),
		DepartureDate: date(2024, 1, depart),
	}
}

func TestTravelDays_SameDayCrossBorderIsFlight(t *testing.T) {
	stops := []domain.Stop{
		stop("Paris", "France", 1, 1, 5),
		stop("Rome", "Italy", 2, 5, 9),
	}

	days := planner.TravelDays(stops)

	require.Len(t, days, 1)
	assert.Equal(t, "Paris", days[0].FromCity)
	assert.Equal(t, "Rome", days[0].ToCity)
	assert.Equal(t, date(2024, 1, 5), days[0].Date, "travel date is the origin's departure date")
	assert.Equal(t, planner.ModeFlight, days[0].Mode)
	assert.Equal(t, "2h flight", days[0].EstimatedTime)
}

func TestTravelDays_SameCountryIsGround(t *testing.T) {
	stops := []domain.Stop{
		stop("Tokyo", "Japan", 1, 1, 4),
		stop("Osaka", "Japan", 2, 5, 8),
	}

	days := planner.TravelDays(stops)

	require.Len(t, days, 1)
	assert.Equal(t, planner.ModeGround, days[0].Mode)
}

func TestTravelDays_UnknownPairHasNoEstimate(t *testing.T) {
	stops := []domain.Stop{
		stop("Tallinn", "Estonia", 1, 1, 3),
		stop("Riga", "Latvia", 2, 3, 6),
	}

	days := planner.TravelDays(stops)

	require.Len(t, days, 1)
	assert.Empty(t, days[0].EstimatedTime)
}

func TestTravelDays_LargeGapIsNotTravel(t *testing.T) {
	stops := []domain.Stop{
		stop("Paris", "France", 1, 1, 5),
		stop("Rome", "Italy", 2, 8, 12), // 3-day gap: rest days, not transit
	}

	assert.Empty(t, planner.TravelDays(stops))
}

func TestTravelDays_FollowsSequenceOrderNotInputOrder(t *testing.T) {
	stops := []domain.Stop{
		stop("Barcelona", "Spain", 3, 10, 14),
		stop("Paris", "France", 1, 1, 5),
		stop("Rome", "Italy", 2, 6, 9),
	}

	days := planner.TravelDays(stops)

	require.Len(t, days, 2)
	assert.Equal(t, "Paris", days[0].FromCity)
	assert.Equal(t, "Rome", days[0].ToCity)
	assert.Equal(t, "Rome", days[1].FromCity)
	assert.Equal(t, "Barcelona", days[1].ToCity)
}

func TestTravelDays_FewerThanTwoStops(t *testing.T) {
	assert.Empty(t, planner.TravelDays(nil))
	assert.Empty(t, planner.TravelDays([]domain.Stop{stop("Paris", "France", 1, 1, 5)}))
}
