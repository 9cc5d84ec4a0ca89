package planner

import (
	"github.com/shopspring/decimal"
)

// Milestone is one line of the trip-completion checklist.
type Milestone struct {
	Label     string `json:"label"`
	Satisfied bool   `json:"satisfied"`
}

// Milestone weights. Each is evaluated independently; the bonus requires
// all three planning milestones at once.
const (
	pointsTripCreated = 10
	pointsStops       = 30
	pointsActivities  = 30
	pointsBudget      = 20
	pointsReadyBonus  = 10
)

// Progress computes the trip-completion score (0-100) and the ordered
// milestone checklist. It depends only on its three inputs, so the same
// counts and budget total always yield the same score, regardless of
// when or in what order the underlying data was fetched.
func Progress(stopCount, activityCount int, budgetTotal decimal.Decimal) (int, []Milestone) {
	hasStops := stopCount > 0
	hasActivities := activityCount > 0
	hasBudget := budgetTotal.IsPositive()
	ready := hasStops && hasActivities && hasBudget

	score := pointsTripCreated
	if hasStops {
		score += pointsStops
	}
	if hasActivities {
		score += pointsActivities
	}
	if hasBudget {
		score += pointsBudget
	}
	if ready {
		score += pointsReadyBonus
	}
	if score > 100 {
		score = 100
	}

	checklist := []Milestone{
		{Label: "Trip created", Satisfied: true},
		{Label: "Stops added", Satisfied: hasStops},
		{Label: "Activities planned", Satisfied: hasActivities},
		{Label: "Budget tracked", Satisfied: hasBudget},
		{Label: "Trip ready", Satisfied: ready},
	}
	return score, checklist
}
