package planner

import (
	"github.com/shopspring/decimal"

	"github.com/Vasundra417/globetrottter-odoo-hackathon/internal/domain"
)

// BudgetVerdict is the advisory result of a budget check. It is never an
// error: the caller surfaces it to the user, who may proceed anyway.
type BudgetVerdict struct {
	// Allowed is false when adding the proposed cost would push total
	// spend past the trip's budget limit.
	Allowed bool `json:"allowed"`
	// ExceededBy is how far past the limit the addition would land.
	// Zero when Allowed.
	ExceededBy decimal.Decimal `json:"exceeded_by"`
	// Remaining is the headroom left under the limit before the proposed
	// addition. Zero when no limit is set or spend already meets it.
	Remaining decimal.Decimal `json:"remaining"`
}

// TotalSpend returns the authoritative total spend for a trip: the sum of
// every budget record plus every activity cost. The original app summed
// only one of the two sources depending on the view; all callers here use
// this single function so the totals can never diverge.
func TotalSpend(records []domain.BudgetRecord, activities []domain.Activity) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.Amount)
	}
	for _, a := range activities {
		if a.Cost != nil {
			total = total.Add(*a.Cost)
		}
	}
	return total
}

// CheckBudget evaluates whether adding proposed to the current spend
// would exceed the trip's limit. A nil limit means unlimited and always
// passes. Zero-cost proposals pass without evaluation. All amounts are
// exact decimals; no binary floating point is involved.
//
// Inputs are expected to be non-negative; negative costs are rejected
// before this point by input validation.
func CheckBudget(limit *decimal.Decimal, spent, proposed decimal.Decimal) BudgetVerdict {
	if proposed.IsZero() || limit == nil {
		return BudgetVerdict{Allowed: true}
	}

	remaining := limit.Sub(spent)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	newTotal := spent.Add(proposed)
	if newTotal.GreaterThan(*limit) {
		return BudgetVerdict{
			Allowed:    false,
			ExceededBy: newTotal.Sub(*limit),
			Remaining:  remaining,
		}
	}
	return BudgetVerdict{Allowed: true, Remaining: remaining}
}

// Summarize builds the per-category spending breakdown for a trip.
// Every known budget category appears in the map, zero when unspent, so
// clients can render a stable chart without nil checks. Total follows
// TotalSpend and therefore includes activity costs.
func Summarize(trip domain.Trip, records []domain.BudgetRecord, activities []domain.Activity) domain.BudgetSummary {
	byCategory := map[domain.BudgetCategory]decimal.Decimal{
		domain.BudgetTransport:  decimal.Zero,
		domain.BudgetStay:       decimal.Zero,
		domain.BudgetActivities: decimal.Zero,
		domain.BudgetMeals:      decimal.Zero,
		domain.BudgetParking:    decimal.Zero,
		domain.BudgetShopping:   decimal.Zero,
		domain.BudgetOther:      decimal.Zero,
	}
	for _, r := range records {
		byCategory[r.Category] = byCategory[r.Category].Add(r.Amount)
	}

	activityCosts := decimal.Zero
	for _, a := range activities {
		if a.Cost != nil {
			activityCosts = activityCosts.Add(*a.Cost)
		}
	}

	total := TotalSpend(records, activities)
	summary := domain.BudgetSummary{
		ByCategory:    byCategory,
		ActivityCosts: activityCosts,
		Total:         total,
		Limit:         trip.BudgetLimit,
	}
	if trip.BudgetLimit != nil && total.GreaterThan(*trip.BudgetLimit) {
		summary.OverBudget = true
	}
	return summary
}
