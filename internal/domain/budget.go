package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetRecord is a single expense logged against a trip.
// Records are append-only: they are created and deleted, never mutated.
type BudgetRecord struct {
	ID        uuid.UUID
	TripID    uuid.UUID
	Category  BudgetCategory
	Amount    decimal.Decimal
	Date      time.Time
	Notes     string
	CreatedAt time.Time
}

// BudgetSummary is the derived spending breakdown for a trip.
// It is computed on demand and never persisted.
//
// Total is the single authoritative trip spend: the sum of all budget
// records plus all activity costs. Every view that needs "how much has
// this trip cost" reads this field, so no two views can disagree.
type BudgetSummary struct {
	ByCategory    map[BudgetCategory]decimal.Decimal `json:"by_category"`
	ActivityCosts decimal.Decimal                    `json:"activity_costs"`
	Total         decimal.Decimal                    `json:"total"`
	Limit         *decimal.Decimal                   `json:"limit,omitempty"`
	OverBudget    bool                               `json:"over_budget"`
}
