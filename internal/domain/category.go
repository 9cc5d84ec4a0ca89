package domain

// ActivityCategory classifies what kind of activity an entry is.
type ActivityCategory string

const (
	ActivitySightseeing ActivityCategory = "sightseeing"
	ActivityFood        ActivityCategory = "food"
	ActivityAdventure   ActivityCategory = "adventure"
	ActivityShopping    ActivityCategory = "shopping"
	ActivityCulture     ActivityCategory = "culture"
	ActivityRelaxation  ActivityCategory = "relaxation"
	ActivityNightlife   ActivityCategory = "nightlife"
	ActivityOther       ActivityCategory = "other"
)

// activityCategories is the closed set accepted by ValidActivityCategory.
var activityCategories = map[ActivityCategory]bool{
	ActivitySightseeing: true,
	ActivityFood:        true,
	ActivityAdventure:   true,
	ActivityShopping:    true,
	ActivityCulture:     true,
	ActivityRelaxation:  true,
	ActivityNightlife:   true,
	ActivityOther:       true,
}

// ValidActivityCategory reports whether c is one of the known categories.
func ValidActivityCategory(c ActivityCategory) bool {
	return activityCategories[c]
}

// BudgetCategory classifies what a budget record was spent on.
type BudgetCategory string

const (
	BudgetTransport  BudgetCategory = "transport"
	BudgetStay       BudgetCategory = "stay"
	BudgetActivities BudgetCategory = "activities"
	BudgetMeals      BudgetCategory = "meals"
	BudgetParking    BudgetCategory = "parking"
	BudgetShopping   BudgetCategory = "shopping"
	BudgetOther      BudgetCategory = "other"
)

var budgetCategories = map[BudgetCategory]bool{
	BudgetTransport:  true,
	BudgetStay:       true,
	BudgetActivities: true,
	BudgetMeals:      true,
	BudgetParking:    true,
	BudgetShopping:   true,
	BudgetOther:      true,
}

// ValidBudgetCategory reports whether c is one of the known categories.
func ValidBudgetCategory(c BudgetCategory) bool {
	return budgetCategories[c]
}
