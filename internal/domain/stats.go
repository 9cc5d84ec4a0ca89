package domain

// PlatformStats is the aggregate view served to the admin dashboard.
type PlatformStats struct {
	TotalUsers      int64   `json:"total_users"`
	TotalTrips      int64   `json:"total_trips"`
	TotalStops      int64   `json:"total_stops"`
	TotalActivities int64   `json:"total_activities"`
	AvgTripDuration float64 `json:"avg_trip_duration"`
	AvgBudget       float64 `json:"avg_budget"`
}

// DestinationCount is one row of the popular-destinations ranking.
type DestinationCount struct {
	City  string `json:"city"`
	Count int64  `json:"count"`
}

// UserTripCount is one row of the top-users ranking.
type UserTripCount struct {
	UserEmail string `json:"user_email"`
	TripCount int64  `json:"trip_count"`
}

// CategoryCount is one row of the activity-category analytics.
type CategoryCount struct {
	Category ActivityCategory `json:"category"`
	Count    int64            `json:"count"`
}
