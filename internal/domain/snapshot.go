package domain

// TripSnapshot is a fully-loaded, consistent view of one trip and all the
// data the planner's derivations need. The service layer assembles it
// (fetching the independent reads concurrently) before invoking any
// planner function, so the planner never sees partially-loaded state.
type TripSnapshot struct {
	Trip          Trip           `json:"trip"`
	Stops         []Stop         `json:"stops"`
	Activities    []Activity     `json:"activities"`
	BudgetRecords []BudgetRecord `json:"budget_records"`
}
