package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist (or is not visible to the caller).
// Handlers map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing required field, date outside trip bounds).
// Handlers map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrDataIntegrity is returned when stored data is internally inconsistent
// (e.g. a trip whose end date precedes its start date, or an activity whose
// stop no longer exists). It indicates corruption rather than bad user
// input, and is logged for investigation instead of being worked around.
// Handlers map this to HTTP 500.
var ErrDataIntegrity = errors.New("data integrity error")

// ErrNotLoaded is returned by the planner when asked to validate against
// trip or stop bounds that have not been loaded. Validation never passes
// silently on missing bounds; callers must load the parent first.
var ErrNotLoaded = errors.New("bounds not loaded")
