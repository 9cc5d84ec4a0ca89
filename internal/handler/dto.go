package handler

import (
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"

	"github.com/Vasundra417/globetrottter-odoo-hackathon/internal/domain"
)

// Request payloads and response shapes. Calendar dates use
// openapi_types.Date so they serialize as plain "2006-01-02" strings;
// timestamps stay RFC 3339.

type tripPayload struct {
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	StartDate   openapi_types.Date `json:"start_date"`
	EndDate     openapi_types.Date `json:"end_date"`
	BudgetLimit *decimal.Decimal   `json:"budget_limit,omitempty"`
	IsPublic    bool               `json:"is_public,omitempty"`
}

func (p tripPayload) toDomain() domain.Trip {
	return domain.Trip{
		Name:        p.Name,
		Description: p.Description,
		StartDate:   p.StartDate.Time,
		EndDate:     p.EndDate.Time,
		BudgetLimit: p.BudgetLimit,
		IsPublic:    p.IsPublic,
	}
}

type tripResponse struct {
	ID           uuid.UUID          `json:"id"`
	Name         string             `json:"name"`
	Description  string             `json:"description,omitempty"`
	StartDate    openapi_types.Date `json:"start_date"`
	EndDate      openapi_types.Date `json:"end_date"`
	DurationDays int                `json:"duration_days"`
	BudgetLimit  *decimal.Decimal   `json:"budget_limit,omitempty"`
	IsPublic     bool               `json:"is_public"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

func toTripResponse(t domain.Trip) tripResponse {
	return tripResponse{
		ID:           t.ID,
		Name:         t.Name,
		Description:  t.Description,
		StartDate:    openapi_types.Date{Time: t.StartDate},
		EndDate:      openapi_types.Date{Time: t.EndDate},
		DurationDays: t.DurationDays(),
		BudgetLimit:  t.BudgetLimit,
		IsPublic:     t.IsPublic,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

type stopPayload struct {
	CityName      string             `json:"city_name"`
	Country       string             `json:"country"`
	ArrivalDate   openapi_types.Date `json:"arrival_date"`
	DepartureDate openapi_types.Date `json:"departure_date"`
	SequenceOrder int                `json:"sequence_order"`
	CostIndex     *decimal.Decimal   `json:"cost_index,omitempty"`
	Description   string             `json:"description,omitempty"`
}

func (p stopPayload) toDomain(tripID uuid.UUID) domain.Stop {
	return domain.Stop{
		TripID:        tripID,
		CityName:      p.CityName,
		Country:       p.Country,
		ArrivalDate:   p.ArrivalDate.Time,
		DepartureDate: p.DepartureDate.Time,
		SequenceOrder: p.SequenceOrder,
		CostIndex:     p.CostIndex,
		Description:   p.Description,
	}
}

type stopResponse struct {
	ID            uuid.UUID          `json:"id"`
	TripID        uuid.UUID          `json:"trip_id"`
	CityName      string             `json:"city_name"`
	Country       string             `json:"country"`
	ArrivalDate   openapi_types.Date `json:"arrival_date"`
	DepartureDate openapi_types.Date `json:"departure_date"`
	SequenceOrder int                `json:"sequence_order"`
	CostIndex     *decimal.Decimal   `json:"cost_index,omitempty"`
	Description   string             `json:"description,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
}

func toStopResponse(s domain.Stop) stopResponse {
	return stopResponse{
		ID:            s.ID,
		TripID:        s.TripID,
		CityName:      s.CityName,
		Country:       s.Country,
		ArrivalDate:   openapi_types.Date{Time: s.ArrivalDate},
		DepartureDate: openapi_types.Date{Time: s.DepartureDate},
		SequenceOrder: s.SequenceOrder,
		CostIndex:     s.CostIndex,
		Description:   s.Description,
		CreatedAt:     s.CreatedAt,
	}
}

type activityPayload struct {
	Name          string             `json:"name"`
	Category      string             `json:"category"`
	DateScheduled openapi_types.Date `json:"date_scheduled"`
	TimeStart     *string            `json:"time_start,omitempty"`
	DurationHours *decimal.Decimal   `json:"duration_hours,omitempty"`
	Cost          *decimal.Decimal   `json:"cost,omitempty"`
	Description   string             `json:"description,omitempty"`
}

func (p activityPayload) toDomain(stopID uuid.UUID) domain.Activity {
	return domain.Activity{
		StopID:        stopID,
		Name:          p.Name,
		Category:      domain.ActivityCategory(p.Category),
		DateScheduled: p.DateScheduled.Time,
		TimeStart:     p.TimeStart,
		DurationHours: p.DurationHours,
		Cost:          p.Cost,
		Description:   p.Description,
	}
}

type activityResponse struct {
	ID            uuid.UUID          `json:"id"`
	StopID        uuid.UUID          `json:"stop_id"`
	Name          string             `json:"name"`
	Category      string             `json:"category"`
	DateScheduled openapi_types.Date `json:"date_scheduled"`
	TimeStart     *string            `json:"time_start,omitempty"`
	DurationHours *decimal.Decimal   `json:"duration_hours,omitempty"`
	Cost          *decimal.Decimal   `json:"cost,omitempty"`
	Description   string             `json:"description,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
}

func toActivityResponse(a domain.Activity) activityResponse {
	return activityResponse{
		ID:            a.ID,
		StopID:        a.StopID,
		Name:          a.Name,
		Category:      string(a.Category),
		DateScheduled: openapi_types.Date{Time: a.DateScheduled},
		TimeStart:     a.TimeStart,
		DurationHours: a.DurationHours,
		Cost:          a.Cost,
		Description:   a.Description,
		CreatedAt:     a.CreatedAt,
	}
}

type budgetRecordPayload struct {
	Category string              `json:"category"`
	Amount   decimal.Decimal     `json:"amount"`
	Date     *openapi_types.Date `json:"date,omitempty"`
	Notes    string              `json:"notes,omitempty"`
}

func (p budgetRecordPayload) toDomain(tripID uuid.UUID) domain.BudgetRecord {
	record := domain.BudgetRecord{
		TripID:   tripID,
		Category: domain.BudgetCategory(p.Category),
		Amount:   p.Amount,
		Notes:    p.Notes,
	}
	if p.Date != nil {
		record.Date = p.Date.Time
	}
	return record
}

type budgetRecordResponse struct {
	ID        uuid.UUID          `json:"id"`
	TripID    uuid.UUID          `json:"trip_id"`
	Category  string             `json:"category"`
	Amount    decimal.Decimal    `json:"amount"`
	Date      openapi_types.Date `json:"date"`
	Notes     string             `json:"notes,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
}

func toBudgetRecordResponse(r domain.BudgetRecord) budgetRecordResponse {
	return budgetRecordResponse{
		ID:        r.ID,
		TripID:    r.TripID,
		Category:  string(r.Category),
		Amount:    r.Amount,
		Date:      openapi_types.Date{Time: r.Date},
		Notes:     r.Notes,
		CreatedAt: r.CreatedAt,
	}
}

// pageResponse wraps a paged collection with its total count.
type pageResponse[T any] struct {
	Items []T   `json:"items"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}
