package handler

import (
	"net/http"

	"github.com/Vasundra417/globetrottter-odoo-hackathon/internal/planner"
)

type budgetRecordCreatedResponse struct {
	Record budgetRecordResponse  `json:"record"`
	Budget planner.BudgetVerdict `json:"budget"`
}

// CreateBudgetRecord handles POST /api/v1/trips/{tripID}/budget.
func (h *Handlers) CreateBudgetRecord(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	tripID, ok := pathUUID(r, "tripID")
	if !ok {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid trip id")
		return
	}
	var payload budgetRecordPayload
	if err := decode(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}

	record, verdict, err := h.budgets.CreateRecord(r.Context(), user.ID, payload.toDomain(tripID))
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, budgetRecordCreatedResponse{
		Record: toBudgetRecordResponse(record),
		Budget: verdict,
	})
}

// ListBudgetRecords handles GET /api/v1/trips/{tripID}/budget.
func (h *Handlers) ListBudgetRecords(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	tripID, ok := pathUUID(r, "tripID")
	if !ok {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid trip id")
		return
	}

	records, err := h.budgets.ListRecords(r.Context(), user.ID, tripID)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	items := make([]budgetRecordResponse, 0, len(records))
	for _, rec := range records {
		items = append(items, toBudgetRecordResponse(rec))
	}
	writeJSON(w, http.StatusOK, items)
}

// DeleteBudgetRecord handles DELETE /api/v1/trips/{tripID}/budget/{recordID}.
func (h *Handlers) DeleteBudgetRecord(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	tripID, ok1 := pathUUID(r, "tripID")
	recordID, ok2 := pathUUID(r, "recordID")
	if !ok1 || !ok2 {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid id in path")
		return
	}

	if err := h.budgets.DeleteRecord(r.Context(), user.ID, tripID, recordID); err != nil {
		h.respondErr(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetBudgetSummary handles GET /api/v1/trips/{tripID}/budget/summary.
func (h *Handlers) GetBudgetSummary(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	tripID, ok := pathUUID(r, "tripID")
	if !ok {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid trip id")
		return
	}

	summary, err := h.budgets.Summary(r.Context(), user.ID, tripID)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
