package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/Samuelkaoma/sunricort-accounting-app/internal/adapter/http/dto"
	"github.com/Samuelkaoma/sunricort-accounting-app/internal/domain"
	"github.com/Samuelkaoma/sunricort-accounting-app/internal/usecase"
)

// RecurringService defines the behavior needed by RecurringHandler.
type RecurringService interface {
	CreateRecurring(ctx context.Context, input usecase.CreateRecurringInput) (*domain.RecurringTransaction, error)
	ListRecurring(ctx context.Context, input usecase.ListRecurringInput) ([]*domain.RecurringTransaction, error)
	MaterializeDue(ctx context.Context, now time.Time) (int, error)
}

// RecurringHandler handles recurring schedule HTTP requests.
type RecurringHandler struct {
	recurringUC RecurringService
}

// NewRecurringHandler creates a new RecurringHandler.
func NewRecurringHandler(recurringUC RecurringService) *RecurringHandler {
	return &RecurringHandler{recurringUC: recurringUC}
}

// Create creates a new recurring schedule.
func (h *RecurringHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateRecurringRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	recurring, err := h.recurringUC.CreateRecurring(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create schedule", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.RecurringFromDomain(recurring))
}

// List lists recurring schedules.
func (h *RecurringHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", 20)
	offset := parseIntQuery(r, "offset", 0)

	schedules, err := h.recurringUC.ListRecurring(r.Context(), usecase.ListRecurringInput{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list schedules", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.RecurringsFromDomain(schedules))
}

// Run materializes every due schedule into the ledger.
func (h *RecurringHandler) Run(w http.ResponseWriter, r *http.Request) {
	posted, err := h.recurringUC.MaterializeDue(r.Context(), time.Now().UTC())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to run schedules", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.RecurringRunResponse{Posted: posted})
}
