package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Samuelkaoma/sunricort-accounting-app/internal/adapter/http/dto"
	"github.com/Samuelkaoma/sunricort-accounting-app/internal/domain"
	"github.com/Samuelkaoma/sunricort-accounting-app/internal/usecase"
)

// InvoiceService defines the behavior needed by InvoiceHandler.
type InvoiceService interface {
	CreateInvoice(ctx context.Context, input usecase.CreateInvoiceInput) (*domain.Invoice, error)
	GetInvoice(ctx context.Context, id string) (*domain.Invoice, error)
	ListInvoices(ctx context.Context, input usecase.ListInvoicesInput) ([]*domain.Invoice, error)
	UpdateStatus(ctx context.Context, id string, status domain.InvoiceStatus) (*domain.Invoice, error)
}

// InvoiceHandler handles invoice-related HTTP requests.
type InvoiceHandler struct {
	invoiceUC InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(invoiceUC InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceUC: invoiceUC}
}

// Create creates a new invoice.
func (h *InvoiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	invoice, err := h.invoiceUC.CreateInvoice(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create invoice", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.InvoiceFromDomain(invoice))
}

// Get retrieves an invoice by ID.
func (h *InvoiceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing invoice ID", "")
		return
	}

	invoice, err := h.invoiceUC.GetInvoice(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get invoice", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.InvoiceFromDomain(invoice))
}

// List lists invoices, optionally filtered by customer_id.
func (h *InvoiceHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", 20)
	offset := parseIntQuery(r, "offset", 0)

	invoices, err := h.invoiceUC.ListInvoices(r.Context(), usecase.ListInvoicesInput{
		CustomerID: r.URL.Query().Get("customer_id"),
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list invoices", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.InvoicesFromDomain(invoices))
}

// UpdateStatus moves an invoice to a new lifecycle status.
func (h *InvoiceHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing invoice ID", "")
		return
	}

	var req dto.UpdateInvoiceStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	invoice, err := h.invoiceUC.UpdateStatus(r.Context(), id, domain.InvoiceStatus(req.Status))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update invoice status", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.InvoiceFromDomain(invoice))
}
