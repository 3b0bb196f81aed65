package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/Samuelkaoma/sunricort-accounting-app/internal/adapter/http/dto"
	"github.com/Samuelkaoma/sunricort-accounting-app/internal/domain"
	"github.com/Samuelkaoma/sunricort-accounting-app/internal/usecase"
)

// ContactService defines the behavior needed by ContactHandler.
type ContactService interface {
	CreateContact(ctx context.Context, input usecase.CreateContactInput) (*domain.Contact, error)
	GetContact(ctx context.Context, id string) (*domain.Contact, error)
	ListContacts(ctx context.Context, input usecase.ListContactsInput) ([]*domain.Contact, error)
	GetBalance(ctx context.Context, id string) (decimal.Decimal, error)
}

// ContactHandler handles contact-related HTTP requests.
type ContactHandler struct {
	contactUC ContactService
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(contactUC ContactService) *ContactHandler {
	return &ContactHandler{contactUC: contactUC}
}

// Create creates a new contact.
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	contact, err := h.contactUC.CreateContact(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create contact", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.ContactFromDomain(contact))
}

// Get retrieves a contact by ID.
func (h *ContactHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing contact ID", "")
		return
	}

	contact, err := h.contactUC.GetContact(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get contact", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ContactFromDomain(contact))
}

// List lists contacts.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", 20)
	offset := parseIntQuery(r, "offset", 0)

	contacts, err := h.contactUC.ListContacts(r.Context(), usecase.ListContactsInput{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list contacts", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListContactsResponse{
		Contacts: dto.ContactsFromDomain(contacts),
		Total:    int64(len(contacts)),
	})
}

// GetBalance returns the contact's derived balance: receivable for
// customers, payable for vendors.
func (h *ContactHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing contact ID", "")
		return
	}

	contact, err := h.contactUC.GetContact(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get contact", err.Error())
		return
	}

	balance, err := h.contactUC.GetBalance(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to compute balance", err.Error())
		return
	}

	// Contact balances color like asset balances: money owed to the
	// business reads positive.
	writeJSON(w, http.StatusOK, dto.BalanceFromDerived(contact.ID, balance, domain.AccountTypeAsset))
}
