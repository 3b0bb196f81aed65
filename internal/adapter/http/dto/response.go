package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Samuelkaoma/sunricort-accounting-app/internal/domain"
	"github.com/Samuelkaoma/sunricort-accounting-app/internal/ledger"
	"github.com/Samuelkaoma/sunricort-accounting-app/internal/usecase"
)

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Type      string          `json:"type"`
	Code      string          `json:"code"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// AccountFromDomain converts a domain account to a response.
func AccountFromDomain(a *domain.Account) *AccountResponse {
	return &AccountResponse{
		ID:        a.ID,
		Name:      a.Name,
		Type:      string(a.Type),
		Code:      a.Code,
		Balance:   a.Balance,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// AccountsFromDomain converts domain accounts to responses.
func AccountsFromDomain(accounts []*domain.Account) []*AccountResponse {
	result := make([]*AccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = AccountFromDomain(a)
	}
	return result
}

// ListAccountsResponse wraps an account listing.
type ListAccountsResponse struct {
	Accounts []*AccountResponse `json:"accounts"`
	Total    int64              `json:"total"`
}

// ContactResponse represents a contact in API responses.
type ContactResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Type      string          `json:"type"`
	Email     string          `json:"email,omitempty"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ContactFromDomain converts a domain contact to a response.
func ContactFromDomain(c *domain.Contact) *ContactResponse {
	return &ContactResponse{
		ID:        c.ID,
		Name:      c.Name,
		Type:      string(c.Type),
		Email:     c.Email,
		Balance:   c.Balance,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ContactsFromDomain converts domain contacts to responses.
func ContactsFromDomain(contacts []*domain.Contact) []*ContactResponse {
	result := make([]*ContactResponse, len(contacts))
	for i, c := range contacts {
		result[i] = ContactFromDomain(c)
	}
	return result
}

// ListContactsResponse wraps a contact listing.
type ListContactsResponse struct {
	Contacts []*ContactResponse `json:"contacts"`
	Total    int64              `json:"total"`
}

// TransactionResponse represents a transaction in API responses.
type TransactionResponse struct {
	ID            string          `json:"id"`
	Date          time.Time       `json:"date"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Type          string          `json:"type"`
	DebitAccount  string          `json:"debit_account"`
	CreditAccount string          `json:"credit_account"`
	Category      string          `json:"category,omitempty"`
	Contact       string          `json:"contact,omitempty"`
	ContactType   string          `json:"contact_type,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// TransactionFromDomain converts a domain transaction to a response.
func TransactionFromDomain(t *domain.Transaction) *TransactionResponse {
	return &TransactionResponse{
		ID:            t.ID,
		Date:          t.Date,
		Description:   t.Description,
		Amount:        t.Amount,
		Type:          string(t.Type),
		DebitAccount:  t.DebitAccount,
		CreditAccount: t.CreditAccount,
		Category:      t.Category,
		Contact:       t.Contact,
		ContactType:   string(t.ContactType),
		CreatedAt:     t.CreatedAt,
	}
}

// TransactionsFromDomain converts domain transactions to responses.
func TransactionsFromDomain(transactions []*domain.Transaction) []*TransactionResponse {
	result := make([]*TransactionResponse, len(transactions))
	for i, t := range transactions {
		result[i] = TransactionFromDomain(t)
	}
	return result
}

// ListTransactionsResponse wraps a transaction listing.
type ListTransactionsResponse struct {
	Transactions []*TransactionResponse `json:"transactions"`
	Total        int64                  `json:"total"`
}

// InvoiceResponse represents an invoice in API responses.
type InvoiceResponse struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customer_id"`
	Amount     decimal.Decimal `json:"amount"`
	Status     string          `json:"status"`
	Date       time.Time       `json:"date"`
	DueDate    time.Time       `json:"due_date"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// InvoiceFromDomain converts a domain invoice to a response.
func InvoiceFromDomain(i *domain.Invoice) *InvoiceResponse {
	return &InvoiceResponse{
		ID:         i.ID,
		CustomerID: i.CustomerID,
		Amount:     i.Amount,
		Status:     string(i.Status),
		Date:       i.Date,
		DueDate:    i.DueDate,
		CreatedAt:  i.CreatedAt,
		UpdatedAt:  i.UpdatedAt,
	}
}

// InvoicesFromDomain converts domain invoices to responses.
func InvoicesFromDomain(invoices []*domain.Invoice) []*InvoiceResponse {
	result := make([]*InvoiceResponse, len(invoices))
	for i, inv := range invoices {
		result[i] = InvoiceFromDomain(inv)
	}
	return result
}

// RecurringResponse represents a recurring schedule in API responses.
type RecurringResponse struct {
	ID            string          `json:"id"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Type          string          `json:"type"`
	DebitAccount  string          `json:"debit_account"`
	CreditAccount string          `json:"credit_account"`
	Category      string          `json:"category,omitempty"`
	Contact       string          `json:"contact,omitempty"`
	ContactType   string          `json:"contact_type,omitempty"`
	Frequency     string          `json:"frequency"`
	NextRunAt     time.Time       `json:"next_run_at"`
	Active        bool            `json:"active"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// RecurringFromDomain converts a domain schedule to a response.
func RecurringFromDomain(r *domain.RecurringTransaction) *RecurringResponse {
	return &RecurringResponse{
		ID:            r.ID,
		Description:   r.Description,
		Amount:        r.Amount,
		Type:          string(r.Type),
		DebitAccount:  r.DebitAccount,
		CreditAccount: r.CreditAccount,
		Category:      r.Category,
		Contact:       r.Contact,
		ContactType:   string(r.ContactType),
		Frequency:     string(r.Frequency),
		NextRunAt:     r.NextRunAt,
		Active:        r.Active,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

// RecurringsFromDomain converts domain schedules to responses.
func RecurringsFromDomain(schedules []*domain.RecurringTransaction) []*RecurringResponse {
	result := make([]*RecurringResponse, len(schedules))
	for i, r := range schedules {
		result[i] = RecurringFromDomain(r)
	}
	return result
}

// BalanceResponse represents a derived balance with display helpers.
type BalanceResponse struct {
	ID         string          `json:"id"`
	Balance    decimal.Decimal `json:"balance"`
	Formatted  string          `json:"formatted"`
	ColorClass string          `json:"color_class"`
}

// BalanceFromDerived builds a balance response using the engine's
// presentation helpers.
func BalanceFromDerived(id string, balance decimal.Decimal, accountType domain.AccountType) *BalanceResponse {
	return &BalanceResponse{
		ID:         id,
		Balance:    balance,
		Formatted:  ledger.FormatCurrency(balance),
		ColorClass: ledger.BalanceColorClass(balance, accountType),
	}
}

// TypeSummaryResponse represents per-type balance totals.
type TypeSummaryResponse struct {
	Asset     decimal.Decimal `json:"asset"`
	Liability decimal.Decimal `json:"liability"`
	Equity    decimal.Decimal `json:"equity"`
	Revenue   decimal.Decimal `json:"revenue"`
	Expense   decimal.Decimal `json:"expense"`
}

// EquationCheckResponse represents an accounting-equation verification.
type EquationCheckResponse struct {
	IsBalanced  bool            `json:"is_balanced"`
	Assets      decimal.Decimal `json:"assets"`
	Liabilities decimal.Decimal `json:"liabilities"`
	Equity      decimal.Decimal `json:"equity"`
	Difference  decimal.Decimal `json:"difference"`
}

// EquationCheckFromEngine converts an engine check to a response.
func EquationCheckFromEngine(check ledger.EquationCheck) *EquationCheckResponse {
	return &EquationCheckResponse{
		IsBalanced:  check.IsBalanced,
		Assets:      check.Assets,
		Liabilities: check.Liabilities,
		Equity:      check.Equity,
		Difference:  check.Difference,
	}
}

// LedgerCheckResponse represents a debit/credit totals check.
type LedgerCheckResponse struct {
	IsValid      bool            `json:"is_valid"`
	TotalDebits  decimal.Decimal `json:"total_debits"`
	TotalCredits decimal.Decimal `json:"total_credits"`
	Difference   decimal.Decimal `json:"difference"`
}

// LedgerCheckFromEngine converts an engine check to a response.
func LedgerCheckFromEngine(check ledger.LedgerCheck) *LedgerCheckResponse {
	return &LedgerCheckResponse{
		IsValid:      check.IsValid,
		TotalDebits:  check.TotalDebits,
		TotalCredits: check.TotalCredits,
		Difference:   check.Difference,
	}
}

// SummaryResponse represents the full balance summary report.
type SummaryResponse struct {
	Accounts    map[string]decimal.Decimal `json:"accounts"`
	Contacts    map[string]decimal.Decimal `json:"contacts"`
	Types       *TypeSummaryResponse       `json:"types"`
	Equation    *EquationCheckResponse     `json:"equation"`
	GeneratedAt time.Time                  `json:"generated_at"`
}

// SummaryFromUseCase converts a use-case summary to a response.
func SummaryFromUseCase(s *usecase.BalanceSummary) *SummaryResponse {
	return &SummaryResponse{
		Accounts: s.Accounts,
		Contacts: s.Contacts,
		Types: &TypeSummaryResponse{
			Asset:     s.Types.Asset,
			Liability: s.Types.Liability,
			Equity:    s.Types.Equity,
			Revenue:   s.Types.Revenue,
			Expense:   s.Types.Expense,
		},
		Equation:    EquationCheckFromEngine(s.Equation),
		GeneratedAt: s.GeneratedAt,
	}
}

// RecurringRunResponse reports how many schedules were posted.
type RecurringRunResponse struct {
	Posted int `json:"posted"`
}
