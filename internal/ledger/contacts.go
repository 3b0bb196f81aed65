package ledger

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Samuelkaoma/sunricort-accounting-app/internal/domain"
)

// CustomerBalance computes a customer's accounts receivable: the sum of the
// customer's invoices not yet marked paid, minus income received from that
// customer. A negative result means the customer overpaid and holds a credit;
// the value is intentionally not clamped.
func CustomerBalance(customerID string, invoices []domain.Invoice, transactions []domain.Transaction) decimal.Decimal {
	balance := decimal.Zero

	for _, inv := range invoices {
		if inv.CustomerID == customerID && inv.Status != domain.InvoiceStatusPaid {
			balance = balance.Add(inv.Amount)
		}
	}

	for _, txn := range transactions {
		if txn.Contact == customerID &&
			txn.ContactType == domain.ContactTypeCustomer &&
			txn.Type == domain.TransactionTypeIncome {
			balance = balance.Sub(txn.Amount)
		}
	}

	return balance
}

// VendorBalance computes a vendor's accounts payable: expense accruals for
// the vendor minus payments made to it. Payments are identified by a
// case-insensitive "payment" substring in the description.
//
// TODO: replace the description heuristic with an explicit payment posting
// subtype so payables stop depending on free text.
func VendorBalance(vendorID string, transactions []domain.Transaction) decimal.Decimal {
	balance := decimal.Zero

	for _, txn := range transactions {
		if txn.Contact != vendorID || txn.ContactType != domain.ContactTypeVendor {
			continue
		}

		if txn.Type == domain.TransactionTypeExpense {
			balance = balance.Add(txn.Amount)
		}

		if strings.Contains(strings.ToLower(txn.Description), "payment") {
			balance = balance.Sub(txn.Amount)
		}
	}

	return balance
}

// AllContactBalances computes the derived balance of every contact,
// dispatching on contact type. An unknown type yields zero.
func AllContactBalances(contacts []domain.Contact, invoices []domain.Invoice, transactions []domain.Transaction) map[string]decimal.Decimal {
	balances := make(map[string]decimal.Decimal, len(contacts))

	for _, contact := range contacts {
		switch contact.Type {
		case domain.ContactTypeCustomer:
			balances[contact.ID] = CustomerBalance(contact.ID, invoices, transactions)
		case domain.ContactTypeVendor:
			balances[contact.ID] = VendorBalance(contact.ID, transactions)
		default:
			balances[contact.ID] = decimal.Zero
		}
	}

	return balances
}
