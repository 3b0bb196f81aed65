// Package ledger derives balances from a snapshot of the transaction ledger.
//
// Every function is pure: inputs are treated as immutable snapshots, results
// are freshly computed on each call, and nothing is cached between calls. The
// cached Balance fields on domain records are never consulted; the ledger of
// transactions is the single source of truth.
//
// Referenced ids are not validated. A transaction pointing at an account or
// contact that does not exist simply fails to match during the scan and
// contributes zero.
package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/Samuelkaoma/sunricort-accounting-app/internal/domain"
)

// AccountBalance computes the balance of one account from the full
// transaction history, using standard double-entry sign conventions: a debit
// increases accounts with a natural debit balance (asset, expense) and
// decreases the rest; a credit does the opposite.
//
// A transaction whose debit and credit sides name the same account adjusts
// the balance twice with opposite signs and therefore nets to zero.
func AccountBalance(accountID string, accountType domain.AccountType, transactions []domain.Transaction) decimal.Decimal {
	balance := decimal.Zero
	debitNatural := accountType.IsDebitNatural()

	for _, txn := range transactions {
		if txn.DebitAccount == accountID {
			if debitNatural {
				balance = balance.Add(txn.Amount)
			} else {
				balance = balance.Sub(txn.Amount)
			}
		}

		if txn.CreditAccount == accountID {
			if debitNatural {
				balance = balance.Sub(txn.Amount)
			} else {
				balance = balance.Add(txn.Amount)
			}
		}
	}

	return balance
}

// AllAccountBalances computes the balance of every account. Each account
// rescans the full transaction slice; at small-business ledger volumes the
// O(accounts * transactions) cost is acceptable and keeps the computation
// trivially correct.
func AllAccountBalances(accounts []domain.Account, transactions []domain.Transaction) map[string]decimal.Decimal {
	balances := make(map[string]decimal.Decimal, len(accounts))

	for _, account := range accounts {
		balances[account.ID] = AccountBalance(account.ID, account.Type, transactions)
	}

	return balances
}
