package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// AccountType classifies the holder of an account.
type AccountType string

const (
	AccountTypeIndividual AccountType = "individual"
	AccountTypeBusiness   AccountType = "business"
)

// Operation is the direction of a transaction.
type Operation string

const (
	OperationDeposit    Operation = "deposit"
	OperationWithdrawal Operation = "withdrawal"
)

// Currency is an ISO 4217 code. Codes without a configured rate are
// carried through unconverted.
type Currency string

const (
	CurrencyEUR Currency = "EUR"
	CurrencyUSD Currency = "USD"
	CurrencyJPY Currency = "JPY"
)

// Transaction is one ingested input row.
type Transaction struct {
	Date        time.Time // UTC midnight
	AccountID   int
	AccountType AccountType
	Operation   Operation
	Amount      decimal.Decimal
	Currency    Currency
}

// IsWithdrawal reports whether the transaction takes money out.
func (t Transaction) IsWithdrawal() bool {
	return t.Operation == OperationWithdrawal
}

// ParseAccountType accepts both the input vocabulary ("natural", "legal")
// and the canonical names.
func ParseAccountType(s string) (AccountType, error) {
	switch s {
	case "natural", string(AccountTypeIndividual):
		return AccountTypeIndividual, nil
	case "legal", string(AccountTypeBusiness):
		return AccountTypeBusiness, nil
	default:
		return "", fmt.Errorf("unknown account type %q", s)
	}
}

// ParseOperation accepts both the input vocabulary ("cash_in", "cash_out")
// and the canonical names.
func ParseOperation(s string) (Operation, error) {
	switch s {
	case "cash_in", string(OperationDeposit):
		return OperationDeposit, nil
	case "cash_out", string(OperationWithdrawal):
		return OperationWithdrawal, nil
	default:
		return "", fmt.Errorf("unknown operation %q", s)
	}
}
