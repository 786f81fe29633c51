package model

// Account is the ordered history of one account holder. Transactions are
// kept in ingestion order, which is not necessarily date order.
type Account struct {
	ID           int
	Transactions []Transaction
}

// Append adds a transaction to the end of the history.
func (a *Account) Append(txn Transaction) {
	a.Transactions = append(a.Transactions, txn)
}
