package history

import (
	"fmt"

	"github.com/cleared-dev/commission/internal/model"
)

// Store keeps every account seen during one processing run, keyed by ID.
// Accounts are created on first use and only ever appended to.
type Store struct {
	byID  map[int]*model.Account
	order []int
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{byID: make(map[int]*model.Account)}
}

// Record appends txn to its account, creating the account if needed, and
// returns the account with txn as its last transaction.
func (s *Store) Record(txn model.Transaction) *model.Account {
	acct, ok := s.byID[txn.AccountID]
	if !ok {
		acct = &model.Account{ID: txn.AccountID}
		s.byID[txn.AccountID] = acct
		s.order = append(s.order, txn.AccountID)
	}
	acct.Append(txn)
	return acct
}

// Get returns an account by ID.
func (s *Store) Get(id int) (*model.Account, bool) {
	a, ok := s.byID[id]
	return a, ok
}

// MustGet returns an account by ID and panics if it was never recorded.
// Callers record before they compute, so a miss is a programming error.
func (s *Store) MustGet(id int) *model.Account {
	a, ok := s.byID[id]
	if !ok {
		panic(fmt.Sprintf("history: account %d was never recorded", id))
	}
	return a
}

// Exists reports whether an account ID has been recorded.
func (s *Store) Exists(id int) bool {
	_, ok := s.byID[id]
	return ok
}

// All returns accounts in first-seen order.
func (s *Store) All() []*model.Account {
	result := make([]*model.Account, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.byID[id])
	}
	return result
}

// Len returns the number of known accounts.
func (s *Store) Len() int {
	return len(s.order)
}
