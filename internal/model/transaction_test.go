package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAccountType(t *testing.T) {
	tests := []struct {
		input string
		want  AccountType
	}{
		{"natural", AccountTypeIndividual},
		{"legal", AccountTypeBusiness},
		{"individual", AccountTypeIndividual},
		{"business", AccountTypeBusiness},
	}
	for _, tt := range tests {
		got, err := ParseAccountType(tt.input)
		require.NoError(t, err, "input: %s", tt.input)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseAccountType("corporate")
	assert.Error(t, err)
}

func TestParseOperation(t *testing.T) {
	tests := []struct {
		input string
		want  Operation
	}{
		{"cash_in", OperationDeposit},
		{"cash_out", OperationWithdrawal},
		{"deposit", OperationDeposit},
		{"withdrawal", OperationWithdrawal},
	}
	for _, tt := range tests {
		got, err := ParseOperation(tt.input)
		require.NoError(t, err, "input: %s", tt.input)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseOperation("transfer")
	assert.Error(t, err)
}

func TestAccountAppend(t *testing.T) {
	acct := &Account{ID: 7}
	acct.Append(Transaction{AccountID: 7, Operation: OperationDeposit})
	acct.Append(Transaction{AccountID: 7, Operation: OperationWithdrawal})

	require.Len(t, acct.Transactions, 2)
	assert.Equal(t, OperationDeposit, acct.Transactions[0].Operation)
	assert.True(t, acct.Transactions[1].IsWithdrawal())
}
