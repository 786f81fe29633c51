package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/commission/internal/model"
)

// PayseraParser parses the header-less six column operations CSV:
// date,account_id,account_type,operation,amount,currency.
type PayseraParser struct{}

const (
	payseraDateFormat = "2006-01-02"
	payseraNumFields  = 6
	payseraColDate    = 0
	payseraColAcctID  = 1
	payseraColType    = 2
	payseraColOp      = 3
	payseraColAmount  = 4
	payseraColCur     = 5
)

// Format returns the parser name.
func (p *PayseraParser) Format() string { return "paysera" }

// Parse reads every row. Rows are returned in file order.
func (p *PayseraParser) Parse(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = payseraNumFields
	cr.TrimLeadingSpace = true

	var txns []model.Transaction
	for row := 1; ; row++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading operations CSV: %w", err)
		}
		txn, err := parsePayseraRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

func parsePayseraRow(rec []string) (model.Transaction, error) {
	date, err := time.Parse(payseraDateFormat, rec[payseraColDate])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing date %q: %w", rec[payseraColDate], err)
	}

	accountID, err := strconv.Atoi(rec[payseraColAcctID])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing account_id %q: %w", rec[payseraColAcctID], err)
	}

	acctType, err := model.ParseAccountType(rec[payseraColType])
	if err != nil {
		return model.Transaction{}, err
	}

	op, err := model.ParseOperation(rec[payseraColOp])
	if err != nil {
		return model.Transaction{}, err
	}

	amount, err := decimal.NewFromString(rec[payseraColAmount])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", rec[payseraColAmount], err)
	}
	if amount.IsNegative() {
		return model.Transaction{}, fmt.Errorf("amount %s is negative", amount)
	}

	return model.Transaction{
		Date:        date,
		AccountID:   accountID,
		AccountType: acctType,
		Operation:   op,
		Amount:      amount,
		Currency:    model.Currency(strings.ToUpper(rec[payseraColCur])),
	}, nil
}
