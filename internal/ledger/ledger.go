package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/commission/internal/model"
	"github.com/cleared-dev/commission/internal/week"
)

// Entry is one row in the fee ledger: a transaction and the commission
// charged for it.
type Entry struct {
	RunID       uuid.UUID
	Date        time.Time
	Week        week.Key
	AccountID   int
	AccountType model.AccountType
	Operation   model.Operation
	Amount      decimal.Decimal
	Currency    model.Currency
	Rule        string
	Commission  string // as printed, already rounded
}

// Header is the CSV header for the ledger file.
const Header = "run_id,date,week,account_id,account_type,operation,amount,currency,rule,commission"

const (
	numFields     = 10
	dateFormat    = "2006-01-02"
	colRunID      = 0
	colDate       = 1
	colWeek       = 2
	colAcctID     = 3
	colAcctType   = 4
	colOperation  = 5
	colAmount     = 6
	colCurrency   = 7
	colRule       = 8
	colCommission = 9
)

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colRunID] = e.RunID.String()
	row[colDate] = e.Date.Format(dateFormat)
	row[colWeek] = e.Week.String()
	row[colAcctID] = strconv.Itoa(e.AccountID)
	row[colAcctType] = string(e.AccountType)
	row[colOperation] = string(e.Operation)
	row[colAmount] = e.Amount.String()
	row[colCurrency] = string(e.Currency)
	row[colRule] = e.Rule
	row[colCommission] = e.Commission
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	runID, err := uuid.Parse(record[colRunID])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing run_id %q: %w", record[colRunID], err)
	}

	date, err := time.Parse(dateFormat, record[colDate])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	wk, err := week.Parse(record[colWeek])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing week: %w", err)
	}

	accountID, err := strconv.Atoi(record[colAcctID])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing account_id %q: %w", record[colAcctID], err)
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	return Entry{
		RunID:       runID,
		Date:        date,
		Week:        wk,
		AccountID:   accountID,
		AccountType: model.AccountType(record[colAcctType]),
		Operation:   model.Operation(record[colOperation]),
		Amount:      amount,
		Currency:    model.Currency(record[colCurrency]),
		Rule:        record[colRule],
		Commission:  record[colCommission],
	}, nil
}

// Write writes entries to w, header first.
func Write(w io.Writer, entries []Entry) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}
	return cw.Error()
}

// Append writes entries to the ledger at path, creating the file, its
// directory and the header if needed.
func Append(path string, entries []Entry) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating ledger dir: %w", err)
	}

	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening ledger: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// Read returns all entries from the ledger at path.
// Returns nil if the file does not exist.
func Read(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening ledger: %w", err)
	}
	defer f.Close()

	return ReadEntries(f)
}

// ReadEntries reads entries from r, skipping the header row.
func ReadEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading ledger CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
