package processor

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/cleared-dev/commission/internal/commission"
	"github.com/cleared-dev/commission/internal/config"
	"github.com/cleared-dev/commission/internal/history"
	"github.com/cleared-dev/commission/internal/importer"
	"github.com/cleared-dev/commission/internal/ledger"
	"github.com/cleared-dev/commission/internal/model"
	"github.com/cleared-dev/commission/internal/rounding"
)

// Outcome is the processed form of one input row.
type Outcome struct {
	Transaction model.Transaction
	Result      commission.Result
	Formatted   string
}

// Service runs transactions through the engine in input order. It owns the
// account history for the lifetime of one run and is not safe for
// concurrent use.
type Service struct {
	store     *history.Store
	engine    *commission.Engine
	formatter *rounding.Formatter
	log       zerolog.Logger
}

// NewService creates a Service with an empty history.
func NewService(engine *commission.Engine, formatter *rounding.Formatter, log zerolog.Logger) *Service {
	return &Service{
		store:     history.NewStore(),
		engine:    engine,
		formatter: formatter,
		log:       log,
	}
}

// FromConfig wires a Service from a loaded config.
func FromConfig(cfg *config.Config, log zerolog.Logger) *Service {
	return NewService(commission.FromConfig(cfg, log), rounding.NewFormatter(cfg.Precision), log)
}

// Process records txn and returns its commission.
func (s *Service) Process(txn model.Transaction) Outcome {
	s.store.Record(txn)
	acct := s.store.MustGet(txn.AccountID)

	res := s.engine.Calculate(txn, acct.Transactions)
	return Outcome{
		Transaction: txn,
		Result:      res,
		Formatted:   s.formatter.Format(res.Commission, txn.Currency),
	}
}

// Run parses r and writes one formatted commission per line to w, in input
// order.
func (s *Service) Run(p importer.Parser, r io.Reader, w io.Writer) ([]Outcome, error) {
	txns, err := p.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing %s input: %w", p.Format(), err)
	}

	outcomes := make([]Outcome, 0, len(txns))
	for _, txn := range txns {
		o := s.Process(txn)
		if _, err := fmt.Fprintln(w, o.Formatted); err != nil {
			return outcomes, fmt.Errorf("writing commission: %w", err)
		}
		outcomes = append(outcomes, o)
	}

	s.log.Info().
		Int("transactions", len(outcomes)).
		Int("accounts", s.store.Len()).
		Msg("run complete")

	return outcomes, nil
}

// History returns the account store built so far.
func (s *Service) History() *history.Store {
	return s.store
}

// LedgerEntries converts outcomes into ledger rows stamped with runID.
func LedgerEntries(runID uuid.UUID, outcomes []Outcome) []ledger.Entry {
	entries := make([]ledger.Entry, len(outcomes))
	for i, o := range outcomes {
		txn := o.Transaction
		entries[i] = ledger.Entry{
			RunID:       runID,
			Date:        txn.Date,
			Week:        o.Result.Week,
			AccountID:   txn.AccountID,
			AccountType: txn.AccountType,
			Operation:   txn.Operation,
			Amount:      txn.Amount,
			Currency:    txn.Currency,
			Rule:        string(o.Result.Rule),
			Commission:  o.Formatted,
		}
	}
	return entries
}
