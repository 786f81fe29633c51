package commission

import (
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/commission/internal/config"
	"github.com/cleared-dev/commission/internal/currency"
	"github.com/cleared-dev/commission/internal/model"
	"github.com/cleared-dev/commission/internal/week"
)

// Rule names the branch of the fee schedule that produced a commission.
type Rule string

const (
	RuleDeposit             Rule = "deposit"
	RuleDepositCapped       Rule = "deposit-capped"
	RuleBusiness            Rule = "business"
	RuleBusinessMinimum     Rule = "business-minimum"
	RuleIndividualFree      Rule = "individual-free"
	RuleIndividualPartial   Rule = "individual-partial"
	RuleIndividualExhausted Rule = "individual-exhausted"
	RuleIndividualOverCount Rule = "individual-over-count"
)

var hundred = decimal.NewFromInt(100)

// Result is the unrounded commission for one transaction, in the
// transaction's currency.
type Result struct {
	Commission decimal.Decimal
	Rule       Rule
	Week       week.Key
}

// Engine evaluates the fee schedule.
type Engine struct {
	rules config.Rules
	conv  *currency.Converter
	log   zerolog.Logger
}

// NewEngine creates an Engine.
func NewEngine(rules config.Rules, conv *currency.Converter, log zerolog.Logger) *Engine {
	return &Engine{rules: rules, conv: conv, log: log}
}

// FromConfig creates an Engine from a loaded config.
func FromConfig(cfg *config.Config, log zerolog.Logger) *Engine {
	return NewEngine(cfg.Rules, currency.FromConfig(cfg), log)
}

// Compute returns the commission owed for txn. history is the account's
// full transaction list in ingestion order and must already contain txn.
func (e *Engine) Compute(txn model.Transaction, history []model.Transaction) decimal.Decimal {
	return e.Calculate(txn, history).Commission
}

// Calculate is Compute plus the rule and week that were applied.
func (e *Engine) Calculate(txn model.Transaction, history []model.Transaction) Result {
	if !e.conv.Supports(txn.Currency) {
		e.log.Warn().
			Str("currency", string(txn.Currency)).
			Int("account_id", txn.AccountID).
			Msg("no rate for currency, amount treated as reference currency")
	}

	var res Result
	switch {
	case txn.Operation == model.OperationDeposit:
		res = e.deposit(txn)
	case txn.AccountType == model.AccountTypeIndividual:
		res = e.individualWithdrawal(txn, history)
	default:
		res = e.businessWithdrawal(txn)
	}
	res.Week = week.Of(txn.Date)

	e.log.Debug().
		Int("account_id", txn.AccountID).
		Str("date", txn.Date.Format("2006-01-02")).
		Str("operation", string(txn.Operation)).
		Str("amount", txn.Amount.String()).
		Str("currency", string(txn.Currency)).
		Str("rule", string(res.Rule)).
		Str("commission", res.Commission.String()).
		Msg("commission computed")

	return res
}

func (e *Engine) deposit(txn model.Transaction) Result {
	r := e.rules.Deposit
	fee := percentOf(txn.Amount, r.Percent)
	if e.conv.ToReference(fee, txn.Currency).GreaterThan(r.Max) {
		return Result{Commission: e.conv.FromReference(r.Max, txn.Currency), Rule: RuleDepositCapped}
	}
	return Result{Commission: fee, Rule: RuleDeposit}
}

func (e *Engine) businessWithdrawal(txn model.Transaction) Result {
	r := e.rules.BusinessWithdrawal
	fee := percentOf(txn.Amount, r.Percent)
	if e.conv.ToReference(fee, txn.Currency).LessThan(r.Min) {
		return Result{Commission: e.conv.FromReference(r.Min, txn.Currency), Rule: RuleBusinessMinimum}
	}
	return Result{Commission: fee, Rule: RuleBusiness}
}

// individualWithdrawal applies the weekly free allowance. Only the first
// FreeOperations transactions of the week (of any operation type) are
// eligible, and only withdrawals count against FreeAmount.
func (e *Engine) individualWithdrawal(txn model.Transaction, history []model.Transaction) Result {
	r := e.rules.IndividualWithdrawal
	wk := week.Of(txn.Date)

	if countInWeek(txn.AccountID, history, wk) > r.FreeOperations {
		return Result{Commission: percentOf(txn.Amount, r.Percent), Rule: RuleIndividualOverCount}
	}

	total := e.withdrawnInWeek(txn.AccountID, history, wk)
	if total.LessThanOrEqual(r.FreeAmount) {
		return Result{Commission: decimal.Zero, Rule: RuleIndividualFree}
	}

	excessTotal := total.Sub(r.FreeAmount)
	current := e.conv.ToReference(txn.Amount, txn.Currency)
	prior := total.Sub(current)

	if prior.GreaterThan(r.FreeAmount) {
		// Allowance already used up earlier in the week.
		return Result{Commission: percentOf(txn.Amount, r.Percent), Rule: RuleIndividualExhausted}
	}

	// Charge only the part of this transaction above what was left of the
	// allowance.
	over := current.Sub(r.FreeAmount.Sub(prior))
	if over.IsZero() {
		over = excessTotal
	}
	return Result{
		Commission: percentOf(e.conv.FromReference(over, txn.Currency), r.Percent),
		Rule:       RuleIndividualPartial,
	}
}

// countInWeek counts the account's transactions of any type in wk.
func countInWeek(accountID int, history []model.Transaction, wk week.Key) int {
	n := 0
	for _, h := range history {
		if h.AccountID == accountID && week.Of(h.Date) == wk {
			n++
		}
	}
	return n
}

// withdrawnInWeek sums the account's withdrawals in wk, in reference currency.
func (e *Engine) withdrawnInWeek(accountID int, history []model.Transaction, wk week.Key) decimal.Decimal {
	total := decimal.Zero
	for _, h := range history {
		if h.AccountID == accountID && h.IsWithdrawal() && week.Of(h.Date) == wk {
			total = total.Add(e.conv.ToReference(h.Amount, h.Currency))
		}
	}
	return total
}

func percentOf(amount, pct decimal.Decimal) decimal.Decimal {
	return amount.Mul(pct).Div(hundred)
}
