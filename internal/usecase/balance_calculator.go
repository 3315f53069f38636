package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sergavdalyan/ledger-service/internal/domain"
	"github.com/sergavdalyan/ledger-service/internal/infrastructure/metrics"
)

// BalanceCalculator derives an account's signed balance from its persisted
// entries. Balances are never cached: every call is a fresh aggregation, so
// the result can never go stale relative to committed entries.
type BalanceCalculator struct {
	entryRepo EntryRepository
	metrics   *metrics.Metrics
}

// NewBalanceCalculator creates a new BalanceCalculator.
func NewBalanceCalculator(entryRepo EntryRepository, metrics *metrics.Metrics) *BalanceCalculator {
	return &BalanceCalculator{
		entryRepo: entryRepo,
		metrics:   metrics,
	}
}

// CalculateBalance returns debits-credits for debit-normal account types and
// credits-debits otherwise. No entries means a zero balance. The result is
// always normalized to the ledger scale.
func (c *BalanceCalculator) CalculateBalance(ctx context.Context, accountID string, accountType domain.AccountType) (decimal.Decimal, error) {
	start := time.Now()

	debits, err := c.entryRepo.SumByAccountAndType(ctx, accountID, domain.EntryTypeDebit)
	if err != nil {
		return decimal.Zero, err
	}

	credits, err := c.entryRepo.SumByAccountAndType(ctx, accountID, domain.EntryTypeCredit)
	if err != nil {
		return decimal.Zero, err
	}

	var balance decimal.Decimal
	if accountType.IsDebitNormal() {
		balance = debits.Sub(credits)
	} else {
		balance = credits.Sub(debits)
	}

	if c.metrics != nil {
		c.metrics.BalanceCalculations.Inc()
		c.metrics.BalanceDuration.Observe(time.Since(start).Seconds())
	}

	return balance.Round(domain.MoneyScale), nil
}
