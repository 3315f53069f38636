package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/sergavdalyan/ledger-service/internal/domain"
	"github.com/sergavdalyan/ledger-service/internal/infrastructure/metrics"
)

// TransactionUseCase handles transaction posting and retrieval.
type TransactionUseCase struct {
	txManager       TxManager
	accountRepo     AccountRepository
	transactionRepo TransactionRepository
	retrier         Retrier
	metrics         *metrics.Metrics
}

// NewTransactionUseCase creates a new TransactionUseCase.
func NewTransactionUseCase(
	txManager TxManager,
	accountRepo AccountRepository,
	transactionRepo TransactionRepository,
	retrier Retrier,
	metrics *metrics.Metrics,
) *TransactionUseCase {
	return &TransactionUseCase{
		txManager:       txManager,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		retrier:         retrier,
		metrics:         metrics,
	}
}

// CreateTransaction persists an already-validated transaction.
// All referenced accounts are resolved in one batch; if any is missing the
// operation fails with domain.ErrAccountNotFound for the first missing ID and
// nothing is written. The transaction and its entries are stored as one
// atomic unit. Accounts are append-only, so the resolve-then-write sequence
// cannot race with a delete.
func (uc *TransactionUseCase) CreateTransaction(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error) {
	start := time.Now()

	accountIDs := transaction.AccountIDs()
	sort.Strings(accountIDs)

	accounts, err := uc.accountRepo.GetByIDs(ctx, accountIDs)
	if err != nil {
		return nil, err
	}

	resolved := make(map[string]*domain.Account, len(accounts))
	for _, a := range accounts {
		resolved[a.ID] = a
	}

	for _, id := range accountIDs {
		if resolved[id] == nil {
			if uc.metrics != nil {
				uc.metrics.TransactionsRejected.WithLabelValues("account_not_found").Inc()
			}
			return nil, fmt.Errorf("%w: %s", domain.ErrAccountNotFound, id)
		}
	}

	var created *domain.Transaction

	err = uc.retrier.Retry(ctx, func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		created, err = uc.transactionRepo.Create(ctx, tx, transaction)
		if err != nil {
			return err
		}

		return tx.Commit(ctx)
	})
	if err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.TransactionsCreated.Inc()
		uc.metrics.TransactionDuration.Observe(time.Since(start).Seconds())

		amount, _ := created.TotalDebits().Decimal().Float64()
		uc.metrics.TransactionAmount.Observe(amount)
	}

	return created, nil
}

// GetTransaction retrieves a transaction with its full entry set.
func (uc *TransactionUseCase) GetTransaction(ctx context.Context, id string) (*domain.Transaction, error) {
	return uc.transactionRepo.GetByID(ctx, id)
}

// ListTransactionsByAccountInput represents input for listing an account's
// transactions.
type ListTransactionsByAccountInput struct {
	AccountID string
	Limit     int
	Offset    int
}

// ListTransactionsByAccount returns transactions referencing the account,
// newest first, each with all of its entries. A transaction is never
// returned with a partial entry list.
func (uc *TransactionUseCase) ListTransactionsByAccount(ctx context.Context, input ListTransactionsByAccountInput) ([]*domain.Transaction, error) {
	if input.Limit <= 0 {
		input.Limit = DefaultPageSize
	}

	if input.Limit > MaxPageSize {
		input.Limit = MaxPageSize
	}

	if input.Offset < 0 {
		input.Offset = 0
	}

	if _, err := uc.accountRepo.GetByID(ctx, input.AccountID); err != nil {
		return nil, err
	}

	ids, err := uc.transactionRepo.ListIDsByAccount(ctx, input.AccountID, input.Limit, input.Offset)
	if err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return []*domain.Transaction{}, nil
	}

	transactions, err := uc.transactionRepo.GetWithEntriesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	// Hydration may return in any order; restore the page order.
	byID := make(map[string]*domain.Transaction, len(transactions))
	for _, t := range transactions {
		byID[t.ID] = t
	}

	ordered := make([]*domain.Transaction, 0, len(ids))
	for _, id := range ids {
		if t := byID[id]; t != nil {
			ordered = append(ordered, t)
		}
	}

	return ordered, nil
}
