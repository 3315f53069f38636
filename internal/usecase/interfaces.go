package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sergavdalyan/ledger-service/internal/domain"
)

// AccountRepository defines data access for accounts.
// Create assigns the account's identity and must surface a name-uniqueness
// violation detected at commit time as domain.ErrDuplicateAccountName.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	GetByIDs(ctx context.Context, ids []string) ([]*domain.Account, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Account, error)
}

// TransactionRepository defines data access for transactions and the entries
// they own. Create persists the transaction and all its entries inside the
// given database transaction and returns the aggregate with assigned IDs.
type TransactionRepository interface {
	Create(ctx context.Context, tx Tx, transaction *domain.Transaction) (*domain.Transaction, error)
	GetByID(ctx context.Context, id string) (*domain.Transaction, error)
	ListIDsByAccount(ctx context.Context, accountID string, limit, offset int) ([]string, error)
	GetWithEntriesByIDs(ctx context.Context, ids []string) ([]*domain.Transaction, error)
}

// EntryRepository defines the aggregation the balance calculation needs.
// SumByAccountAndType returns a non-negative sum, zero when no entries exist.
type EntryRepository interface {
	SumByAccountAndType(ctx context.Context, accountID string, entryType domain.EntryType) (decimal.Decimal, error)
}

// Tx represents a database transaction.
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TxManager handles database transaction lifecycle.
type TxManager interface {
	Begin(ctx context.Context) (Tx, error)
}

// Retrier retries an operation on transient store failures.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
