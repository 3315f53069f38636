package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/sergavdalyan/ledger-service/internal/domain"
	"github.com/sergavdalyan/ledger-service/internal/usecase"
)

// TransactionRepository implements usecase.TransactionRepository. A
// transaction row and its entry rows are written inside the caller's
// database transaction, so either all of them commit or none do.
type TransactionRepository struct {
	pool  *pgxpool.Pool
	idGen *ULIDGenerator
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(pool *pgxpool.Pool, idGen *ULIDGenerator) *TransactionRepository {
	return &TransactionRepository{
		pool:  pool,
		idGen: idGen,
	}
}

// Create persists the transaction and all of its entries, assigning their
// identities.
func (r *TransactionRepository) Create(ctx context.Context, tx usecase.Tx, transaction *domain.Transaction) (*domain.Transaction, error) {
	pgxTx := tx.(*Tx).PgxTx()

	saved := *transaction
	saved.ID = r.idGen.Generate()

	_, err := pgxTx.Exec(ctx, `
		INSERT INTO transactions (id, description, date, created_at)
		VALUES ($1, $2, $3, $4)
	`,
		saved.ID,
		saved.Description,
		saved.Date,
		saved.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	entries := make([]*domain.Entry, len(transaction.Entries))
	for i, e := range transaction.Entries {
		entry := *e
		entry.ID = r.idGen.Generate()

		_, err := pgxTx.Exec(ctx, `
			INSERT INTO transaction_entries (id, transaction_id, account_id, entry_type, amount, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)
		`,
			entry.ID,
			saved.ID,
			entry.AccountID,
			string(entry.Type),
			entry.Amount.Decimal(),
			entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create entry: %w", err)
		}

		entries[i] = &entry
	}

	saved.Entries = entries

	return &saved, nil
}

// GetByID retrieves a transaction with its full entry set.
func (r *TransactionRepository) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	query := `
		SELECT id, description, date, created_at
		FROM transactions
		WHERE id = $1
	`

	var (
		description string
		date        time.Time
		createdAt   time.Time
	)

	var txnID string
	err := r.pool.QueryRow(ctx, query, id).Scan(&txnID, &description, &date, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrTransactionNotFound, id)
		}

		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	entries, err := r.entriesByTransactionIDs(ctx, []string{txnID})
	if err != nil {
		return nil, err
	}

	return &domain.Transaction{
		ID:          txnID,
		Description: description,
		Date:        date,
		Entries:     entries[txnID],
		CreatedAt:   createdAt,
	}, nil
}

// ListIDsByAccount returns one page of IDs of transactions referencing the
// account, newest first.
func (r *TransactionRepository) ListIDsByAccount(ctx context.Context, accountID string, limit, offset int) ([]string, error) {
	query := `
		SELECT DISTINCT t.id, t.created_at
		FROM transactions t
		JOIN transaction_entries e ON e.transaction_id = t.id
		WHERE e.account_id = $1
		ORDER BY t.created_at DESC, t.id DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.pool.Query(ctx, query, accountID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list transaction ids: %w", err)
	}
	defer rows.Close()

	ids := make([]string, 0)

	for rows.Next() {
		var (
			id        string
			createdAt time.Time
		)

		if err := rows.Scan(&id, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan transaction id: %w", err)
		}

		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read transaction ids: %w", err)
	}

	return ids, nil
}

// GetWithEntriesByIDs hydrates full transactions for a set of IDs. Entry
// lists are always complete; a transaction is never returned with a partial
// one.
func (r *TransactionRepository) GetWithEntriesByIDs(ctx context.Context, ids []string) ([]*domain.Transaction, error) {
	query := `
		SELECT id, description, date, created_at
		FROM transactions
		WHERE id = ANY($1)
	`

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}
	defer rows.Close()

	transactions := make([]*domain.Transaction, 0, len(ids))

	for rows.Next() {
		var txn domain.Transaction
		if err := rows.Scan(&txn.ID, &txn.Description, &txn.Date, &txn.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}

		transactions = append(transactions, &txn)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read transactions: %w", err)
	}

	entries, err := r.entriesByTransactionIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	for _, txn := range transactions {
		txn.Entries = entries[txn.ID]
	}

	return transactions, nil
}

// entriesByTransactionIDs loads entries for a set of transactions, keyed by
// transaction ID, preserving insertion order within each transaction.
func (r *TransactionRepository) entriesByTransactionIDs(ctx context.Context, ids []string) (map[string][]*domain.Entry, error) {
	query := `
		SELECT id, transaction_id, account_id, entry_type, amount, created_at
		FROM transaction_entries
		WHERE transaction_id = ANY($1)
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get entries: %w", err)
	}
	defer rows.Close()

	entries := make(map[string][]*domain.Entry)

	for rows.Next() {
		var (
			id            string
			transactionID string
			accountID     string
			rawType       string
			rawAmount     decimal.Decimal
			createdAt     time.Time
		)

		if err := rows.Scan(&id, &transactionID, &accountID, &rawType, &rawAmount, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}

		entryType, err := domain.ParseEntryType(rawType)
		if err != nil {
			return nil, err
		}

		amount, err := domain.NewMoney(rawAmount)
		if err != nil {
			return nil, err
		}

		entries[transactionID] = append(entries[transactionID], &domain.Entry{
			ID:        id,
			AccountID: accountID,
			Type:      entryType,
			Amount:    amount,
			CreatedAt: createdAt,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read entries: %w", err)
	}

	return entries, nil
}
