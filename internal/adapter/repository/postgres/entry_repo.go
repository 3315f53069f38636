package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/sergavdalyan/ledger-service/internal/domain"
)

// EntryRepository implements usecase.EntryRepository.
type EntryRepository struct {
	pool *pgxpool.Pool
}

// NewEntryRepository creates a new EntryRepository.
func NewEntryRepository(pool *pgxpool.Pool) *EntryRepository {
	return &EntryRepository{pool: pool}
}

// SumByAccountAndType returns the total posted amount for one account in one
// direction. Accounts with no entries in that direction sum to zero.
func (r *EntryRepository) SumByAccountAndType(ctx context.Context, accountID string, entryType domain.EntryType) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM transaction_entries
		WHERE account_id = $1 AND entry_type = $2
	`

	var total decimal.Decimal

	err := r.pool.QueryRow(ctx, query, accountID, string(entryType)).Scan(&total)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("failed to sum entries: %w", err)
	}

	return total, nil
}
