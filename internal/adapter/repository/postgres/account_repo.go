package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sergavdalyan/ledger-service/internal/domain"
)

// pgErrUniqueViolation is the PostgreSQL error code for unique constraint
// violations.
const pgErrUniqueViolation = "23505"

// AccountRepository implements usecase.AccountRepository.
type AccountRepository struct {
	pool  *pgxpool.Pool
	idGen *ULIDGenerator
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(pool *pgxpool.Pool, idGen *ULIDGenerator) *AccountRepository {
	return &AccountRepository{
		pool:  pool,
		idGen: idGen,
	}
}

// Create persists a new account, assigning its identity. A unique
// constraint violation on the name is surfaced as
// domain.ErrDuplicateAccountName: the pre-check in the use case is racy
// under concurrent creation and the constraint is the authority.
func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	query := `
		INSERT INTO accounts (id, name, type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	saved := *account
	saved.ID = r.idGen.Generate()

	_, err := r.pool.Exec(ctx, query,
		saved.ID,
		saved.Name.String(),
		string(saved.Type),
		saved.CreatedAt,
		saved.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrUniqueViolation {
			return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateAccountName, saved.Name)
		}

		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return &saved, nil
}

// ExistsByName reports whether an account with the normalized name exists.
func (r *AccountRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM accounts WHERE name = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, name).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check account name: %w", err)
	}

	return exists, nil
}

// GetByID retrieves an account by ID.
func (r *AccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	query := `
		SELECT id, name, type, created_at, updated_at
		FROM accounts
		WHERE id = $1
	`

	account, err := scanAccount(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrAccountNotFound, id)
		}

		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return account, nil
}

// GetByIDs retrieves accounts by IDs in one batch. Missing IDs are simply
// omitted from the result; resolution is the caller's concern.
func (r *AccountRepository) GetByIDs(ctx context.Context, ids []string) ([]*domain.Account, error) {
	query := `
		SELECT id, name, type, created_at, updated_at
		FROM accounts
		WHERE id = ANY($1)
	`

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get accounts: %w", err)
	}
	defer rows.Close()

	return collectAccounts(rows)
}

// List lists accounts ordered by creation, newest first.
func (r *AccountRepository) List(ctx context.Context, limit, offset int) ([]*domain.Account, error) {
	query := `
		SELECT id, name, type, created_at, updated_at
		FROM accounts
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	return collectAccounts(rows)
}

func collectAccounts(rows pgx.Rows) ([]*domain.Account, error) {
	accounts := make([]*domain.Account, 0)

	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}

		accounts = append(accounts, account)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read accounts: %w", err)
	}

	return accounts, nil
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var (
		id        string
		rawName   string
		rawType   string
		createdAt time.Time
		updatedAt time.Time
	)

	if err := row.Scan(&id, &rawName, &rawType, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	name, err := domain.NewAccountName(rawName)
	if err != nil {
		return nil, err
	}

	accountType, err := domain.ParseAccountType(rawType)
	if err != nil {
		return nil, err
	}

	return &domain.Account{
		ID:        id,
		Name:      name,
		Type:      accountType,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}
