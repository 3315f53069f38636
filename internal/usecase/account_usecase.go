package usecase

import (
	"context"
	"fmt"

	"github.com/sergavdalyan/ledger-service/internal/domain"
	"github.com/sergavdalyan/ledger-service/internal/infrastructure/metrics"
)

// AccountUseCase handles account business logic.
type AccountUseCase struct {
	accountRepo AccountRepository
	metrics     *metrics.Metrics
}

// NewAccountUseCase creates a new AccountUseCase.
func NewAccountUseCase(accountRepo AccountRepository, metrics *metrics.Metrics) *AccountUseCase {
	return &AccountUseCase{
		accountRepo: accountRepo,
		metrics:     metrics,
	}
}

// CreateAccountInput represents input for creating an account.
type CreateAccountInput struct {
	Name string
	Type string
}

// CreateAccount validates the input and persists a new account.
// The existence pre-check is advisory; the unique constraint on the
// normalized name is the authority and the repository maps its violation
// to domain.ErrDuplicateAccountName as well.
func (uc *AccountUseCase) CreateAccount(ctx context.Context, input CreateAccountInput) (*domain.Account, error) {
	name, err := domain.NewAccountName(input.Name)
	if err != nil {
		return nil, err
	}

	accountType, err := domain.ParseAccountType(input.Type)
	if err != nil {
		return nil, err
	}

	exists, err := uc.accountRepo.ExistsByName(ctx, name.String())
	if err != nil {
		return nil, err
	}

	if exists {
		return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateAccountName, name)
	}

	account, err := uc.accountRepo.Create(ctx, domain.NewAccount(name, accountType))
	if err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.AccountsCreated.Inc()
	}

	return account, nil
}

// GetAccount retrieves an account by ID.
func (uc *AccountUseCase) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	return uc.accountRepo.GetByID(ctx, id)
}

// ListAccountsInput represents input for listing accounts.
type ListAccountsInput struct {
	Limit  int
	Offset int
}

// ListAccounts lists accounts with pagination.
func (uc *AccountUseCase) ListAccounts(ctx context.Context, input ListAccountsInput) ([]*domain.Account, error) {
	if input.Limit <= 0 {
		input.Limit = DefaultPageSize
	}

	if input.Limit > MaxPageSize {
		input.Limit = MaxPageSize
	}

	if input.Offset < 0 {
		input.Offset = 0
	}

	return uc.accountRepo.List(ctx, input.Limit, input.Offset)
}
