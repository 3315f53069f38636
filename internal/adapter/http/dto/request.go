package dto

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sergavdalyan/ledger-service/internal/domain"
	"github.com/sergavdalyan/ledger-service/internal/usecase"
)

// CreateAccountRequest represents a request to create an account.
type CreateAccountRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateAccountRequest) ToUseCaseInput() usecase.CreateAccountInput {
	return usecase.CreateAccountInput{
		Name: r.Name,
		Type: r.Type,
	}
}

// EntryRequest represents a single posting line in a transaction request.
type EntryRequest struct {
	AccountID string          `json:"account_id"`
	Type      string          `json:"type"`
	Amount    decimal.Decimal `json:"amount"`
}

// CreateTransactionRequest represents a request to post a transaction.
type CreateTransactionRequest struct {
	Description string         `json:"description"`
	Date        *time.Time     `json:"date,omitempty"`
	Entries     []EntryRequest `json:"entries"`
}

// ToDomain validates the request into a domain transaction. Entry amounts
// must be strictly positive; zero is rejected here because a zero posting
// line carries no meaning even though zero is a representable amount.
func (r *CreateTransactionRequest) ToDomain() (*domain.Transaction, error) {
	entries := make([]*domain.Entry, 0, len(r.Entries))

	for _, e := range r.Entries {
		if !e.Amount.IsPositive() {
			return nil, fmt.Errorf("%w: entry amount must be positive, got %s", domain.ErrInvalidAmount, e.Amount)
		}

		amount, err := domain.NewMoney(e.Amount)
		if err != nil {
			return nil, err
		}

		entryType, err := domain.ParseEntryType(e.Type)
		if err != nil {
			return nil, err
		}

		entries = append(entries, domain.NewEntry(e.AccountID, entryType, amount))
	}

	date := time.Now().UTC()
	if r.Date != nil {
		date = r.Date.UTC()
	}

	return domain.NewTransaction(r.Description, date, entries)
}
