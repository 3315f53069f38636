package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sergavdalyan/ledger-service/internal/domain"
)

// AccountResponse represents an account in API responses. The balance is
// derived from the account's entries at response time.
type AccountResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Type      string          `json:"type"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// AccountFromDomain converts a domain account and its computed balance to a
// response.
func AccountFromDomain(a *domain.Account, balance decimal.Decimal) *AccountResponse {
	return &AccountResponse{
		ID:        a.ID,
		Name:      a.Name.String(),
		Type:      string(a.Type),
		Balance:   balance,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// ListAccountsResponse wraps a page of accounts.
type ListAccountsResponse struct {
	Accounts []*AccountResponse `json:"accounts"`
	Total    int64              `json:"total"`
}

// EntryResponse represents an entry in API responses.
type EntryResponse struct {
	ID        string          `json:"id"`
	AccountID string          `json:"account_id"`
	Type      string          `json:"type"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
}

// EntryFromDomain converts a domain entry to a response.
func EntryFromDomain(e *domain.Entry) *EntryResponse {
	return &EntryResponse{
		ID:        e.ID,
		AccountID: e.AccountID,
		Type:      string(e.Type),
		Amount:    e.Amount.Decimal(),
		CreatedAt: e.CreatedAt,
	}
}

// TransactionResponse represents a transaction in API responses.
type TransactionResponse struct {
	ID          string           `json:"id"`
	Description string           `json:"description"`
	Date        time.Time        `json:"date"`
	Entries     []*EntryResponse `json:"entries"`
	CreatedAt   time.Time        `json:"created_at"`
}

// TransactionFromDomain converts a domain transaction to a response.
func TransactionFromDomain(t *domain.Transaction) *TransactionResponse {
	entries := make([]*EntryResponse, len(t.Entries))
	for i, e := range t.Entries {
		entries[i] = EntryFromDomain(e)
	}

	return &TransactionResponse{
		ID:          t.ID,
		Description: t.Description,
		Date:        t.Date,
		Entries:     entries,
		CreatedAt:   t.CreatedAt,
	}
}

// TransactionsFromDomain converts domain transactions to responses.
func TransactionsFromDomain(transactions []*domain.Transaction) []*TransactionResponse {
	result := make([]*TransactionResponse, len(transactions))
	for i, t := range transactions {
		result[i] = TransactionFromDomain(t)
	}

	return result
}

// ListTransactionsResponse wraps a page of transactions.
type ListTransactionsResponse struct {
	Transactions []*TransactionResponse `json:"transactions"`
	Total        int64                  `json:"total"`
}

// BalanceResponse represents an account balance in API responses.
type BalanceResponse struct {
	AccountID string          `json:"account_id"`
	Balance   decimal.Decimal `json:"balance"`
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
