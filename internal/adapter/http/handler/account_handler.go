package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/sergavdalyan/ledger-service/internal/adapter/http/dto"
	"github.com/sergavdalyan/ledger-service/internal/domain"
	"github.com/sergavdalyan/ledger-service/internal/usecase"
)

// AccountService defines the behavior needed by AccountHandler.
type AccountService interface {
	CreateAccount(ctx context.Context, input usecase.CreateAccountInput) (*domain.Account, error)
	GetAccount(ctx context.Context, id string) (*domain.Account, error)
	ListAccounts(ctx context.Context, input usecase.ListAccountsInput) ([]*domain.Account, error)
}

// BalanceService defines the balance derivation needed by AccountHandler.
type BalanceService interface {
	CalculateBalance(ctx context.Context, accountID string, accountType domain.AccountType) (decimal.Decimal, error)
}

// AccountHandler handles account-related HTTP requests.
type AccountHandler struct {
	accountUC AccountService
	balances  BalanceService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountUC AccountService, balances BalanceService) *AccountHandler {
	return &AccountHandler{
		accountUC: accountUC,
		balances:  balances,
	}
}

// Create creates a new account.
func (h *AccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	account, err := h.accountUC.CreateAccount(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create account", err.Error())
		return
	}

	// A fresh account has no entries, so its balance is zero.
	writeJSON(w, http.StatusCreated, dto.AccountFromDomain(account, domain.ZeroMoney.Decimal()))
}

// Get retrieves an account by ID, with its current balance.
func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	account, err := h.accountUC.GetAccount(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get account", err.Error())
		return
	}

	balance, err := h.balances.CalculateBalance(r.Context(), account.ID, account.Type)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to calculate balance", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.AccountFromDomain(account, balance))
}

// GetBalance returns just the current balance of an account.
func (h *AccountHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	account, err := h.accountUC.GetAccount(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get account", err.Error())
		return
	}

	balance, err := h.balances.CalculateBalance(r.Context(), account.ID, account.Type)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to calculate balance", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.BalanceResponse{
		AccountID: account.ID,
		Balance:   balance,
	})
}

// List lists accounts with their current balances.
func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", usecase.DefaultPageSize)
	offset := parseIntQuery(r, "offset", 0)

	accounts, err := h.accountUC.ListAccounts(r.Context(), usecase.ListAccountsInput{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list accounts", err.Error())
		return
	}

	responses := make([]*dto.AccountResponse, len(accounts))
	for i, a := range accounts {
		balance, err := h.balances.CalculateBalance(r.Context(), a.ID, a.Type)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to calculate balance", err.Error())
			return
		}

		responses[i] = dto.AccountFromDomain(a, balance)
	}

	writeJSON(w, http.StatusOK, dto.ListAccountsResponse{
		Accounts: responses,
		Total:    int64(len(responses)),
	})
}
