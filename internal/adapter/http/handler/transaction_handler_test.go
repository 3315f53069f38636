package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/sergavdalyan/ledger-service/internal/adapter/http/dto"
	"github.com/sergavdalyan/ledger-service/internal/domain"
	"github.com/sergavdalyan/ledger-service/internal/usecase"
)

type transactionServiceStub struct {
	createFn func(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error)
	getFn    func(ctx context.Context, id string) (*domain.Transaction, error)
	listFn   func(ctx context.Context, input usecase.ListTransactionsByAccountInput) ([]*domain.Transaction, error)
}

func (s *transactionServiceStub) CreateTransaction(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error) {
	return s.createFn(ctx, transaction)
}

func (s *transactionServiceStub) GetTransaction(ctx context.Context, id string) (*domain.Transaction, error) {
	return s.getFn(ctx, id)
}

func (s *transactionServiceStub) ListTransactionsByAccount(ctx context.Context, input usecase.ListTransactionsByAccountInput) ([]*domain.Transaction, error) {
	return s.listFn(ctx, input)
}

func balancedRequest() dto.CreateTransactionRequest {
	return dto.CreateTransactionRequest{
		Description: "Office supplies",
		Entries: []dto.EntryRequest{
			{AccountID: "acc-1", Type: "DEBIT", Amount: decimal.RequireFromString("100")},
			{AccountID: "acc-2", Type: "CREDIT", Amount: decimal.RequireFromString("100")},
		},
	}
}

func TestTransactionHandler_Create_Success(t *testing.T) {
	handler := NewTransactionHandler(&transactionServiceStub{
		createFn: func(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error) {
			created := *transaction
			created.ID = "txn-1"
			return &created, nil
		},
	})

	body, _ := json.Marshal(balancedRequest())
	req := httptest.NewRequest(http.MethodPost, "/transactions", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.TransactionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID != "txn-1" || len(resp.Entries) != 2 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestTransactionHandler_Create_Unbalanced(t *testing.T) {
	handler := NewTransactionHandler(&transactionServiceStub{
		createFn: func(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error) {
			t.Fatal("CreateTransaction should not be called for an unbalanced request")
			return nil, nil
		},
	})

	request := balancedRequest()
	request.Entries[1].Amount = decimal.RequireFromString("99")

	body, _ := json.Marshal(request)
	req := httptest.NewRequest(http.MethodPost, "/transactions", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestTransactionHandler_Create_NegativeAmount(t *testing.T) {
	handler := NewTransactionHandler(&transactionServiceStub{
		createFn: func(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error) {
			t.Fatal("CreateTransaction should not be called for a negative amount")
			return nil, nil
		},
	})

	request := balancedRequest()
	request.Entries[0].Amount = decimal.RequireFromString("-100")
	request.Entries[1].Amount = decimal.RequireFromString("-100")

	body, _ := json.Marshal(request)
	req := httptest.NewRequest(http.MethodPost, "/transactions", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestTransactionHandler_Create_UnknownAccount(t *testing.T) {
	handler := NewTransactionHandler(&transactionServiceStub{
		createFn: func(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error) {
			return nil, domain.ErrAccountNotFound
		},
	})

	body, _ := json.Marshal(balancedRequest())
	req := httptest.NewRequest(http.MethodPost, "/transactions", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestTransactionHandler_Get(t *testing.T) {
	handler := NewTransactionHandler(&transactionServiceStub{
		getFn: func(ctx context.Context, id string) (*domain.Transaction, error) {
			if id != "txn-1" {
				t.Fatalf("expected id txn-1, got %s", id)
			}
			return &domain.Transaction{ID: "txn-1", Description: "Rent"}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/transactions/txn-1", nil)
	req = setChiURLParam(req, "id", "txn-1")
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestTransactionHandler_Get_NotFound(t *testing.T) {
	handler := NewTransactionHandler(&transactionServiceStub{
		getFn: func(ctx context.Context, id string) (*domain.Transaction, error) {
			return nil, domain.ErrTransactionNotFound
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/transactions/txn-9", nil)
	req = setChiURLParam(req, "id", "txn-9")
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestTransactionHandler_ListByAccount(t *testing.T) {
	handler := NewTransactionHandler(&transactionServiceStub{
		listFn: func(ctx context.Context, input usecase.ListTransactionsByAccountInput) ([]*domain.Transaction, error) {
			if input.AccountID != "acc-1" || input.Limit != 10 || input.Offset != 0 {
				t.Fatalf("unexpected input: %+v", input)
			}
			return []*domain.Transaction{{ID: "txn-2"}, {ID: "txn-1"}}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/accounts/acc-1/transactions?limit=10", nil)
	req = setChiURLParam(req, "id", "acc-1")
	rec := httptest.NewRecorder()

	handler.ListByAccount(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.ListTransactionsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Transactions) != 2 || resp.Transactions[0].ID != "txn-2" {
		t.Fatalf("unexpected page: %+v", resp.Transactions)
	}
}

func TestTransactionHandler_ListByAccount_UnknownAccount(t *testing.T) {
	handler := NewTransactionHandler(&transactionServiceStub{
		listFn: func(ctx context.Context, input usecase.ListTransactionsByAccountInput) ([]*domain.Transaction, error) {
			return nil, domain.ErrAccountNotFound
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/accounts/ghost/transactions", nil)
	req = setChiURLParam(req, "id", "ghost")
	rec := httptest.NewRecorder()

	handler.ListByAccount(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
