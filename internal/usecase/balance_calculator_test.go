package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/sergavdalyan/ledger-service/internal/domain"
	"github.com/sergavdalyan/ledger-service/internal/usecase"
	"github.com/sergavdalyan/ledger-service/internal/usecase/mocks"
)

func TestBalanceCalculator_CalculateBalance(t *testing.T) {
	tests := []struct {
		name        string
		accountType domain.AccountType
		debits      string
		credits     string
		want        string
	}{
		{
			name:        "asset is debit normal",
			accountType: domain.AccountTypeAsset,
			debits:      "150.00",
			credits:     "50.00",
			want:        "100.0000",
		},
		{
			name:        "expense is debit normal",
			accountType: domain.AccountTypeExpense,
			debits:      "75.25",
			credits:     "0",
			want:        "75.2500",
		},
		{
			name:        "revenue is credit normal",
			accountType: domain.AccountTypeRevenue,
			debits:      "0",
			credits:     "100.00",
			want:        "100.0000",
		},
		{
			name:        "liability is credit normal",
			accountType: domain.AccountTypeLiability,
			debits:      "30.00",
			credits:     "130.00",
			want:        "100.0000",
		},
		{
			name:        "balance can be negative",
			accountType: domain.AccountTypeAsset,
			debits:      "50.00",
			credits:     "150.00",
			want:        "-100.0000",
		},
		{
			name:        "no entries means zero at ledger scale",
			accountType: domain.AccountTypeAsset,
			debits:      "0",
			credits:     "0",
			want:        "0.0000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			entryRepo := mocks.NewMockEntryRepository(ctrl)
			entryRepo.EXPECT().
				SumByAccountAndType(gomock.Any(), "acc-1", domain.EntryTypeDebit).
				Return(decimal.RequireFromString(tt.debits), nil)
			entryRepo.EXPECT().
				SumByAccountAndType(gomock.Any(), "acc-1", domain.EntryTypeCredit).
				Return(decimal.RequireFromString(tt.credits), nil)

			calc := usecase.NewBalanceCalculator(entryRepo, nil)

			balance, err := calc.CalculateBalance(context.Background(), "acc-1", tt.accountType)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if balance.StringFixed(domain.MoneyScale) != tt.want {
				t.Errorf("expected %s, got %s", tt.want, balance.StringFixed(domain.MoneyScale))
			}
		})
	}
}

func TestBalanceCalculator_NormalizesScale(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// The store may return scale-less sums; results must still carry the
	// ledger scale.
	entryRepo := mocks.NewMockEntryRepository(ctrl)
	entryRepo.EXPECT().
		SumByAccountAndType(gomock.Any(), "acc-1", domain.EntryTypeDebit).
		Return(decimal.New(100, 0), nil)
	entryRepo.EXPECT().
		SumByAccountAndType(gomock.Any(), "acc-1", domain.EntryTypeCredit).
		Return(decimal.Zero, nil)

	calc := usecase.NewBalanceCalculator(entryRepo, nil)

	balance, err := calc.CalculateBalance(context.Background(), "acc-1", domain.AccountTypeAsset)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if balance.Exponent() != -domain.MoneyScale {
		t.Errorf("expected exponent %d, got %d", -domain.MoneyScale, balance.Exponent())
	}

	if balance.StringFixed(domain.MoneyScale) != "100.0000" {
		t.Errorf("expected 100.0000, got %s", balance)
	}
}

func TestBalanceCalculator_PropagatesStoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entryRepo := mocks.NewMockEntryRepository(ctrl)
	entryRepo.EXPECT().
		SumByAccountAndType(gomock.Any(), "acc-1", domain.EntryTypeDebit).
		Return(decimal.Zero, context.DeadlineExceeded)

	calc := usecase.NewBalanceCalculator(entryRepo, nil)

	if _, err := calc.CalculateBalance(context.Background(), "acc-1", domain.AccountTypeAsset); err == nil {
		t.Fatal("expected store error to propagate")
	}
}
