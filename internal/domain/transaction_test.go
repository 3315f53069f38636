package domain

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func mustMoney(t *testing.T, value string) Money {
	t.Helper()

	m, err := NewMoneyFromString(value)
	if err != nil {
		t.Fatalf("invalid money %q: %v", value, err)
	}

	return m
}

func TestParseEntryType(t *testing.T) {
	tests := []struct {
		input       string
		want        EntryType
		expectError bool
	}{
		{input: "DEBIT", want: EntryTypeDebit},
		{input: "credit", want: EntryTypeCredit},
		{input: " Debit ", want: EntryTypeDebit},
		{input: "transfer", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseEntryType(tt.input)

			if tt.expectError {
				if !errors.Is(err, ErrInvalidEntryType) {
					t.Fatalf("expected ErrInvalidEntryType, got %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestNewTransaction(t *testing.T) {
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		description string
		entries     []*Entry
		wantErr     error
	}{
		{
			name:        "balanced two-entry transaction",
			description: "Office rent",
			entries: []*Entry{
				NewEntry("acc-1", EntryTypeDebit, mustMoney(t, "100.00")),
				NewEntry("acc-2", EntryTypeCredit, mustMoney(t, "100.00")),
			},
		},
		{
			name:        "balanced split transaction",
			description: "Invoice with tax",
			entries: []*Entry{
				NewEntry("acc-1", EntryTypeDebit, mustMoney(t, "80.00")),
				NewEntry("acc-2", EntryTypeDebit, mustMoney(t, "20.00")),
				NewEntry("acc-3", EntryTypeCredit, mustMoney(t, "100.00")),
			},
		},
		{
			name:        "balance compared numerically not by representation",
			description: "Rounding",
			entries: []*Entry{
				NewEntry("acc-1", EntryTypeDebit, mustMoney(t, "100")),
				NewEntry("acc-2", EntryTypeCredit, mustMoney(t, "100.0000")),
			},
		},
		{
			name:        "unbalanced",
			description: "Broken",
			entries: []*Entry{
				NewEntry("acc-1", EntryTypeDebit, mustMoney(t, "100.00")),
				NewEntry("acc-2", EntryTypeCredit, mustMoney(t, "50.00")),
			},
			wantErr: ErrUnbalancedTransaction,
		},
		{
			name:        "single entry",
			description: "Lonely",
			entries: []*Entry{
				NewEntry("acc-1", EntryTypeDebit, mustMoney(t, "100.00")),
			},
			wantErr: ErrInsufficientEntries,
		},
		{
			name:        "nil entries",
			description: "Empty",
			entries:     nil,
			wantErr:     ErrInsufficientEntries,
		},
		{
			name:        "blank description",
			description: "   ",
			entries: []*Entry{
				NewEntry("acc-1", EntryTypeDebit, mustMoney(t, "100.00")),
				NewEntry("acc-2", EntryTypeCredit, mustMoney(t, "100.00")),
			},
			wantErr: ErrInvalidDescription,
		},
		{
			name:        "description too long",
			description: strings.Repeat("x", 501),
			entries: []*Entry{
				NewEntry("acc-1", EntryTypeDebit, mustMoney(t, "100.00")),
				NewEntry("acc-2", EntryTypeCredit, mustMoney(t, "100.00")),
			},
			wantErr: ErrInvalidDescription,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn, err := NewTransaction(tt.description, date, tt.entries)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if txn.ID != "" {
				t.Errorf("expected unassigned ID, got %q", txn.ID)
			}

			if !txn.TotalDebits().Equal(txn.TotalCredits()) {
				t.Errorf("expected balanced totals, got debits=%s credits=%s", txn.TotalDebits(), txn.TotalCredits())
			}

			if len(txn.Entries) != len(tt.entries) {
				t.Errorf("expected %d entries, got %d", len(tt.entries), len(txn.Entries))
			}
		})
	}
}

func TestTransaction_EntriesCopiedAtConstruction(t *testing.T) {
	entries := []*Entry{
		NewEntry("acc-1", EntryTypeDebit, mustMoney(t, "10.00")),
		NewEntry("acc-2", EntryTypeCredit, mustMoney(t, "10.00")),
	}

	txn, err := NewTransaction("Copy check", time.Now(), entries)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries[0] = NewEntry("acc-3", EntryTypeDebit, mustMoney(t, "99.00"))

	if txn.Entries[0].AccountID != "acc-1" {
		t.Error("expected transaction to hold its own copy of the entry slice")
	}
}

func TestTransaction_AccountIDs(t *testing.T) {
	txn, err := NewTransaction("Distinct accounts", time.Now(), []*Entry{
		NewEntry("acc-1", EntryTypeDebit, mustMoney(t, "30.00")),
		NewEntry("acc-1", EntryTypeDebit, mustMoney(t, "20.00")),
		NewEntry("acc-2", EntryTypeCredit, mustMoney(t, "50.00")),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ids := txn.AccountIDs()
	if len(ids) != 2 {
		t.Fatalf("expected 2 distinct account IDs, got %d", len(ids))
	}

	if ids[0] != "acc-1" || ids[1] != "acc-2" {
		t.Errorf("unexpected IDs: %v", ids)
	}
}
