package domain

import (
	"fmt"
	"strings"
	"time"
)

// MaxAccountNameLength is the maximum length of an account name after trimming.
const MaxAccountNameLength = 255

// AccountName is a validated, whitespace-trimmed account label.
type AccountName struct {
	value string
}

// NewAccountName validates and normalizes a raw account name.
func NewAccountName(raw string) (AccountName, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return AccountName{}, fmt.Errorf("%w: name must not be blank", ErrInvalidName)
	}

	if len(trimmed) > MaxAccountNameLength {
		return AccountName{}, fmt.Errorf("%w: name must not exceed %d characters", ErrInvalidName, MaxAccountNameLength)
	}

	return AccountName{value: trimmed}, nil
}

func (n AccountName) String() string {
	return n.value
}

// AccountType classifies an account and determines which posting direction
// increases its balance.
type AccountType string

const (
	AccountTypeAsset     AccountType = "ASSET"
	AccountTypeLiability AccountType = "LIABILITY"
	AccountTypeRevenue   AccountType = "REVENUE"
	AccountTypeExpense   AccountType = "EXPENSE"
)

// ParseAccountType parses an account type case-insensitively.
func ParseAccountType(s string) (AccountType, error) {
	switch AccountType(strings.ToUpper(strings.TrimSpace(s))) {
	case AccountTypeAsset:
		return AccountTypeAsset, nil
	case AccountTypeLiability:
		return AccountTypeLiability, nil
	case AccountTypeRevenue:
		return AccountTypeRevenue, nil
	case AccountTypeExpense:
		return AccountTypeExpense, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidAccountType, s)
	}
}

// IsDebitNormal reports whether debit postings increase this account's
// balance. ASSET and EXPENSE are debit-normal; LIABILITY and REVENUE are
// credit-normal.
func (t AccountType) IsDebitNormal() bool {
	return t == AccountTypeAsset || t == AccountTypeExpense
}

// Account is a named, typed ledger account. Accounts are created once and
// never mutated; the ID is assigned by the persistence layer on first save.
type Account struct {
	ID        string
	Name      AccountName
	Type      AccountType
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewAccount creates an account with creation and update timestamps equal.
func NewAccount(name AccountName, accountType AccountType) *Account {
	now := time.Now().UTC()

	return &Account{
		Name:      name,
		Type:      accountType,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
