package domain

import "errors"

var (
	// Validation errors
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrInvalidName        = errors.New("invalid account name")
	ErrInvalidDescription = errors.New("invalid description")
	ErrInvalidAccountType = errors.New("invalid account type")
	ErrInvalidEntryType   = errors.New("invalid entry type")

	// Transaction errors
	ErrInsufficientEntries   = errors.New("insufficient entries")
	ErrUnbalancedTransaction = errors.New("transaction is not balanced")

	// Lookup errors
	ErrAccountNotFound     = errors.New("account not found")
	ErrTransactionNotFound = errors.New("transaction not found")

	// Uniqueness errors
	ErrDuplicateAccountName = errors.New("account name already exists")
)
