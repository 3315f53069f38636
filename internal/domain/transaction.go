package domain

import (
	"fmt"
	"strings"
	"time"
)

// MaxDescriptionLength is the maximum length of a transaction description.
const MaxDescriptionLength = 500

// EntryType is the posting direction of a single entry.
type EntryType string

const (
	EntryTypeDebit  EntryType = "DEBIT"
	EntryTypeCredit EntryType = "CREDIT"
)

// ParseEntryType parses an entry type case-insensitively.
func ParseEntryType(s string) (EntryType, error) {
	switch EntryType(strings.ToUpper(strings.TrimSpace(s))) {
	case EntryTypeDebit:
		return EntryTypeDebit, nil
	case EntryTypeCredit:
		return EntryTypeCredit, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidEntryType, s)
	}
}

// Entry is a single posting line against one account. Entries are owned by
// their transaction and never exist independently.
type Entry struct {
	ID        string
	AccountID string
	Type      EntryType
	Amount    Money
	CreatedAt time.Time
}

// NewEntry creates an entry with an unassigned ID. The amount must already
// be validated as a positive Money by the caller.
func NewEntry(accountID string, entryType EntryType, amount Money) *Entry {
	return &Entry{
		AccountID: accountID,
		Type:      entryType,
		Amount:    amount,
		CreatedAt: time.Now().UTC(),
	}
}

// Transaction is a balanced group of two or more entries. The balance
// invariant is enforced at construction, so no unbalanced Transaction
// value can exist anywhere in the system.
type Transaction struct {
	ID          string
	Description string
	Date        time.Time
	Entries     []*Entry
	CreatedAt   time.Time
}

// NewTransaction validates raw entry data into a Transaction.
// It fails with ErrInsufficientEntries for fewer than two entries,
// ErrInvalidDescription for a blank or oversized description, and
// ErrUnbalancedTransaction when total debits do not equal total credits.
func NewTransaction(description string, date time.Time, entries []*Entry) (*Transaction, error) {
	if len(entries) < 2 {
		return nil, fmt.Errorf("%w: a transaction requires at least two entries", ErrInsufficientEntries)
	}

	if strings.TrimSpace(description) == "" {
		return nil, fmt.Errorf("%w: description must not be blank", ErrInvalidDescription)
	}

	if len(description) > MaxDescriptionLength {
		return nil, fmt.Errorf("%w: description must not exceed %d characters", ErrInvalidDescription, MaxDescriptionLength)
	}

	totalDebits := ZeroMoney
	totalCredits := ZeroMoney

	for _, e := range entries {
		switch e.Type {
		case EntryTypeDebit:
			totalDebits = totalDebits.Add(e.Amount)
		case EntryTypeCredit:
			totalCredits = totalCredits.Add(e.Amount)
		}
	}

	if !totalDebits.Equal(totalCredits) {
		return nil, fmt.Errorf("%w: debits %s != credits %s", ErrUnbalancedTransaction, totalDebits, totalCredits)
	}

	copied := make([]*Entry, len(entries))
	copy(copied, entries)

	return &Transaction{
		Description: description,
		Date:        date,
		Entries:     copied,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

// TotalDebits sums the amounts of all debit entries.
func (t *Transaction) TotalDebits() Money {
	total := ZeroMoney
	for _, e := range t.Entries {
		if e.Type == EntryTypeDebit {
			total = total.Add(e.Amount)
		}
	}

	return total
}

// TotalCredits sums the amounts of all credit entries.
func (t *Transaction) TotalCredits() Money {
	total := ZeroMoney
	for _, e := range t.Entries {
		if e.Type == EntryTypeCredit {
			total = total.Add(e.Amount)
		}
	}

	return total
}

// AccountIDs returns the distinct set of account IDs referenced by the
// transaction's entries, in first-seen order.
func (t *Transaction) AccountIDs() []string {
	seen := make(map[string]bool)

	var ids []string
	for _, e := range t.Entries {
		if !seen[e.AccountID] {
			seen[e.AccountID] = true
			ids = append(ids, e.AccountID)
		}
	}

	return ids
}
