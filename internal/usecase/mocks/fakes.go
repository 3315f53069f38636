package mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sergavdalyan/ledger-service/internal/domain"
	"github.com/sergavdalyan/ledger-service/internal/usecase"
)

// FakeAccountRepository is an in-memory fake of AccountRepository.
type FakeAccountRepository struct {
	mu       sync.RWMutex
	seq      int
	accounts map[string]*domain.Account

	CreateFunc       func(ctx context.Context, account *domain.Account) (*domain.Account, error)
	ExistsByNameFunc func(ctx context.Context, name string) (bool, error)
	GetByIDFunc      func(ctx context.Context, id string) (*domain.Account, error)
	GetByIDsFunc     func(ctx context.Context, ids []string) ([]*domain.Account, error)
	ListFunc         func(ctx context.Context, limit, offset int) ([]*domain.Account, error)
}

func NewFakeAccountRepository() *FakeAccountRepository {
	return &FakeAccountRepository{
		accounts: make(map[string]*domain.Account),
	}
}

func (m *FakeAccountRepository) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, account)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.accounts {
		if existing.Name.String() == account.Name.String() {
			return nil, domain.ErrDuplicateAccountName
		}
	}
	m.seq++
	saved := *account
	saved.ID = fakeID("acc", m.seq)
	m.accounts[saved.ID] = &saved
	return &saved, nil
}

func (m *FakeAccountRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	if m.ExistsByNameFunc != nil {
		return m.ExistsByNameFunc(ctx, name)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, a := range m.accounts {
		if a.Name.String() == name {
			return true, nil
		}
	}
	return false, nil
}

func (m *FakeAccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if a, ok := m.accounts[id]; ok {
		return a, nil
	}
	return nil, domain.ErrAccountNotFound
}

func (m *FakeAccountRepository) GetByIDs(ctx context.Context, ids []string) ([]*domain.Account, error) {
	if m.GetByIDsFunc != nil {
		return m.GetByIDsFunc(ctx, ids)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var accounts []*domain.Account
	for _, id := range ids {
		if a, ok := m.accounts[id]; ok {
			accounts = append(accounts, a)
		}
	}
	return accounts, nil
}

func (m *FakeAccountRepository) List(ctx context.Context, limit, offset int) ([]*domain.Account, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	accounts := make([]*domain.Account, 0, len(m.accounts))
	for _, a := range m.accounts {
		accounts = append(accounts, a)
	}
	return accounts, nil
}

// FakeTransactionRepository is an in-memory fake of TransactionRepository.
type FakeTransactionRepository struct {
	mu           sync.RWMutex
	seq          int
	transactions map[string]*domain.Transaction

	CreateFunc              func(ctx context.Context, tx usecase.Tx, transaction *domain.Transaction) (*domain.Transaction, error)
	GetByIDFunc             func(ctx context.Context, id string) (*domain.Transaction, error)
	ListIDsByAccountFunc    func(ctx context.Context, accountID string, limit, offset int) ([]string, error)
	GetWithEntriesByIDsFunc func(ctx context.Context, ids []string) ([]*domain.Transaction, error)
}

func NewFakeTransactionRepository() *FakeTransactionRepository {
	return &FakeTransactionRepository{
		transactions: make(map[string]*domain.Transaction),
	}
}

func (m *FakeTransactionRepository) Create(ctx context.Context, tx usecase.Tx, transaction *domain.Transaction) (*domain.Transaction, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, transaction)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	saved := *transaction
	saved.ID = fakeID("txn", m.seq)
	entries := make([]*domain.Entry, len(transaction.Entries))
	for i, e := range transaction.Entries {
		entry := *e
		entry.ID = fakeID("ent", m.seq*100+i)
		entries[i] = &entry
	}
	saved.Entries = entries
	m.transactions[saved.ID] = &saved
	return &saved, nil
}

func (m *FakeTransactionRepository) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if t, ok := m.transactions[id]; ok {
		return t, nil
	}
	return nil, domain.ErrTransactionNotFound
}

func (m *FakeTransactionRepository) ListIDsByAccount(ctx context.Context, accountID string, limit, offset int) ([]string, error) {
	if m.ListIDsByAccountFunc != nil {
		return m.ListIDsByAccountFunc(ctx, accountID, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var ids []string
	for id, t := range m.transactions {
		for _, e := range t.Entries {
			if e.AccountID == accountID {
				ids = append(ids, id)
				break
			}
		}
	}
	return ids, nil
}

func (m *FakeTransactionRepository) GetWithEntriesByIDs(ctx context.Context, ids []string) ([]*domain.Transaction, error) {
	if m.GetWithEntriesByIDsFunc != nil {
		return m.GetWithEntriesByIDsFunc(ctx, ids)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var transactions []*domain.Transaction
	for _, id := range ids {
		if t, ok := m.transactions[id]; ok {
			transactions = append(transactions, t)
		}
	}
	return transactions, nil
}

// FakeEntryRepository is an in-memory fake of EntryRepository.
type FakeEntryRepository struct {
	SumByAccountAndTypeFunc func(ctx context.Context, accountID string, entryType domain.EntryType) (decimal.Decimal, error)
}

func NewFakeEntryRepository() *FakeEntryRepository {
	return &FakeEntryRepository{}
}

func (m *FakeEntryRepository) SumByAccountAndType(ctx context.Context, accountID string, entryType domain.EntryType) (decimal.Decimal, error) {
	if m.SumByAccountAndTypeFunc != nil {
		return m.SumByAccountAndTypeFunc(ctx, accountID, entryType)
	}
	return decimal.Zero, nil
}

// FakeTx is a fake database transaction.
type FakeTx struct {
	Committed  bool
	RolledBack bool

	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error
}

func (t *FakeTx) Commit(ctx context.Context) error {
	if t.CommitFunc != nil {
		return t.CommitFunc(ctx)
	}
	t.Committed = true
	return nil
}

func (t *FakeTx) Rollback(ctx context.Context) error {
	if t.RollbackFunc != nil {
		return t.RollbackFunc(ctx)
	}
	if !t.Committed {
		t.RolledBack = true
	}
	return nil
}

// FakeTxManager is a fake TxManager handing out FakeTx instances.
type FakeTxManager struct {
	mu  sync.Mutex
	Txs []*FakeTx

	BeginFunc func(ctx context.Context) (usecase.Tx, error)
}

func NewFakeTxManager() *FakeTxManager {
	return &FakeTxManager{}
}

func (m *FakeTxManager) Begin(ctx context.Context) (usecase.Tx, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	tx := &FakeTx{}
	m.Txs = append(m.Txs, tx)
	return tx, nil
}

// FakeRetrier is a pass-through Retrier.
type FakeRetrier struct {
	RetryFunc func(ctx context.Context, operation func() error) error
}

func NewFakeRetrier() *FakeRetrier {
	return &FakeRetrier{}
}

func (m *FakeRetrier) Retry(ctx context.Context, operation func() error) error {
	if m.RetryFunc != nil {
		return m.RetryFunc(ctx, operation)
	}
	return operation()
}

// FakeIdempotencyStore is an in-memory IdempotencyStore.
type FakeIdempotencyStore struct {
	mu     sync.Mutex
	values map[string][]byte

	CheckAndSetFunc func(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	UpdateFunc      func(ctx context.Context, key string, response []byte, ttl time.Duration) error
}

func NewFakeIdempotencyStore() *FakeIdempotencyStore {
	return &FakeIdempotencyStore{
		values: make(map[string][]byte),
	}
}

func (m *FakeIdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	if m.CheckAndSetFunc != nil {
		return m.CheckAndSetFunc(ctx, key, response, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.values[key]; ok {
		return true, existing, nil
	}
	if response != nil {
		m.values[key] = response
	}
	return false, nil, nil
}

func (m *FakeIdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, key, response, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = response
	return nil
}

func fakeID(prefix string, n int) string {
	return fmt.Sprintf("%s-%d", prefix, n)
}
