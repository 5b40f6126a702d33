package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/api-sage/retail-banking-simulator/internal/domain"
)

// AccountRepository is the in-memory account registry. The menu runs
// single-threaded today, but the map and the sequence counter are
// exactly the shared state that would race under concurrent callers, so
// a single mutex serializes every access.
type AccountRepository struct {
	mu       sync.Mutex
	accounts map[string]*domain.Account
	nextSeq  int
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		accounts: make(map[string]*domain.Account),
		nextSeq:  1000,
	}
}

// NextAccountNumber issues "ACC"-prefixed numbers, monotonic for the
// lifetime of the registry. The first number issued is ACC1001.
func (r *AccountRepository) NextAccountNumber(_ context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextSeq++
	return fmt.Sprintf("ACC%d", r.nextSeq), nil
}

func (r *AccountRepository) Create(_ context.Context, account *domain.Account) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if account == nil || account.Number == "" {
		return nil, fmt.Errorf("account number is required")
	}
	if _, exists := r.accounts[account.Number]; exists {
		return nil, fmt.Errorf("account number %s is already registered", account.Number)
	}

	r.accounts[account.Number] = account
	return account, nil
}

func (r *AccountRepository) GetByAccountNumber(_ context.Context, accountNumber string) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[accountNumber]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	return account, nil
}

// ListAll returns every registered account, active or not, ordered by
// account number.
func (r *AccountRepository) ListAll(_ context.Context) ([]*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*domain.Account, 0, len(r.accounts))
	for _, account := range r.accounts {
		out = append(out, account)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out, nil
}
