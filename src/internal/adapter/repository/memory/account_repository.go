package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/api-sage/bank-account/src/internal/commons"
	"github.com/api-sage/bank-account/src/internal/domain"
	"github.com/api-sage/bank-account/src/internal/logger"
)

// AccountRepository keeps accounts in process memory, keyed by account
// number. It guards the index only; the accounts it hands out are shared
// pointers and must be serialized by the caller.
type AccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{accounts: make(map[string]*domain.Account)}
}

func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if account == nil {
		return fmt.Errorf("create account: %w", domain.ErrInvalidArgument)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	accountNumber := account.AccountNumber()
	if _, exists := r.accounts[accountNumber]; exists {
		logger.Info("account repository create duplicate", logger.Fields{
			"accountNumber": accountNumber,
		})
		return fmt.Errorf("create account %s: %w", accountNumber, commons.ErrRecordAlreadyExists)
	}

	r.accounts[accountNumber] = account
	return nil
}

func (r *AccountRepository) GetByAccountNumber(ctx context.Context, accountNumber string) (*domain.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[accountNumber]
	if !ok {
		return nil, fmt.Errorf("get account %s: %w", accountNumber, commons.ErrRecordNotFound)
	}
	return account, nil
}

// List returns accounts ordered by account number.
func (r *AccountRepository) List(ctx context.Context) ([]*domain.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	out := make([]*domain.Account, 0, len(r.accounts))
	for _, account := range r.accounts {
		out = append(out, account)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].AccountNumber() < out[j].AccountNumber()
	})
	return out, nil
}
