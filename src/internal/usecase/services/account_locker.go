package services

import (
	"sort"
	"sync"
)

// AccountLocker hands out one mutex per account number. Lock acquires
// several in ascending account-number order, so two transfers running in
// opposite directions cannot deadlock.
type AccountLocker struct {
	locks sync.Map
}

func NewAccountLocker() *AccountLocker {
	return &AccountLocker{}
}

func (l *AccountLocker) Lock(accountNumbers ...string) (unlock func()) {
	ordered := uniqueSorted(accountNumbers)
	held := make([]*sync.Mutex, 0, len(ordered))
	for _, accountNumber := range ordered {
		mu := l.mutexFor(accountNumber)
		mu.Lock()
		held = append(held, mu)
	}

	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].Unlock()
		}
	}
}

func (l *AccountLocker) mutexFor(accountNumber string) *sync.Mutex {
	mu, _ := l.locks.LoadOrStore(accountNumber, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

func uniqueSorted(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
