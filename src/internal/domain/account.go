package domain

import "github.com/shopspring/decimal"

// Account holds an immutable account number and a balance that never
// drops below zero. It is not safe for concurrent use; callers sharing an
// Account across goroutines must serialize access themselves.
type Account struct {
	accountNumber string
	balance       decimal.Decimal
}

type AccountOption func(*Account)

// WithInitialBalance opens the account with balance instead of zero.
func WithInitialBalance(balance decimal.Decimal) AccountOption {
	return func(a *Account) {
		a.balance = balance
	}
}

// NewAccount stores accountNumber verbatim. Uniqueness is the caller's
// concern.
func NewAccount(accountNumber string, opts ...AccountOption) (*Account, error) {
	a := &Account{
		accountNumber: accountNumber,
		balance:       decimal.Zero,
	}
	for _, opt := range opts {
		opt(a)
	}

	if a.balance.IsNegative() {
		return nil, ErrNegativeInitialBalance
	}

	return a, nil
}

func (a *Account) AccountNumber() string {
	return a.accountNumber
}

func (a *Account) Balance() decimal.Decimal {
	return a.balance
}

func (a *Account) Deposit(amount decimal.Decimal) error {
	if err := a.checkDeposit(amount); err != nil {
		return err
	}

	a.balance = a.balance.Add(amount)
	return nil
}

// Withdraw accepts any amount in (0, balance]; withdrawing the full
// balance leaves exactly zero.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if err := a.checkWithdraw(amount); err != nil {
		return err
	}

	a.balance = a.balance.Sub(amount)
	return nil
}

// TransferTo moves amount from a to target. Both legs are validated before
// either balance is written, so a failure leaves both accounts untouched.
func (a *Account) TransferTo(target *Account, amount decimal.Decimal) error {
	if target == nil {
		return ErrNilTargetAccount
	}
	if target == a {
		return ErrSameAccount
	}
	if err := a.checkWithdraw(amount); err != nil {
		return ErrInvalidTransfer
	}
	if err := target.checkDeposit(amount); err != nil {
		return ErrInvalidTransfer
	}

	a.balance = a.balance.Sub(amount)
	target.balance = target.balance.Add(amount)
	return nil
}

func (a *Account) checkDeposit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrNonPositiveAmount
	}
	return nil
}

func (a *Account) checkWithdraw(amount decimal.Decimal) error {
	if !amount.IsPositive() || amount.GreaterThan(a.balance) {
		return ErrInvalidWithdrawal
	}
	return nil
}
