package domain_test

import (
	"errors"
	"testing"

	"github.com/api-sage/bank-account/src/internal/domain"
	"github.com/shopspring/decimal"
)

func mustAccount(t *testing.T, number string, balance string) *domain.Account {
	t.Helper()
	account, err := domain.NewAccount(number, domain.WithInitialBalance(decimal.RequireFromString(balance)))
	if err != nil {
		t.Fatalf("NewAccount(%q, %s) err=%v", number, balance, err)
	}
	return account
}

func assertBalance(t *testing.T, account *domain.Account, want string) {
	t.Helper()
	if !account.Balance().Equal(decimal.RequireFromString(want)) {
		t.Fatalf("account %s balance=%s want %s", account.AccountNumber(), account.Balance(), want)
	}
}

func TestNewAccountDefaultsToZeroBalance(t *testing.T) {
	account, err := domain.NewAccount("01012132")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if account.AccountNumber() != "01012132" {
		t.Fatalf("account number=%q", account.AccountNumber())
	}
	if !account.Balance().IsZero() {
		t.Fatalf("balance=%s want 0", account.Balance())
	}
}

func TestNewAccountGetters(t *testing.T) {
	account := mustAccount(t, "142536", "1235.85")
	if account.AccountNumber() != "142536" {
		t.Fatalf("account number=%q want 142536", account.AccountNumber())
	}
	assertBalance(t, account, "1235.85")
}

func TestNewAccountRejectsNegativeInitialBalance(t *testing.T) {
	account, err := domain.NewAccount("123456", domain.WithInitialBalance(decimal.RequireFromString("-100.50")))
	if !errors.Is(err, domain.ErrInvalidArgument) {
		t.Fatalf("want ErrInvalidArgument, got %v", err)
	}
	if !errors.Is(err, domain.ErrNegativeInitialBalance) {
		t.Fatalf("want ErrNegativeInitialBalance, got %v", err)
	}
	if account != nil {
		t.Fatal("expected nil account on failure")
	}
}

func TestDeposit(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   string
	}{
		{name: "whole", amount: "24500", want: "44500"},
		{name: "decimals", amount: "12456.59", want: "32456.59"},
		{name: "smallest unit", amount: "0.01", want: "20000.01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account := mustAccount(t, "01012132", "20000")
			if err := account.Deposit(decimal.RequireFromString(tt.amount)); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			assertBalance(t, account, tt.want)
		})
	}
}

func TestDepositRejectsNonPositiveAmount(t *testing.T) {
	for _, amount := range []string{"0", "-4523.23"} {
		account := mustAccount(t, "01012132", "20000")
		before := account.Balance()

		err := account.Deposit(decimal.RequireFromString(amount))
		if !errors.Is(err, domain.ErrInvalidArgument) {
			t.Fatalf("deposit %s: want ErrInvalidArgument, got %v", amount, err)
		}
		if account.Balance() != before {
			t.Fatalf("deposit %s: balance changed to %s", amount, account.Balance())
		}
	}
}

func TestWithdraw(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   string
	}{
		{name: "whole", amount: "100", want: "19900"},
		{name: "decimals", amount: "4523.63", want: "15476.37"},
		{name: "full balance", amount: "20000", want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account := mustAccount(t, "01012132", "20000")
			if err := account.Withdraw(decimal.RequireFromString(tt.amount)); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			assertBalance(t, account, tt.want)
		})
	}
}

func TestWithdrawRejectsInvalidAmount(t *testing.T) {
	for _, amount := range []string{"20541.75", "-456.96", "0"} {
		account := mustAccount(t, "01012132", "20000")
		before := account.Balance()

		err := account.Withdraw(decimal.RequireFromString(amount))
		if !errors.Is(err, domain.ErrInvalidWithdrawal) {
			t.Fatalf("withdraw %s: want ErrInvalidWithdrawal, got %v", amount, err)
		}
		if account.Balance() != before {
			t.Fatalf("withdraw %s: balance changed to %s", amount, account.Balance())
		}
	}
}

func TestTransferTo(t *testing.T) {
	tests := []struct {
		name       string
		amount     string
		wantSource string
		wantTarget string
	}{
		{name: "whole", amount: "5200", wantSource: "14800", wantTarget: "20200"},
		{name: "decimals", amount: "7456.32", wantSource: "12543.68", wantTarget: "22456.32"},
		{name: "full balance", amount: "20000", wantSource: "0", wantTarget: "35000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := mustAccount(t, "01012132", "20000")
			target := mustAccount(t, "4512314", "15000")
			total := source.Balance().Add(target.Balance())

			if err := source.TransferTo(target, decimal.RequireFromString(tt.amount)); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			assertBalance(t, source, tt.wantSource)
			assertBalance(t, target, tt.wantTarget)
			if !source.Balance().Add(target.Balance()).Equal(total) {
				t.Fatalf("total not conserved: %s + %s != %s", source.Balance(), target.Balance(), total)
			}
		})
	}
}

func TestTransferToRejectsInvalidAmount(t *testing.T) {
	for _, amount := range []string{"24320", "-4521.30", "0"} {
		source := mustAccount(t, "01012132", "20000")
		target := mustAccount(t, "4512314", "15000")
		sourceBefore, targetBefore := source.Balance(), target.Balance()

		err := source.TransferTo(target, decimal.RequireFromString(amount))
		if !errors.Is(err, domain.ErrInvalidTransfer) {
			t.Fatalf("transfer %s: want ErrInvalidTransfer, got %v", amount, err)
		}
		if source.Balance() != sourceBefore || target.Balance() != targetBefore {
			t.Fatalf("transfer %s: balances changed to %s/%s", amount, source.Balance(), target.Balance())
		}
	}
}

func TestTransferToRejectsNilTarget(t *testing.T) {
	source := mustAccount(t, "01012132", "20000")

	err := source.TransferTo(nil, decimal.NewFromInt(3000))
	if !errors.Is(err, domain.ErrNilTargetAccount) {
		t.Fatalf("want ErrNilTargetAccount, got %v", err)
	}
	assertBalance(t, source, "20000")
}

func TestTransferToRejectsSelf(t *testing.T) {
	source := mustAccount(t, "01012132", "20000")

	err := source.TransferTo(source, decimal.NewFromInt(100))
	if !errors.Is(err, domain.ErrSameAccount) {
		t.Fatalf("want ErrSameAccount, got %v", err)
	}
	assertBalance(t, source, "20000")
}

func TestBalanceNeverNegative(t *testing.T) {
	source := mustAccount(t, "A", "10")
	target := mustAccount(t, "B", "0")

	steps := []func() error{
		func() error { return source.Withdraw(decimal.RequireFromString("3.33")) },
		func() error { return source.Withdraw(decimal.RequireFromString("7")) },
		func() error { return source.TransferTo(target, decimal.RequireFromString("0.67")) },
		func() error { return source.Withdraw(decimal.RequireFromString("6")) },
		func() error { return source.Withdraw(decimal.RequireFromString("0.01")) },
		func() error { return target.TransferTo(source, decimal.RequireFromString("0.68")) },
		func() error { return target.Deposit(decimal.RequireFromString("1")) },
	}

	for i, step := range steps {
		_ = step()
		if source.Balance().IsNegative() || target.Balance().IsNegative() {
			t.Fatalf("step %d: negative balance %s/%s", i, source.Balance(), target.Balance())
		}
	}
	assertBalance(t, source, "0")
	assertBalance(t, target, "1.67")
}
