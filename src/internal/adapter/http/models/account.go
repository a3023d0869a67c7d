package models

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

const (
	maxAccountNumberLength = 64
	// maxAmountScale bounds the decimal places of any amount.
	maxAmountScale = 18
)

// maxAmount is the exclusive upper bound on an amount's magnitude.
var maxAmount = decimal.New(1, 18)

type OpenAccountRequest struct {
	AccountNumber  string `json:"accountNumber,omitempty"`
	InitialBalance string `json:"initialBalance,omitempty"`
}

func (r OpenAccountRequest) Validate() error {
	var errs []string

	if r.AccountNumber != "" {
		if msg := checkAccountNumber("accountNumber", r.AccountNumber); msg != "" {
			errs = append(errs, msg)
		}
	}

	if strings.TrimSpace(r.InitialBalance) != "" {
		if msg := checkAmount("initialBalance", r.InitialBalance); msg != "" {
			errs = append(errs, msg)
		}
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type AccountResponse struct {
	AccountNumber string `json:"accountNumber"`
	Balance       string `json:"balance"`
}

// AmountRequest is the body of deposit and withdraw calls; the account
// number comes from the route.
type AmountRequest struct {
	AccountNumber string `json:"-"`
	Amount        string `json:"amount"`
}

func (r AmountRequest) Validate() error {
	var errs []string

	if msg := checkAccountNumber("accountNumber", r.AccountNumber); msg != "" {
		errs = append(errs, msg)
	}
	if msg := checkAmount("amount", r.Amount); msg != "" {
		errs = append(errs, msg)
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type BalanceChangeResponse struct {
	AccountNumber string `json:"accountNumber"`
	Amount        string `json:"amount"`
	Balance       string `json:"balance"`
}

type TransferFundsRequest struct {
	DebitAccountNumber  string `json:"debitAccountNumber"`
	CreditAccountNumber string `json:"creditAccountNumber"`
	Amount              string `json:"amount"`
}

func (r TransferFundsRequest) Validate() error {
	var errs []string

	if msg := checkAccountNumber("debitAccountNumber", r.DebitAccountNumber); msg != "" {
		errs = append(errs, msg)
	}
	if msg := checkAccountNumber("creditAccountNumber", r.CreditAccountNumber); msg != "" {
		errs = append(errs, msg)
	}
	if msg := checkAmount("amount", r.Amount); msg != "" {
		errs = append(errs, msg)
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type TransferFundsResponse struct {
	DebitAccountNumber  string `json:"debitAccountNumber"`
	CreditAccountNumber string `json:"creditAccountNumber"`
	Amount              string `json:"amount"`
	DebitBalance        string `json:"debitBalance"`
	CreditBalance       string `json:"creditBalance"`
}

func checkAccountNumber(field, accountNumber string) string {
	if strings.TrimSpace(accountNumber) == "" {
		return field + " is required"
	}
	if len(accountNumber) > maxAccountNumberLength {
		return field + " is too long"
	}
	if strings.IndexFunc(accountNumber, unicode.IsSpace) >= 0 {
		return field + " cannot contain whitespace"
	}
	return ""
}

// ParseAmount parses a request amount and bounds its scale and magnitude.
// Sign and balance rules belong to the account itself.
func ParseAmount(field, amount string) (decimal.Decimal, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return decimal.Zero, errors.New(field + " is required")
	}
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, errors.New(field + " must be numeric")
	}
	// Exponent first: Cmp rescales both operands.
	if d.Exponent() < -maxAmountScale {
		return decimal.Zero, fmt.Errorf("%s cannot have more than %d decimal places", field, maxAmountScale)
	}
	if d.Exponent() > maxAmountScale || d.Abs().Cmp(maxAmount) >= 0 {
		return decimal.Zero, errors.New(field + " is too large")
	}
	return d, nil
}

func checkAmount(field, amount string) string {
	if _, err := ParseAmount(field, amount); err != nil {
		return err.Error()
	}
	return ""
}
