package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/api-sage/bank-account/src/internal/adapter/http/models"
	"github.com/api-sage/bank-account/src/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/bank-account/src/internal/commons"
	"github.com/api-sage/bank-account/src/internal/domain"
	"github.com/api-sage/bank-account/src/internal/logger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	MessageValidationFailed    = "validation failed"
	MessageAccountNotFound     = "Account not found"
	MessageDebitNotFound       = "Debit account not found"
	MessageCreditNotFound      = "Credit account not found"
	MessageAccountExists       = "Account already exists"
	MessageInsufficientBalance = "Insufficient balance"
)

type AccountService struct {
	accountRepo repo_interfaces.AccountRepository
	locker      *AccountLocker
}

func NewAccountService(accountRepo repo_interfaces.AccountRepository, locker *AccountLocker) *AccountService {
	if locker == nil {
		locker = NewAccountLocker()
	}
	return &AccountService{
		accountRepo: accountRepo,
		locker:      locker,
	}
}

func (s *AccountService) OpenAccount(ctx context.Context, req models.OpenAccountRequest) (commons.Response[models.AccountResponse], error) {
	logger.Info("account service open account request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("account service open account validation failed", err, nil)
		return commons.ErrorFrom[models.AccountResponse](MessageValidationFailed, err), err
	}

	accountNumber := req.AccountNumber
	if accountNumber == "" {
		accountNumber = uuid.NewString()
	}

	opts := []domain.AccountOption{}
	if raw := strings.TrimSpace(req.InitialBalance); raw != "" {
		balance, err := models.ParseAmount("initialBalance", raw)
		if err != nil {
			return commons.ErrorFrom[models.AccountResponse](MessageValidationFailed, err), err
		}
		opts = append(opts, domain.WithInitialBalance(balance))
	}

	account, err := domain.NewAccount(accountNumber, opts...)
	if err != nil {
		logger.Error("account service open account rejected", err, logger.Fields{
			"accountNumber": accountNumber,
		})
		return commons.ErrorFrom[models.AccountResponse](MessageValidationFailed, err), err
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		logger.Error("account service open account repository failed", err, logger.Fields{
			"accountNumber": accountNumber,
		})
		if errors.Is(err, commons.ErrRecordAlreadyExists) {
			return commons.ErrorResponse[models.AccountResponse](MessageAccountExists), err
		}
		return commons.ErrorResponse[models.AccountResponse]("failed to open account", "Unable to open account right now"), err
	}

	response := models.AccountResponse{
		AccountNumber: account.AccountNumber(),
		Balance:       account.Balance().String(),
	}

	logger.Info("account service open account success", logger.Fields{
		"accountNumber": response.AccountNumber,
		"balance":       response.Balance,
	})

	return commons.SuccessResponse("account opened successfully", response), nil
}

func (s *AccountService) GetAccount(ctx context.Context, accountNumber string) (commons.Response[models.AccountResponse], error) {
	logger.Info("account service get account request", logger.Fields{
		"accountNumber": accountNumber,
	})

	if strings.TrimSpace(accountNumber) == "" {
		err := fmt.Errorf("accountNumber is required")
		return commons.ErrorFrom[models.AccountResponse](MessageValidationFailed, err), err
	}

	account, err := s.accountRepo.GetByAccountNumber(ctx, accountNumber)
	if err != nil {
		return lookupFailure[models.AccountResponse]("account service get account failed", accountNumber, err)
	}

	unlock := s.locker.Lock(accountNumber)
	response := models.AccountResponse{
		AccountNumber: account.AccountNumber(),
		Balance:       account.Balance().String(),
	}
	unlock()

	return commons.SuccessResponse("account fetched successfully", response), nil
}

// ListAccounts reads each balance under that account's lock, so the listing
// is consistent per account but not a snapshot across accounts.
func (s *AccountService) ListAccounts(ctx context.Context) (commons.Response[[]models.AccountResponse], error) {
	logger.Info("account service list accounts request", nil)

	accounts, err := s.accountRepo.List(ctx)
	if err != nil {
		logger.Error("account service list accounts failed", err, nil)
		return commons.ErrorResponse[[]models.AccountResponse]("failed to list accounts", "Unable to list accounts right now"), err
	}

	response := make([]models.AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		unlock := s.locker.Lock(account.AccountNumber())
		response = append(response, models.AccountResponse{
			AccountNumber: account.AccountNumber(),
			Balance:       account.Balance().String(),
		})
		unlock()
	}

	logger.Info("account service list accounts success", logger.Fields{
		"count": len(response),
	})

	return commons.SuccessResponse("accounts fetched successfully", response), nil
}

func (s *AccountService) DepositFunds(ctx context.Context, req models.AmountRequest) (commons.Response[models.BalanceChangeResponse], error) {
	return s.changeBalance(ctx, "deposit", req, (*domain.Account).Deposit)
}

func (s *AccountService) WithdrawFunds(ctx context.Context, req models.AmountRequest) (commons.Response[models.BalanceChangeResponse], error) {
	return s.changeBalance(ctx, "withdraw", req, (*domain.Account).Withdraw)
}

func (s *AccountService) changeBalance(
	ctx context.Context,
	operation string,
	req models.AmountRequest,
	apply func(*domain.Account, decimal.Decimal) error,
) (commons.Response[models.BalanceChangeResponse], error) {
	logger.Info("account service "+operation+" request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("account service "+operation+" validation failed", err, nil)
		return commons.ErrorFrom[models.BalanceChangeResponse](MessageValidationFailed, err), err
	}

	amount, err := models.ParseAmount("amount", req.Amount)
	if err != nil {
		return commons.ErrorFrom[models.BalanceChangeResponse](MessageValidationFailed, err), err
	}

	account, err := s.accountRepo.GetByAccountNumber(ctx, req.AccountNumber)
	if err != nil {
		return lookupFailure[models.BalanceChangeResponse]("account service "+operation+" lookup failed", req.AccountNumber, err)
	}

	unlock := s.locker.Lock(req.AccountNumber)
	err = apply(account, amount)
	balance := account.Balance()
	unlock()

	if err != nil {
		logger.Error("account service "+operation+" rejected", err, logger.Fields{
			"accountNumber": req.AccountNumber,
			"amount":        amount.String(),
		})
		return commons.ErrorFrom[models.BalanceChangeResponse](rejectionMessage(amount, err), err), err
	}

	response := models.BalanceChangeResponse{
		AccountNumber: req.AccountNumber,
		Amount:        amount.String(),
		Balance:       balance.String(),
	}

	logger.Info("account service "+operation+" success", logger.Fields{
		"accountNumber": response.AccountNumber,
		"amount":        response.Amount,
		"balance":       response.Balance,
	})

	return commons.SuccessResponse("funds "+pastTense(operation)+" successfully", response), nil
}

// rejectionMessage tells an over-balance debit apart from a malformed
// amount; the account reports both as the same invalid-argument reason.
func rejectionMessage(amount decimal.Decimal, err error) string {
	if amount.IsPositive() && (errors.Is(err, domain.ErrInvalidWithdrawal) || errors.Is(err, domain.ErrInvalidTransfer)) {
		return MessageInsufficientBalance
	}
	return MessageValidationFailed
}

func lookupFailure[T any](message, accountNumber string, err error) (commons.Response[T], error) {
	logger.Error(message, err, logger.Fields{
		"accountNumber": accountNumber,
	})
	if errors.Is(err, commons.ErrRecordNotFound) {
		return commons.ErrorResponse[T](MessageAccountNotFound), err
	}
	return commons.ErrorResponse[T]("failed to fetch account", "Unable to fetch account right now"), err
}

func pastTense(operation string) string {
	switch operation {
	case "deposit":
		return "deposited"
	case "withdraw":
		return "withdrawn"
	default:
		return operation
	}
}
