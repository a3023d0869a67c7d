package services

import (
	"context"

	"github.com/api-sage/bank-account/src/internal/adapter/http/models"
	"github.com/api-sage/bank-account/src/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/bank-account/src/internal/commons"
	"github.com/api-sage/bank-account/src/internal/logger"
)

type TransferService struct {
	accountRepo repo_interfaces.AccountRepository
	locker      *AccountLocker
}

// NewTransferService must share its locker with the AccountService that
// serves the same repository.
func NewTransferService(accountRepo repo_interfaces.AccountRepository, locker *AccountLocker) *TransferService {
	if locker == nil {
		locker = NewAccountLocker()
	}
	return &TransferService{
		accountRepo: accountRepo,
		locker:      locker,
	}
}

func (s *TransferService) TransferFunds(ctx context.Context, req models.TransferFundsRequest) (commons.Response[models.TransferFundsResponse], error) {
	logger.Info("transfer service transfer request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		return commons.ErrorFrom[models.TransferFundsResponse](MessageValidationFailed, err), err
	}

	amount, err := models.ParseAmount("amount", req.Amount)
	if err != nil {
		return commons.ErrorFrom[models.TransferFundsResponse](MessageValidationFailed, err), err
	}

	debitAccount, err := s.accountRepo.GetByAccountNumber(ctx, req.DebitAccountNumber)
	if err != nil {
		response, err := lookupFailure[models.TransferFundsResponse]("transfer service debit account lookup failed", req.DebitAccountNumber, err)
		if response.Message == MessageAccountNotFound {
			response.Message = MessageDebitNotFound
		}
		return response, err
	}
	creditAccount, err := s.accountRepo.GetByAccountNumber(ctx, req.CreditAccountNumber)
	if err != nil {
		response, err := lookupFailure[models.TransferFundsResponse]("transfer service credit account lookup failed", req.CreditAccountNumber, err)
		if response.Message == MessageAccountNotFound {
			response.Message = MessageCreditNotFound
		}
		return response, err
	}

	unlock := s.locker.Lock(req.DebitAccountNumber, req.CreditAccountNumber)
	err = debitAccount.TransferTo(creditAccount, amount)
	debitBalance, creditBalance := debitAccount.Balance(), creditAccount.Balance()
	unlock()

	if err != nil {
		logger.Error("transfer service transfer rejected", err, logger.Fields{
			"debitAccountNumber":  req.DebitAccountNumber,
			"creditAccountNumber": req.CreditAccountNumber,
			"amount":              amount.String(),
		})
		return commons.ErrorFrom[models.TransferFundsResponse](rejectionMessage(amount, err), err), err
	}

	response := models.TransferFundsResponse{
		DebitAccountNumber:  req.DebitAccountNumber,
		CreditAccountNumber: req.CreditAccountNumber,
		Amount:              amount.String(),
		DebitBalance:        debitBalance.String(),
		CreditBalance:       creditBalance.String(),
	}

	logger.Info("transfer service transfer success", logger.Fields{
		"debitAccountNumber":  response.DebitAccountNumber,
		"creditAccountNumber": response.CreditAccountNumber,
		"amount":              response.Amount,
	})

	return commons.SuccessResponse("transfer completed successfully", response), nil
}
