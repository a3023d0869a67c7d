package service_interfaces

import (
	"context"

	"github.com/api-sage/bank-account/src/internal/adapter/http/models"
	"github.com/api-sage/bank-account/src/internal/commons"
)

type AccountService interface {
	OpenAccount(ctx context.Context, req models.OpenAccountRequest) (commons.Response[models.AccountResponse], error)
	GetAccount(ctx context.Context, accountNumber string) (commons.Response[models.AccountResponse], error)
	ListAccounts(ctx context.Context) (commons.Response[[]models.AccountResponse], error)
	DepositFunds(ctx context.Context, req models.AmountRequest) (commons.Response[models.BalanceChangeResponse], error)
	WithdrawFunds(ctx context.Context, req models.AmountRequest) (commons.Response[models.BalanceChangeResponse], error)
}
