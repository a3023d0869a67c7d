package service_interfaces

import (
	"context"

	"github.com/api-sage/bank-account/src/internal/adapter/http/models"
	"github.com/api-sage/bank-account/src/internal/commons"
)

type TransferService interface {
	TransferFunds(ctx context.Context, req models.TransferFundsRequest) (commons.Response[models.TransferFundsResponse], error)
}
