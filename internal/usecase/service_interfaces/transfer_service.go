package service_interfaces

import (
	"context"

	"github.com/api-sage/retail-banking-simulator/internal/adapter/console/models"
	"github.com/api-sage/retail-banking-simulator/internal/commons"
)

type TransferService interface {
	TransferFunds(ctx context.Context, req models.TransferRequest) (commons.Response[models.TransferResponse], error)
}
