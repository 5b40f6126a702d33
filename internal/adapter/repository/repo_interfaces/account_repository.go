package repo_interfaces

import (
	"context"

	"github.com/api-sage/retail-banking-simulator/internal/domain"
)

type AccountRepository interface {
	NextAccountNumber(ctx context.Context) (string, error)
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	GetByAccountNumber(ctx context.Context, accountNumber string) (*domain.Account, error)
	ListAll(ctx context.Context) ([]*domain.Account, error)
}
