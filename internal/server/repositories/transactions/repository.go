package transactions

import (
	"context"

	"github.com/dmitrijs2005/fintrack/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, tr *models.Transaction) (*models.Transaction, error)
	SelectByOwner(ctx context.Context, userID string) ([]*models.Transaction, error)
	DeleteOwned(ctx context.Context, id string, userID string) (*models.Transaction, error)
}
