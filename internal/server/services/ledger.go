package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/fintrack/internal/common"
	"github.com/dmitrijs2005/fintrack/internal/server/models"
	"github.com/dmitrijs2005/fintrack/internal/server/repositories/transactions"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerService provides owner-scoped operations over transaction records.
// The owner ID always comes from a validated token, never from the request
// body.
type LedgerService struct {
	transactions transactions.Repository
}

func NewLedgerService(r transactions.Repository) *LedgerService {
	return &LedgerService{transactions: r}
}

// TransactionInput carries the caller-supplied fields of a new transaction.
type TransactionInput struct {
	Type        string
	Amount      decimal.Decimal
	Category    string
	Description string
	Date        models.Date
}

func (in *TransactionInput) validate() error {
	if in.Type != models.TypeIncome && in.Type != models.TypeExpense {
		return fmt.Errorf("%w: type must be income or expense", common.ErrorValidation)
	}
	if !in.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be greater than zero", common.ErrorValidation)
	}
	if strings.TrimSpace(in.Category) == "" {
		return fmt.Errorf("%w: category is required", common.ErrorValidation)
	}
	if in.Date.IsZero() {
		return fmt.Errorf("%w: date is required", common.ErrorValidation)
	}
	return nil
}

// Create validates the input and persists a new transaction owned by ownerID.
func (s *LedgerService) Create(ctx context.Context, ownerID string, in TransactionInput) (*models.Transaction, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	tr := &models.Transaction{
		ID:          uuid.NewString(),
		UserID:      ownerID,
		Type:        in.Type,
		Amount:      in.Amount,
		Category:    strings.TrimSpace(in.Category),
		Description: strings.TrimSpace(in.Description),
		Date:        in.Date,
	}

	created, err := s.transactions.Create(ctx, tr)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return created, nil
}

// List returns all transactions owned by ownerID, newest first. No
// transactions is an empty slice, not an error.
func (s *LedgerService) List(ctx context.Context, ownerID string) ([]*models.Transaction, error) {
	result, err := s.transactions.SelectByOwner(ctx, ownerID)
	if err != nil {
		return nil, common.ErrorInternal
	}
	if result == nil {
		result = []*models.Transaction{}
	}
	return result, nil
}

// Delete removes the transaction with the given id owned by ownerID and
// returns it. The store matches id and owner in one statement; a row owned
// by someone else produces the same common.ErrorNotFound as a missing row.
func (s *LedgerService) Delete(ctx context.Context, ownerID string, id string) (*models.Transaction, error) {
	deleted, err := s.transactions.DeleteOwned(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}
	return deleted, nil
}
