// Package transactions provides the PostgreSQL-backed ledger store. Every
// read and delete is scoped by owner in the query itself, never by a
// separate ownership check after the fetch.
package transactions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/fintrack/internal/common"
	"github.com/dmitrijs2005/fintrack/internal/dbx"
	"github.com/dmitrijs2005/fintrack/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts the transaction and returns it with the stored created_at.
func (r *PostgresRepository) Create(ctx context.Context, tr *models.Transaction) (*models.Transaction, error) {

	query :=
		`INSERT INTO transactions (id, user_id, type, amount, category, description, occurred_on)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		tr.ID, tr.UserID, tr.Type, tr.Amount, tr.Category, tr.Description, tr.Date).
		Scan(&tr.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return tr, nil
}

// SelectByOwner returns all transactions belonging to userID, newest
// occurred_on first. No rows is an empty result, not an error.
func (r *PostgresRepository) SelectByOwner(ctx context.Context, userID string) ([]*models.Transaction, error) {
	query :=
		`SELECT id, user_id, type, amount, category, description, occurred_on, created_at
		 FROM transactions
		 WHERE user_id = $1
		 ORDER BY occurred_on DESC, created_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.Transaction{}
	for rows.Next() {
		var item models.Transaction
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.Type, &item.Amount,
			&item.Category, &item.Description, &item.Date, &item.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// DeleteOwned removes the transaction matching both id and owner in a single
// statement and returns the deleted row. A miss on either predicate yields
// the same common.ErrorNotFound, so callers cannot distinguish "absent" from
// "owned by someone else", and there is no check-then-act window.
func (r *PostgresRepository) DeleteOwned(ctx context.Context, id string, userID string) (*models.Transaction, error) {
	query :=
		`DELETE FROM transactions
		 WHERE id = $1 AND user_id = $2
		 RETURNING id, user_id, type, amount, category, description, occurred_on, created_at
		 `

	tr := &models.Transaction{}
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(
		&tr.ID, &tr.UserID, &tr.Type, &tr.Amount,
		&tr.Category, &tr.Description, &tr.Date, &tr.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return tr, nil
}
