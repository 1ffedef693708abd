package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction kinds.
const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

func init() {
	// Amounts go over the wire as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Transaction is a single ledger record. UserID always refers to the
// identity that created it; records are never transferred between users.
type Transaction struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description,omitempty"`
	Date        Date            `json:"date"`
	CreatedAt   time.Time       `json:"-"`
}
