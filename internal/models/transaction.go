// Package models defines the records the Pocketledger backend persists.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType discriminates the sign of a transaction amount.
type TransactionType string

const (
	Expense TransactionType = "expense"
	Income  TransactionType = "income"
)

// Valid reports whether the type is one of the supported discriminators.
func (t TransactionType) Valid() bool {
	return t == Expense || t == Income
}

// Transaction is a single recorded income or expense event.
//
// Icon and Color are snapshotted from the category when the transaction is
// created. They are not updated retroactively when the category changes.
type Transaction struct {
	ID       string          `json:"id" example:"d430d7c3-d14c-4712-9336-ee56965a6673"` // UUID for the transaction
	Amount   decimal.Decimal `json:"amount" example:"14.03"`                            // Non-negative amount, rounded to 2 decimal places at write time
	Type     TransactionType `json:"type" example:"expense"`                            // "expense" or "income"
	Category string          `json:"category" example:"Food & Dining"`                  // Category display name. A weak reference, not an enforced foreign key
	Note     string          `json:"note" example:"Grocery Run"`                        // A free-text note
	Date     time.Time       `json:"date" example:"2024-03-01T00:00:00Z"`               // Date of the transaction. Only the calendar day matters for aggregation
	Icon     Icon            `json:"icon" example:"utensils"`                           // Icon identifier snapshotted from the category
	Color    string          `json:"color" example:"bg-orange-100 text-orange-600"`     // Color token snapshotted from the category
}
