package v1

import (
	"time"

	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/internal/store"
	"github.com/shopspring/decimal"
)

type TransactionEditable struct {
	Amount   decimal.Decimal        `json:"amount" example:"14.03" minimum:"0.01"`        // The amount of the transaction
	Type     models.TransactionType `json:"type" example:"expense"`                       // "expense" or "income"
	Category string                 `json:"category" example:"Food & Dining" default:""`  // Category display name
	Note     string                 `json:"note" example:"Grocery Run" default:""`        // A note
	Date     time.Time              `json:"date" example:"2024-03-01T00:00:00Z"`          // Date of the transaction. Defaults to the current time
}

// model returns the store resource for the API representation of the
// editable fields
func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		Amount:   editable.Amount,
		Type:     editable.Type,
		Category: editable.Category,
		Note:     editable.Note,
		Date:     editable.Date,
	}
}

// TransactionUpdateEditable are the fields of a transaction that a PATCH
// request can change. Fields that are not sent are left untouched.
type TransactionUpdateEditable struct {
	Amount   *decimal.Decimal        `json:"amount" example:"14.03" minimum:"0.01"` // The amount of the transaction
	Type     *models.TransactionType `json:"type" example:"expense"`                // "expense" or "income"
	Category *string                 `json:"category" example:"Food & Dining"`      // Category display name
	Note     *string                 `json:"note" example:"Grocery Run"`            // A note
	Date     *time.Time              `json:"date" example:"2024-03-01T00:00:00Z"`   // Date of the transaction
}

// update returns the store update for the API representation of the
// editable fields
func (editable TransactionUpdateEditable) update() store.TransactionUpdate {
	return store.TransactionUpdate{
		Amount:   editable.Amount,
		Type:     editable.Type,
		Category: editable.Category,
		Note:     editable.Note,
		Date:     editable.Date,
	}
}

type TransactionResponse struct {
	Data  *models.Transaction `json:"data"`                                       // The transaction data, if the request was successful
	Error *string             `json:"error" example:"the amount must be positive"` // The error, if any occurred
}

type TransactionListResponse struct {
	Data  []models.Transaction `json:"data"`                                                 // List of transactions
	Error *string              `json:"error" example:"parsing time \"x\": invalid syntax"` // The error, if any occurred
}
