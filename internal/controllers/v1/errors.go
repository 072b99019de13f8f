package v1

import (
	"errors"
	"net/http"

	"github.com/pocketledger/backend/internal/store"
)

type httpError struct {
	Error string `json:"error" example:"the amount must be positive"` // The error, if any occurred
}

// status returns the appropriate HTTP status for a store error
func status(err error) int {
	if errors.Is(err, store.ErrCorruptRecord) {
		return http.StatusInternalServerError
	}

	return http.StatusBadRequest
}

// Validation errors
var (
	errMonthNotSetInQuery = errors.New("the month query parameter must be set")
	errAmountNotPositive = errors.New("the amount must be positive")
	errTypeInvalid       = errors.New("the transaction type must be \"expense\" or \"income\"")
	errCategoryNotSet    = errors.New("the category must be set for expense transactions")
	errNameNotSet        = errors.New("the name must be set")
	errCurrencyInvalid   = errors.New("the currency is not supported")
)
