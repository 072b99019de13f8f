package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func (co Controller) RegisterTransactionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", co.GetTransactions)
		r.POST("", co.CreateTransaction)
	}

	// Transaction with ID
	{
		r.OPTIONS("/:id", httputil.OptionsPatchDelete)
		r.PATCH("/:id", co.UpdateTransaction)
		r.DELETE("/:id", co.DeleteTransaction)
	}
}

// @Summary		Get transactions
// @Description	Returns the list of transactions, newest first
// @Tags			Transactions
// @Produce		json
// @Success		200		{object}	TransactionListResponse
// @Failure		400		{object}	TransactionListResponse
// @Failure		500		{object}	TransactionListResponse
// @Param			month	query		string	false	"Only transactions in this month, in YYYY-MM format"
// @Router			/v1/transactions [get]
func (co Controller) GetTransactions(c *gin.Context) {
	var query QueryMonth
	if err := c.ShouldBindQuery(&query); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, TransactionListResponse{Error: &e})
		return
	}

	transactions, err := co.store.Transactions()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionListResponse{Error: &e})
		return
	}

	if !query.Month.IsZero() {
		filtered := transactions[:0]
		for _, transaction := range transactions {
			if query.Month.Contains(transaction.Date) {
				filtered = append(filtered, transaction)
			}
		}
		transactions = filtered
	}

	// The store guarantees no order, display is newest first
	slices.SortStableFunc(transactions, func(a, b models.Transaction) int {
		return b.Date.Compare(a.Date)
	})

	c.JSON(http.StatusOK, TransactionListResponse{Data: transactions})
}

// @Summary		Create transaction
// @Description	Creates a new transaction
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		201			{object}	TransactionResponse
// @Failure		400			{object}	TransactionResponse
// @Failure		500			{object}	TransactionResponse
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/v1/transactions [post]
func (co Controller) CreateTransaction(c *gin.Context) {
	var editable TransactionEditable

	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &e})
		return
	}

	if err := validateEditable(editable); err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &e})
		return
	}

	transaction := editable.model()
	transaction.ID = uuid.NewString()
	if transaction.Date.IsZero() {
		transaction.Date = time.Now().UTC()
	}

	icon, color, err := co.presentationHints(transaction.Type, transaction.Category)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &e})
		return
	}
	transaction.Icon = icon
	transaction.Color = color

	if err := co.store.SaveTransaction(transaction); err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &e})
		return
	}

	transaction.Amount = transaction.Amount.Round(2)
	c.JSON(http.StatusCreated, TransactionResponse{Data: &transaction})
}

// @Summary		Update transaction
// @Description	Updates an existing transaction. Only values to be updated need to be specified. Unknown IDs are ignored.
// @Tags			Transactions
// @Accept			json
// @Success		204
// @Failure		400			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			id			path		string						true	"ID of the transaction"
// @Param			transaction	body		TransactionUpdateEditable	true	"Transaction"
// @Router			/v1/transactions/{id} [patch]
func (co Controller) UpdateTransaction(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var editable TransactionUpdateEditable
	if err := httputil.BindData(c, &editable); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if err := validateUpdate(editable); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	update := editable.update()

	// A changed category or type re-snapshots the presentation hints
	if editable.Category != nil || editable.Type != nil {
		transactionType, category, err := co.updateTarget(uri.ID, editable)
		if err != nil {
			c.JSON(status(err), httpError{Error: err.Error()})
			return
		}

		icon, color, err := co.presentationHints(transactionType, category)
		if err != nil {
			c.JSON(status(err), httpError{Error: err.Error()})
			return
		}
		update.Icon = &icon
		update.Color = &color
	}

	if err := co.store.UpdateTransaction(uri.ID, update); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Delete transaction
// @Description	Deletes a transaction. Deleting an unknown ID is a no-op.
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID of the transaction"
// @Router			/v1/transactions/{id} [delete]
func (co Controller) DeleteTransaction(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if err := co.store.DeleteTransaction(uri.ID); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

func validateEditable(editable TransactionEditable) error {
	if !editable.Amount.IsPositive() {
		return errAmountNotPositive
	}

	if !editable.Type.Valid() {
		return errTypeInvalid
	}

	if editable.Type == models.Expense && editable.Category == "" {
		return errCategoryNotSet
	}

	return nil
}

func validateUpdate(editable TransactionUpdateEditable) error {
	if editable.Amount != nil && !editable.Amount.IsPositive() {
		return errAmountNotPositive
	}

	if editable.Type != nil && !editable.Type.Valid() {
		return errTypeInvalid
	}

	return nil
}

// presentationHints resolves the icon and color a transaction snapshots
// at write time. Income transactions have no category record, they get
// the fixed income presentation.
func (co Controller) presentationHints(transactionType models.TransactionType, category string) (models.Icon, string, error) {
	if transactionType == models.Income {
		return models.IconDefault, models.IncomeColor, nil
	}

	match, found, err := co.store.CategoryByName(category)
	if err != nil {
		return models.IconDefault, "", err
	}

	if !found {
		return models.IconDefault, "", nil
	}

	return match.Icon, match.Color, nil
}

// updateTarget resolves the type and category a transaction has after
// the update is applied, falling back to the stored values for fields
// the update does not set.
func (co Controller) updateTarget(id string, editable TransactionUpdateEditable) (models.TransactionType, string, error) {
	transactions, err := co.store.Transactions()
	if err != nil {
		return "", "", err
	}

	var current models.Transaction
	for _, transaction := range transactions {
		if transaction.ID == id {
			current = transaction
			break
		}
	}

	transactionType := current.Type
	if editable.Type != nil {
		transactionType = *editable.Type
	}

	category := current.Category
	if editable.Category != nil {
		category = *editable.Category
	}

	return transactionType, category, nil
}
