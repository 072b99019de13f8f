package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocketledger/backend/internal/analytics"
	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/models"
	"github.com/shopspring/decimal"
)

// RegisterAnalyticsRoutes registers the routes for analytics with
// the RouterGroup that is passed.
func (co Controller) RegisterAnalyticsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/summary", httputil.OptionsGet)
	r.GET("/summary", co.GetSummary)

	r.OPTIONS("/categories", httputil.OptionsGet)
	r.GET("/categories", co.GetCategoryTotals)

	r.OPTIONS("/daily", httputil.OptionsGet)
	r.GET("/daily", co.GetDailyTotals)
}

type Summary struct {
	Balance decimal.Decimal `json:"balance" example:"3155.00"` // Income minus expense
	Income  decimal.Decimal `json:"income" example:"3200.00"`  // Sum of income transactions
	Expense decimal.Decimal `json:"expense" example:"45.00"`   // Sum of expense transactions
}

type SummaryResponse struct {
	Data  *Summary `json:"data"`                                             // The summary data, if the request was successful
	Error *string  `json:"error" example:"persisted record cannot be parsed"` // The error, if any occurred
}

type CategoryTotalListResponse struct {
	Data  []analytics.CategoryTotal `json:"data"`                                             // Expense totals per category, largest first
	Error *string                   `json:"error" example:"persisted record cannot be parsed"` // The error, if any occurred
}

type DailyTotalListResponse struct {
	Data  []analytics.DailyTotal `json:"data"`                                                // Expense totals per day of the month
	Error *string                `json:"error" example:"the month query parameter must be set"` // The error, if any occurred
}

// monthTransactions returns the transactions, filtered to the query
// month when one is set.
func (co Controller) monthTransactions(c *gin.Context) ([]models.Transaction, error) {
	var query QueryMonth
	if err := c.ShouldBindQuery(&query); err != nil {
		return nil, err
	}

	transactions, err := co.store.Transactions()
	if err != nil {
		return nil, err
	}

	if query.Month.IsZero() {
		return transactions, nil
	}

	return analytics.FilterMonth(transactions, query.Month), nil
}

// @Summary		Get summary
// @Description	Returns balance, income and expense over all transactions, or over one month
// @Tags			Analytics
// @Produce		json
// @Success		200		{object}	SummaryResponse
// @Failure		400		{object}	SummaryResponse
// @Failure		500		{object}	SummaryResponse
// @Param			month	query		string	false	"Only transactions in this month, in YYYY-MM format"
// @Router			/v1/analytics/summary [get]
func (co Controller) GetSummary(c *gin.Context) {
	transactions, err := co.monthTransactions(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SummaryResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, SummaryResponse{Data: &Summary{
		Balance: analytics.Balance(transactions),
		Income:  analytics.SumByType(transactions, models.Income),
		Expense: analytics.SumByType(transactions, models.Expense),
	}})
}

// @Summary		Get category totals
// @Description	Returns the expense total per category, sorted by total descending. Categories without expenses are omitted.
// @Tags			Analytics
// @Produce		json
// @Success		200		{object}	CategoryTotalListResponse
// @Failure		400		{object}	CategoryTotalListResponse
// @Failure		500		{object}	CategoryTotalListResponse
// @Param			month	query		string	false	"Only transactions in this month, in YYYY-MM format"
// @Router			/v1/analytics/categories [get]
func (co Controller) GetCategoryTotals(c *gin.Context) {
	transactions, err := co.monthTransactions(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryTotalListResponse{Error: &e})
		return
	}

	categories, err := co.store.Categories()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryTotalListResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, CategoryTotalListResponse{
		Data: analytics.CategoryTotals(transactions, categories),
	})
}

// @Summary		Get daily totals
// @Description	Returns the expense total for every day of a month
// @Tags			Analytics
// @Produce		json
// @Success		200		{object}	DailyTotalListResponse
// @Failure		400		{object}	DailyTotalListResponse
// @Failure		500		{object}	DailyTotalListResponse
// @Param			month	query		string	true	"The month to aggregate, in YYYY-MM format"
// @Router			/v1/analytics/daily [get]
func (co Controller) GetDailyTotals(c *gin.Context) {
	var query QueryMonth
	if err := c.ShouldBindQuery(&query); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, DailyTotalListResponse{Error: &e})
		return
	}

	if query.Month.IsZero() {
		e := errMonthNotSetInQuery.Error()
		c.JSON(http.StatusBadRequest, DailyTotalListResponse{Error: &e})
		return
	}

	transactions, err := co.store.Transactions()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DailyTotalListResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, DailyTotalListResponse{
		Data: analytics.DailyTotals(transactions, query.Month),
	})
}
