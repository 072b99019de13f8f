package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	v1 "github.com/pocketledger/backend/internal/controllers/v1"
	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/test"
	"github.com/shopspring/decimal"
)

// createTestTransaction creates a transaction over the API and returns it.
func (suite *TestSuiteStandard) createTestTransaction(editable v1.TransactionEditable) models.Transaction {
	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "/v1/transactions", editable)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)

	return *response.Data
}

func (suite *TestSuiteStandard) TestTransactionsCreate() {
	transaction := suite.createTestTransaction(v1.TransactionEditable{
		Amount:   decimal.NewFromFloat(14.035),
		Type:     models.Expense,
		Category: "Food & Dining",
		Note:     "Grocery Run",
		Date:     time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	})

	suite.Assert().NotEmpty(transaction.ID)
	suite.Assert().True(transaction.Amount.Equal(decimal.NewFromFloat(14.04)), "amount is %s, should be 14.04", transaction.Amount)
	suite.Assert().Equal(models.IconUtensils, transaction.Icon)
	suite.Assert().Equal("bg-orange-100 text-orange-600", transaction.Color)
}

func (suite *TestSuiteStandard) TestTransactionsCreateIncome() {
	transaction := suite.createTestTransaction(v1.TransactionEditable{
		Amount: decimal.NewFromInt(3200),
		Type:   models.Income,
		Note:   "Salary",
		Date:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	})

	suite.Assert().Equal(models.IconDefault, transaction.Icon)
	suite.Assert().Equal(models.IncomeColor, transaction.Color)
}

func (suite *TestSuiteStandard) TestTransactionsCreateUnknownCategory() {
	transaction := suite.createTestTransaction(v1.TransactionEditable{
		Amount:   decimal.NewFromInt(10),
		Type:     models.Expense,
		Category: "Not A Category",
		Date:     time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	})

	suite.Assert().Equal(models.IconDefault, transaction.Icon)
}

func (suite *TestSuiteStandard) TestTransactionsCreateDefaultsDate() {
	transaction := suite.createTestTransaction(v1.TransactionEditable{
		Amount:   decimal.NewFromInt(10),
		Type:     models.Expense,
		Category: "Shopping",
	})

	suite.Assert().False(transaction.Date.IsZero())
}

func (suite *TestSuiteStandard) TestTransactionsCreateInvalid() {
	tests := []struct {
		name string
		body any
	}{
		{"no body", ""},
		{"broken body", `{"amount": `},
		{"amount zero", v1.TransactionEditable{Type: models.Expense, Category: "Shopping"}},
		{"amount negative", v1.TransactionEditable{Amount: decimal.NewFromInt(-5), Type: models.Expense, Category: "Shopping"}},
		{"invalid type", map[string]any{"amount": "10", "type": "transfer"}},
		{"expense without category", v1.TransactionEditable{Amount: decimal.NewFromInt(10), Type: models.Expense}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, suite.router, http.MethodPost, "/v1/transactions", tt.body)
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsGetSorted() {
	older := suite.createTestTransaction(v1.TransactionEditable{
		Amount: decimal.NewFromInt(10), Type: models.Expense, Category: "Shopping",
		Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	newer := suite.createTestTransaction(v1.TransactionEditable{
		Amount: decimal.NewFromInt(20), Type: models.Expense, Category: "Shopping",
		Date: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
	})

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal(newer.ID, response.Data[0].ID)
	suite.Assert().Equal(older.ID, response.Data[1].ID)
}

func (suite *TestSuiteStandard) TestTransactionsGetMonthFilter() {
	inMonth := suite.createTestTransaction(v1.TransactionEditable{
		Amount: decimal.NewFromInt(10), Type: models.Expense, Category: "Shopping",
		Date: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
	})
	_ = suite.createTestTransaction(v1.TransactionEditable{
		Amount: decimal.NewFromInt(20), Type: models.Expense, Category: "Shopping",
		Date: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
	})

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/transactions?month=2024-03", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal(inMonth.ID, response.Data[0].ID)
}

func (suite *TestSuiteStandard) TestTransactionsGetInvalidMonth() {
	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/transactions?month=not-a-month", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestTransactionsUpdate() {
	transaction := suite.createTestTransaction(v1.TransactionEditable{
		Amount: decimal.NewFromInt(10), Type: models.Expense, Category: "Shopping",
		Note: "before", Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	})

	recorder := test.Request(suite.T(), suite.router, http.MethodPatch, fmt.Sprintf("/v1/transactions/%s", transaction.ID), map[string]string{"note": "after"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	transactions, err := suite.store.Transactions()
	suite.Require().Nil(err)
	suite.Require().Len(transactions, 1)
	suite.Assert().Equal("after", transactions[0].Note)
	suite.Assert().Equal("Shopping", transactions[0].Category, "fields not in the update must not change")
}

func (suite *TestSuiteStandard) TestTransactionsUpdateCategoryResnapshots() {
	transaction := suite.createTestTransaction(v1.TransactionEditable{
		Amount: decimal.NewFromInt(10), Type: models.Expense, Category: "Shopping",
		Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	suite.Require().Equal(models.IconShoppingBag, transaction.Icon)

	recorder := test.Request(suite.T(), suite.router, http.MethodPatch, fmt.Sprintf("/v1/transactions/%s", transaction.ID), map[string]string{"category": "Food & Dining"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	transactions, err := suite.store.Transactions()
	suite.Require().Nil(err)
	suite.Require().Len(transactions, 1)
	suite.Assert().Equal(models.IconUtensils, transactions[0].Icon)
	suite.Assert().Equal("bg-orange-100 text-orange-600", transactions[0].Color)
}

func (suite *TestSuiteStandard) TestTransactionsUpdateUnknownID() {
	recorder := test.Request(suite.T(), suite.router, http.MethodPatch, "/v1/transactions/4f1d0dfc-3699-4c0b-a09f-b2b276d83b5b", map[string]string{"note": "after"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
}

func (suite *TestSuiteStandard) TestTransactionsUpdateInvalid() {
	transaction := suite.createTestTransaction(v1.TransactionEditable{
		Amount: decimal.NewFromInt(10), Type: models.Expense, Category: "Shopping",
		Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	})

	tests := []struct {
		name string
		body any
	}{
		{"no body", ""},
		{"amount negative", map[string]string{"amount": "-1"}},
		{"invalid type", map[string]string{"type": "transfer"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, suite.router, http.MethodPatch, fmt.Sprintf("/v1/transactions/%s", transaction.ID), tt.body)
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsDelete() {
	transaction := suite.createTestTransaction(v1.TransactionEditable{
		Amount: decimal.NewFromInt(10), Type: models.Expense, Category: "Shopping",
		Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	})

	recorder := test.Request(suite.T(), suite.router, http.MethodDelete, fmt.Sprintf("/v1/transactions/%s", transaction.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	// Deleting again is a no-op
	recorder = test.Request(suite.T(), suite.router, http.MethodDelete, fmt.Sprintf("/v1/transactions/%s", transaction.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	transactions, err := suite.store.Transactions()
	suite.Require().Nil(err)
	suite.Assert().Empty(transactions)
}
