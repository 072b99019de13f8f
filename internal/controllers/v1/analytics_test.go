package v1_test

import (
	"net/http"
	"time"

	v1 "github.com/pocketledger/backend/internal/controllers/v1"
	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) seedAnalyticsTransactions() {
	march := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	suite.createTestTransaction(v1.TransactionEditable{
		Amount: decimal.NewFromFloat(45), Type: models.Expense, Category: "Food & Dining", Date: march,
	})
	suite.createTestTransaction(v1.TransactionEditable{
		Amount: decimal.NewFromFloat(12.50), Type: models.Expense, Category: "Transportation", Date: march.AddDate(0, 0, 4),
	})
	suite.createTestTransaction(v1.TransactionEditable{
		Amount: decimal.NewFromInt(3200), Type: models.Income, Note: "Salary", Date: march,
	})

	// April, outside the month under test
	suite.createTestTransaction(v1.TransactionEditable{
		Amount: decimal.NewFromInt(100), Type: models.Expense, Category: "Shopping", Date: march.AddDate(0, 1, 0),
	})
}

func (suite *TestSuiteStandard) TestAnalyticsSummary() {
	suite.seedAnalyticsTransactions()

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/analytics/summary?month=2024-03", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.SummaryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)

	suite.Assert().True(response.Data.Income.Equal(decimal.NewFromInt(3200)), "income is %s", response.Data.Income)
	suite.Assert().True(response.Data.Expense.Equal(decimal.NewFromFloat(57.50)), "expense is %s", response.Data.Expense)
	suite.Assert().True(response.Data.Balance.Equal(decimal.NewFromFloat(3142.50)), "balance is %s", response.Data.Balance)
}

func (suite *TestSuiteStandard) TestAnalyticsSummaryAllTime() {
	suite.seedAnalyticsTransactions()

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/analytics/summary", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.SummaryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().True(response.Data.Expense.Equal(decimal.NewFromFloat(157.50)), "expense is %s", response.Data.Expense)
}

func (suite *TestSuiteStandard) TestAnalyticsCategories() {
	suite.seedAnalyticsTransactions()

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/analytics/categories?month=2024-03", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CategoryTotalListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal("Food & Dining", response.Data[0].Name)
	suite.Assert().True(response.Data[0].Total.Equal(decimal.NewFromInt(45)), "total is %s", response.Data[0].Total)
	suite.Assert().Equal("Transportation", response.Data[1].Name)
}

func (suite *TestSuiteStandard) TestAnalyticsDaily() {
	suite.seedAnalyticsTransactions()

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/analytics/daily?month=2024-03", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.DailyTotalListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data, 31)
	suite.Assert().True(response.Data[0].Total.Equal(decimal.NewFromInt(45)), "day 1 total is %s", response.Data[0].Total)
	suite.Assert().True(response.Data[4].Total.Equal(decimal.NewFromFloat(12.50)), "day 5 total is %s", response.Data[4].Total)
	suite.Assert().True(response.Data[10].Total.IsZero())
}

func (suite *TestSuiteStandard) TestAnalyticsDailyRequiresMonth() {
	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/analytics/daily", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}
