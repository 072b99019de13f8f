package v1_test

import (
	"net/http"
	"strings"
	"time"

	v1 "github.com/pocketledger/backend/internal/controllers/v1"
	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestExportCSVEmpty() {
	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/export/csv", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
}

func (suite *TestSuiteStandard) TestExportCSV() {
	suite.createTestTransaction(v1.TransactionEditable{
		Amount: decimal.NewFromFloat(14.03), Type: models.Expense, Category: "Food & Dining",
		Note: "Grocery Run", Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	})

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/export/csv", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	suite.Assert().Equal("text/csv", recorder.Header().Get("Content-Type"))
	suite.Assert().Contains(recorder.Header().Get("Content-Disposition"), "attachment")

	lines := strings.Split(strings.TrimSpace(recorder.Body.String()), "\n")
	suite.Require().Len(lines, 2)
	suite.Assert().Equal("date,type,category,amount,note", lines[0])
	suite.Assert().Equal("2024-03-01,expense,Food & Dining,14.03,Grocery Run", lines[1])
}

func (suite *TestSuiteStandard) TestExportPDFEmpty() {
	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/export/pdf", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
}

func (suite *TestSuiteStandard) TestExportPDF() {
	suite.createTestTransaction(v1.TransactionEditable{
		Amount: decimal.NewFromFloat(14.03), Type: models.Expense, Category: "Food & Dining",
		Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	})

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/export/pdf", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	suite.Assert().Equal("application/pdf", recorder.Header().Get("Content-Type"))
	suite.Assert().True(strings.HasPrefix(recorder.Body.String(), "%PDF"), "body does not start with the PDF magic bytes")
}
