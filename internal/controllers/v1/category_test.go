package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/pocketledger/backend/internal/controllers/v1"
	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/test"
)

func (suite *TestSuiteStandard) TestCategoriesGetSeed() {
	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/categories", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data, 6)
	suite.Assert().Equal("Food & Dining", response.Data[0].Name)
	suite.Assert().Equal(models.IconUtensils, response.Data[0].Icon)
}

func (suite *TestSuiteStandard) TestCategoriesCreate() {
	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "/v1/categories", v1.CategoryEditable{
		Name:  "Pets",
		Icon:  "heart-pulse",
		Color: "bg-teal-100 text-teal-600",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.CategoryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().NotEmpty(response.Data.ID)
	suite.Assert().Equal(models.IconHeartPulse, response.Data.Icon)

	// The custom category is appended after the seed set
	recorder = test.Request(suite.T(), suite.router, http.MethodGet, "/v1/categories", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var list v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &recorder, &list)
	suite.Require().Len(list.Data, 7)
	suite.Assert().Equal("Pets", list.Data[6].Name)
}

func (suite *TestSuiteStandard) TestCategoriesCreateUnknownIcon() {
	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "/v1/categories", v1.CategoryEditable{
		Name: "Gifts",
		Icon: "sparkles",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.CategoryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(models.IconDefault, response.Data.Icon)
}

func (suite *TestSuiteStandard) TestCategoriesCreateInvalid() {
	tests := []struct {
		name string
		body any
	}{
		{"no body", ""},
		{"broken body", `{"name": `},
		{"empty name", v1.CategoryEditable{Name: "  "}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, suite.router, http.MethodPost, "/v1/categories", tt.body)
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
		})
	}
}
