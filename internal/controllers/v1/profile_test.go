package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/pocketledger/backend/internal/controllers/v1"
	"github.com/pocketledger/backend/test"
)

func (suite *TestSuiteStandard) TestProfileGetAbsent() {
	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/profile", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ProfileResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Nil(response.Data)
}

func (suite *TestSuiteStandard) TestProfileUpdate() {
	recorder := test.Request(suite.T(), suite.router, http.MethodPut, "/v1/profile", v1.ProfileEditable{
		Name:     "John Doe",
		Currency: "€",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	recorder = test.Request(suite.T(), suite.router, http.MethodGet, "/v1/profile", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ProfileResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal("John Doe", response.Data.Name)
	suite.Assert().Equal("€", response.Data.Currency)
}

func (suite *TestSuiteStandard) TestProfileUpdateDefaultsCurrency() {
	recorder := test.Request(suite.T(), suite.router, http.MethodPut, "/v1/profile", v1.ProfileEditable{
		Name: "John Doe",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ProfileResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal("₹", response.Data.Currency)
}

func (suite *TestSuiteStandard) TestProfileUpdateOverwrites() {
	recorder := test.Request(suite.T(), suite.router, http.MethodPut, "/v1/profile", v1.ProfileEditable{Name: "John Doe", Currency: "$"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	recorder = test.Request(suite.T(), suite.router, http.MethodPut, "/v1/profile", v1.ProfileEditable{Name: "Jane Doe", Currency: "£"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	recorder = test.Request(suite.T(), suite.router, http.MethodGet, "/v1/profile", "")
	var response v1.ProfileResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal("Jane Doe", response.Data.Name)
	suite.Assert().Equal("£", response.Data.Currency)
}

func (suite *TestSuiteStandard) TestProfileUpdateInvalid() {
	tests := []struct {
		name string
		body any
	}{
		{"no body", ""},
		{"empty name", v1.ProfileEditable{Name: " ", Currency: "₹"}},
		{"unsupported currency", v1.ProfileEditable{Name: "John Doe", Currency: "¥"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, suite.router, http.MethodPut, "/v1/profile", tt.body)
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
		})
	}
}
