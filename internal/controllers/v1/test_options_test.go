package v1_test

import (
	"net/http"
	"testing"

	"github.com/pocketledger/backend/test"
)

// TestOptions verifies that all endpoints return the correct allowed
// methods.
func (suite *TestSuiteStandard) TestOptions() {
	tests := []struct {
		path  string
		allow string
	}{
		{"/v1/transactions", "GET, POST"},
		{"/v1/transactions/6f2c6a0a-23f1-4fd6-a618-d399983fa0a3", "PATCH, DELETE"},
		{"/v1/categories", "GET, POST"},
		{"/v1/profile", "GET, PUT"},
		{"/v1/analytics/summary", "GET"},
		{"/v1/analytics/categories", "GET"},
		{"/v1/analytics/daily", "GET"},
		{"/v1/export/csv", "GET"},
		{"/v1/export/pdf", "GET"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.path, func(t *testing.T) {
			recorder := test.Request(t, suite.router, http.MethodOptions, tt.path, "")
			test.AssertHTTPStatus(t, &recorder, http.StatusNoContent)

			if recorder.Header().Get("allow") != tt.allow {
				t.Errorf("allow header is %q, should be %q", recorder.Header().Get("allow"), tt.allow)
			}
		})
	}
}
