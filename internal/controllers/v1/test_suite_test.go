package v1_test

import (
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	v1 "github.com/pocketledger/backend/internal/controllers/v1"
	"github.com/pocketledger/backend/internal/kv"
	"github.com/pocketledger/backend/internal/store"
	"github.com/stretchr/testify/suite"
)

type TestSuiteStandard struct {
	suite.Suite
	store  *store.Store
	router *gin.Engine
}

// Pseudo-Test run by go test that runs the test suite.
func TestStandard(t *testing.T) {
	suite.Run(t, new(TestSuiteStandard))
}

func (suite *TestSuiteStandard) SetupSuite() {
	os.Setenv("LOG_FORMAT", "human")
	gin.SetMode(gin.TestMode)
}

// SetupTest is called before each test in the suite, giving every test
// a fresh store.
func (suite *TestSuiteStandard) SetupTest() {
	suite.store = store.New(kv.NewMemory())

	r := gin.New()
	v1.NewController(suite.store).RegisterRoutes(r.Group("/v1"))
	suite.router = r
}
