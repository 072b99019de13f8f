// Package v1 implements the JSON API for the ledger.
package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/pocketledger/backend/internal/store"
)

// Controller holds the dependencies of the API handlers.
type Controller struct {
	store *store.Store
}

// NewController returns a Controller over the given ledger store.
func NewController(s *store.Store) Controller {
	return Controller{store: s}
}

// RegisterRoutes registers all v1 routes with the RouterGroup that is
// passed.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	co.RegisterTransactionRoutes(r.Group("/transactions"))
	co.RegisterCategoryRoutes(r.Group("/categories"))
	co.RegisterProfileRoutes(r.Group("/profile"))
	co.RegisterAnalyticsRoutes(r.Group("/analytics"))
	co.RegisterExportRoutes(r.Group("/export"))
}
