package v1

import (
	"github.com/pocketledger/backend/internal/types"
)

type URIID struct {
	ID string `uri:"id" binding:"required"` // ID of the resource
}

type QueryMonth struct {
	Month types.Month `form:"month" example:"2024-03"` // Year and month in YYYY-MM format
}
