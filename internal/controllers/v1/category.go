package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/models"
)

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func (co Controller) RegisterCategoryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGetPost)
	r.GET("", co.GetCategories)
	r.POST("", co.CreateCategory)
}

type CategoryEditable struct {
	Name  string `json:"name" example:"Pets" binding:"required"`      // Display name, used as the join key from transactions
	Icon  string `json:"icon" example:"heart-pulse" default:"wallet"` // Icon identifier, unknown identifiers fall back to the default
	Color string `json:"color" example:"bg-teal-100 text-teal-600"`   // Color token for the presentation layer
}

// model returns the store resource for the API representation of the
// editable fields
func (editable CategoryEditable) model() models.Category {
	return models.Category{
		Name:  editable.Name,
		Icon:  models.NormalizeIcon(editable.Icon),
		Color: editable.Color,
	}
}

type CategoryResponse struct {
	Data  *models.Category `json:"data"`                                  // The category data, if the request was successful
	Error *string          `json:"error" example:"the name must be set"` // The error, if any occurred
}

type CategoryListResponse struct {
	Data  []models.Category `json:"data"`                                             // List of categories
	Error *string           `json:"error" example:"persisted record cannot be parsed"` // The error, if any occurred
}

// @Summary		Get categories
// @Description	Returns the list of categories. The built-in set is returned until a category has been added.
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryListResponse
// @Failure		500	{object}	CategoryListResponse
// @Router			/v1/categories [get]
func (co Controller) GetCategories(c *gin.Context) {
	categories, err := co.store.Categories()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryListResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, CategoryListResponse{Data: categories})
}

// @Summary		Create category
// @Description	Adds a custom category to the set
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		201			{object}	CategoryResponse
// @Failure		400			{object}	CategoryResponse
// @Failure		500			{object}	CategoryResponse
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/v1/categories [post]
func (co Controller) CreateCategory(c *gin.Context) {
	var editable CategoryEditable

	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &e})
		return
	}

	if strings.TrimSpace(editable.Name) == "" {
		e := errNameNotSet.Error()
		c.JSON(http.StatusBadRequest, CategoryResponse{Error: &e})
		return
	}

	category := editable.model()
	category.ID = uuid.NewString()

	if err := co.store.SaveCategory(category); err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &e})
		return
	}

	c.JSON(http.StatusCreated, CategoryResponse{Data: &category})
}
