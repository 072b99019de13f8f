package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/models"
)

// RegisterProfileRoutes registers the routes for the profile with
// the RouterGroup that is passed.
func (co Controller) RegisterProfileRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGetPut)
	r.GET("", co.GetProfile)
	r.PUT("", co.UpdateProfile)
}

type ProfileEditable struct {
	Name     string `json:"name" example:"John Doe"` // Display name
	Currency string `json:"currency" example:"₹"`    // Currency symbol, one of the supported set
}

// model returns the store resource for the API representation of the
// editable fields
func (editable ProfileEditable) model() models.Profile {
	return models.Profile{
		Name:     editable.Name,
		Currency: editable.Currency,
	}
}

type ProfileResponse struct {
	Data  *models.Profile `json:"data"`                                          // The profile, null when none has been saved yet
	Error *string         `json:"error" example:"the currency is not supported"` // The error, if any occurred
}

// @Summary		Get profile
// @Description	Returns the saved profile. Data is null when no profile has been saved yet.
// @Tags			Profile
// @Produce		json
// @Success		200	{object}	ProfileResponse
// @Failure		500	{object}	ProfileResponse
// @Router			/v1/profile [get]
func (co Controller) GetProfile(c *gin.Context) {
	profile, err := co.store.Profile()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProfileResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, ProfileResponse{Data: profile})
}

// @Summary		Update profile
// @Description	Overwrites the saved profile
// @Tags			Profile
// @Accept			json
// @Produce		json
// @Success		200		{object}	ProfileResponse
// @Failure		400		{object}	ProfileResponse
// @Failure		500		{object}	ProfileResponse
// @Param			profile	body		ProfileEditable	true	"Profile"
// @Router			/v1/profile [put]
func (co Controller) UpdateProfile(c *gin.Context) {
	var editable ProfileEditable

	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(status(err), ProfileResponse{Error: &e})
		return
	}

	if strings.TrimSpace(editable.Name) == "" {
		e := errNameNotSet.Error()
		c.JSON(http.StatusBadRequest, ProfileResponse{Error: &e})
		return
	}

	if editable.Currency == "" {
		editable.Currency = models.DefaultCurrency()
	}

	if !models.ValidCurrency(editable.Currency) {
		e := errCurrencyInvalid.Error()
		c.JSON(http.StatusBadRequest, ProfileResponse{Error: &e})
		return
	}

	profile := editable.model()
	if err := co.store.SaveProfile(profile); err != nil {
		e := err.Error()
		c.JSON(status(err), ProfileResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, ProfileResponse{Data: &profile})
}
