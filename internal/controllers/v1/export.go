package v1

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pocketledger/backend/internal/export"
	"github.com/pocketledger/backend/internal/httputil"
)

// RegisterExportRoutes registers the routes for exports with
// the RouterGroup that is passed.
func (co Controller) RegisterExportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/csv", httputil.OptionsGet)
	r.GET("/csv", co.ExportCSV)

	r.OPTIONS("/pdf", httputil.OptionsGet)
	r.GET("/pdf", co.ExportPDF)
}

// @Summary		Export CSV
// @Description	Downloads all transactions as a CSV file, newest first. Responds 204 when there are no transactions.
// @Tags			Export
// @Produce		text/csv
// @Success		200	{string}	string
// @Success		204
// @Failure		500	{object}	httpError
// @Router			/v1/export/csv [get]
func (co Controller) ExportCSV(c *gin.Context) {
	transactions, err := co.store.Transactions()
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if len(transactions) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	var buffer bytes.Buffer
	if err := export.WriteCSV(&buffer, transactions); err != nil {
		c.JSON(http.StatusInternalServerError, httpError{Error: err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="transactions-%s.csv"`, time.Now().Format("2006-01-02")))
	c.Data(http.StatusOK, "text/csv", buffer.Bytes())
}

// @Summary		Export PDF
// @Description	Downloads a PDF report of all transactions with a summary block. Responds 204 when there are no transactions.
// @Tags			Export
// @Produce		application/pdf
// @Success		200	{string}	string
// @Success		204
// @Failure		500	{object}	httpError
// @Router			/v1/export/pdf [get]
func (co Controller) ExportPDF(c *gin.Context) {
	transactions, err := co.store.Transactions()
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if len(transactions) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	profile, err := co.store.Profile()
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var buffer bytes.Buffer
	if err := export.WritePDF(&buffer, profile, transactions); err != nil {
		c.JSON(http.StatusInternalServerError, httpError{Error: err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="transactions-%s.pdf"`, time.Now().Format("2006-01-02")))
	c.Data(http.StatusOK, "application/pdf", buffer.Bytes())
}
