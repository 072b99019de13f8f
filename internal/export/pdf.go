package export

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
	"github.com/pocketledger/backend/internal/analytics"
	"github.com/pocketledger/backend/internal/models"
)

// Column widths for the transaction table, in mm.
var pdfColumns = []struct {
	title string
	width float64
	align string
}{
	{"Date", 25, "L"},
	{"Type", 20, "L"},
	{"Category", 45, "L"},
	{"Amount", 30, "R"},
	{"Note", 70, "L"},
}

// WritePDF writes a paginated transaction report: a summary block with the
// balance, income and expense totals, followed by one table row per
// transaction, newest first. The profile may be nil, in which case the
// default currency symbol is used.
func WritePDF(w io.Writer, profile *models.Profile, transactions []models.Transaction) error {
	currency := models.DefaultCurrency()
	name := ""
	if profile != nil {
		currency = profile.Currency
		name = profile.Name
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(true, 20)

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()

	// Title
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Transaction Report", "", 1, "L", false, 0, "")
	if name != "" {
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 6, tr(name), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	// Summary block
	summary := []struct {
		label string
		value string
	}{
		{"Balance", tr(currency + analytics.Balance(transactions).StringFixed(2))},
		{"Income", tr(currency + analytics.SumByType(transactions, models.Income).StringFixed(2))},
		{"Expense", tr(currency + analytics.SumByType(transactions, models.Expense).StringFixed(2))},
	}

	pdf.SetFont("Helvetica", "B", 10)
	for _, item := range summary {
		pdf.CellFormat(30, 7, item.label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(40, 7, item.value, "", 1, "R", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
	}
	pdf.Ln(6)

	// Table header
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(240, 240, 240)
	for _, column := range pdfColumns {
		pdf.CellFormat(column.width, 8, column.title, "1", 0, column.align, true, 0, "")
	}
	pdf.Ln(-1)

	// Table rows
	pdf.SetFont("Helvetica", "", 9)
	for _, transaction := range sortedForDisplay(transactions) {
		cells := []string{
			transaction.Date.Format("2006-01-02"),
			string(transaction.Type),
			tr(transaction.Category),
			tr(currency + transaction.Amount.StringFixed(2)),
			tr(transaction.Note),
		}

		for i, column := range pdfColumns {
			pdf.CellFormat(column.width, 7, cells[i], "1", 0, column.align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	return pdf.Output(w)
}
