// Package export renders the transaction collection into the report formats
// the client offers for download: CSV rows and a paginated PDF document.
package export

import (
	"encoding/csv"
	"io"

	"github.com/pocketledger/backend/internal/models"
	"golang.org/x/exp/slices"
)

// sortedForDisplay returns a copy of the transactions sorted by date,
// descending, the order consumers display them in.
func sortedForDisplay(transactions []models.Transaction) []models.Transaction {
	sorted := slices.Clone(transactions)
	slices.SortStableFunc(sorted, func(a, b models.Transaction) int {
		return b.Date.Compare(a.Date)
	})

	return sorted
}

// WriteCSV writes the transactions as CSV rows of
// (date, type, category, amount, note), newest first, with a header row.
func WriteCSV(w io.Writer, transactions []models.Transaction) error {
	cw := csv.NewWriter(w)

	err := cw.Write([]string{"date", "type", "category", "amount", "note"})
	if err != nil {
		return err
	}

	for _, transaction := range sortedForDisplay(transactions) {
		err = cw.Write([]string{
			transaction.Date.Format("2006-01-02"),
			string(transaction.Type),
			transaction.Category,
			transaction.Amount.StringFixed(2),
			transaction.Note,
		})
		if err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
