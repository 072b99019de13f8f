// Package analytics computes derived figures over a snapshot of the
// transaction list. All functions are pure: they never touch the store and
// treat empty input as valid input producing zero or empty results.
package analytics

import (
	"time"

	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// FilterMonth returns the transactions dated within the given month.
func FilterMonth(transactions []models.Transaction, month types.Month) []models.Transaction {
	filtered := make([]models.Transaction, 0)
	for _, transaction := range transactions {
		if month.Contains(transaction.Date) {
			filtered = append(filtered, transaction)
		}
	}

	return filtered
}

// SumByType returns the sum of all amounts with the matching type.
func SumByType(transactions []models.Transaction, transactionType models.TransactionType) decimal.Decimal {
	sum := decimal.Zero
	for _, transaction := range transactions {
		if transaction.Type == transactionType {
			sum = sum.Add(transaction.Amount)
		}
	}

	return sum
}

// Balance returns the total balance: income minus expenses.
func Balance(transactions []models.Transaction) decimal.Decimal {
	return SumByType(transactions, models.Income).Sub(SumByType(transactions, models.Expense))
}

// CategoryTotal is the spending total for one category.
type CategoryTotal struct {
	Name  string          `json:"name" example:"Food & Dining"`                  // Category display name
	Total decimal.Decimal `json:"total" example:"450"`                           // Sum of expense amounts for the category
	Icon  models.Icon     `json:"icon" example:"utensils"`                       // Icon identifier of the category
	Color string          `json:"color" example:"bg-orange-100 text-orange-600"` // Color token of the category
}

// CategoryTotals sums the expense transactions per known category, joined on
// the category display name. Categories with a total of exactly zero are
// excluded. The result is sorted by total, descending.
//
// Category names are not enforced unique. When two categories share a name,
// their transactions are indistinguishable and the totals merge into one
// entry per category record.
func CategoryTotals(transactions []models.Transaction, categories []models.Category) []CategoryTotal {
	totals := make([]CategoryTotal, 0)

	for _, category := range categories {
		total := decimal.Zero
		for _, transaction := range transactions {
			if transaction.Type == models.Expense && transaction.Category == category.Name {
				total = total.Add(transaction.Amount)
			}
		}

		if total.IsZero() {
			continue
		}

		totals = append(totals, CategoryTotal{
			Name:  category.Name,
			Total: total,
			Icon:  category.Icon,
			Color: category.Color,
		})
	}

	slices.SortStableFunc(totals, func(a, b CategoryTotal) int {
		return b.Total.Cmp(a.Total)
	})

	return totals
}

// DailyTotal is the expense total for one calendar day.
type DailyTotal struct {
	Day   time.Time       `json:"day" example:"2024-03-01T00:00:00Z"` // Midnight UTC of the day
	Total decimal.Decimal `json:"total" example:"45"`                 // Sum of expense amounts on the day
}

// DailyTotals returns one entry per calendar day of the month, each holding
// the sum of expense amounts dated on that day, zero when there are none.
func DailyTotals(transactions []models.Transaction, month types.Month) []DailyTotal {
	totals := make([]DailyTotal, month.Days())

	for i := range totals {
		totals[i].Day = month.Day(i + 1)
		totals[i].Total = decimal.Zero
	}

	for _, transaction := range transactions {
		if transaction.Type != models.Expense || !month.Contains(transaction.Date) {
			continue
		}

		day := transaction.Date.Day()
		totals[day-1].Total = totals[day-1].Total.Add(transaction.Amount)
	}

	return totals
}
