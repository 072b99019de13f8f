package models

// Category is a user-facing label grouping transactions.
//
// The Name is the join key used by Transaction.Category. Names are not
// enforced to be unique: two categories sharing a name are merged by the
// analytics, see the analytics package documentation.
type Category struct {
	ID    string `json:"id" example:"food"`                             // Unique identifier
	Name  string `json:"name" example:"Food & Dining"`                  // Display name, used as the join key from transactions
	Icon  Icon   `json:"icon" example:"utensils"`                       // Icon identifier
	Color string `json:"color" example:"bg-orange-100 text-orange-600"` // Color token for the presentation layer
}

// SeedCategories returns the built-in category set that seeds the store
// on first use. Callers get a fresh slice and may append to it.
func SeedCategories() []Category {
	return []Category{
		{ID: "food", Name: "Food & Dining", Icon: IconUtensils, Color: "bg-orange-100 text-orange-600"},
		{ID: "transport", Name: "Transportation", Icon: IconCar, Color: "bg-blue-100 text-blue-600"},
		{ID: "shopping", Name: "Shopping", Icon: IconShoppingBag, Color: "bg-pink-100 text-pink-600"},
		{ID: "bills", Name: "Bills & Utilities", Icon: IconZap, Color: "bg-yellow-100 text-yellow-600"},
		{ID: "entertainment", Name: "Entertainment", Icon: IconFilm, Color: "bg-purple-100 text-purple-600"},
		{ID: "health", Name: "Health & Fitness", Icon: IconHeartPulse, Color: "bg-green-100 text-green-600"},
	}
}

// IncomeColor is the color token snapshotted onto income transactions,
// which have no category record to take it from.
const IncomeColor = "bg-emerald-100 text-emerald-600"
