package models

// Profile is the single local user record gating access to the application.
// At most one profile exists at a time. Its absence signals that onboarding
// has not completed yet.
type Profile struct {
	Name     string `json:"name" example:"John Doe"` // Display name
	Currency string `json:"currency" example:"₹"`    // Currency symbol, one of Currencies
}

// Currencies is the set of supported currency symbols.
// The first entry is the default used when a profile is synced
// from the authentication gateway.
var Currencies = []string{"₹", "$", "€", "£"}

// ValidCurrency reports whether the symbol is a supported currency.
func ValidCurrency(symbol string) bool {
	for _, c := range Currencies {
		if c == symbol {
			return true
		}
	}

	return false
}

// DefaultCurrency returns the currency used when none was chosen explicitly.
func DefaultCurrency() string {
	return Currencies[0]
}
