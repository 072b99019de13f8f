package models

// Icon is an identifier for a display icon. The backend never renders icons,
// it only hands the identifier to the presentation layer. The set is closed:
// unknown identifiers normalize to IconDefault.
type Icon string

const (
	IconUtensils    Icon = "utensils"
	IconCar         Icon = "car"
	IconShoppingBag Icon = "shopping-bag"
	IconZap         Icon = "zap"
	IconFilm        Icon = "film"
	IconHeartPulse  Icon = "heart-pulse"
	IconWallet      Icon = "wallet"

	IconDefault = IconWallet
)

var icons = map[Icon]bool{
	IconUtensils:    true,
	IconCar:         true,
	IconShoppingBag: true,
	IconZap:         true,
	IconFilm:        true,
	IconHeartPulse:  true,
	IconWallet:      true,
}

// Valid reports whether the icon is part of the supported set.
func (i Icon) Valid() bool {
	return icons[i]
}

// NormalizeIcon maps an identifier to a supported Icon, falling back
// to IconDefault for anything outside the set.
func NormalizeIcon(s string) Icon {
	if icon := Icon(s); icon.Valid() {
		return icon
	}

	return IconDefault
}
