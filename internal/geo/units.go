package geo

import "fmt"

// kmPerMile converts statute miles to kilometers.
const kmPerMile = 1.609344

// Unit is a distance unit accepted by the --units flag.
type Unit string

const (
	// Miles renders distances in statute miles. This is the default unit.
	Miles Unit = "mi"
	// Kilometers renders distances converted from miles.
	Kilometers Unit = "km"
)

// ParseUnit validates a units flag value and returns the matching Unit.
func ParseUnit(value string) (Unit, error) {
	switch Unit(value) {
	case Miles, Kilometers:
		return Unit(value), nil
	default:
		return "", fmt.Errorf("invalid units %q: must be 'mi' or 'km'", value)
	}
}

// FromMiles converts a distance in statute miles to the given unit.
// Kilometers are derived proportionally from the miles figure, so both
// renderings of one lookup always agree.
func FromMiles(miles float64, unit Unit) float64 {
	if unit == Kilometers {
		return miles * kmPerMile
	}
	return miles
}
