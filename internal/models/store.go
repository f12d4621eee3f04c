package models

// Store represents a single retail location from the store catalog.
type Store struct {
	Name      string  // Name is the store's display name, e.g. "Morrisville".
	Location  string  // Location is the site label, e.g. "SWC NC Hwy 54 & Cary Parkway".
	Address   string  // Address is the street address.
	City      string  // City is the city name.
	State     string  // State is the two-letter state code.
	Zip       string  // Zip is the postal code.
	Latitude  float64 // Latitude of the store, parsed from the catalog.
	Longitude float64 // Longitude of the store, parsed from the catalog.
	County    string  // County is the county name.
}

// Coords returns the store's position as a Coordinates value.
func (s Store) Coords() Coordinates {
	return Coordinates{Longitude: s.Longitude, Latitude: s.Latitude}
}
