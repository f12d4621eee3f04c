package models

// Location represents a geocoded match: the geographical point plus the
// canonical address string the geocoding backend resolved the query to.
type Location struct {
	Coordinates             // Coordinates is the geographical point of the match.
	FormattedAddress string // FormattedAddress is the backend's canonical form of the query.
}
