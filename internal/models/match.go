package models

// Match pairs a catalog store with its great-circle distance from a geocoded point.
type Match struct {
	Store Store   // Store is the matched catalog entry.
	Miles float64 // Miles is the distance to the store, in statute miles.
}
