package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nearstore/find-store/internal/geocoding"
	"github.com/nearstore/find-store/internal/models"
	"github.com/nearstore/find-store/internal/stores"
)

// Finder resolves a query to the nearest store. It geocodes the query
// through the configured provider and scans the store catalog for the
// closest entry.
type Finder struct {
	log      *slog.Logger       // Logger for logging lookup activities
	provider geocoding.Provider // Geocoding provider for the external geocoding service
	catalog  []models.Store     // Catalog of candidate stores
}

// NewFinder creates a new instance of Finder. It takes a logger, a geocoding
// provider, and the store catalog to search. It returns a pointer to the
// newly created Finder.
func NewFinder(log *slog.Logger, provider geocoding.Provider, catalog []models.Store) *Finder {
	return &Finder{log: log, provider: provider, catalog: catalog}
}

// FindNearest geocodes the query and returns the catalog store closest to the
// geocoded point, together with the distance in miles. Errors from the
// provider are wrapped so callers can still match the provider's sentinels.
func (f *Finder) FindNearest(ctx context.Context, query string) (*models.Match, error) {
	location, err := f.provider.Geocode(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to geocode %q: %w", query, err)
	}

	f.log.DebugContext(ctx, "Query geocoded",
		"query", query,
		"latitude", location.Latitude,
		"longitude", location.Longitude,
		"formatted_address", location.FormattedAddress,
	)

	match, err := stores.Nearest(f.catalog, location.Coordinates)
	if err != nil {
		return nil, fmt.Errorf("failed to select nearest store: %w", err)
	}

	f.log.InfoContext(ctx, "Nearest store selected", "store", match.Store.Name, "miles", match.Miles)

	return match, nil
}
