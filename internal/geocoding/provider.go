package geocoding

import (
	"context"

	"github.com/nearstore/find-store/internal/models"
)

// Provider is an interface that defines a method for geocoding a query.
// The Geocode method takes a context and a query string as input,
// and returns the matched location and an error if any occurs.
type Provider interface {
	Geocode(ctx context.Context, query string) (*models.Location, error)
}
