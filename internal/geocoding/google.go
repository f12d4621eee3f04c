package geocoding

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"

	"github.com/nearstore/find-store/internal/models"
	"googlemaps.github.io/maps"
)

// GoogleProvider is a struct that holds the client for Google Maps API
// and a logger for logging purposes. It is used to interact with the
// Google Maps geocoding services.
type GoogleProvider struct {
	client GoogleAPIClient // client is the Google Maps API client
	log    *slog.Logger    // log is the logger for logging operations
}

type GoogleAPIClient interface {
	Geocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error)
}

// ErrEmptyResponse is returned when the Google Maps API responds with an empty result.
var ErrEmptyResponse = errors.New("get empty response from Google Maps API")

// zipPattern matches a five digit US postal code with an optional ZIP+4 suffix.
var zipPattern = regexp.MustCompile(`^\d{5}(-\d{4})?$`)

// NewClient initializes a Google Maps client with the given API key and
// rate limit in requests per second. Returns an error if the key is missing
// or the client cannot be constructed.
func NewClient(apiKey string, rateLimit int) (*maps.Client, error) {
	if apiKey == "" {
		return nil, errors.New("API key is required for the Google Maps client")
	}

	clientOpts := []maps.ClientOption{maps.WithAPIKey(apiKey)}
	if rateLimit > 0 {
		clientOpts = append(clientOpts, maps.WithRateLimit(rateLimit))
	}

	client, err := maps.NewClient(clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Google Maps client: %w", err)
	}

	return client, nil
}

// NewGoogleProvider initializes a new GoogleProvider with the given API client and logger.
func NewGoogleProvider(client GoogleAPIClient, log *slog.Logger) *GoogleProvider {
	return &GoogleProvider{client: client, log: log}
}

// Geocode takes a context and a query string as input, and returns the geographical
// coordinates and formatted address of the best match using the Google Maps Geocoding API.
// Queries that look like US postal codes are sent as a component filter so the API
// resolves the ZIP itself rather than a street address that happens to contain digits.
// If the query cannot be geocoded or if the response is empty, it returns an appropriate error.
func (gp *GoogleProvider) Geocode(ctx context.Context, query string) (*models.Location, error) {
	gp.log.DebugContext(ctx, "Geocoding using Google Maps", "query", query)

	req := requestFor(query)
	geocodeResponse, err := gp.client.Geocode(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to geocode query: %w", err)
	}

	if len(geocodeResponse) == 0 {
		return nil, ErrEmptyResponse
	}
	best := geocodeResponse[0]

	return &models.Location{
		Coordinates:      models.Coordinates{Longitude: best.Geometry.Location.Lng, Latitude: best.Geometry.Location.Lat},
		FormattedAddress: best.FormattedAddress,
	}, nil
}

// requestFor shapes the geocoding request for a query: ZIP-looking queries
// become a postal code component filter restricted to the US, anything else
// is sent as a free-form address.
func requestFor(query string) *maps.GeocodingRequest {
	if zipPattern.MatchString(query) {
		return &maps.GeocodingRequest{
			Components: map[maps.Component]string{
				maps.ComponentPostalCode: query,
				maps.ComponentCountry:    "US",
			},
		}
	}

	return &maps.GeocodingRequest{Address: query}
}
