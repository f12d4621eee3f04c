// Package report renders lookup results and failures in the formats
// accepted by the --output flag. It is the only place output is written,
// so the transcripts stay stable.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/nearstore/find-store/internal/geo"
	"github.com/nearstore/find-store/internal/geocoding"
	"github.com/nearstore/find-store/internal/models"
)

// Format is an output format accepted by the --output flag.
type Format string

const (
	// Text renders a human readable sentence block. This is the default format.
	Text Format = "text"
	// JSON renders a single JSON object.
	JSON Format = "json"
)

// notFoundMessage is shown when the geocoding backend has no match for the query.
const notFoundMessage = "Could not locate that address on a map. You may wish to verify that it is correct."

// ParseFormat validates an output flag value and returns the matching Format.
func ParseFormat(value string) (Format, error) {
	switch Format(value) {
	case Text, JSON:
		return Format(value), nil
	default:
		return "", fmt.Errorf("invalid output %q: must be 'text' or 'json'", value)
	}
}

// storeResult is the JSON shape of a successful lookup. The keys mirror the
// store catalog columns; coordinates stay the catalog's literal decimal strings.
type storeResult struct {
	Name      string `json:"Store Name"`
	Location  string `json:"Store Location"`
	Address   string `json:"Address"`
	City      string `json:"City"`
	State     string `json:"State"`
	Zip       string `json:"Zip Code"`
	Latitude  string `json:"Latitude"`
	Longitude string `json:"Longitude"`
	County    string `json:"County"`
	Distance  string `json:"Distance"`
}

// errorResult is the JSON shape of a failed lookup.
type errorResult struct {
	Error string `json:"error"`
}

// Write renders a successful match to w in the given format and unit.
// The query is echoed back in the text rendering.
func Write(w io.Writer, format Format, match *models.Match, unit geo.Unit, query string) error {
	distance := geo.FromMiles(match.Miles, unit)

	if format == JSON {
		return writeJSON(w, match.Store, distance, unit)
	}

	return writeText(w, match.Store, distance, unit, query)
}

// WriteError renders a failed lookup to w in the given format. The
// ErrEmptyResponse sentinel maps to the canonical not-found message;
// any other error renders as its own message.
func WriteError(w io.Writer, format Format, err error) {
	message := err.Error()
	if errors.Is(err, geocoding.ErrEmptyResponse) {
		message = notFoundMessage
	}

	if format == JSON {
		_ = encode(w, errorResult{Error: message})
		return
	}

	fmt.Fprintf(w, "Error: %s\n", message)
}

func writeText(w io.Writer, store models.Store, distance float64, unit geo.Unit, query string) error {
	_, err := fmt.Fprintf(w,
		"The nearest store to %s is the %s store, located at %s.\nIt's %.1f %s away.\nAddress: %s\n         %s, %s %s\n",
		query, store.Name, store.Location,
		distance, unit,
		store.Address,
		store.City, store.State, store.Zip,
	)
	if err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}

	return nil
}

func writeJSON(w io.Writer, store models.Store, distance float64, unit geo.Unit) error {
	result := storeResult{
		Name:      store.Name,
		Location:  store.Location,
		Address:   store.Address,
		City:      store.City,
		State:     store.State,
		Zip:       store.Zip,
		Latitude:  strconv.FormatFloat(store.Latitude, 'f', -1, 64),
		Longitude: strconv.FormatFloat(store.Longitude, 'f', -1, 64),
		County:    store.County,
		Distance:  fmt.Sprintf("%.4f %s", distance, unit),
	}

	if err := encode(w, result); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	return nil
}

// encode writes v as a single JSON line. HTML escaping is off so catalog
// values like "NC Hwy 54 & Cary Parkway" render verbatim.
func encode(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)

	return encoder.Encode(v)
}
