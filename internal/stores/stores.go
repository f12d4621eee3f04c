// Package stores holds the retail store catalog and nearest-store selection.
package stores

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	_ "embed"

	"github.com/nearstore/find-store/internal/geo"
	"github.com/nearstore/find-store/internal/models"
)

//go:embed stores.csv
var embeddedCatalog []byte

// header is the column layout every catalog file must carry, in order.
var header = []string{
	"Store Name", "Store Location", "Address", "City", "State",
	"Zip Code", "Latitude", "Longitude", "County",
}

// ErrEmptyCatalog is returned when a store catalog holds no records.
var ErrEmptyCatalog = errors.New("store catalog holds no records")

// Default returns the store catalog embedded in the binary.
func Default() ([]models.Store, error) {
	return Load(bytes.NewReader(embeddedCatalog))
}

// LoadFile reads a store catalog from a CSV file on disk.
func LoadFile(path string) ([]models.Store, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open store catalog: %w", err)
	}
	defer file.Close()

	catalog, err := Load(file)
	if err != nil {
		return nil, fmt.Errorf("failed to load store catalog %s: %w", path, err)
	}

	return catalog, nil
}

// Load parses a store catalog from CSV. The first record must be the exact
// catalog header; every following record becomes one store. Coordinates are
// parsed to float64 for distance math.
func Load(r io.Reader) ([]models.Store, error) {
	reader := csv.NewReader(r)

	head, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog header: %w", err)
	}
	if err = checkHeader(head); err != nil {
		return nil, err
	}

	var catalog []models.Store
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog record: %w", err)
		}

		store, err := parseRecord(record)
		if err != nil {
			return nil, fmt.Errorf("invalid catalog record %d: %w", len(catalog)+1, err)
		}
		catalog = append(catalog, store)
	}

	return catalog, nil
}

// Nearest scans the catalog and returns the store closest to the given point.
// The scan keeps the strictly smaller distance, so equidistant stores resolve
// to the earliest catalog entry.
func Nearest(catalog []models.Store, point models.Coordinates) (*models.Match, error) {
	if len(catalog) == 0 {
		return nil, ErrEmptyCatalog
	}

	match := models.Match{Store: catalog[0], Miles: geo.MilesBetween(point, catalog[0].Coords())}
	for _, store := range catalog[1:] {
		if miles := geo.MilesBetween(point, store.Coords()); miles < match.Miles {
			match = models.Match{Store: store, Miles: miles}
		}
	}

	return &match, nil
}

func checkHeader(head []string) error {
	if len(head) != len(header) {
		return fmt.Errorf("unexpected catalog header: got %d columns, want %d", len(head), len(header))
	}
	for i, name := range header {
		if head[i] != name {
			return fmt.Errorf("unexpected catalog header: column %d is %q, want %q", i+1, head[i], name)
		}
	}

	return nil
}

func parseRecord(record []string) (models.Store, error) {
	latitude, err := strconv.ParseFloat(record[6], 64)
	if err != nil {
		return models.Store{}, fmt.Errorf("failed to parse latitude: %w", err)
	}

	longitude, err := strconv.ParseFloat(record[7], 64)
	if err != nil {
		return models.Store{}, fmt.Errorf("failed to parse longitude: %w", err)
	}

	return models.Store{
		Name:      record[0],
		Location:  record[1],
		Address:   record[2],
		City:      record[3],
		State:     record[4],
		Zip:       record[5],
		Latitude:  latitude,
		Longitude: longitude,
		County:    record[8],
	}, nil
}
