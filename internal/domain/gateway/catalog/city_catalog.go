package catalog

import (
	_ "embed"
	"fmt"
	"strings"

	"go-weather/internal/domain/entity"

	"golang.org/x/text/cases"
	"gopkg.in/yaml.v3"
)

//go:embed cities.yml
var embeddedCities []byte

type CityCatalog interface {
	// Find returns the cities whose name or country contains filter, ignoring case.
	// A blank filter returns the whole catalog.
	Find(filter string) []entity.PopularCity
}

type cityCatalogFile struct {
	Cities []entity.PopularCity `yaml:"cities"`
}

type embeddedCityCatalog struct {
	cities []entity.PopularCity
}

// NewEmbeddedCityCatalog decodes the catalog compiled into the binary
func NewEmbeddedCityCatalog() (CityCatalog, error) {
	return newCityCatalog(embeddedCities)
}

func newCityCatalog(data []byte) (CityCatalog, error) {
	var file cityCatalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to decode city catalog: %w", err)
	}

	for i, city := range file.Cities {
		if _, err := entity.NewCoordinates(city.Latitude, city.Longitude); err != nil {
			return nil, fmt.Errorf("city catalog entry %d (%s): %w", i, city.Name, err)
		}
	}

	return &embeddedCityCatalog{cities: file.Cities}, nil
}

func (c *embeddedCityCatalog) Find(filter string) []entity.PopularCity {
	filter = strings.TrimSpace(filter)
	if filter == "" {
		return append([]entity.PopularCity(nil), c.cities...)
	}

	fold := cases.Fold()
	needle := fold.String(filter)

	matches := make([]entity.PopularCity, 0)
	for _, city := range c.cities {
		if strings.Contains(fold.String(city.Name), needle) || strings.Contains(fold.String(city.Country), needle) {
			matches = append(matches, city)
		}
	}
	return matches
}
