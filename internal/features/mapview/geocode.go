package mapview

import (
	"context"
	"fmt"
	"time"

	"googlemaps.github.io/maps"
)

// ErrNoAddressFound is returned when the geocoder has no result for a
// coordinate pair.
var ErrNoAddressFound = fmt.Errorf("no address found for location")

// Geocoder resolves a coordinate pair to a postal address so the form can
// suggest one once the device position is acquired.
type Geocoder struct {
	client *maps.Client
}

// NewGeocoder creates a geocoder backed by the Google Maps web API.
func NewGeocoder(apiKey string) (*Geocoder, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("init maps client: %w", err)
	}
	return &Geocoder{client: client}, nil
}

// ReverseGeocode returns the formatted address of the first result.
func (g *Geocoder) ReverseGeocode(ctx context.Context, lat, lng float64) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	geos, err := g.client.Geocode(ctx, &maps.GeocodingRequest{
		LatLng: &maps.LatLng{
			Lat: lat,
			Lng: lng,
		},
		Language: "fr",
	})
	if err != nil {
		return "", err
	}

	if len(geos) == 0 {
		return "", ErrNoAddressFound
	}

	return geos[0].FormattedAddress, nil
}
