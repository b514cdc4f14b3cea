// ================== internal/features/mapview/model.go ==================
package mapview

import "fmt"

// DefaultZoom is the zoom level of the incident map.
const DefaultZoom = 14

// Embed describes a location-centered map view the client can render
// @Description Map embed descriptor with center coordinates and zoom
type Embed struct {
	Latitude  float64 `json:"latitude" example:"48.8566"`
	Longitude float64 `json:"longitude" example:"2.3522"`
	Zoom      int     `json:"zoom" example:"14"`
	EmbedURL  string  `json:"embedUrl" example:"https://maps.google.com/maps?q=48.8566,2.3522&z=14&output=embed"`
}

// NewEmbed builds the embed descriptor for a coordinate pair.
func NewEmbed(lat, lng float64, zoom int) Embed {
	return Embed{
		Latitude:  lat,
		Longitude: lng,
		Zoom:      zoom,
		EmbedURL:  fmt.Sprintf("https://maps.google.com/maps?q=%v,%v&z=%d&output=embed", lat, lng, zoom),
	}
}
