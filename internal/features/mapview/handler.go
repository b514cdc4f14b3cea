// ================== internal/features/mapview/handler.go ==================
package mapview

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ModesteNGOMA/geofuite/internal/pkg/logger"
	"github.com/ModesteNGOMA/geofuite/internal/pkg/response"
)

type Handler struct {
	defaultLat float64
	defaultLng float64
	geocoder   *Geocoder
}

// NewHandler creates the map boundary handler. A nil geocoder runs the
// address endpoint in disabled mode.
func NewHandler(defaultLat, defaultLng float64, geocoder *Geocoder) *Handler {
	return &Handler{
		defaultLat: defaultLat,
		defaultLng: defaultLng,
		geocoder:   geocoder,
	}
}

// GetEmbed godoc
// @Summary Get the incident map embed
// @Description Returns the map view descriptor centered on the given coordinates, or on the configured default location when none are provided
// @Tags map
// @Produce json
// @Param lat query number false "Latitude"
// @Param lng query number false "Longitude"
// @Success 200 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /map/ [get]
func (h *Handler) GetEmbed(c *gin.Context) {
	lat := h.defaultLat
	lng := h.defaultLng

	latStr := c.Query("lat")
	lngStr := c.Query("lng")
	if latStr != "" || lngStr != "" {
		parsedLat, errLat := strconv.ParseFloat(latStr, 64)
		parsedLng, errLng := strconv.ParseFloat(lngStr, 64)
		if errLat != nil || errLng != nil {
			response.BadRequest(c, "lat and lng must both be valid decimal degrees", "INVALID_COORDINATES")
			return
		}
		lat = parsedLat
		lng = parsedLng
	}

	response.Success(c, NewEmbed(lat, lng, DefaultZoom))
}

// GetAddress godoc
// @Summary Suggest an address for a position
// @Description Reverse-geocodes a coordinate pair into a postal address for the report form
// @Tags map
// @Produce json
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Success 200 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 503 {object} response.ErrorResponse
// @Router /map/address [get]
func (h *Handler) GetAddress(c *gin.Context) {
	if h.geocoder == nil {
		response.ServiceUnavailable(c, "Address lookup is not configured", "GEOCODING_DISABLED")
		return
	}

	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lng, errLng := strconv.ParseFloat(c.Query("lng"), 64)
	if errLat != nil || errLng != nil {
		response.BadRequest(c, "lat and lng must both be valid decimal degrees", "INVALID_COORDINATES")
		return
	}

	address, err := h.geocoder.ReverseGeocode(c.Request.Context(), lat, lng)
	if err != nil {
		if errors.Is(err, ErrNoAddressFound) {
			response.NotFound(c, "No address found for this position")
			return
		}
		logger.Warn("reverse geocoding failed: %v", err)
		response.ServiceUnavailable(c, "Address lookup failed", "GEOCODING_FAILED")
		return
	}

	response.Success(c, gin.H{"address": address})
}
