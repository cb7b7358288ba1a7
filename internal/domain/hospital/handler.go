package hospital

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/swasthya/triage/internal/platform/geo"
)

type Handler struct {
	ranker        *Ranker
	defaultOrigin geo.Coordinate
}

func NewHandler(ranker *Ranker, defaultOrigin geo.Coordinate) *Handler {
	return &Handler{ranker: ranker, defaultOrigin: defaultOrigin}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/hospitals", h.ListHospitals)
	api.GET("/hospitals/:id/emergency-contacts", h.GetEmergencyContacts)
}

type listResponse struct {
	Hospitals []RankedHospital `json:"hospitals"`
	Count     int              `json:"count"`
}

// ListHospitals ranks hospitals around the caller-supplied origin. Missing or
// partial coordinates fall back to the configured default reference point.
func (h *Handler) ListHospitals(c echo.Context) error {
	origin := h.defaultOrigin
	latStr, lngStr := c.QueryParam("lat"), c.QueryParam("lng")
	if latStr != "" && lngStr != "" {
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lng, lngErr := strconv.ParseFloat(lngStr, 64)
		if latErr != nil || lngErr != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid lat/lng")
		}
		parsed := geo.Coordinate{Lat: lat, Lng: lng}
		if !parsed.Valid() {
			return echo.NewHTTPError(http.StatusBadRequest, "lat/lng out of range")
		}
		origin = parsed
	}

	ayushmanOnly := false
	if v := c.QueryParam("ayushman_only"); v != "" {
		ayushmanOnly, _ = strconv.ParseBool(v)
	}

	var hospitals []RankedHospital
	if specialty := c.QueryParam("specialty"); specialty != "" {
		hospitals = h.ranker.BySpecialty(specialty, origin, ayushmanOnly)
	} else {
		hospitals = h.ranker.Rank(origin, ayushmanOnly, DefaultMaxDistanceKm, DefaultLimit)
	}

	return c.JSON(http.StatusOK, listResponse{Hospitals: hospitals, Count: len(hospitals)})
}

func (h *Handler) GetEmergencyContacts(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	contacts := h.ranker.EmergencyContacts(id)
	if contacts == nil {
		return echo.NewHTTPError(http.StatusNotFound, "hospital not found")
	}
	return c.JSON(http.StatusOK, contacts)
}
