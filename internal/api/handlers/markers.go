package handlers

import (
	"errors"
	"mappulator-service/internal/api/dto"
	"mappulator-service/internal/domain"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// POIStore is the read side of the location store used by the display API.
type POIStore interface {
	Current() []domain.PointOfInterest
	RefreshDistances(current []domain.PointOfInterest, observer domain.Coordinate) []domain.PointOfInterest
	Observer() (domain.Coordinate, bool)
}

// MarkerHandler exposes one map marker per point of interest.
type MarkerHandler struct {
	Store POIStore
}

// List renders the displayed list. With lat and lon query parameters the
// distances are computed for that observer instead, leaving the store as is.
func (h *MarkerHandler) List(c *gin.Context) {
	pois := h.Store.Current()

	latStr, hasLat := c.GetQuery("lat")
	lonStr, hasLon := c.GetQuery("lon")
	if hasLat || hasLon {
		observer, err := parseObserver(latStr, lonStr)
		if err != nil {
			writeError(c, http.StatusBadRequest, err.Error())
			return
		}
		pois = h.Store.RefreshDistances(pois, observer)
	}

	res := dto.ListMarkersResponse{Markers: make([]dto.MarkerResponse, 0, len(pois))}
	for i, p := range pois {
		res.Markers = append(res.Markers, toMarkerResponse(domain.NewMarker(i, p)))
	}

	c.JSON(http.StatusOK, res)
}

// Get reveals the precomputed distance of the marker at :index.
func (h *MarkerHandler) Get(c *gin.Context) {
	idx, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		writeError(c, http.StatusBadRequest, "index must be an integer")
		return
	}

	pois := h.Store.Current()
	if idx < 0 || idx >= len(pois) {
		writeError(c, http.StatusNotFound, "marker not found")
		return
	}

	c.JSON(http.StatusOK, toMarkerResponse(domain.NewMarker(idx, pois[idx])))
}

// Observer reports the fix the displayed distances were measured from, or
// null before activation has obtained one.
func (h *MarkerHandler) Observer(c *gin.Context) {
	var res dto.ObserverResponse
	if fix, ok := h.Store.Observer(); ok {
		res.Observer = &dto.CoordinateResponse{Latitude: fix.Latitude, Longitude: fix.Longitude}
	}
	c.JSON(http.StatusOK, res)
}

func parseObserver(latStr, lonStr string) (domain.Coordinate, error) {
	lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil {
		return domain.Coordinate{}, errBadObserver
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(lonStr), 64)
	if err != nil {
		return domain.Coordinate{}, errBadObserver
	}
	observer := domain.Coordinate{Latitude: lat, Longitude: lon}
	if !observer.Finite() {
		return domain.Coordinate{}, errBadObserver
	}
	return observer, nil
}

var errBadObserver = errors.New("lat and lon must both be decimal degrees")

func toMarkerResponse(m domain.Marker) dto.MarkerResponse {
	return dto.MarkerResponse{
		Index:       m.Index,
		Title:       m.Title,
		Type:        string(m.Type),
		Description: m.Description,
		Icon:        m.Icon,
		Coordinate: dto.CoordinateResponse{
			Latitude:  m.Coordinate.Latitude,
			Longitude: m.Coordinate.Longitude,
		},
		Anchor:     dto.AnchorResponse{X: m.Anchor.X, Y: m.Anchor.Y},
		DistanceKm: m.DistanceKm,
		Projected:  dto.ProjectedResponse{X: m.Projected.X, Y: m.Projected.Y},
	}
}
