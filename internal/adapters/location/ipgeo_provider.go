package location

import (
	"context"
	"errors"
	"fmt"
	"log"
	"mappulator-service/internal/domain"
	"mappulator-service/internal/platform/obs"
	"mappulator-service/internal/ports"
	"net/http"
	"time"
)

const DefaultIPGeoURL = "http://ip-api.com/json/"

// IPGeoLocationProvider implements LocationProvider by resolving the host's
// public IP address to a coordinate through an ip-api compatible endpoint.
//
// Permission is a configuration decision; the platform has no dialog to show.
// The provider is safe for concurrent use.
type IPGeoLocationProvider struct {
	session    *http.Client
	endpoint   string
	permission ports.Permission
	backoff    time.Duration
	maxWait    time.Duration
}

func NewIPGeoLocationProvider(endpoint string, permission ports.Permission) (*IPGeoLocationProvider, error) {
	if endpoint == "" {
		return nil, errors.New("ipgeo endpoint is empty")
	}

	return &IPGeoLocationProvider{
		session:    &http.Client{Timeout: 10 * time.Second},
		endpoint:   endpoint,
		permission: permission,
		backoff:    200 * time.Millisecond,
		maxWait:    time.Minute,
	}, nil
}

type ipgeoResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	City    string  `json:"city"`
	Country string  `json:"country"`
}

func (p *IPGeoLocationProvider) RequestPermission(ctx context.Context) (ports.Permission, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return p.permission, nil
}

// CurrentPosition performs a single lookup, retrying transient failures.
func (p *IPGeoLocationProvider) CurrentPosition(ctx context.Context) (_ domain.Coordinate, err error) {
	defer obs.Time(ctx, "ipgeo.CurrentPosition")(&err)

	res, err := p.lookupWithRetry(ctx)
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("ipgeo lookup: %w", err)
	}

	fix := domain.Coordinate{Latitude: res.Lat, Longitude: res.Lon}
	log.Printf("ipgeo fix city=%q country=%q", res.City, res.Country)
	return fix, nil
}
