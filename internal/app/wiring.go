// Package app turns Settings into the adapters the server runs on.
package app

import (
	"database/sql"
	"errors"
	"fmt"
	"mappulator-service/internal/adapters/dataset"
	"mappulator-service/internal/adapters/location"
	"mappulator-service/internal/adapters/repositories"
	"mappulator-service/internal/config"
	"mappulator-service/internal/platform/db"
	"mappulator-service/internal/ports"
)

// NewPOISource picks the dataset source named by DATASET_SOURCE.
// The returned close function releases whatever the source holds open.
func NewPOISource(s config.Settings) (ports.POISource, func(), error) {
	noop := func() {}

	switch s.DatasetSource {
	case "embedded", "":
		return dataset.EmbeddedSource{}, noop, nil
	case "file":
		if s.DatasetPath == "" {
			return nil, noop, errors.New("DATASET_PATH is required for DATASET_SOURCE=file")
		}
		return dataset.FileSource{Path: s.DatasetPath}, noop, nil
	case "s3":
		src, err := dataset.NewS3Source(dataset.S3Options{
			Endpoint:  s.S3Endpoint,
			AccessKey: s.S3AccessKey,
			SecretKey: s.S3SecretKey,
			UseSSL:    s.S3UseSSL,
			Bucket:    s.S3Bucket,
			Key:       s.S3Key,
		})
		if err != nil {
			return nil, noop, err
		}
		return src, noop, nil
	case "sql":
		conn, err := openDatasetDB(s)
		if err != nil {
			return nil, noop, err
		}
		return repositories.NewSQLPOIRepository(conn), func() { _ = conn.Close() }, nil
	default:
		return nil, noop, fmt.Errorf("unknown DATASET_SOURCE %q", s.DatasetSource)
	}
}

func openDatasetDB(s config.Settings) (*sql.DB, error) {
	dialect, err := repositories.ParseDialect(s.DBDriver)
	if err != nil {
		return nil, err
	}
	if s.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is required for DATASET_SOURCE=sql")
	}
	return db.Open(string(dialect), s.DatabaseURL)
}

// NewLocationProvider picks the provider named by LOCATION_PROVIDER.
// A bad observer coordinate for the static provider is not an error here; it
// surfaces at activation as an unavailable position.
func NewLocationProvider(s config.Settings) (ports.LocationProvider, error) {
	perm, err := location.ParsePermission(s.LocationPermission)
	if err != nil {
		return nil, err
	}

	switch s.LocationProvider {
	case "static", "":
		return location.NewStaticLocationProviderFromConfig(perm, s.ObserverLat, s.ObserverLon), nil
	case "ipgeo":
		return location.NewIPGeoLocationProvider(s.IPGeoURL, perm)
	default:
		return nil, fmt.Errorf("unknown LOCATION_PROVIDER %q", s.LocationProvider)
	}
}
