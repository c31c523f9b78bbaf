package app

import (
	"context"
	"errors"
	"mappulator-service/internal/adapters/dataset"
	"mappulator-service/internal/adapters/location"
	"mappulator-service/internal/adapters/repositories"
	"mappulator-service/internal/config"
	"mappulator-service/internal/ports"
	"path/filepath"
	"testing"
)

func TestNewPOISource(t *testing.T) {
	dbURL := "file:" + filepath.Join(t.TempDir(), "pois.db")

	cases := []struct {
		name     string
		settings config.Settings
		wantErr  bool
		check    func(t *testing.T, src ports.POISource)
	}{
		{
			name:     "default is embedded",
			settings: config.Settings{},
			check: func(t *testing.T, src ports.POISource) {
				if _, ok := src.(dataset.EmbeddedSource); !ok {
					t.Fatalf("source = %T, want EmbeddedSource", src)
				}
			},
		},
		{
			name:     "file",
			settings: config.Settings{DatasetSource: "file", DatasetPath: "data/locations.json"},
			check: func(t *testing.T, src ports.POISource) {
				if fs, ok := src.(dataset.FileSource); !ok || fs.Path != "data/locations.json" {
					t.Fatalf("source = %#v, want FileSource at data/locations.json", src)
				}
			},
		},
		{
			name:     "file without path",
			settings: config.Settings{DatasetSource: "file"},
			wantErr:  true,
		},
		{
			name: "s3",
			settings: config.Settings{
				DatasetSource: "s3",
				S3Endpoint:    "localhost:9000",
				S3AccessKey:   "minio",
				S3SecretKey:   "minio123",
				S3Bucket:      "mappulator",
				S3Key:         "locations.json",
			},
			check: func(t *testing.T, src ports.POISource) {
				if _, ok := src.(*dataset.S3Source); !ok {
					t.Fatalf("source = %T, want *S3Source", src)
				}
			},
		},
		{
			name:     "s3 without credentials",
			settings: config.Settings{DatasetSource: "s3", S3Endpoint: "localhost:9000"},
			wantErr:  true,
		},
		{
			name:     "sql on sqlite",
			settings: config.Settings{DatasetSource: "sql", DBDriver: "sqlite", DatabaseURL: dbURL},
			check: func(t *testing.T, src ports.POISource) {
				if _, ok := src.(*repositories.SQLPOIRepository); !ok {
					t.Fatalf("source = %T, want *SQLPOIRepository", src)
				}
			},
		},
		{
			name:     "sql without url",
			settings: config.Settings{DatasetSource: "sql", DBDriver: "sqlite"},
			wantErr:  true,
		},
		{
			name:     "sql with unknown driver",
			settings: config.Settings{DatasetSource: "sql", DBDriver: "oracle", DatabaseURL: dbURL},
			wantErr:  true,
		},
		{
			name:     "unknown source",
			settings: config.Settings{DatasetSource: "ftp"},
			wantErr:  true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			src, closeSource, err := NewPOISource(tc.settings)
			if closeSource == nil {
				t.Fatal("close function is nil")
			}
			defer closeSource()

			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got source %T", src)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tc.check(t, src)
		})
	}
}

func TestNewLocationProvider(t *testing.T) {
	cases := []struct {
		name     string
		settings config.Settings
		wantErr  bool
		want     string
	}{
		{"default is static", config.Settings{}, false, "static"},
		{"static with fix", config.Settings{LocationProvider: "static", ObserverLat: "51.5", ObserverLon: "-0.12"}, false, "static"},
		{"static half configured", config.Settings{LocationProvider: "static", ObserverLat: "51.5"}, false, "static"},
		{"ipgeo", config.Settings{LocationProvider: "ipgeo", IPGeoURL: location.DefaultIPGeoURL}, false, "ipgeo"},
		{"ipgeo without url", config.Settings{LocationProvider: "ipgeo"}, true, ""},
		{"unknown provider", config.Settings{LocationProvider: "gps"}, true, ""},
		{"unknown permission", config.Settings{LocationPermission: "ask"}, true, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := NewLocationProvider(tc.settings)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got provider %T", p)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			switch p.(type) {
			case *location.StaticLocationProvider:
				if tc.want != "static" {
					t.Fatalf("provider = %T, want %s", p, tc.want)
				}
			case *location.IPGeoLocationProvider:
				if tc.want != "ipgeo" {
					t.Fatalf("provider = %T, want %s", p, tc.want)
				}
			default:
				t.Fatalf("unexpected provider %T", p)
			}
		})
	}
}

func TestNewLocationProviderDefersBadFix(t *testing.T) {
	p, err := NewLocationProvider(config.Settings{ObserverLat: "51.5", ObserverLon: "west"})
	if err != nil {
		t.Fatalf("bad fix must not fail startup: %v", err)
	}
	if _, err := p.CurrentPosition(context.Background()); !errors.Is(err, location.ErrNoFix) {
		t.Fatalf("CurrentPosition err = %v, want ErrNoFix", err)
	}
}
