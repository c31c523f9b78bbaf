// Package config reads service settings from the environment, optionally
// primed from a .env file.
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Load reads .env into the process environment when the file exists.
// Variables already set take precedence.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}
}

// Get returns the trimmed value of key, or fallback when unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// MustGet returns the value of key and exits when it is missing.
func MustGet(key string) string {
	v := Get(key, "")
	if v == "" {
		log.Fatalf("%s is required", key)
	}
	return v
}

// Bool reports whether key is set to a true value, or fallback when unset.
func Bool(key string, fallback bool) (bool, error) {
	v := Get(key, "")
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("config %s: %w", key, err)
	}
	return b, nil
}

// Settings for the server process.
type Settings struct {
	Port string

	DatasetSource string
	DatasetPath   string
	DBDriver      string
	DatabaseURL   string

	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	S3UseSSL    bool
	S3Bucket    string
	S3Key       string

	LocationProvider   string
	LocationPermission string
	ObserverLat        string
	ObserverLon        string
	IPGeoURL           string
}

// FromEnv collects Settings with defaults for local runs.
func FromEnv() (Settings, error) {
	useSSL, err := Bool("MINIO_USE_SSL", false)
	if err != nil {
		return Settings{}, err
	}

	return Settings{
		Port: Get("PORT", "8080"),

		DatasetSource: strings.ToLower(Get("DATASET_SOURCE", "embedded")),
		DatasetPath:   Get("DATASET_PATH", "data/locations.json"),
		DBDriver:      Get("DB_DRIVER", "sqlite"),
		DatabaseURL:   Get("DATABASE_URL", ""),

		S3Endpoint:  Get("MINIO_ENDPOINT", ""),
		S3AccessKey: Get("MINIO_ACCESS_KEY", ""),
		S3SecretKey: Get("MINIO_SECRET_KEY", ""),
		S3UseSSL:    useSSL,
		S3Bucket:    Get("DATASET_BUCKET", ""),
		S3Key:       Get("DATASET_KEY", "locations.json"),

		LocationProvider:   strings.ToLower(Get("LOCATION_PROVIDER", "static")),
		LocationPermission: Get("LOCATION_PERMISSION", "granted"),
		ObserverLat:        Get("OBSERVER_LAT", ""),
		ObserverLon:        Get("OBSERVER_LON", ""),
		IPGeoURL:           Get("IPGEO_URL", "http://ip-api.com/json/"),
	}, nil
}
