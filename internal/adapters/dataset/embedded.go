package dataset

import (
	"context"
	_ "embed"
	"fmt"
	"mappulator-service/internal/domain"
	"os"
)

//go:embed locations.json
var bundled []byte

// Bundled returns a copy of the raw dataset shipped with the binary.
func Bundled() []byte {
	out := make([]byte, len(bundled))
	copy(out, bundled)
	return out
}

// EmbeddedSource serves the dataset compiled into the binary.
type EmbeddedSource struct{}

func (EmbeddedSource) LoadPOIs(ctx context.Context) ([]domain.PointOfInterest, error) {
	return ParseJSON(bundled)
}

// FileSource reads the dataset from a JSON file on disk.
type FileSource struct {
	Path string
}

func (f FileSource) LoadPOIs(ctx context.Context) ([]domain.PointOfInterest, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("load dataset: read %q: %w", f.Path, err)
	}
	return ParseJSON(data)
}
