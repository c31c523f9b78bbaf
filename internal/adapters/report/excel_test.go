package report

import (
	"mappulator-service/internal/domain"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestWriteDistances(t *testing.T) {
	pois := []domain.PointOfInterest{
		domain.PointOfInterest{
			Name:        "Statue of Liberty",
			Type:        domain.TypeMonument,
			Coordinates: domain.Coordinate{Latitude: 40.6892, Longitude: -74.0445},
		}.WithDistance(8.123456),
		{
			Name:        "Bear Mountain",
			Type:        domain.TypeMountain,
			Coordinates: domain.Coordinate{Latitude: 41.3121, Longitude: -73.9885},
		},
	}

	path := filepath.Join(t.TempDir(), "distances.xlsx")
	if err := WriteDistances(path, pois); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open report: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}

	if rows[0][0] != "Name" || rows[0][4] != "Distance (km)" {
		t.Fatalf("header = %v", rows[0])
	}
	if rows[1][0] != "Statue of Liberty" || rows[1][1] != "monument" || rows[1][4] != "8.12" {
		t.Fatalf("row 2 = %v", rows[1])
	}
	if rows[2][0] != "Bear Mountain" || len(rows[2]) > 4 {
		t.Fatalf("row 3 = %v, want no distance cell", rows[2])
	}
}
