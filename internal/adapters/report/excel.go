package report

import (
	"fmt"
	"mappulator-service/internal/domain"

	"github.com/xuri/excelize/v2"
)

const SheetName = "Distances"

var headers = []interface{}{
	"Name", "Type", "Latitude", "Longitude", "Distance (km)",
}

// WriteDistances saves pois as an xlsx workbook with one row per point of
// interest, in display order. The distance cell is left empty when unset.
func WriteDistances(path string, pois []domain.PointOfInterest) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(SheetName)
	if err != nil {
		return fmt.Errorf("write distances: new sheet: %w", err)
	}

	// Stream writer keeps memory flat for large datasets.
	sw, err := f.NewStreamWriter(SheetName)
	if err != nil {
		return fmt.Errorf("write distances: stream writer: %w", err)
	}

	if err := sw.SetRow("A1", headers); err != nil {
		return fmt.Errorf("write distances: header: %w", err)
	}

	for i, p := range pois {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("write distances: row %d: %w", i+2, err)
		}

		var dist interface{}
		if p.Distance != nil {
			dist = domain.RoundKm(*p.Distance)
		}

		row := []interface{}{
			p.Name, string(p.Type), p.Coordinates.Latitude, p.Coordinates.Longitude, dist,
		}
		if err := sw.SetRow(cell, row); err != nil {
			return fmt.Errorf("write distances: row %d: %w", i+2, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("write distances: flush: %w", err)
	}

	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("write distances: drop default sheet: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("write distances: save %q: %w", path, err)
	}
	return nil
}
