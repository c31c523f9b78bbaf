package main

import (
	"context"
	"flag"
	"log"
	"mappulator-service/internal/adapters/dataset"
	"mappulator-service/internal/adapters/report"
	"mappulator-service/internal/domain"
	"mappulator-service/internal/ports"
	"mappulator-service/internal/services"
)

// report writes an xlsx sheet of distances from one observer to every point
// of interest.
func main() {
	lat := flag.Float64("lat", 0, "observer latitude in degrees")
	lon := flag.Float64("lon", 0, "observer longitude in degrees")
	out := flag.String("out", "distances.xlsx", "output workbook path")
	file := flag.String("file", "", "read the dataset from this JSON file instead of the bundled one")
	flag.Parse()

	var source ports.POISource = dataset.EmbeddedSource{}
	if *file != "" {
		source = dataset.FileSource{Path: *file}
	}

	store, err := services.LoadLocationStore(context.Background(), source)
	if err != nil {
		log.Fatal(err)
	}

	observer := domain.Coordinate{Latitude: *lat, Longitude: *lon}
	pois := store.RefreshDistances(store.Load(), observer)

	if err := report.WriteDistances(*out, pois); err != nil {
		log.Fatal(err)
	}
	log.Printf("report written path=%s rows=%d", *out, len(pois))
}
