package main

import (
	"context"
	"flag"
	"log"
	"mappulator-service/internal/adapters/dataset"
	"mappulator-service/internal/adapters/repositories"
	"mappulator-service/internal/config"
	"mappulator-service/internal/platform/db"
	"mappulator-service/internal/ports"
)

// dbtool creates the points_of_interest schema and seeds it from the bundled
// dataset, or from -file when given.
func main() {
	file := flag.String("file", "", "seed from this JSON dataset instead of the bundled one")
	flag.Parse()

	config.Load()

	dialect, err := repositories.ParseDialect(config.Get("DB_DRIVER", "sqlite"))
	if err != nil {
		log.Fatal(err)
	}
	databaseURL := config.MustGet("DATABASE_URL")

	conn, err := db.Open(string(dialect), databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	var source ports.POISource = dataset.EmbeddedSource{}
	if *file != "" {
		source = dataset.FileSource{Path: *file}
	}

	ctx := context.Background()
	pois, err := source.LoadPOIs(ctx)
	if err != nil {
		log.Fatal(err)
	}

	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(ctx, conn); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	log.Println("Seeding database...")
	if err := repositories.SeedPOIs(ctx, conn, dialect, pois); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Printf("Seeding complete. count=%d", len(pois))
}
