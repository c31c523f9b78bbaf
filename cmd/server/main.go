package main

import (
	"context"
	"errors"
	"log"
	"mappulator-service/internal/api"
	"mappulator-service/internal/app"
	"mappulator-service/internal/config"
	"mappulator-service/internal/platform/graceful"
	"mappulator-service/internal/services"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// main is the application composition root.
// It picks the dataset source and location provider, runs the one-shot
// activation and serves the display API.
func main() {
	config.Load()
	gin.SetMode(gin.ReleaseMode)

	settings, err := config.FromEnv()
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := graceful.Context(context.Background())
	defer cancel()

	source, closeSource, err := app.NewPOISource(settings)
	if err != nil {
		log.Fatal(err)
	}
	defer closeSource()

	store, err := services.LoadLocationStore(ctx, source)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("dataset loaded source=%s count=%d", settings.DatasetSource, store.Len())

	provider, err := app.NewLocationProvider(settings)
	if err != nil {
		log.Fatal(err)
	}

	// Activation runs once in the background; until it lands the API serves
	// the distance-less list.
	activator := services.NewActivator(provider, store)
	go func() { _ = activator.Activate(ctx) }()

	router := api.NewRouter(store)

	log.Printf("Server listening addr=:%s", settings.Port)
	srv := &http.Server{
		Addr:              ":" + settings.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
		defer stop()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
	log.Println("Server stopped.")
}
