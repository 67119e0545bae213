package main

import (
	"net/http"
	"os"
	"time"

	"pet-directory/internal/platform/logger"
	"pet-directory/internal/router"
)

// @title        Pet Directory API
// @version      1.0
// @description  Directorio de mascotas de solo lectura con serialización explícita de records.
// @BasePath     /
func main() {
	log := logger.NewFromEnv()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	r := router.NewRouter(router.Options{Log: log})

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}
