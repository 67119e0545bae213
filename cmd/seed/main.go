package main

import (
	"context"
	"flag"
	"math/rand"
	"os"
	"time"

	"pet-directory/internal/adapters/storage/postgres"
	"pet-directory/internal/domain/pets"
	"pet-directory/internal/platform/logger"
	"pet-directory/internal/seed"
)

func main() {
	count := flag.Int("count", 30, "cantidad de mascotas a generar")
	flag.Parse()

	log := logger.NewFromEnv().With(map[string]any{"component": "seed"})

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Error("DB_DSN is required", nil)
		os.Exit(1)
	}

	db, err := postgres.Open(dsn)
	if err != nil {
		log.Error("open postgres", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	defer db.Close()

	if err := postgres.Migrate(db); err != nil {
		log.Error("migrate", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	svc := pets.NewService(postgres.NewPetsRepo(db))
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	ctx := context.Background()
	inserted := 0
	for _, in := range seed.Generate(rng, *count) {
		p, err := svc.Register(ctx, in)
		if err != nil {
			log.Error("register pet", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		log.Debug("pet registered", map[string]any{
			"id":      p.ID,
			"name":    p.Name,
			"species": p.Species,
		})
		inserted++
	}

	log.Info("seed complete", map[string]any{"inserted": inserted})
}
