package router

import (
	"database/sql"
	"net/http"
	"os"

	_ "pet-directory/docs"
	mem "pet-directory/internal/adapters/storage/memory"
	pg "pet-directory/internal/adapters/storage/postgres"
	"pet-directory/internal/domain/pets"
	"pet-directory/internal/middleware"
	"pet-directory/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Log logger.Logger // puede ser nil (se descarta el access log)

	// Opcional: repo explícito (tests). Si no, DB; si no, in-memory.
	PetRepo pets.Repository
	DB      *sql.DB
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}
	r.Use(middleware.RequestLogger(log))

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"message":"Welcome to the pet directory!"}` + "\n"))
	})

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// Selección de storage: repo explícito > DB > DB_DSN env > in-memory
	petRepo := opts.PetRepo
	if petRepo == nil {
		db := opts.DB
		if db == nil {
			if dsn := os.Getenv("DB_DSN"); dsn != "" {
				opened, err := pg.Open(dsn)
				if err == nil {
					db = opened
				} else {
					log.Warn("postgres unavailable, falling back to memory", map[string]any{
						"error": err.Error(),
					})
				}
			}
		}

		if db != nil {
			petRepo = pg.NewPetsRepo(db)
		} else {
			petRepo = mem.NewPetRepo()
		}
	}

	petsSvc := pets.NewService(petRepo)
	pets.RegisterRoutes(r, petsSvc)

	return r
}
