package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/mzekry/creatorhub/internal/campaign"
	"github.com/mzekry/creatorhub/internal/config"
	"github.com/mzekry/creatorhub/internal/database"
	"github.com/mzekry/creatorhub/internal/participation"
	"github.com/mzekry/creatorhub/internal/projects"
	"github.com/mzekry/creatorhub/internal/user"
	mw "github.com/mzekry/creatorhub/pkg/middleware"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := config.Load()

	// Initialize database connection
	db, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	log.Println("Connected to database successfully")

	if cfg.EnableTestEndpoints {
		log.Println("WARNING: test endpoints are enabled")
	}

	// My projects feature
	userRepo := user.NewRepository(db)
	campaignRepo := campaign.NewRepository(db)
	participationRepo := participation.NewRepository(db)
	projectsService := projects.NewService(userRepo, campaignRepo, participationRepo)
	projectsHandler := projects.NewHandler(projectsService, cfg.EnableTestEndpoints)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/my-projects", projectsHandler.Routes(mw.Auth(cfg.JWTSecret)))
	})

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
