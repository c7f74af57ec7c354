package routes

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"jtaclogs/internal/auth"
	"jtaclogs/internal/config"
	"jtaclogs/internal/middleware"
)

func SetupRoutes(db *sql.DB, cfg *config.Config, s3Config *config.S3Config) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger)
	r.Use(chimiddleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "X-Requested-With", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	tokens := auth.NewTokenIssuer(cfg.JWTSecret, time.Duration(cfg.JWTExpiresInSeconds)*time.Second)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"message": "jtaclogs API"})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		type dbStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}
		resp := struct {
			Status string   `json:"status"`
			DB     dbStatus `json:"db"`
		}{Status: "ok", DB: dbStatus{Status: "ok"}}

		if err := db.PingContext(r.Context()); err != nil {
			resp.Status = "degraded"
			resp.DB = dbStatus{Status: "down", Error: err.Error()}
			writeJSON(w, http.StatusServiceUnavailable, resp)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	})

	RegisterSwaggerRoutes(r)

	r.Route("/api/v1", func(r chi.Router) {
		authHandler := RegisterAuthRoutes(r, db, cfg, tokens)
		RegisterUserRoutes(r, db, cfg, tokens, s3Config, authHandler)
		RegisterFavoritesRoutes(r, db, tokens)
		RegisterDestinationRoutes(r, db, cfg, tokens)
		RegisterSearchRoutes(r, cfg)
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
