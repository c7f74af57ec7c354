package routes

import (
	"github.com/go-chi/chi/v5"

	"jtaclogs/internal/config"
	"jtaclogs/internal/handlers"
	"jtaclogs/internal/services"
)

func RegisterSearchRoutes(router chi.Router, cfg *config.Config) {
	catalog := services.NewUnogsClient(cfg.RapidAPIKey, cfg.RapidAPIHost)
	searchHandler := handlers.NewSearchHandler(catalog)

	router.Get("/search", searchHandler.Search)
}
