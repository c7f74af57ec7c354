package routes

import (
	"database/sql"

	"github.com/go-chi/chi/v5"

	"jtaclogs/internal/auth"
	"jtaclogs/internal/config"
	"jtaclogs/internal/handlers"
	"jtaclogs/internal/middleware"
	"jtaclogs/internal/repository"
	"jtaclogs/internal/services"
)

func RegisterDestinationRoutes(router chi.Router, db *sql.DB, cfg *config.Config, tokens *auth.TokenIssuer) {
	users := repository.NewUserRepository(db)
	destinations := repository.NewDestinationRepository(db)
	geocoder := services.NewGoogleGeocoder(cfg.GeocodeAPIKey)
	destinationsHandler := handlers.NewDestinationsHandler(
		services.NewDestinationsService(destinations, users, geocoder),
	)

	router.Route("/destinations", func(r chi.Router) {
		r.Use(middleware.JWTAuth(tokens))
		r.Get("/{did}", destinationsHandler.Get)
		r.Get("/user/{uid}", destinationsHandler.ListByUser)
		r.Post("/", destinationsHandler.Create)
		r.Patch("/{did}", destinationsHandler.Update)
		r.Delete("/{did}", destinationsHandler.Remove)
	})
}
