package routes

import (
	"database/sql"

	"github.com/go-chi/chi/v5"

	"jtaclogs/internal/auth"
	"jtaclogs/internal/handlers"
	"jtaclogs/internal/middleware"
	"jtaclogs/internal/repository"
	"jtaclogs/internal/services"
)

func RegisterFavoritesRoutes(router chi.Router, db *sql.DB, tokens *auth.TokenIssuer) {
	users := repository.NewUserRepository(db)
	favorites := repository.NewFavoriteRepository(db)
	favoritesHandler := handlers.NewFavoritesHandler(services.NewFavoritesService(favorites, users))

	router.Route("/favorites", func(r chi.Router) {
		r.Use(middleware.JWTAuth(tokens))
		r.Get("/{uid}", favoritesHandler.ListByUser)
		r.Post("/", favoritesHandler.Add)
		r.Delete("/{fid}", favoritesHandler.Remove)
	})
}
