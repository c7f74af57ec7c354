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

func RegisterUserRoutes(router chi.Router, db *sql.DB, cfg *config.Config, tokens *auth.TokenIssuer, s3Config *config.S3Config, authHandler *handlers.AuthHandler) {
	users := repository.NewUserRepository(db)
	images := services.NewS3ImageStore(s3Config)
	userHandler := handlers.NewUserHandler(users, images)

	router.Route("/users", func(r chi.Router) {
		// Signup and login stay reachable without a token.
		r.Post("/signup", authHandler.Signup)
		r.Post("/login", authHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuth(tokens))
			r.Get("/{uid}", userHandler.GetUser)
			r.Patch("/{uid}", userHandler.UpdateUser)
			r.Put("/{uid}/image", userHandler.UploadImage)
		})
	})
}
