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

// RegisterAuthRoutes wires the /auth subtree and returns the handler so the
// user routes can expose signup/login under /users.
func RegisterAuthRoutes(router chi.Router, db *sql.DB, cfg *config.Config, tokens *auth.TokenIssuer) *handlers.AuthHandler {
	mailer := services.NewMailer(&services.SMTPSender{
		Host:   cfg.SMTPHost,
		Port:   cfg.SMTPPort,
		User:   cfg.SMTPUser,
		Pass:   cfg.SMTPPassword,
		From:   cfg.SMTPFrom,
		UseTLS: cfg.SMTPUseTLS,
	})

	users := repository.NewUserRepository(db)
	favorites := repository.NewFavoriteRepository(db)
	authService := services.NewAuthService(users, favorites, tokens, mailer, cfg.ResetLinkBaseURL)
	authHandler := handlers.NewAuthHandler(authService)

	router.Route("/auth", func(r chi.Router) {
		// Reset routes must stay reachable without a token.
		r.Post("/reset", authHandler.RequestPasswordReset)
		r.Post("/reset/pwd/{token}", authHandler.CompletePasswordReset)

		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuth(tokens))
			r.Patch("/update", authHandler.UpdatePassword)
		})
	})

	return authHandler
}
