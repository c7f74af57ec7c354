package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"jtaclogs/internal/auth"
	"jtaclogs/internal/interfaces"
	"jtaclogs/internal/logger"
	"jtaclogs/internal/models"
	"jtaclogs/internal/repository"
)

// resetTokenTTL is how long an emailed reset link stays valid.
const resetTokenTTL = 15 * time.Minute

type AuthService struct {
	users     repository.UserRepository
	favorites repository.FavoriteRepository
	tokens    *auth.TokenIssuer
	mailer    *Mailer

	resetLinkBase string
}

func NewAuthService(
	users repository.UserRepository,
	favorites repository.FavoriteRepository,
	tokens *auth.TokenIssuer,
	mailer *Mailer,
	resetLinkBase string,
) *AuthService {
	return &AuthService{
		users:         users,
		favorites:     favorites,
		tokens:        tokens,
		mailer:        mailer,
		resetLinkBase: strings.TrimRight(resetLinkBase, "/"),
	}
}

// Signup creates the account, issues a bearer token and fires the
// confirmation mail. The mail is best-effort: a delivery failure is logged
// and never fails the signup.
func (s *AuthService) Signup(ctx context.Context, req *models.SignupRequest) (*models.AuthResponse, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		logger.Log.Error("password hashing failed", zap.Error(err))
		return nil, err
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hash,
		Country:      req.Country,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, interfaces.Conflict("Could not create a new user because this email address already exists")
		}
		logger.Log.Error("user insert failed", zap.Error(err))
		return nil, err
	}

	token, err := s.tokens.Sign(user.ID, user.Email)
	if err != nil {
		logger.Log.Error("token signing failed", zap.Error(err))
		return nil, err
	}

	if err := s.mailer.SendSignupConfirmation(user.Name, user.Email); err != nil {
		logger.Log.Warn("signup confirmation mail failed", zap.String("email", user.Email), zap.Error(err))
	}

	return &models.AuthResponse{
		User:      user,
		UserID:    user.ID,
		Email:     user.Email,
		Token:     token,
		Favorites: []*models.Favorite{},
	}, nil
}

// Login verifies the credentials and returns the user together with a fresh
// token and the current favorites. Unknown account and wrong password are
// deliberately indistinguishable.
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, interfaces.Authentication()
		}
		logger.Log.Error("user lookup failed", zap.Error(err))
		return nil, err
	}

	if !auth.CheckPassword(req.Password, user.PasswordHash) {
		logger.Log.Warn("login with wrong password", zap.String("user_id", user.ID))
		return nil, interfaces.Authentication()
	}

	token, err := s.tokens.Sign(user.ID, user.Email)
	if err != nil {
		logger.Log.Error("token signing failed", zap.Error(err))
		return nil, err
	}

	favorites, err := s.favorites.ListByOwner(ctx, user.ID)
	if err != nil {
		logger.Log.Error("favorites load failed", zap.String("user_id", user.ID), zap.Error(err))
		return nil, err
	}

	return &models.AuthResponse{
		User:      user,
		UserID:    user.ID,
		Email:     user.Email,
		Token:     token,
		Favorites: favorites,
	}, nil
}

// UpdatePassword changes the password of an account the caller owns. The
// acting identity comes exclusively from the verified token claims.
func (s *AuthService) UpdatePassword(ctx context.Context, callerUserID string, req *models.UpdatePasswordRequest) (string, error) {
	if req.NewPassword != req.ConfirmNewPassword {
		return "", interfaces.Validation("New password does not match confirm password")
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", interfaces.NotFound("Could not find user")
		}
		logger.Log.Error("user lookup failed", zap.Error(err))
		return "", err
	}

	if user.ID != callerUserID {
		logger.Log.Warn("password update for foreign account rejected",
			zap.String("caller_id", callerUserID), zap.String("owner_id", user.ID))
		return "", interfaces.Authentication()
	}

	if !auth.CheckPassword(req.OldPassword, user.PasswordHash) {
		return "", interfaces.Authentication()
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		logger.Log.Error("password hashing failed", zap.Error(err))
		return "", err
	}

	if err := s.users.UpdatePasswordHash(ctx, user.ID, hash); err != nil {
		logger.Log.Error("password update failed", zap.String("user_id", user.ID), zap.Error(err))
		return "", err
	}

	return fmt.Sprintf("%s, your password was updated!", user.Name), nil
}

// RequestPasswordReset issues a fresh single-use token, valid for 15 minutes,
// and mails the reset link. Re-issuing overwrites any live token. The mail is
// the only delivery path for the token, so a send failure fails the whole
// operation; the token never appears in an HTTP response.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", interfaces.NotFound(fmt.Sprintf("Could not find user for email: %s", email))
		}
		logger.Log.Error("user lookup failed", zap.Error(err))
		return "", err
	}

	token, err := auth.GenerateResetToken()
	if err != nil {
		logger.Log.Error("reset token generation failed", zap.Error(err))
		return "", err
	}

	expiresAt := time.Now().UTC().Add(resetTokenTTL)
	if err := s.users.SetResetToken(ctx, user.ID, token, expiresAt); err != nil {
		logger.Log.Error("reset token persist failed", zap.String("user_id", user.ID), zap.Error(err))
		return "", err
	}

	resetLink := fmt.Sprintf("%s/reset/%s", s.resetLinkBase, token)
	if err := s.mailer.SendPasswordResetLink(user.Email, resetLink, expiresAt); err != nil {
		logger.Log.Error("reset link mail failed", zap.String("email", user.Email), zap.Error(err))
		return "", err
	}

	return fmt.Sprintf("A recovery link was sent to %s. It is valid until %s",
		user.Email, expiresAt.Format(time.Kitchen)), nil
}

// CompletePasswordReset consumes the token and installs the new password.
// Expired tokens are consumed too, so a stale link cannot be retried.
func (s *AuthService) CompletePasswordReset(ctx context.Context, token string, req *models.CompletePasswordResetRequest) (string, error) {
	if token == "" {
		return "", interfaces.Validation("An incorrect token was passed")
	}
	if req.NewPassword != req.ConfirmNewPassword {
		return "", interfaces.Validation("The new and confirmed password do not match")
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		logger.Log.Error("password hashing failed", zap.Error(err))
		return "", err
	}

	user, err := s.users.ConsumeResetToken(ctx, token, hash)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrResetTokenNotFound):
			return "", interfaces.Authentication()
		case errors.Is(err, repository.ErrResetTokenExpired):
			return "", interfaces.Forbidden("Your reset link is no longer valid. Please request another reset link")
		default:
			logger.Log.Error("reset token consume failed", zap.Error(err))
			return "", err
		}
	}

	logger.Log.Info("password reset completed", zap.String("user_id", user.ID))
	return fmt.Sprintf("Password for %s was successfully reset.", user.Email), nil
}
