package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"

	"jtaclogs/internal/models"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Exists(ctx context.Context, id string) (bool, error)
	UpdateProfile(ctx context.Context, id string, req *models.UpdateUserRequest) error
	UpdatePasswordHash(ctx context.Context, userID string, passwordHash string) error
	UpdateImage(ctx context.Context, userID string, imageURL string) error
	SetResetToken(ctx context.Context, userID string, token string, expiresAt time.Time) error
	ConsumeResetToken(ctx context.Context, token string, newPasswordHash string) (*models.User, error)
}

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, name, email, password_hash, image, country, reset_token, reset_token_expires_at, created_at, updated_at`

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, name, email, password_hash, image, country, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		RETURNING created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		user.ID, user.Name, user.Email, user.PasswordHash, user.Image, nullableJSON(user.Country), user.CreatedAt,
	).Scan(&user.CreatedAt)
	if err != nil {
		// The unique index on LOWER(email) is what actually serializes
		// concurrent signups; the pre-check in the service is advisory.
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return ErrEmailTaken
		}
		return err
	}
	user.UpdatedAt = user.CreatedAt
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(email) = LOWER($1)`
	return r.scanUser(r.db.QueryRowContext(ctx, query, email))
}

func (r *userRepository) Exists(ctx context.Context, id string) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx, `SELECT 1 FROM users WHERE id = $1`, id).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *userRepository) UpdateProfile(ctx context.Context, id string, req *models.UpdateUserRequest) error {
	query := `
		UPDATE users
		SET name = COALESCE($1, name),
			email = COALESCE($2, email),
			country = COALESCE($3, country),
			updated_at = $4
		WHERE id = $5
		RETURNING id
	`

	var outID string
	err := r.db.QueryRowContext(ctx, query, req.Name, req.Email, nullableJSON(req.Country), time.Now().UTC(), id).Scan(&outID)
	if err == sql.ErrNoRows {
		return ErrUserNotFound
	}
	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
		return ErrEmailTaken
	}
	return err
}

func (r *userRepository) UpdatePasswordHash(ctx context.Context, userID string, passwordHash string) error {
	query := `UPDATE users SET password_hash = $1, updated_at = $2 WHERE id = $3`
	res, err := r.db.ExecContext(ctx, query, passwordHash, time.Now().UTC(), userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *userRepository) UpdateImage(ctx context.Context, userID string, imageURL string) error {
	query := `UPDATE users SET image = $1, updated_at = $2 WHERE id = $3`
	res, err := r.db.ExecContext(ctx, query, imageURL, time.Now().UTC(), userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrUserNotFound
	}
	return nil
}

// SetResetToken installs a fresh token and expiry, overwriting any live one.
func (r *userRepository) SetResetToken(ctx context.Context, userID string, token string, expiresAt time.Time) error {
	query := `UPDATE users SET reset_token = $1, reset_token_expires_at = $2, updated_at = $3 WHERE id = $4`
	res, err := r.db.ExecContext(ctx, query, token, expiresAt, time.Now().UTC(), userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrUserNotFound
	}
	return nil
}

// ConsumeResetToken atomically claims the token: the holding row is locked,
// the token cleared, and on a valid token the new password hash written, all
// in one transaction. An expired token is still cleared before
// ErrResetTokenExpired is returned, so a replay can never succeed.
func (r *userRepository) ConsumeResetToken(ctx context.Context, token string, newPasswordHash string) (*models.User, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var u models.User
	var expiresAt sql.NullTime
	query := `SELECT id, name, email, reset_token_expires_at FROM users WHERE reset_token = $1 FOR UPDATE`
	err = tx.QueryRowContext(ctx, query, token).Scan(&u.ID, &u.Name, &u.Email, &expiresAt)
	if err == sql.ErrNoRows {
		return nil, ErrResetTokenNotFound
	}
	if err != nil {
		return nil, err
	}

	if !expiresAt.Valid || time.Now().UTC().After(expiresAt.Time) {
		clear := `UPDATE users SET reset_token = NULL, reset_token_expires_at = NULL, updated_at = $1 WHERE id = $2`
		if _, err := tx.ExecContext(ctx, clear, time.Now().UTC(), u.ID); err != nil {
			return nil, err
		}
		if err := tx.Commit(); err != nil {
			return nil, err
		}
		return &u, ErrResetTokenExpired
	}

	update := `
		UPDATE users
		SET password_hash = $1, reset_token = NULL, reset_token_expires_at = NULL, updated_at = $2
		WHERE id = $3
	`
	if _, err := tx.ExecContext(ctx, update, newPasswordHash, time.Now().UTC(), u.ID); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &u, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *userRepository) scanUser(row rowScanner) (*models.User, error) {
	var u models.User
	var country []byte
	var resetToken sql.NullString
	var resetExpires sql.NullTime
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Image, &country,
		&resetToken, &resetExpires, &u.CreatedAt, &u.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	u.Country = country
	if resetToken.Valid {
		u.ResetToken = &resetToken.String
	}
	if resetExpires.Valid {
		u.ResetTokenExpiresAt = &resetExpires.Time
	}
	return &u, nil
}

func nullableJSON(raw []byte) any {
	if len(raw) == 0 {
		return nil
	}
	return raw
}
