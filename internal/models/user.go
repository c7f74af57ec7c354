package models

import (
	"encoding/json"
	"time"
)

type User struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	Email               string          `json:"email"`
	PasswordHash        string          `json:"-"`
	Image               string          `json:"image,omitempty"`
	Country             json.RawMessage `json:"country,omitempty"`
	ResetToken          *string         `json:"-"`
	ResetTokenExpiresAt *time.Time      `json:"-"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

type SignupRequest struct {
	Name     string          `json:"name" validate:"required"`
	Email    string          `json:"email" validate:"required,email"`
	Password string          `json:"password" validate:"required,min=5"`
	Country  json.RawMessage `json:"country,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	User      *User       `json:"user"`
	UserID    string      `json:"userId"`
	Email     string      `json:"email"`
	Token     string      `json:"token"`
	Favorites []*Favorite `json:"favorites"`
}

type UpdateUserRequest struct {
	Name    *string         `json:"name,omitempty"`
	Email   *string         `json:"email,omitempty" validate:"omitempty,email"`
	Country json.RawMessage `json:"country,omitempty"`
}

type UpdatePasswordRequest struct {
	Email              string `json:"email" validate:"required,email"`
	OldPassword        string `json:"oldPassword" validate:"required"`
	NewPassword        string `json:"newPassword" validate:"required,min=5"`
	ConfirmNewPassword string `json:"confirmNewPassword" validate:"required"`
}

type RequestPasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type CompletePasswordResetRequest struct {
	NewPassword        string `json:"newPassword" validate:"required,min=5"`
	ConfirmNewPassword string `json:"confirmNewPassword" validate:"required"`
}
