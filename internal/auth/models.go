// internal/auth/models.go
package auth

import (
	"database/sql"
	"time"
)

// User is the account row. Password never leaves the API: it is excluded
// from JSON and only compared inside the service.
type User struct {
	ID         int64          `db:"id" json:"id"`
	Username   string         `db:"username" json:"username"`
	Name       string         `db:"name" json:"name"`
	Email      string         `db:"email" json:"email"`
	Password   string         `db:"password" json:"-"`
	ProfilePic sql.NullString `db:"profile_pic" json:"profile_pic,omitempty"`
	CoverPic   sql.NullString `db:"cover_pic" json:"cover_pic,omitempty"`
	CreatedAt  time.Time      `db:"created_at" json:"created_at"`
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required,alphanum,min=3,max=50"`
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// AuthResponse is returned by login and refresh
type AuthResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	User         *User  `json:"user"`
}
