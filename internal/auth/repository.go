// internal/auth/repository.go
package auth

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/circleup-app/circleup-backend/internal/common/database"
)

type Repository interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUserByID(ctx context.Context, userID int64) (*User, error)
}

type postgresRepository struct {
	db *sqlx.DB
}

func NewPostgresRepository(db *sqlx.DB) Repository {
	return &postgresRepository{db: db}
}

// CreateUser inserts a new account. Duplicate email or username is
// reported as the matching conflict error, never as a raw driver error.
func (r *postgresRepository) CreateUser(ctx context.Context, user *User) error {
	query := `
		INSERT INTO users (username, name, email, password)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		user.Username, user.Name, user.Email, user.Password,
	).Scan(&user.ID, &user.CreatedAt)

	if err != nil && database.IsUniqueViolation(err) {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && strings.Contains(pqErr.Constraint, "username") {
			return ErrUsernameTaken
		}
		return ErrEmailTaken
	}
	return err
}

func (r *postgresRepository) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	query := `
		SELECT id, username, name, email, password, profile_pic, cover_pic, created_at
		FROM users
		WHERE email = $1`

	err := r.db.GetContext(ctx, &user, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	return &user, err
}

func (r *postgresRepository) GetUserByID(ctx context.Context, userID int64) (*User, error) {
	var user User
	query := `
		SELECT id, username, name, email, password, profile_pic, cover_pic, created_at
		FROM users
		WHERE id = $1`

	err := r.db.GetContext(ctx, &user, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	return &user, err
}
