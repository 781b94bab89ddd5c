// internal/users/repository.go
package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/circleup-app/circleup-backend/internal/common/database"
)

type Repository interface {
	GetByID(ctx context.Context, userID int64) (*User, error)
	UpdatePartial(ctx context.Context, userID int64, req *UpdateUserRequest) error
	Search(ctx context.Context, keyword string, limit, offset int) ([]SearchResult, int, error)
}

type postgresRepository struct {
	db *sqlx.DB
}

func NewPostgresRepository(db *sqlx.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) GetByID(ctx context.Context, userID int64) (*User, error) {
	var user User
	query := `
		SELECT id, username, name, email, profile_pic, cover_pic, created_at
		FROM users
		WHERE id = $1`

	err := r.db.GetContext(ctx, &user, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	return &user, err
}

// UpdatePartial writes only the fields present in the request
func (r *postgresRepository) UpdatePartial(ctx context.Context, userID int64, req *UpdateUserRequest) error {
	var setClauses []string
	var args []interface{}
	argCount := 1

	if req.Name != "" {
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", argCount))
		args = append(args, req.Name)
		argCount++
	}

	if req.Username != "" {
		setClauses = append(setClauses, fmt.Sprintf("username = $%d", argCount))
		args = append(args, req.Username)
		argCount++
	}

	if req.Email != "" {
		setClauses = append(setClauses, fmt.Sprintf("email = $%d", argCount))
		args = append(args, req.Email)
		argCount++
	}

	if req.ProfilePic != "" {
		setClauses = append(setClauses, fmt.Sprintf("profile_pic = $%d", argCount))
		args = append(args, req.ProfilePic)
		argCount++
	}

	if req.CoverPic != "" {
		setClauses = append(setClauses, fmt.Sprintf("cover_pic = $%d", argCount))
		args = append(args, req.CoverPic)
		argCount++
	}

	if len(setClauses) == 0 {
		return ErrNoFieldsToUpdate
	}

	args = append(args, userID)
	query := fmt.Sprintf("UPDATE users SET %s WHERE id = $%d",
		strings.Join(setClauses, ", "), argCount)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if database.IsUniqueViolation(err) {
			var pqErr *pq.Error
			if errors.As(err, &pqErr) && strings.Contains(pqErr.Constraint, "username") {
				return ErrUsernameTaken
			}
			return ErrEmailTaken
		}
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrUserNotFound
	}

	return nil
}

// Search matches name or username by substring, case-insensitive
func (r *postgresRepository) Search(ctx context.Context, keyword string, limit, offset int) ([]SearchResult, int, error) {
	pattern := "%" + keyword + "%"

	var total int
	countQuery := `
		SELECT COUNT(*) FROM users
		WHERE name ILIKE $1 OR username ILIKE $1`
	if err := r.db.GetContext(ctx, &total, countQuery, pattern); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT id, username, name, profile_pic
		FROM users
		WHERE name ILIKE $1 OR username ILIKE $1
		ORDER BY username
		LIMIT $2 OFFSET $3`

	results := []SearchResult{}
	err := r.db.SelectContext(ctx, &results, query, pattern, limit, offset)
	return results, total, err
}
