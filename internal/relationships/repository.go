// internal/relationships/repository.go
package relationships

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/circleup-app/circleup-backend/internal/common/database"
)

type Repository interface {
	CreateFollow(ctx context.Context, followerID, followedID int64) error
	DeleteFollow(ctx context.Context, followerID, followedID int64) error
	ListFollowers(ctx context.Context, userID int64, limit, offset int) ([]FollowUser, int, error)
	ListFollowing(ctx context.Context, userID int64, limit, offset int) ([]FollowUser, int, error)
	CountFollowers(ctx context.Context, userID int64) (int, error)
	CountFollowing(ctx context.Context, userID int64) (int, error)
	IsFollowing(ctx context.Context, followerID, followedID int64) (bool, error)
}

type postgresRepository struct {
	db *sqlx.DB
}

func NewPostgresRepository(db *sqlx.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) CreateFollow(ctx context.Context, followerID, followedID int64) error {
	query := `
		INSERT INTO relationships (follower_user_id, followed_user_id)
		VALUES ($1, $2)`

	_, err := r.db.ExecContext(ctx, query, followerID, followedID)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return ErrAlreadyFollowing
		}
		if database.IsForeignKeyViolation(err) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

// DeleteFollow is idempotent: removing a relationship that does not exist
// is not an error.
func (r *postgresRepository) DeleteFollow(ctx context.Context, followerID, followedID int64) error {
	query := `
		DELETE FROM relationships
		WHERE follower_user_id = $1 AND followed_user_id = $2`

	_, err := r.db.ExecContext(ctx, query, followerID, followedID)
	return err
}

func (r *postgresRepository) ListFollowers(ctx context.Context, userID int64, limit, offset int) ([]FollowUser, int, error) {
	total, err := r.CountFollowers(ctx, userID)
	if err != nil {
		return nil, 0, err
	}

	query := `
		SELECT u.id, u.username, u.name, u.profile_pic,
		       r.created_at AS followed_at
		FROM relationships r
		JOIN users u ON r.follower_user_id = u.id
		WHERE r.followed_user_id = $1
		ORDER BY r.created_at DESC
		LIMIT $2 OFFSET $3`

	followers := []FollowUser{}
	if err := r.db.SelectContext(ctx, &followers, query, userID, limit, offset); err != nil {
		return nil, 0, err
	}

	return followers, total, nil
}

func (r *postgresRepository) ListFollowing(ctx context.Context, userID int64, limit, offset int) ([]FollowUser, int, error) {
	total, err := r.CountFollowing(ctx, userID)
	if err != nil {
		return nil, 0, err
	}

	query := `
		SELECT u.id, u.username, u.name, u.profile_pic,
		       r.created_at AS followed_at
		FROM relationships r
		JOIN users u ON r.followed_user_id = u.id
		WHERE r.follower_user_id = $1
		ORDER BY r.created_at DESC
		LIMIT $2 OFFSET $3`

	following := []FollowUser{}
	if err := r.db.SelectContext(ctx, &following, query, userID, limit, offset); err != nil {
		return nil, 0, err
	}

	return following, total, nil
}

func (r *postgresRepository) CountFollowers(ctx context.Context, userID int64) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM relationships WHERE followed_user_id = $1`
	err := r.db.GetContext(ctx, &count, query, userID)
	return count, err
}

func (r *postgresRepository) CountFollowing(ctx context.Context, userID int64) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM relationships WHERE follower_user_id = $1`
	err := r.db.GetContext(ctx, &count, query, userID)
	return count, err
}

func (r *postgresRepository) IsFollowing(ctx context.Context, followerID, followedID int64) (bool, error) {
	var exists bool
	query := `
		SELECT EXISTS(
			SELECT 1 FROM relationships
			WHERE follower_user_id = $1 AND followed_user_id = $2
		)`
	err := r.db.GetContext(ctx, &exists, query, followerID, followedID)
	return exists, err
}
