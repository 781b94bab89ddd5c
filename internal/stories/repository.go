// internal/stories/repository.go
package stories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/circleup-app/circleup-backend/internal/common/database"
)

type Repository interface {
	CreateStory(ctx context.Context, story *Story) error
	GetStoryByID(ctx context.Context, storyID int64) (*Story, error)
	GetFeed(ctx context.Context, viewerID int64, cutoff time.Time, limit, offset int) ([]Story, int, error)
	DeleteStory(ctx context.Context, storyID int64) error
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type postgresRepository struct {
	db *sqlx.DB
}

func NewPostgresRepository(db *sqlx.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) CreateStory(ctx context.Context, story *Story) error {
	query := `
		INSERT INTO stories (user_id, img)
		VALUES ($1, $2)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, story.UserID, story.Img).
		Scan(&story.ID, &story.CreatedAt)
	if err != nil && database.IsForeignKeyViolation(err) {
		return ErrUserNotFound
	}
	return err
}

func (r *postgresRepository) GetStoryByID(ctx context.Context, storyID int64) (*Story, error) {
	var story Story
	query := `
		SELECT id, user_id, img, created_at
		FROM stories
		WHERE id = $1`

	err := r.db.GetContext(ctx, &story, query, storyID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrStoryNotFound
	}
	return &story, err
}

// GetFeed returns stories from the viewer and everyone they follow that
// are newer than the cutoff, newest first. The follower filter lives in
// the join condition so a story never appears once per follower.
func (r *postgresRepository) GetFeed(ctx context.Context, viewerID int64, cutoff time.Time, limit, offset int) ([]Story, int, error) {
	var total int
	countQuery := `
		SELECT COUNT(*)
		FROM stories s
		LEFT JOIN relationships r
			ON r.followed_user_id = s.user_id AND r.follower_user_id = $1
		WHERE (r.id IS NOT NULL OR s.user_id = $1)
		  AND s.created_at > $2`

	if err := r.db.GetContext(ctx, &total, countQuery, viewerID, cutoff); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT s.id, s.user_id, s.img, s.created_at,
		       u.username, u.name, u.profile_pic
		FROM stories s
		JOIN users u ON s.user_id = u.id
		LEFT JOIN relationships r
			ON r.followed_user_id = s.user_id AND r.follower_user_id = $1
		WHERE (r.id IS NOT NULL OR s.user_id = $1)
		  AND s.created_at > $2
		ORDER BY s.created_at DESC
		LIMIT $3 OFFSET $4`

	rows, err := r.db.QueryContext(ctx, query, viewerID, cutoff, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	stories := []Story{}
	for rows.Next() {
		story := Story{Author: &AuthorInfo{}}
		err := rows.Scan(&story.ID, &story.UserID, &story.Img, &story.CreatedAt,
			&story.Author.Username, &story.Author.Name, &story.Author.ProfilePic)
		if err != nil {
			return nil, 0, err
		}
		story.Author.ID = story.UserID
		stories = append(stories, story)
	}

	return stories, total, rows.Err()
}

func (r *postgresRepository) DeleteStory(ctx context.Context, storyID int64) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM stories WHERE id = $1", storyID)
	return err
}

func (r *postgresRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM stories WHERE created_at <= $1", cutoff)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
