// internal/posts/repository.go
package posts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/circleup-app/circleup-backend/internal/common/database"
)

type Repository interface {
	CreatePost(ctx context.Context, post *Post) error
	GetPostByID(ctx context.Context, postID, viewerID int64) (*Post, error)
	GetFeed(ctx context.Context, viewerID int64, limit, offset int) ([]Post, int, error)
	DeletePostCascade(ctx context.Context, postID int64) error

	ToggleLike(ctx context.Context, userID, postID int64) (bool, error)
	GetPostLikes(ctx context.Context, postID int64, limit, offset int) ([]Like, int, error)

	CreateComment(ctx context.Context, comment *Comment) error
	GetComment(ctx context.Context, commentID int64) (*Comment, error)
	GetPostComments(ctx context.Context, postID int64, limit, offset int) ([]Comment, int, error)
	DeleteComment(ctx context.Context, commentID int64) error
}

type postgresRepository struct {
	db *sqlx.DB
}

func NewPostgresRepository(db *sqlx.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) CreatePost(ctx context.Context, post *Post) error {
	query := `
		INSERT INTO posts (user_id, descr, img)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, post.UserID, post.Desc, post.Img).
		Scan(&post.ID, &post.CreatedAt)
	return err
}

func (r *postgresRepository) GetPostByID(ctx context.Context, postID, viewerID int64) (*Post, error) {
	query := `
		SELECT
			p.id, p.user_id, p.descr, p.img, p.created_at,
			u.username, u.name, u.profile_pic,
			COUNT(DISTINCT l.id) AS likes_count,
			COUNT(DISTINCT c.id) AS comments_count,
			EXISTS(SELECT 1 FROM likes WHERE post_id = p.id AND user_id = $2) AS is_liked
		FROM posts p
		JOIN users u ON p.user_id = u.id
		LEFT JOIN likes l ON p.id = l.post_id
		LEFT JOIN comments c ON p.id = c.post_id
		WHERE p.id = $1
		GROUP BY p.id, u.username, u.name, u.profile_pic`

	post := Post{Author: &AuthorInfo{}}
	err := r.db.QueryRowContext(ctx, query, postID, viewerID).Scan(
		&post.ID, &post.UserID, &post.Desc, &post.Img, &post.CreatedAt,
		&post.Author.Username, &post.Author.Name, &post.Author.ProfilePic,
		&post.LikesCount, &post.CommentsCount, &post.IsLiked,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, err
	}

	post.Author.ID = post.UserID
	return &post, nil
}

// GetFeed returns posts visible to the viewer: their own posts plus posts
// from every user they follow, newest first. The follower filter lives in
// the join condition so a post never appears once per follower.
func (r *postgresRepository) GetFeed(ctx context.Context, viewerID int64, limit, offset int) ([]Post, int, error) {
	var total int
	countQuery := `
		SELECT COUNT(*)
		FROM posts p
		LEFT JOIN relationships r
			ON r.followed_user_id = p.user_id AND r.follower_user_id = $1
		WHERE r.id IS NOT NULL OR p.user_id = $1`

	if err := r.db.GetContext(ctx, &total, countQuery, viewerID); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT
			p.id, p.user_id, p.descr, p.img, p.created_at,
			u.username, u.name, u.profile_pic,
			COUNT(DISTINCT l.id) AS likes_count,
			COUNT(DISTINCT c.id) AS comments_count,
			EXISTS(SELECT 1 FROM likes WHERE post_id = p.id AND user_id = $1) AS is_liked
		FROM posts p
		JOIN users u ON p.user_id = u.id
		LEFT JOIN relationships r
			ON r.followed_user_id = p.user_id AND r.follower_user_id = $1
		LEFT JOIN likes l ON p.id = l.post_id
		LEFT JOIN comments c ON p.id = c.post_id
		WHERE r.id IS NOT NULL OR p.user_id = $1
		GROUP BY p.id, u.username, u.name, u.profile_pic
		ORDER BY p.created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.QueryContext(ctx, query, viewerID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	posts := []Post{}
	for rows.Next() {
		post := Post{Author: &AuthorInfo{}}
		err := rows.Scan(
			&post.ID, &post.UserID, &post.Desc, &post.Img, &post.CreatedAt,
			&post.Author.Username, &post.Author.Name, &post.Author.ProfilePic,
			&post.LikesCount, &post.CommentsCount, &post.IsLiked,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("scan failed: %w", err)
		}
		post.Author.ID = post.UserID
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

// DeletePostCascade removes a post and its dependent rows in one
// transaction: comments, then likes, then the post itself. Nothing is
// committed unless all three deletes succeed.
func (r *postgresRepository) DeletePostCascade(ctx context.Context, postID int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM comments WHERE post_id = $1", postID); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM likes WHERE post_id = $1", postID); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM posts WHERE id = $1", postID); err != nil {
		return err
	}

	return tx.Commit()
}

// ToggleLike inserts the (user, post) pair if absent or deletes it if
// present, and reports whether the post ended up liked. The unique
// constraint on likes arbitrates concurrent toggles: the insert either
// wins (liked) or affects zero rows, in which case the pair is removed.
func (r *postgresRepository) ToggleLike(ctx context.Context, userID, postID int64) (bool, error) {
	insert := `
		INSERT INTO likes (user_id, post_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, post_id) DO NOTHING`

	result, err := r.db.ExecContext(ctx, insert, userID, postID)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return false, ErrPostNotFound
		}
		return false, err
	}

	inserted, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	if inserted == 1 {
		return true, nil
	}

	_, err = r.db.ExecContext(ctx,
		"DELETE FROM likes WHERE user_id = $1 AND post_id = $2", userID, postID)
	return false, err
}

func (r *postgresRepository) GetPostLikes(ctx context.Context, postID int64, limit, offset int) ([]Like, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM likes WHERE post_id = $1`
	if err := r.db.GetContext(ctx, &total, countQuery, postID); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT l.user_id, l.post_id, l.created_at,
		       u.username, u.name, u.profile_pic
		FROM likes l
		JOIN users u ON l.user_id = u.id
		WHERE l.post_id = $1
		ORDER BY l.created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.QueryContext(ctx, query, postID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	likes := []Like{}
	for rows.Next() {
		like := Like{Author: &AuthorInfo{}}
		err := rows.Scan(&like.UserID, &like.PostID, &like.CreatedAt,
			&like.Author.Username, &like.Author.Name, &like.Author.ProfilePic)
		if err != nil {
			return nil, 0, err
		}
		like.Author.ID = like.UserID
		likes = append(likes, like)
	}

	return likes, total, rows.Err()
}

func (r *postgresRepository) CreateComment(ctx context.Context, comment *Comment) error {
	query := `
		INSERT INTO comments (user_id, post_id, descr)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, comment.UserID, comment.PostID, comment.Desc).
		Scan(&comment.ID, &comment.CreatedAt)
	if err != nil && database.IsForeignKeyViolation(err) {
		return ErrPostNotFound
	}
	return err
}

func (r *postgresRepository) GetComment(ctx context.Context, commentID int64) (*Comment, error) {
	var comment Comment
	query := `
		SELECT id, user_id, post_id, descr, created_at
		FROM comments
		WHERE id = $1`

	err := r.db.GetContext(ctx, &comment, query, commentID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCommentNotFound
	}
	return &comment, err
}

func (r *postgresRepository) GetPostComments(ctx context.Context, postID int64, limit, offset int) ([]Comment, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM comments WHERE post_id = $1`
	if err := r.db.GetContext(ctx, &total, countQuery, postID); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT c.id, c.user_id, c.post_id, c.descr, c.created_at,
		       u.username, u.name, u.profile_pic
		FROM comments c
		JOIN users u ON c.user_id = u.id
		WHERE c.post_id = $1
		ORDER BY c.created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.QueryContext(ctx, query, postID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	comments := []Comment{}
	for rows.Next() {
		comment := Comment{Author: &AuthorInfo{}}
		err := rows.Scan(&comment.ID, &comment.UserID, &comment.PostID,
			&comment.Desc, &comment.CreatedAt,
			&comment.Author.Username, &comment.Author.Name, &comment.Author.ProfilePic)
		if err != nil {
			return nil, 0, err
		}
		comment.Author.ID = comment.UserID
		comments = append(comments, comment)
	}

	return comments, total, rows.Err()
}

func (r *postgresRepository) DeleteComment(ctx context.Context, commentID int64) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM comments WHERE id = $1", commentID)
	return err
}
