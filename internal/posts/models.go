// internal/posts/models.go
package posts

import (
	"database/sql"
	"time"
)

type Post struct {
	ID        int64          `db:"id" json:"id"`
	UserID    int64          `db:"user_id" json:"user_id"`
	Desc      string         `db:"descr" json:"desc"`
	Img       sql.NullString `db:"img" json:"img,omitempty"`
	CreatedAt time.Time      `db:"created_at" json:"created_at"`

	// Joined fields
	Author        *AuthorInfo `json:"author,omitempty"`
	LikesCount    int         `json:"likes_count"`
	CommentsCount int         `json:"comments_count"`
	IsLiked       bool        `json:"is_liked"`
}

// AuthorInfo is the user fragment attached to posts, comments and likes
type AuthorInfo struct {
	ID         int64          `json:"id"`
	Username   string         `json:"username"`
	Name       string         `json:"name"`
	ProfilePic sql.NullString `json:"profile_pic,omitempty"`
}

type Comment struct {
	ID        int64     `db:"id" json:"id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	PostID    int64     `db:"post_id" json:"post_id"`
	Desc      string    `db:"descr" json:"desc"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`

	Author *AuthorInfo `json:"author,omitempty"`
}

type Like struct {
	UserID    int64     `db:"user_id" json:"user_id"`
	PostID    int64     `db:"post_id" json:"post_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`

	Author *AuthorInfo `json:"author,omitempty"`
}

type CreatePostRequest struct {
	Desc string `json:"desc" validate:"required,min=1"`
	Img  string `json:"img,omitempty" validate:"omitempty,url"`
}

type CreateCommentRequest struct {
	Desc string `json:"desc" validate:"required,min=1"`
}
