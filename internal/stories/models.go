// internal/stories/models.go
package stories

import "time"

type Story struct {
	ID        int64     `db:"id" json:"id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	Img       string    `db:"img" json:"img"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`

	// Joined fields
	Author *AuthorInfo `json:"author,omitempty"`
}

// AuthorInfo is the user fragment attached to stories in the feed
type AuthorInfo struct {
	ID         int64   `json:"id"`
	Username   string  `json:"username"`
	Name       string  `json:"name"`
	ProfilePic *string `json:"profile_pic,omitempty"`
}

type CreateStoryRequest struct {
	Img string `json:"img" validate:"required,url"`
}
