// internal/relationships/models.go
package relationships

import "time"

type Relationship struct {
	ID             int64     `db:"id" json:"id"`
	FollowerUserID int64     `db:"follower_user_id" json:"follower_user_id"`
	FollowedUserID int64     `db:"followed_user_id" json:"followed_user_id"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

// FollowUser is the user fragment returned by follower/following listings
type FollowUser struct {
	ID         int64     `db:"id" json:"id"`
	Username   string    `db:"username" json:"username"`
	Name       string    `db:"name" json:"name"`
	ProfilePic *string   `db:"profile_pic" json:"profile_pic,omitempty"`
	FollowedAt time.Time `db:"followed_at" json:"followed_at"`
}

type FollowRequest struct {
	UserID int64 `json:"user_id" validate:"required,gt=0"`
}

type FollowCounts struct {
	Followers int `json:"followers"`
	Following int `json:"following"`
}

type FollowStatus struct {
	Following bool `json:"following"`
}
