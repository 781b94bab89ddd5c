// internal/users/models.go
package users

import (
	"database/sql"
	"time"
)

// User is the public view of an account. The password column is never
// selected by this package.
type User struct {
	ID         int64          `db:"id" json:"id"`
	Username   string         `db:"username" json:"username"`
	Name       string         `db:"name" json:"name"`
	Email      string         `db:"email" json:"email"`
	ProfilePic sql.NullString `db:"profile_pic" json:"profile_pic,omitempty"`
	CoverPic   sql.NullString `db:"cover_pic" json:"cover_pic,omitempty"`
	CreatedAt  time.Time      `db:"created_at" json:"created_at"`
}

// UpdateUserRequest carries a partial field set. Empty fields are left
// untouched; an update with nothing set is rejected.
type UpdateUserRequest struct {
	Name       string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Username   string `json:"username,omitempty" validate:"omitempty,alphanum,min=3,max=50"`
	Email      string `json:"email,omitempty" validate:"omitempty,email"`
	ProfilePic string `json:"profile_pic,omitempty" validate:"omitempty,url"`
	CoverPic   string `json:"cover_pic,omitempty" validate:"omitempty,url"`
}

// SearchResult is the trimmed row returned by user search
type SearchResult struct {
	ID         int64          `db:"id" json:"id"`
	Username   string         `db:"username" json:"username"`
	Name       string         `db:"name" json:"name"`
	ProfilePic sql.NullString `db:"profile_pic" json:"profile_pic,omitempty"`
}
