// internal/users/service.go
package users

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/circleup-app/circleup-backend/internal/common/uploads"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrNoFieldsToUpdate = errors.New("no fields provided for update")
	ErrEmailTaken       = errors.New("email already exists")
	ErrUsernameTaken    = errors.New("username already exists")
	ErrEmptySearch      = errors.New("search keyword is required")
)

type Service interface {
	GetUser(ctx context.Context, userID int64) (*User, error)
	UpdateUser(ctx context.Context, userID int64, req *UpdateUserRequest) (*User, error)
	SearchUsers(ctx context.Context, keyword string, page, limit int) ([]SearchResult, int, error)
}

type service struct {
	repo  Repository
	media uploads.Service
}

// NewService builds the users service. The media service may be nil, in
// which case replaced pictures are left in storage.
func NewService(repo Repository, media uploads.Service) Service {
	return &service{repo: repo, media: media}
}

func (s *service) GetUser(ctx context.Context, userID int64) (*User, error) {
	return s.repo.GetByID(ctx, userID)
}

// UpdateUser applies a partial update to the caller's own record and
// returns the updated row. Ownership is implicit: the userID comes from
// the authenticated context, never from the request body.
func (s *service) UpdateUser(ctx context.Context, userID int64, req *UpdateUserRequest) (*User, error) {
	var previous *User
	if s.media != nil && (req.ProfilePic != "" || req.CoverPic != "") {
		previous, _ = s.repo.GetByID(ctx, userID)
	}

	if err := s.repo.UpdatePartial(ctx, userID, req); err != nil {
		return nil, err
	}

	s.removeReplacedMedia(previous, req)

	return s.repo.GetByID(ctx, userID)
}

// removeReplacedMedia deletes stored files the update superseded. The row
// update already succeeded, so failures are logged and never surfaced.
func (s *service) removeReplacedMedia(previous *User, req *UpdateUserRequest) {
	if s.media == nil || previous == nil {
		return
	}

	if req.ProfilePic != "" && previous.ProfilePic.Valid && previous.ProfilePic.String != req.ProfilePic {
		if err := s.media.DeleteFile(previous.ProfilePic.String); err != nil {
			log.Printf("failed to delete replaced profile picture: %v", err)
		}
	}

	if req.CoverPic != "" && previous.CoverPic.Valid && previous.CoverPic.String != req.CoverPic {
		if err := s.media.DeleteFile(previous.CoverPic.String); err != nil {
			log.Printf("failed to delete replaced cover photo: %v", err)
		}
	}
}

func (s *service) SearchUsers(ctx context.Context, keyword string, page, limit int) ([]SearchResult, int, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, 0, ErrEmptySearch
	}

	offset := (page - 1) * limit
	return s.repo.Search(ctx, keyword, limit, offset)
}
