// internal/relationships/service.go
package relationships

import (
	"context"
	"errors"
)

var (
	ErrSelfFollow       = errors.New("you cannot follow yourself")
	ErrAlreadyFollowing = errors.New("you are already following this user")
	ErrUserNotFound     = errors.New("user not found")
)

type Service interface {
	Follow(ctx context.Context, followerID, followedID int64) error
	Unfollow(ctx context.Context, followerID, followedID int64) error
	ListFollowers(ctx context.Context, userID int64, page, limit int) ([]FollowUser, int, error)
	ListFollowing(ctx context.Context, userID int64, page, limit int) ([]FollowUser, int, error)
	GetCounts(ctx context.Context, userID int64) (*FollowCounts, error)
	GetStatus(ctx context.Context, followerID, followedID int64) (*FollowStatus, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Follow rejects self-follows before touching storage. Duplicate follows
// surface as ErrAlreadyFollowing via the unique constraint, so two
// concurrent requests cannot both create the relationship.
func (s *service) Follow(ctx context.Context, followerID, followedID int64) error {
	if followerID == followedID {
		return ErrSelfFollow
	}
	return s.repo.CreateFollow(ctx, followerID, followedID)
}

func (s *service) Unfollow(ctx context.Context, followerID, followedID int64) error {
	return s.repo.DeleteFollow(ctx, followerID, followedID)
}

func (s *service) ListFollowers(ctx context.Context, userID int64, page, limit int) ([]FollowUser, int, error) {
	offset := (page - 1) * limit
	return s.repo.ListFollowers(ctx, userID, limit, offset)
}

func (s *service) ListFollowing(ctx context.Context, userID int64, page, limit int) ([]FollowUser, int, error) {
	offset := (page - 1) * limit
	return s.repo.ListFollowing(ctx, userID, limit, offset)
}

func (s *service) GetCounts(ctx context.Context, userID int64) (*FollowCounts, error) {
	followers, err := s.repo.CountFollowers(ctx, userID)
	if err != nil {
		return nil, err
	}

	following, err := s.repo.CountFollowing(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &FollowCounts{Followers: followers, Following: following}, nil
}

func (s *service) GetStatus(ctx context.Context, followerID, followedID int64) (*FollowStatus, error) {
	following, err := s.repo.IsFollowing(ctx, followerID, followedID)
	if err != nil {
		return nil, err
	}
	return &FollowStatus{Following: following}, nil
}
