// internal/stories/service.go
package stories

import (
	"context"
	"errors"
	"time"
)

var (
	ErrStoryNotFound = errors.New("story not found")
	ErrNotStoryOwner = errors.New("you can only delete your own stories")
	ErrUserNotFound  = errors.New("user not found")
)

type Service interface {
	CreateStory(ctx context.Context, userID int64, req *CreateStoryRequest) (*Story, error)
	GetFeed(ctx context.Context, viewerID int64, page, limit int) ([]Story, int, error)
	DeleteStory(ctx context.Context, requesterID, storyID int64) error
	CleanupExpiredStories(ctx context.Context) (int64, error)
}

type service struct {
	repo      Repository
	retention time.Duration
}

// NewService builds the stories service. Retention controls how long a
// story stays visible before the cleanup job removes it.
func NewService(repo Repository, retention time.Duration) Service {
	if retention <= 0 {
		retention = 24 * time.Hour
	}
	return &service{repo: repo, retention: retention}
}

func (s *service) CreateStory(ctx context.Context, userID int64, req *CreateStoryRequest) (*Story, error) {
	story := &Story{
		UserID: userID,
		Img:    req.Img,
	}

	if err := s.repo.CreateStory(ctx, story); err != nil {
		return nil, err
	}

	return story, nil
}

func (s *service) GetFeed(ctx context.Context, viewerID int64, page, limit int) ([]Story, int, error) {
	cutoff := time.Now().Add(-s.retention)
	offset := (page - 1) * limit
	return s.repo.GetFeed(ctx, viewerID, cutoff, limit, offset)
}

// DeleteStory looks the story up first so a missing story and someone
// else's story produce different results.
func (s *service) DeleteStory(ctx context.Context, requesterID, storyID int64) error {
	story, err := s.repo.GetStoryByID(ctx, storyID)
	if err != nil {
		return err
	}

	if story.UserID != requesterID {
		return ErrNotStoryOwner
	}

	return s.repo.DeleteStory(ctx, storyID)
}

func (s *service) CleanupExpiredStories(ctx context.Context) (int64, error) {
	cutoff := time.Now().Add(-s.retention)
	return s.repo.DeleteOlderThan(ctx, cutoff)
}
