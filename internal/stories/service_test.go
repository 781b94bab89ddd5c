package stories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepository is an in-memory Repository for service tests.
type fakeRepository struct {
	stories map[int64]*Story
	nextID  int64
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{stories: map[int64]*Story{}, nextID: 1}
}

func (f *fakeRepository) CreateStory(ctx context.Context, story *Story) error {
	story.ID = f.nextID
	f.nextID++
	story.CreatedAt = time.Now()
	copied := *story
	f.stories[story.ID] = &copied
	return nil
}

func (f *fakeRepository) GetStoryByID(ctx context.Context, storyID int64) (*Story, error) {
	story, ok := f.stories[storyID]
	if !ok {
		return nil, ErrStoryNotFound
	}
	copied := *story
	return &copied, nil
}

func (f *fakeRepository) GetFeed(ctx context.Context, viewerID int64, cutoff time.Time, limit, offset int) ([]Story, int, error) {
	visible := []Story{}
	for _, s := range f.stories {
		if s.CreatedAt.After(cutoff) {
			visible = append(visible, *s)
		}
	}
	return visible, len(visible), nil
}

func (f *fakeRepository) DeleteStory(ctx context.Context, storyID int64) error {
	delete(f.stories, storyID)
	return nil
}

func (f *fakeRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	var removed int64
	for id, s := range f.stories {
		if !s.CreatedAt.After(cutoff) {
			delete(f.stories, id)
			removed++
		}
	}
	return removed, nil
}

func TestService_CreateStory(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo, 24*time.Hour)

	story, err := svc.CreateStory(context.Background(), 1, &CreateStoryRequest{
		Img: "https://cdn.example.com/story.jpg",
	})

	require.NoError(t, err)
	assert.NotZero(t, story.ID)
	assert.Equal(t, int64(1), story.UserID)
}

func TestService_DeleteStory_NotFound(t *testing.T) {
	svc := NewService(newFakeRepository(), 24*time.Hour)

	err := svc.DeleteStory(context.Background(), 1, 99)

	assert.ErrorIs(t, err, ErrStoryNotFound)
}

func TestService_DeleteStory_NotOwner(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo, 24*time.Hour)
	ctx := context.Background()

	story, err := svc.CreateStory(ctx, 1, &CreateStoryRequest{Img: "https://cdn.example.com/a.jpg"})
	require.NoError(t, err)

	err = svc.DeleteStory(ctx, 2, story.ID)

	assert.ErrorIs(t, err, ErrNotStoryOwner)
	assert.Len(t, repo.stories, 1)
}

func TestService_DeleteStory_Owner(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo, 24*time.Hour)
	ctx := context.Background()

	story, err := svc.CreateStory(ctx, 1, &CreateStoryRequest{Img: "https://cdn.example.com/a.jpg"})
	require.NoError(t, err)

	err = svc.DeleteStory(ctx, 1, story.ID)

	require.NoError(t, err)
	assert.Empty(t, repo.stories)
}

func TestService_CleanupExpiredStories(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo, 24*time.Hour)
	ctx := context.Background()

	fresh, err := svc.CreateStory(ctx, 1, &CreateStoryRequest{Img: "https://cdn.example.com/fresh.jpg"})
	require.NoError(t, err)

	expired, err := svc.CreateStory(ctx, 1, &CreateStoryRequest{Img: "https://cdn.example.com/old.jpg"})
	require.NoError(t, err)
	repo.stories[expired.ID].CreatedAt = time.Now().Add(-25 * time.Hour)

	removed, err := svc.CleanupExpiredStories(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)
	assert.Contains(t, repo.stories, fresh.ID)
	assert.NotContains(t, repo.stories, expired.ID)
}

func TestService_GetFeed_ExcludesExpired(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo, 24*time.Hour)
	ctx := context.Background()

	_, err := svc.CreateStory(ctx, 1, &CreateStoryRequest{Img: "https://cdn.example.com/fresh.jpg"})
	require.NoError(t, err)

	expired, err := svc.CreateStory(ctx, 1, &CreateStoryRequest{Img: "https://cdn.example.com/old.jpg"})
	require.NoError(t, err)
	repo.stories[expired.ID].CreatedAt = time.Now().Add(-25 * time.Hour)

	stories, total, err := svc.GetFeed(ctx, 1, 1, 5)

	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Len(t, stories, 1)
}
