package users

import (
	"context"
	"database/sql"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepository is an in-memory Repository for service tests.
type fakeRepository struct {
	users map[int64]*User
}

func newFakeRepository(users ...*User) *fakeRepository {
	repo := &fakeRepository{users: map[int64]*User{}}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (f *fakeRepository) GetByID(ctx context.Context, userID int64) (*User, error) {
	user, ok := f.users[userID]
	if !ok {
		return nil, ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeRepository) UpdatePartial(ctx context.Context, userID int64, req *UpdateUserRequest) error {
	if req.Name == "" && req.Username == "" && req.Email == "" &&
		req.ProfilePic == "" && req.CoverPic == "" {
		return ErrNoFieldsToUpdate
	}

	user, ok := f.users[userID]
	if !ok {
		return ErrUserNotFound
	}

	for _, other := range f.users {
		if other.ID == userID {
			continue
		}
		if req.Username != "" && other.Username == req.Username {
			return ErrUsernameTaken
		}
		if req.Email != "" && other.Email == req.Email {
			return ErrEmailTaken
		}
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Username != "" {
		user.Username = req.Username
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.ProfilePic != "" {
		user.ProfilePic = sql.NullString{String: req.ProfilePic, Valid: true}
	}
	if req.CoverPic != "" {
		user.CoverPic = sql.NullString{String: req.CoverPic, Valid: true}
	}
	return nil
}

func (f *fakeRepository) Search(ctx context.Context, keyword string, limit, offset int) ([]SearchResult, int, error) {
	results := []SearchResult{}
	for _, u := range f.users {
		if strings.Contains(u.Username, keyword) || strings.Contains(u.Name, keyword) {
			results = append(results, SearchResult{ID: u.ID, Username: u.Username, Name: u.Name})
		}
	}
	return results, len(results), nil
}

// fakeMedia records deletions so tests can assert replaced files go away.
type fakeMedia struct {
	deleted []string
}

func (f *fakeMedia) UploadFile(file multipart.File, header *multipart.FileHeader, folder string) (string, error) {
	return "", nil
}

func (f *fakeMedia) DeleteFile(fileURL string) error {
	f.deleted = append(f.deleted, fileURL)
	return nil
}

func TestService_GetUser(t *testing.T) {
	svc := NewService(newFakeRepository(&User{ID: 1, Username: "alice", Name: "Alice"}), nil)

	user, err := svc.GetUser(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
}

func TestService_GetUser_NotFound(t *testing.T) {
	svc := NewService(newFakeRepository(), nil)

	_, err := svc.GetUser(context.Background(), 42)

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestService_UpdateUser(t *testing.T) {
	svc := NewService(newFakeRepository(&User{ID: 1, Username: "alice", Name: "Alice"}), nil)

	updated, err := svc.UpdateUser(context.Background(), 1, &UpdateUserRequest{Name: "Alice B"})

	require.NoError(t, err)
	assert.Equal(t, "Alice B", updated.Name)
	assert.Equal(t, "alice", updated.Username)
}

func TestService_UpdateUser_NoFields(t *testing.T) {
	svc := NewService(newFakeRepository(&User{ID: 1, Username: "alice"}), nil)

	_, err := svc.UpdateUser(context.Background(), 1, &UpdateUserRequest{})

	assert.ErrorIs(t, err, ErrNoFieldsToUpdate)
}

func TestService_UpdateUser_UsernameTaken(t *testing.T) {
	svc := NewService(newFakeRepository(
		&User{ID: 1, Username: "alice"},
		&User{ID: 2, Username: "bob"},
	), nil)

	_, err := svc.UpdateUser(context.Background(), 1, &UpdateUserRequest{Username: "bob"})

	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestService_UpdateUser_DeletesReplacedProfilePic(t *testing.T) {
	media := &fakeMedia{}
	svc := NewService(newFakeRepository(&User{
		ID:         1,
		Username:   "alice",
		ProfilePic: sql.NullString{String: "https://cdn.example.com/old.jpg", Valid: true},
	}), media)

	updated, err := svc.UpdateUser(context.Background(), 1, &UpdateUserRequest{
		ProfilePic: "https://cdn.example.com/new.jpg",
	})

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/new.jpg", updated.ProfilePic.String)
	assert.Equal(t, []string{"https://cdn.example.com/old.jpg"}, media.deleted)
}

func TestService_UpdateUser_KeepsUnreplacedMedia(t *testing.T) {
	media := &fakeMedia{}
	svc := NewService(newFakeRepository(&User{
		ID:         1,
		Username:   "alice",
		ProfilePic: sql.NullString{String: "https://cdn.example.com/pic.jpg", Valid: true},
	}), media)

	// A name-only update never touches stored files
	_, err := svc.UpdateUser(context.Background(), 1, &UpdateUserRequest{Name: "Alice B"})

	require.NoError(t, err)
	assert.Empty(t, media.deleted)
}

func TestService_SearchUsers(t *testing.T) {
	svc := NewService(newFakeRepository(
		&User{ID: 1, Username: "alice", Name: "Alice"},
		&User{ID: 2, Username: "bob", Name: "Bob"},
	), nil)

	results, total, err := svc.SearchUsers(context.Background(), "ali", 1, 5)

	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, results, 1)
	assert.Equal(t, "alice", results[0].Username)
}

func TestService_SearchUsers_EmptyKeyword(t *testing.T) {
	svc := NewService(newFakeRepository(), nil)

	_, _, err := svc.SearchUsers(context.Background(), "   ", 1, 5)

	assert.ErrorIs(t, err, ErrEmptySearch)
}
