// internal/posts/service.go
package posts

import (
	"context"
	"database/sql"
	"errors"
	"strings"
)

var (
	ErrPostNotFound    = errors.New("post not found")
	ErrNotPostOwner    = errors.New("you can only delete your own posts")
	ErrCommentNotFound = errors.New("comment not found")
	ErrNotCommentOwner = errors.New("you can only delete your own comments")
	ErrEmptyDesc       = errors.New("description cannot be empty")
)

type Service interface {
	CreatePost(ctx context.Context, userID int64, req *CreatePostRequest) (*Post, error)
	GetPost(ctx context.Context, postID, viewerID int64) (*Post, error)
	GetFeed(ctx context.Context, viewerID int64, page, limit int) ([]Post, int, error)
	DeletePost(ctx context.Context, requesterID, postID int64) error

	ToggleLike(ctx context.Context, userID, postID int64) (bool, error)
	GetPostLikes(ctx context.Context, postID int64, page, limit int) ([]Like, int, error)

	AddComment(ctx context.Context, userID, postID int64, req *CreateCommentRequest) (*Comment, error)
	GetPostComments(ctx context.Context, postID int64, page, limit int) ([]Comment, int, error)
	DeleteComment(ctx context.Context, requesterID, commentID int64) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreatePost(ctx context.Context, userID int64, req *CreatePostRequest) (*Post, error) {
	if strings.TrimSpace(req.Desc) == "" {
		return nil, ErrEmptyDesc
	}

	post := &Post{
		UserID: userID,
		Desc:   req.Desc,
	}
	if req.Img != "" {
		post.Img = sql.NullString{String: req.Img, Valid: true}
	}

	if err := s.repo.CreatePost(ctx, post); err != nil {
		return nil, err
	}

	return s.repo.GetPostByID(ctx, post.ID, userID)
}

func (s *service) GetPost(ctx context.Context, postID, viewerID int64) (*Post, error) {
	return s.repo.GetPostByID(ctx, postID, viewerID)
}

func (s *service) GetFeed(ctx context.Context, viewerID int64, page, limit int) ([]Post, int, error) {
	offset := (page - 1) * limit
	return s.repo.GetFeed(ctx, viewerID, limit, offset)
}

// DeletePost looks the post up first so a missing post and someone else's
// post produce different results, then removes the post and its comments
// and likes in one transaction.
func (s *service) DeletePost(ctx context.Context, requesterID, postID int64) error {
	post, err := s.repo.GetPostByID(ctx, postID, requesterID)
	if err != nil {
		return err
	}

	if post.UserID != requesterID {
		return ErrNotPostOwner
	}

	return s.repo.DeletePostCascade(ctx, postID)
}

func (s *service) ToggleLike(ctx context.Context, userID, postID int64) (bool, error) {
	return s.repo.ToggleLike(ctx, userID, postID)
}

func (s *service) GetPostLikes(ctx context.Context, postID int64, page, limit int) ([]Like, int, error) {
	if _, err := s.repo.GetPostByID(ctx, postID, 0); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	return s.repo.GetPostLikes(ctx, postID, limit, offset)
}

func (s *service) AddComment(ctx context.Context, userID, postID int64, req *CreateCommentRequest) (*Comment, error) {
	if strings.TrimSpace(req.Desc) == "" {
		return nil, ErrEmptyDesc
	}

	comment := &Comment{
		UserID: userID,
		PostID: postID,
		Desc:   req.Desc,
	}

	if err := s.repo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

func (s *service) GetPostComments(ctx context.Context, postID int64, page, limit int) ([]Comment, int, error) {
	offset := (page - 1) * limit
	return s.repo.GetPostComments(ctx, postID, limit, offset)
}

// DeleteComment allows the comment author or the owner of the commented
// post to remove a comment.
func (s *service) DeleteComment(ctx context.Context, requesterID, commentID int64) error {
	comment, err := s.repo.GetComment(ctx, commentID)
	if err != nil {
		return err
	}

	if comment.UserID != requesterID {
		post, err := s.repo.GetPostByID(ctx, comment.PostID, requesterID)
		if err != nil {
			return err
		}
		if post.UserID != requesterID {
			return ErrNotCommentOwner
		}
	}

	return s.repo.DeleteComment(ctx, commentID)
}
