package app

import (
	"time"

	"github.com/gookit/slog"

	"blogapi/internal/dto"
	"blogapi/internal/model"
	"blogapi/internal/pagination"
)

// PostWithAuthor pairs a post with its resolved author row.
type PostWithAuthor struct {
	Post   model.Post
	Author model.User
}

type PostService struct {
	posts  PostStore
	users  UserStore
	events EventPublisher
}

func NewPostService(posts PostStore, users UserStore, events EventPublisher) *PostService {
	return &PostService{posts: posts, users: users, events: events}
}

// List returns one page of posts newest first, each with its author
// resolved by a separate lookup.
func (s *PostService) List(query pagination.Query) ([]PostWithAuthor, int64, error) {
	total, err := s.posts.Count()
	if err != nil {
		return nil, 0, err
	}

	posts, err := s.posts.List(query.Offset(), query.Limit())
	if err != nil {
		return nil, 0, err
	}

	result := make([]PostWithAuthor, 0, len(posts))
	for _, post := range posts {
		author, err := s.users.GetByID(post.AuthorID)
		if err != nil {
			return nil, 0, err
		}
		if author == nil {
			slog.Warnf("post %d references missing author %d", post.ID, post.AuthorID)
			return nil, 0, ErrNotFound
		}
		result = append(result, PostWithAuthor{Post: post, Author: *author})
	}
	return result, total, nil
}

func (s *PostService) Get(id uint) (*PostWithAuthor, error) {
	post, err := s.posts.GetByID(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}

	author, err := s.users.GetByID(post.AuthorID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		slog.Warnf("post %d references missing author %d", post.ID, post.AuthorID)
		return nil, ErrNotFound
	}
	return &PostWithAuthor{Post: *post, Author: *author}, nil
}

// Create inserts a new post. The author must exist; nothing is written
// when it does not.
func (s *PostService) Create(input dto.CreatePostDto) (*PostWithAuthor, error) {
	author, err := s.users.GetByID(input.AuthorID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		slog.Warnf("create post rejected, author %d not found", input.AuthorID)
		return nil, ErrNotFound
	}

	post := &model.Post{
		Title:     input.Title,
		Content:   input.Content,
		AuthorID:  input.AuthorID,
		Metadata:  input.Metadata.ToMetadata(),
		Published: input.Published,
	}
	if err := s.posts.Create(post); err != nil {
		return nil, err
	}

	slog.Infof("post created id=%d author=%d", post.ID, post.AuthorID)
	publish(s.events, model.EntityPost, model.ActionCreated, post.ID)
	return &PostWithAuthor{Post: *post, Author: *author}, nil
}

// Update applies the fields present in the DTO, replaces the metadata
// document wholesale when present, and stamps updated_at.
func (s *PostService) Update(id uint, input dto.UpdatePostDto) (*PostWithAuthor, error) {
	post, err := s.posts.GetByID(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}

	author, err := s.users.GetByID(post.AuthorID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, ErrNotFound
	}

	if input.Title != nil {
		post.Title = *input.Title
	}
	if input.Content != nil {
		post.Content = *input.Content
	}
	if input.Metadata != nil {
		post.Metadata = input.Metadata.ToMetadata()
	}
	if input.Published != nil {
		post.Published = *input.Published
	}

	now := time.Now()
	post.UpdatedAt = &now

	if err := s.posts.Update(post); err != nil {
		return nil, err
	}

	slog.Infof("post updated id=%d", post.ID)
	publish(s.events, model.EntityPost, model.ActionUpdated, post.ID)
	return &PostWithAuthor{Post: *post, Author: *author}, nil
}

func (s *PostService) Delete(id uint) error {
	rows, err := s.posts.Delete(id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}

	slog.Infof("post deleted id=%d", id)
	publish(s.events, model.EntityPost, model.ActionDeleted, id)
	return nil
}
