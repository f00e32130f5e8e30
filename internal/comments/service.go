package comments

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/blogapp/blog-server/internal/db"
	"github.com/blogapp/blog-server/internal/db/sqlc"
	"github.com/google/uuid"
)

var (
	ErrCommentNotFound = errors.New("comment not found")
	ErrPostNotFound    = errors.New("post not found")
	ErrUserNotFound    = errors.New("user not found")
)

type Service struct {
	queries sqlc.Querier
}

func NewService(queries sqlc.Querier) *Service {
	return &Service{queries: queries}
}

// Create attaches a comment to an existing post. A missing post is reported
// before the insert; a missing author surfaces through the foreign key.
func (s *Service) Create(ctx context.Context, in CreateInput) (Comment, error) {
	postID, err := uuid.Parse(in.PostagemID)
	if err != nil {
		return Comment{}, ErrPostNotFound
	}
	userID, err := uuid.Parse(in.UsuarioID)
	if err != nil {
		return Comment{}, ErrUserNotFound
	}

	if _, err := s.queries.GetPostByID(ctx, postID); err != nil {
		if db.IsNotFound(err) {
			return Comment{}, ErrPostNotFound
		}
		return Comment{}, fmt.Errorf("get post: %w", err)
	}

	row, err := s.queries.CreateComment(ctx, sqlc.CreateCommentParams{
		Conteudo:   in.Conteudo,
		UsuarioID:  userID,
		PostagemID: postID,
	})
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			// The post may have been deleted between the check and the insert.
			if _, getErr := s.queries.GetPostByID(ctx, postID); db.IsNotFound(getErr) {
				return Comment{}, ErrPostNotFound
			}
			return Comment{}, ErrUserNotFound
		}
		return Comment{}, fmt.Errorf("create comment: %w", err)
	}

	slog.Debug("Comment created", "comment_id", row.ID, "post_id", row.PostagemID)
	return fromRow(row), nil
}

// ListByPost returns the comments of a post, oldest first. An unknown post
// yields an empty list.
func (s *Service) ListByPost(ctx context.Context, postID string) ([]Comment, error) {
	id, err := uuid.Parse(postID)
	if err != nil {
		return []Comment{}, nil
	}

	rows, err := s.queries.ListCommentsByPost(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	result := make([]Comment, len(rows))
	for i, c := range rows {
		result[i] = fromRow(c)
	}
	return result, nil
}

func (s *Service) Update(ctx context.Context, commentID, conteudo string) (Comment, error) {
	id, err := uuid.Parse(commentID)
	if err != nil {
		return Comment{}, ErrCommentNotFound
	}

	row, err := s.queries.UpdateComment(ctx, sqlc.UpdateCommentParams{ID: id, Conteudo: conteudo})
	if err != nil {
		if db.IsNotFound(err) {
			return Comment{}, ErrCommentNotFound
		}
		return Comment{}, fmt.Errorf("update comment: %w", err)
	}
	return fromRow(row), nil
}

func (s *Service) Delete(ctx context.Context, commentID string) error {
	id, err := uuid.Parse(commentID)
	if err != nil {
		return ErrCommentNotFound
	}

	n, err := s.queries.DeleteComment(ctx, id)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if n == 0 {
		return ErrCommentNotFound
	}
	return nil
}
