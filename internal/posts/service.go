package posts

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/blogapp/blog-server/internal/db"
	"github.com/blogapp/blog-server/internal/db/sqlc"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

var (
	ErrPostNotFound   = errors.New("post not found")
	ErrAuthorNotFound = errors.New("author not found")
	ErrInvalidAuthor  = errors.New("invalid author id")
)

type Service struct {
	queries sqlc.Querier
	cache   Cache
}

func NewService(queries sqlc.Querier, cache Cache) *Service {
	if cache == nil {
		cache = NoopCache{}
	}
	return &Service{
		queries: queries,
		cache:   cache,
	}
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Post, error) {
	authorID, err := uuid.Parse(in.AuthorID)
	if err != nil {
		return Post{}, ErrInvalidAuthor
	}

	params := sqlc.CreatePostParams{
		Titulo:    in.Titulo,
		Conteudo:  in.Conteudo,
		AuthorID:  authorID,
		Published: in.Published,
	}
	if in.Imagem != nil {
		params.Imagem = pgtype.Text{String: *in.Imagem, Valid: true}
	}

	row, err := s.queries.CreatePost(ctx, params)
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			return Post{}, ErrAuthorNotFound
		}
		return Post{}, fmt.Errorf("create post: %w", err)
	}

	slog.Info("Post created", "post_id", row.ID, "author_id", row.AuthorID)
	return fromRow(row), nil
}

// Get serves from the cache when possible. Cache faults are logged and fall
// through to the database.
func (s *Service) Get(ctx context.Context, postID string) (Post, error) {
	id, err := uuid.Parse(postID)
	if err != nil {
		return Post{}, ErrPostNotFound
	}

	cached, err := s.cache.Get(ctx, id.String())
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, ErrCacheMiss) {
		slog.Warn("Post cache read failed", "post_id", postID, "error", err)
	}

	row, err := s.queries.GetPostByID(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return Post{}, ErrPostNotFound
		}
		return Post{}, fmt.Errorf("get post: %w", err)
	}

	post := fromRow(row)
	if err := s.cache.Set(ctx, post); err != nil {
		slog.Warn("Post cache write failed", "post_id", postID, "error", err)
	}
	return post, nil
}

// Exists reports whether the post is present, bypassing the cache.
func (s *Service) Exists(ctx context.Context, postID string) (bool, error) {
	id, err := uuid.Parse(postID)
	if err != nil {
		return false, nil
	}
	if _, err := s.queries.GetPostByID(ctx, id); err != nil {
		if db.IsNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("get post: %w", err)
	}
	return true, nil
}

func (s *Service) List(ctx context.Context, f ListFilter) ([]Post, int64, error) {
	var author uuid.NullUUID
	if f.AuthorID != "" {
		id, err := uuid.Parse(f.AuthorID)
		if err != nil {
			return nil, 0, ErrInvalidAuthor
		}
		author = uuid.NullUUID{UUID: id, Valid: true}
	}

	total, err := s.queries.CountPosts(ctx, author)
	if err != nil {
		return nil, 0, fmt.Errorf("count posts: %w", err)
	}

	rows, err := s.queries.ListPosts(ctx, sqlc.ListPostsParams{
		AuthorID: author,
		Limit:    clampInt32(f.Limit),
		Offset:   clampInt32(f.Offset),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("list posts: %w", err)
	}

	result := make([]Post, len(rows))
	for i, p := range rows {
		result[i] = fromRow(p)
	}
	return result, total, nil
}

func (s *Service) Update(ctx context.Context, postID string, in UpdateInput) (Post, error) {
	id, err := uuid.Parse(postID)
	if err != nil {
		return Post{}, ErrPostNotFound
	}

	params := sqlc.UpdatePostParams{ID: id}
	if in.Titulo != nil {
		params.Titulo = pgtype.Text{String: *in.Titulo, Valid: true}
	}
	if in.Conteudo != nil {
		params.Conteudo = pgtype.Text{String: *in.Conteudo, Valid: true}
	}
	if in.Imagem != nil {
		params.Imagem = pgtype.Text{String: *in.Imagem, Valid: true}
	}
	if in.Published != nil {
		params.Published = pgtype.Bool{Bool: *in.Published, Valid: true}
	}

	row, err := s.queries.UpdatePost(ctx, params)
	if err != nil {
		if db.IsNotFound(err) {
			return Post{}, ErrPostNotFound
		}
		return Post{}, fmt.Errorf("update post: %w", err)
	}

	s.invalidate(ctx, id.String())
	return fromRow(row), nil
}

// SetImage points the post at a stored image and returns the post together with
// the image it replaced, if any.
func (s *Service) SetImage(ctx context.Context, postID, imagePath string) (Post, *string, error) {
	id, err := uuid.Parse(postID)
	if err != nil {
		return Post{}, nil, ErrPostNotFound
	}

	prev, err := s.queries.GetPostByID(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return Post{}, nil, ErrPostNotFound
		}
		return Post{}, nil, fmt.Errorf("get post: %w", err)
	}

	row, err := s.queries.UpdatePostImage(ctx, sqlc.UpdatePostImageParams{
		ID:     id,
		Imagem: pgtype.Text{String: imagePath, Valid: true},
	})
	if err != nil {
		if db.IsNotFound(err) {
			return Post{}, nil, ErrPostNotFound
		}
		return Post{}, nil, fmt.Errorf("update post image: %w", err)
	}

	s.invalidate(ctx, id.String())
	return fromRow(row), fromRow(prev).Imagem, nil
}

func (s *Service) Delete(ctx context.Context, postID string) error {
	id, err := uuid.Parse(postID)
	if err != nil {
		return ErrPostNotFound
	}

	n, err := s.queries.DeletePost(ctx, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if n == 0 {
		return ErrPostNotFound
	}

	s.invalidate(ctx, id.String())
	slog.Info("Post deleted", "post_id", postID)
	return nil
}

func (s *Service) invalidate(ctx context.Context, postID string) {
	if err := s.cache.Delete(ctx, postID); err != nil {
		slog.Warn("Post cache invalidation failed", "post_id", postID, "error", err)
	}
}

func clampInt32(v int) int32 {
	switch {
	case v < 0:
		return 0
	case v > math.MaxInt32:
		return math.MaxInt32
	}
	return int32(v)
}
