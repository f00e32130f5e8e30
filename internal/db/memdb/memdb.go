// Package memdb is an in-memory implementation of sqlc.Querier. It mirrors the
// constraints of the PostgreSQL schema (unique email, foreign keys with
// cascading deletes) and reports violations with the same pgconn error codes,
// so services behave identically on both stores.
package memdb

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/blogapp/blog-server/internal/db"
	"github.com/blogapp/blog-server/internal/db/sqlc"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type record[T any] struct {
	seq int64
	row T
}

type Store struct {
	mu       sync.RWMutex
	seq      int64
	now      func() time.Time
	users    map[uuid.UUID]*record[sqlc.User]
	posts    map[uuid.UUID]*record[sqlc.Post]
	comments map[uuid.UUID]*record[sqlc.Comment]
}

var _ sqlc.Querier = (*Store)(nil)

func New() *Store {
	return &Store{
		now:      time.Now,
		users:    make(map[uuid.UUID]*record[sqlc.User]),
		posts:    make(map[uuid.UUID]*record[sqlc.Post]),
		comments: make(map[uuid.UUID]*record[sqlc.Comment]),
	}
}

func (s *Store) nextSeq() int64 {
	s.seq++
	return s.seq
}

func uniqueViolation(constraint string) error {
	return &pgconn.PgError{Code: db.CodeUniqueViolation, ConstraintName: constraint, Message: "duplicate key value violates unique constraint"}
}

func foreignKeyViolation(constraint string) error {
	return &pgconn.PgError{Code: db.CodeForeignKeyViolation, ConstraintName: constraint, Message: "insert or update violates foreign key constraint"}
}

func sorted[T any](m map[uuid.UUID]*record[T], keep func(T) bool) []T {
	recs := make([]*record[T], 0, len(m))
	for _, r := range m {
		if keep == nil || keep(r.row) {
			recs = append(recs, r)
		}
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].seq < recs[j].seq })
	out := make([]T, len(recs))
	for i, r := range recs {
		out[i] = r.row
	}
	return out
}

// users

func (s *Store) emailTaken(email string, except uuid.UUID) bool {
	for id, r := range s.users {
		if id != except && r.row.Email == email {
			return true
		}
	}
	return false
}

func (s *Store) CreateUser(_ context.Context, arg sqlc.CreateUserParams) (sqlc.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.emailTaken(arg.Email, uuid.Nil) {
		return sqlc.User{}, uniqueViolation("users_email_key")
	}
	now := s.now()
	u := sqlc.User{
		ID:           uuid.New(),
		Name:         arg.Name,
		Email:        arg.Email,
		PasswordHash: arg.PasswordHash,
		Role:         arg.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.users[u.ID] = &record[sqlc.User]{seq: s.nextSeq(), row: u}
	return u, nil
}

func (s *Store) GetUserByEmail(_ context.Context, email string) (sqlc.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.users {
		if r.row.Email == email {
			return r.row, nil
		}
	}
	return sqlc.User{}, pgx.ErrNoRows
}

func (s *Store) ListUsers(_ context.Context, arg sqlc.ListUsersParams) ([]sqlc.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	contains := func(field string, filter string) bool {
		return strings.Contains(strings.ToLower(field), strings.ToLower(filter))
	}
	return sorted(s.users, func(u sqlc.User) bool {
		if arg.Name.Valid && !contains(u.Name, arg.Name.String) {
			return false
		}
		if arg.Email.Valid && !contains(u.Email, arg.Email.String) {
			return false
		}
		if arg.Role.Valid && u.Role != arg.Role.String {
			return false
		}
		return true
	}), nil
}

func (s *Store) UpdateUserProfile(_ context.Context, arg sqlc.UpdateUserProfileParams) (sqlc.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.users[arg.ID]
	if !ok {
		return sqlc.User{}, pgx.ErrNoRows
	}
	if arg.Email.Valid && s.emailTaken(arg.Email.String, arg.ID) {
		return sqlc.User{}, uniqueViolation("users_email_key")
	}
	if arg.Name.Valid {
		r.row.Name = arg.Name.String
	}
	if arg.Email.Valid {
		r.row.Email = arg.Email.String
	}
	if arg.PasswordHash.Valid {
		r.row.PasswordHash = arg.PasswordHash.String
	}
	r.row.UpdatedAt = s.now()
	return r.row, nil
}

func (s *Store) UpdateUserRole(_ context.Context, arg sqlc.UpdateUserRoleParams) (sqlc.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.users[arg.ID]
	if !ok {
		return sqlc.User{}, pgx.ErrNoRows
	}
	r.row.Role = arg.Role
	r.row.UpdatedAt = s.now()
	return r.row, nil
}

func (s *Store) DeleteUser(_ context.Context, id uuid.UUID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return 0, nil
	}
	delete(s.users, id)
	for pid, p := range s.posts {
		if p.row.AuthorID == id {
			s.deletePostLocked(pid)
		}
	}
	for cid, c := range s.comments {
		if c.row.UsuarioID == id {
			delete(s.comments, cid)
		}
	}
	return 1, nil
}

// posts

func (s *Store) CreatePost(_ context.Context, arg sqlc.CreatePostParams) (sqlc.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[arg.AuthorID]; !ok {
		return sqlc.Post{}, foreignKeyViolation("posts_author_id_fkey")
	}
	now := s.now()
	p := sqlc.Post{
		ID:        uuid.New(),
		Titulo:    arg.Titulo,
		Conteudo:  arg.Conteudo,
		AuthorID:  arg.AuthorID,
		Imagem:    arg.Imagem,
		Published: arg.Published,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.posts[p.ID] = &record[sqlc.Post]{seq: s.nextSeq(), row: p}
	return p, nil
}

func (s *Store) GetPostByID(_ context.Context, id uuid.UUID) (sqlc.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.posts[id]
	if !ok {
		return sqlc.Post{}, pgx.ErrNoRows
	}
	return r.row, nil
}

func byAuthor(authorID uuid.NullUUID) func(sqlc.Post) bool {
	return func(p sqlc.Post) bool {
		return !authorID.Valid || p.AuthorID == authorID.UUID
	}
}

func (s *Store) ListPosts(_ context.Context, arg sqlc.ListPostsParams) ([]sqlc.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := sorted(s.posts, byAuthor(arg.AuthorID))
	start := max(int(arg.Offset), 0)
	if start >= len(all) || arg.Limit <= 0 {
		return nil, nil
	}
	end := min(start+int(arg.Limit), len(all))
	return all[start:end], nil
}

func (s *Store) CountPosts(_ context.Context, authorID uuid.NullUUID) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return int64(len(sorted(s.posts, byAuthor(authorID)))), nil
}

func (s *Store) UpdatePost(_ context.Context, arg sqlc.UpdatePostParams) (sqlc.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.posts[arg.ID]
	if !ok {
		return sqlc.Post{}, pgx.ErrNoRows
	}
	if arg.Titulo.Valid {
		r.row.Titulo = arg.Titulo.String
	}
	if arg.Conteudo.Valid {
		r.row.Conteudo = arg.Conteudo.String
	}
	if arg.Imagem.Valid {
		r.row.Imagem = arg.Imagem
	}
	if arg.Published.Valid {
		r.row.Published = arg.Published.Bool
	}
	r.row.UpdatedAt = s.now()
	return r.row, nil
}

func (s *Store) UpdatePostImage(_ context.Context, arg sqlc.UpdatePostImageParams) (sqlc.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.posts[arg.ID]
	if !ok {
		return sqlc.Post{}, pgx.ErrNoRows
	}
	r.row.Imagem = arg.Imagem
	r.row.UpdatedAt = s.now()
	return r.row, nil
}

func (s *Store) DeletePost(_ context.Context, id uuid.UUID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[id]; !ok {
		return 0, nil
	}
	s.deletePostLocked(id)
	return 1, nil
}

func (s *Store) deletePostLocked(id uuid.UUID) {
	delete(s.posts, id)
	for cid, c := range s.comments {
		if c.row.PostagemID == id {
			delete(s.comments, cid)
		}
	}
}

// comments

func (s *Store) CreateComment(_ context.Context, arg sqlc.CreateCommentParams) (sqlc.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[arg.UsuarioID]; !ok {
		return sqlc.Comment{}, foreignKeyViolation("comments_usuario_id_fkey")
	}
	if _, ok := s.posts[arg.PostagemID]; !ok {
		return sqlc.Comment{}, foreignKeyViolation("comments_postagem_id_fkey")
	}
	now := s.now()
	c := sqlc.Comment{
		ID:         uuid.New(),
		Conteudo:   arg.Conteudo,
		UsuarioID:  arg.UsuarioID,
		PostagemID: arg.PostagemID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	s.comments[c.ID] = &record[sqlc.Comment]{seq: s.nextSeq(), row: c}
	return c, nil
}

func (s *Store) ListCommentsByPost(_ context.Context, postagemID uuid.UUID) ([]sqlc.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return sorted(s.comments, func(c sqlc.Comment) bool { return c.PostagemID == postagemID }), nil
}

func (s *Store) UpdateComment(_ context.Context, arg sqlc.UpdateCommentParams) (sqlc.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.comments[arg.ID]
	if !ok {
		return sqlc.Comment{}, pgx.ErrNoRows
	}
	r.row.Conteudo = arg.Conteudo
	r.row.UpdatedAt = s.now()
	return r.row, nil
}

func (s *Store) DeleteComment(_ context.Context, id uuid.UUID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.comments[id]; !ok {
		return 0, nil
	}
	delete(s.comments, id)
	return 1, nil
}
