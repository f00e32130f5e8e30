package users

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/blogapp/blog-server/internal/auth"
	"github.com/blogapp/blog-server/internal/db"
	"github.com/blogapp/blog-server/internal/db/sqlc"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailInUse         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRole        = errors.New("invalid role")
)

// PostCache drops cached posts. Deleting a user removes their posts, so their
// cache entries have to go too.
type PostCache interface {
	Delete(ctx context.Context, postID string) error
}

type Service struct {
	queries   sqlc.Querier
	hasher    Hasher
	tokens    *auth.TokenCodec
	postCache PostCache
}

// NewService builds the user service. postCache may be nil when posts are not cached.
func NewService(queries sqlc.Querier, hasher Hasher, tokens *auth.TokenCodec, postCache PostCache) *Service {
	return &Service{
		queries:   queries,
		hasher:    hasher,
		tokens:    tokens,
		postCache: postCache,
	}
}

// Register creates a user with a hashed password. The email pre-check gives the
// common case a clean error; the unique index settles concurrent registrations.
func (s *Service) Register(ctx context.Context, in RegisterInput) (User, error) {
	role := in.Role
	if role == "" {
		role = auth.RoleLeitor
	}
	if !role.Valid() {
		return User{}, ErrInvalidRole
	}

	_, err := s.queries.GetUserByEmail(ctx, in.Email)
	if err == nil {
		return User{}, ErrEmailInUse
	}
	if !db.IsNotFound(err) {
		return User{}, fmt.Errorf("query user: %w", err)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return User{}, err
	}

	row, err := s.queries.CreateUser(ctx, sqlc.CreateUserParams{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         string(role),
	})
	if err != nil {
		if db.IsUniqueViolation(err) {
			return User{}, ErrEmailInUse
		}
		return User{}, fmt.Errorf("create user: %w", err)
	}

	slog.Info("User registered", "user_id", row.ID, "role", row.Role)
	return fromRow(row), nil
}

// EnsureAdministrador registers an administrador unless the email is already
// taken, reporting whether an account was created.
func (s *Service) EnsureAdministrador(ctx context.Context, in RegisterInput) (bool, error) {
	in.Role = auth.RoleAdministrador
	_, err := s.Register(ctx, in)
	if errors.Is(err, ErrEmailInUse) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Login verifies the credentials and issues a token for the user.
func (s *Service) Login(ctx context.Context, email, password string) (string, User, error) {
	row, err := s.queries.GetUserByEmail(ctx, email)
	if err != nil {
		if db.IsNotFound(err) {
			return "", User{}, ErrInvalidCredentials
		}
		return "", User{}, fmt.Errorf("query user: %w", err)
	}

	if !s.hasher.Check(password, row.PasswordHash) {
		return "", User{}, ErrInvalidCredentials
	}

	user := fromRow(row)
	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return "", User{}, fmt.Errorf("generate token: %w", err)
	}
	return token, user, nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID string, upd ProfileUpdate) (User, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return User{}, ErrUserNotFound
	}

	params := sqlc.UpdateUserProfileParams{ID: id}
	if upd.Name != nil {
		params.Name = pgtype.Text{String: *upd.Name, Valid: true}
	}
	if upd.Email != nil {
		params.Email = pgtype.Text{String: *upd.Email, Valid: true}
	}
	if upd.Password != nil {
		hash, err := s.hasher.Hash(*upd.Password)
		if err != nil {
			return User{}, err
		}
		params.PasswordHash = pgtype.Text{String: hash, Valid: true}
	}

	row, err := s.queries.UpdateUserProfile(ctx, params)
	if err != nil {
		switch {
		case db.IsNotFound(err):
			return User{}, ErrUserNotFound
		case db.IsUniqueViolation(err):
			return User{}, ErrEmailInUse
		}
		return User{}, fmt.Errorf("update user: %w", err)
	}
	return fromRow(row), nil
}

func (s *Service) UpdateRole(ctx context.Context, userID string, role auth.Role) (User, error) {
	if !role.Valid() {
		return User{}, ErrInvalidRole
	}
	id, err := uuid.Parse(userID)
	if err != nil {
		return User{}, ErrUserNotFound
	}

	row, err := s.queries.UpdateUserRole(ctx, sqlc.UpdateUserRoleParams{ID: id, Role: string(role)})
	if err != nil {
		if db.IsNotFound(err) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("update role: %w", err)
	}

	slog.Info("User role updated", "user_id", userID, "role", role)
	return fromRow(row), nil
}

func (s *Service) Delete(ctx context.Context, userID string) error {
	id, err := uuid.Parse(userID)
	if err != nil {
		return ErrUserNotFound
	}

	postIDs, err := s.authoredPostIDs(ctx, id)
	if err != nil {
		return err
	}

	n, err := s.queries.DeleteUser(ctx, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if n == 0 {
		return ErrUserNotFound
	}

	for _, postID := range postIDs {
		if err := s.postCache.Delete(ctx, postID); err != nil {
			slog.Warn("Post cache invalidation failed", "post_id", postID, "error", err)
		}
	}
	slog.Info("User deleted", "user_id", userID, "posts_removed", len(postIDs))
	return nil
}

// authoredPostIDs lists the posts that go away with the user. Nothing is
// listed when posts are not cached.
func (s *Service) authoredPostIDs(ctx context.Context, userID uuid.UUID) ([]string, error) {
	if s.postCache == nil {
		return nil, nil
	}

	author := uuid.NullUUID{UUID: userID, Valid: true}
	total, err := s.queries.CountPosts(ctx, author)
	if err != nil {
		return nil, fmt.Errorf("count user posts: %w", err)
	}
	if total == 0 {
		return nil, nil
	}

	rows, err := s.queries.ListPosts(ctx, sqlc.ListPostsParams{
		AuthorID: author,
		Limit:    int32(min(total, math.MaxInt32)),
	})
	if err != nil {
		return nil, fmt.Errorf("list user posts: %w", err)
	}

	ids := make([]string, len(rows))
	for i, p := range rows {
		ids[i] = p.ID.String()
	}
	return ids, nil
}

func (s *Service) List(ctx context.Context, f ListFilter) ([]User, error) {
	params := sqlc.ListUsersParams{
		Name:  pgtype.Text{String: f.Name, Valid: f.Name != ""},
		Email: pgtype.Text{String: f.Email, Valid: f.Email != ""},
		Role:  pgtype.Text{String: string(f.Role), Valid: f.Role != ""},
	}

	rows, err := s.queries.ListUsers(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	result := make([]User, len(rows))
	for i, u := range rows {
		result[i] = fromRow(u)
	}
	return result, nil
}
