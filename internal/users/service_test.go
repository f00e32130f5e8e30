package users

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/blogapp/blog-server/internal/auth"
	"github.com/blogapp/blog-server/internal/db/memdb"
	"github.com/blogapp/blog-server/internal/posts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T) (*Service, *auth.TokenCodec) {
	t.Helper()
	codec, err := auth.NewTokenCodec(auth.JWTConfig{Secret: "test-secret"})
	require.NoError(t, err)
	return NewService(memdb.New(), NewHasher(bcrypt.MinCost), codec, nil), codec
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	t.Run("defaults role to leitor", func(t *testing.T) {
		u, err := svc.Register(ctx, RegisterInput{Name: "Leitor", Email: "leitor@example.com", Password: "password123"})
		require.NoError(t, err)
		assert.Equal(t, auth.RoleLeitor, u.Role)
		assert.NotEmpty(t, u.ID)
	})

	t.Run("keeps requested role", func(t *testing.T) {
		u, err := svc.Register(ctx, RegisterInput{Name: "Autora", Email: "autora@example.com", Password: "password123", Role: auth.RoleAutor})
		require.NoError(t, err)
		assert.Equal(t, auth.RoleAutor, u.Role)
	})

	t.Run("duplicate email", func(t *testing.T) {
		_, err := svc.Register(ctx, RegisterInput{Name: "Outro", Email: "leitor@example.com", Password: "password123"})
		assert.ErrorIs(t, err, ErrEmailInUse)
	})

	t.Run("invalid role", func(t *testing.T) {
		_, err := svc.Register(ctx, RegisterInput{Name: "Root", Email: "root@example.com", Password: "password123", Role: "root"})
		assert.ErrorIs(t, err, ErrInvalidRole)
	})

	t.Run("password too long", func(t *testing.T) {
		_, err := svc.Register(ctx, RegisterInput{Name: "Longa", Email: "longa@example.com", Password: strings.Repeat("a", 73)})
		assert.ErrorIs(t, err, ErrPasswordTooLong)

		u, err := svc.Register(ctx, RegisterInput{Name: "Curta", Email: "curta@example.com", Password: "password123"})
		require.NoError(t, err)
		long := strings.Repeat("é", 40)
		_, err = svc.UpdateProfile(ctx, u.ID, ProfileUpdate{Password: &long})
		assert.ErrorIs(t, err, ErrPasswordTooLong)
	})
}

func TestEnsureAdministrador(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	in := RegisterInput{Name: "Administrador", Email: "admin@example.com", Password: "password123"}

	created, err := svc.EnsureAdministrador(ctx, in)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = svc.EnsureAdministrador(ctx, in)
	require.NoError(t, err)
	assert.False(t, created)

	_, u, err := svc.Login(ctx, "admin@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, auth.RoleAdministrador, u.Role)

	_, err = svc.EnsureAdministrador(ctx, RegisterInput{Name: "Administrador", Email: "outro@example.com", Password: strings.Repeat("a", 73)})
	assert.ErrorIs(t, err, ErrPasswordTooLong)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc, codec := newTestService(t)

	registered, err := svc.Register(ctx, RegisterInput{Name: "Autor", Email: "autor@example.com", Password: "password123", Role: auth.RoleAutor})
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		token, u, err := svc.Login(ctx, "autor@example.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, registered.ID, u.ID)

		identity, err := codec.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, auth.Identity{SubjectID: registered.ID, Role: auth.RoleAutor}, identity)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "autor@example.com", "wrongpassword")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "nobody@example.com", "password123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	u, err := svc.Register(ctx, RegisterInput{Name: "Primeiro", Email: "p@example.com", Password: "password123"})
	require.NoError(t, err)
	_, err = svc.Register(ctx, RegisterInput{Name: "Segundo", Email: "s@example.com", Password: "password123"})
	require.NoError(t, err)

	newPassword := "newpassword"
	newName := "Renomeado"
	updated, err := svc.UpdateProfile(ctx, u.ID, ProfileUpdate{Name: &newName, Password: &newPassword})
	require.NoError(t, err)
	assert.Equal(t, "Renomeado", updated.Name)
	assert.Equal(t, "p@example.com", updated.Email)

	_, _, err = svc.Login(ctx, "p@example.com", "newpassword")
	assert.NoError(t, err)

	taken := "s@example.com"
	_, err = svc.UpdateProfile(ctx, u.ID, ProfileUpdate{Email: &taken})
	assert.ErrorIs(t, err, ErrEmailInUse)

	_, err = svc.UpdateProfile(ctx, "not-a-uuid", ProfileUpdate{Name: &newName})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestRoleAndDelete(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	u, err := svc.Register(ctx, RegisterInput{Name: "Leitor", Email: "l@example.com", Password: "password123"})
	require.NoError(t, err)

	promoted, err := svc.UpdateRole(ctx, u.ID, auth.RoleAutor)
	require.NoError(t, err)
	assert.Equal(t, auth.RoleAutor, promoted.Role)

	_, err = svc.UpdateRole(ctx, u.ID, "chefe")
	assert.ErrorIs(t, err, ErrInvalidRole)

	list, err := svc.List(ctx, ListFilter{Role: auth.RoleAutor})
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, svc.Delete(ctx, u.ID))
	assert.ErrorIs(t, svc.Delete(ctx, u.ID), ErrUserNotFound)

	list, err = svc.List(ctx, ListFilter{})
	require.NoError(t, err)
	assert.Empty(t, list)
}

type postCache struct {
	mu      sync.Mutex
	entries map[string]posts.Post
}

func (c *postCache) Get(_ context.Context, id string) (posts.Post, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, ok := c.entries[id]
	if !ok {
		return posts.Post{}, posts.ErrCacheMiss
	}
	return p, nil
}

func (c *postCache) Set(_ context.Context, p posts.Post) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[p.ID] = p
	return nil
}

func (c *postCache) Delete(_ context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, id)
	return nil
}

func TestDeleteDropsCachedPosts(t *testing.T) {
	ctx := context.Background()
	codec, err := auth.NewTokenCodec(auth.JWTConfig{Secret: "test-secret"})
	require.NoError(t, err)

	store := memdb.New()
	cache := &postCache{entries: make(map[string]posts.Post)}
	svc := NewService(store, NewHasher(bcrypt.MinCost), codec, cache)
	postSvc := posts.NewService(store, cache)

	author, err := svc.Register(ctx, RegisterInput{Name: "Autor", Email: "autor@example.com", Password: "password123", Role: auth.RoleAutor})
	require.NoError(t, err)
	other, err := svc.Register(ctx, RegisterInput{Name: "Outra", Email: "outra@example.com", Password: "password123", Role: auth.RoleAutor})
	require.NoError(t, err)

	own, err := postSvc.Create(ctx, posts.CreateInput{Titulo: "Do autor", Conteudo: "Conteudo longo", AuthorID: author.ID})
	require.NoError(t, err)
	kept, err := postSvc.Create(ctx, posts.CreateInput{Titulo: "Da outra", Conteudo: "Conteudo longo", AuthorID: other.ID})
	require.NoError(t, err)

	_, err = postSvc.Get(ctx, own.ID)
	require.NoError(t, err)
	_, err = postSvc.Get(ctx, kept.ID)
	require.NoError(t, err)
	require.Len(t, cache.entries, 2)

	require.NoError(t, svc.Delete(ctx, author.ID))

	_, err = postSvc.Get(ctx, own.ID)
	assert.ErrorIs(t, err, posts.ErrPostNotFound)
	assert.NotContains(t, cache.entries, own.ID)

	got, err := postSvc.Get(ctx, kept.ID)
	require.NoError(t, err)
	assert.Equal(t, kept.ID, got.ID)
}
