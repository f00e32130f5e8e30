package posts

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/blogapp/blog-server/internal/db/memdb"
	"github.com/blogapp/blog-server/internal/db/sqlc"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapCache struct {
	mu      sync.Mutex
	entries map[string]Post
	gets    int
	hits    int
	fail    bool
}

func newMapCache() *mapCache {
	return &mapCache{entries: make(map[string]Post)}
}

func (c *mapCache) Get(_ context.Context, id string) (Post, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	if c.fail {
		return Post{}, errors.New("cache down")
	}
	p, ok := c.entries[id]
	if !ok {
		return Post{}, ErrCacheMiss
	}
	c.hits++
	return p, nil
}

func (c *mapCache) Set(_ context.Context, p Post) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fail {
		return errors.New("cache down")
	}
	c.entries[p.ID] = p
	return nil
}

func (c *mapCache) Delete(_ context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, id)
	return nil
}

func seedAuthor(t *testing.T, store *memdb.Store) string {
	t.Helper()
	u, err := store.CreateUser(context.Background(), sqlc.CreateUserParams{
		Name: "Autor", Email: uuid.NewString() + "@example.com", PasswordHash: "x", Role: "autor",
	})
	require.NoError(t, err)
	return u.ID.String()
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	store := memdb.New()
	svc := NewService(store, nil)
	author := seedAuthor(t, store)

	post, err := svc.Create(ctx, CreateInput{Titulo: "Novo Post", Conteudo: "Conteudo do post.", AuthorID: author, Published: true})
	require.NoError(t, err)
	assert.Equal(t, "Novo Post", post.Titulo)
	assert.Equal(t, author, post.AuthorID)
	assert.Nil(t, post.Imagem)
	assert.True(t, post.Published)

	_, err = svc.Create(ctx, CreateInput{Titulo: "Novo Post", Conteudo: "Conteudo do post.", AuthorID: uuid.NewString()})
	assert.ErrorIs(t, err, ErrAuthorNotFound)

	_, err = svc.Create(ctx, CreateInput{Titulo: "Novo Post", Conteudo: "Conteudo do post.", AuthorID: "some-valid-uuid"})
	assert.ErrorIs(t, err, ErrInvalidAuthor)
}

func TestGetUsesCache(t *testing.T) {
	ctx := context.Background()
	store := memdb.New()
	cache := newMapCache()
	svc := NewService(store, cache)
	author := seedAuthor(t, store)

	post, err := svc.Create(ctx, CreateInput{Titulo: "Titulo", Conteudo: "Conteudo longo", AuthorID: author})
	require.NoError(t, err)

	got, err := svc.Get(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, post.ID, got.ID)
	assert.Equal(t, 0, cache.hits)

	_, err = svc.Get(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.hits)

	titulo := "Titulo novo"
	_, err = svc.Update(ctx, post.ID, UpdateInput{Titulo: &titulo})
	require.NoError(t, err)

	got, err = svc.Get(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "Titulo novo", got.Titulo)

	require.NoError(t, svc.Delete(ctx, post.ID))
	_, err = svc.Get(ctx, post.ID)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestGetSurvivesCacheFailure(t *testing.T) {
	ctx := context.Background()
	store := memdb.New()
	cache := newMapCache()
	cache.fail = true
	svc := NewService(store, cache)

	post, err := svc.Create(ctx, CreateInput{Titulo: "Titulo", Conteudo: "Conteudo longo", AuthorID: seedAuthor(t, store)})
	require.NoError(t, err)

	got, err := svc.Get(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, post.ID, got.ID)
}

func TestList(t *testing.T) {
	ctx := context.Background()
	store := memdb.New()
	svc := NewService(store, nil)
	a := seedAuthor(t, store)
	b := seedAuthor(t, store)

	for i := 0; i < 25; i++ {
		author := a
		if i%5 == 0 {
			author = b
		}
		_, err := svc.Create(ctx, CreateInput{Titulo: "Titulo", Conteudo: "Conteudo longo", AuthorID: author})
		require.NoError(t, err)
	}

	items, total, err := svc.List(ctx, ListFilter{Limit: 10, Offset: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(25), total)
	assert.Len(t, items, 5)

	items, total, err = svc.List(ctx, ListFilter{AuthorID: b, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, items, 5)
	for _, p := range items {
		assert.Equal(t, b, p.AuthorID)
	}

	_, _, err = svc.List(ctx, ListFilter{AuthorID: "nope", Limit: 10})
	assert.ErrorIs(t, err, ErrInvalidAuthor)
}

func TestListOffsetBeyondInt32(t *testing.T) {
	ctx := context.Background()
	store := memdb.New()
	svc := NewService(store, nil)
	_, err := svc.Create(ctx, CreateInput{Titulo: "Titulo", Conteudo: "Conteudo longo", AuthorID: seedAuthor(t, store)})
	require.NoError(t, err)

	items, total, err := svc.List(ctx, ListFilter{Limit: 10, Offset: 2147483650})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Empty(t, items)
}

func TestSetImage(t *testing.T) {
	ctx := context.Background()
	store := memdb.New()
	svc := NewService(store, newMapCache())

	post, err := svc.Create(ctx, CreateInput{Titulo: "Titulo", Conteudo: "Conteudo longo", AuthorID: seedAuthor(t, store)})
	require.NoError(t, err)

	updated, prev, err := svc.SetImage(ctx, post.ID, "/uploads/a.png")
	require.NoError(t, err)
	assert.Nil(t, prev)
	require.NotNil(t, updated.Imagem)
	assert.Equal(t, "/uploads/a.png", *updated.Imagem)

	_, prev, err = svc.SetImage(ctx, post.ID, "/uploads/b.png")
	require.NoError(t, err)
	require.NotNil(t, prev)
	assert.Equal(t, "/uploads/a.png", *prev)

	_, _, err = svc.SetImage(ctx, uuid.NewString(), "/uploads/c.png")
	assert.ErrorIs(t, err, ErrPostNotFound)
}
