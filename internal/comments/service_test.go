package comments

import (
	"context"
	"testing"

	"github.com/blogapp/blog-server/internal/db/memdb"
	"github.com/blogapp/blog-server/internal/db/sqlc"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T) (*memdb.Store, string, string) {
	t.Helper()
	ctx := context.Background()
	store := memdb.New()
	u, err := store.CreateUser(ctx, sqlc.CreateUserParams{Name: "Leitor", Email: "l@example.com", PasswordHash: "x", Role: "leitor"})
	require.NoError(t, err)
	p, err := store.CreatePost(ctx, sqlc.CreatePostParams{Titulo: "Post", Conteudo: "Conteudo longo", AuthorID: u.ID})
	require.NoError(t, err)
	return store, u.ID.String(), p.ID.String()
}

func TestCreateAndList(t *testing.T) {
	ctx := context.Background()
	store, userID, postID := seed(t)
	svc := NewService(store)

	first, err := svc.Create(ctx, CreateInput{Conteudo: "primeiro", UsuarioID: userID, PostagemID: postID})
	require.NoError(t, err)
	second, err := svc.Create(ctx, CreateInput{Conteudo: "segundo", UsuarioID: userID, PostagemID: postID})
	require.NoError(t, err)

	list, err := svc.ListByPost(ctx, postID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, second.ID, list[1].ID)

	empty, err := svc.ListByPost(ctx, uuid.NewString())
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestCreateMissingReferences(t *testing.T) {
	ctx := context.Background()
	store, userID, postID := seed(t)
	svc := NewService(store)

	_, err := svc.Create(ctx, CreateInput{Conteudo: "oi", UsuarioID: userID, PostagemID: uuid.NewString()})
	assert.ErrorIs(t, err, ErrPostNotFound)

	_, err = svc.Create(ctx, CreateInput{Conteudo: "oi", UsuarioID: uuid.NewString(), PostagemID: postID})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	store, userID, postID := seed(t)
	svc := NewService(store)

	c, err := svc.Create(ctx, CreateInput{Conteudo: "oi", UsuarioID: userID, PostagemID: postID})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, c.ID, "editado")
	require.NoError(t, err)
	assert.Equal(t, "editado", updated.Conteudo)

	_, err = svc.Update(ctx, uuid.NewString(), "editado")
	assert.ErrorIs(t, err, ErrCommentNotFound)

	require.NoError(t, svc.Delete(ctx, c.ID))
	assert.ErrorIs(t, svc.Delete(ctx, c.ID), ErrCommentNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, "not-a-uuid"), ErrCommentNotFound)
}
