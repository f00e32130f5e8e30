package tests

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/blogapp/blog-server/internal/api/http/dto"
	"github.com/blogapp/blog-server/internal/pagination"
	"github.com/blogapp/blog-server/internal/posts"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createPost(t *testing.T, router *gin.Engine, token, authorID, titulo string) posts.Post {
	t.Helper()
	rr := doJSONWithAuth(router, "POST", "/postagens", dto.CreatePostRequest{
		Titulo:   titulo,
		Conteudo: "Este é o conteúdo do post.",
		AuthorID: authorID,
	}, token)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	return decode[posts.Post](t, rr)
}

func TestPosts(t *testing.T, router *gin.Engine) {
	author := registerAndLogin(t, router, "autor")
	reader := registerAndLogin(t, router, "leitor")

	t.Run("create", func(t *testing.T) {
		post := createPost(t, router, author.Token, author.User.ID, "Novo Post")
		assert.Equal(t, "Novo Post", post.Titulo)
		assert.Equal(t, author.User.ID, post.AuthorID)
		assert.False(t, post.Published)
	})

	t.Run("create with short titulo", func(t *testing.T) {
		rr := doJSONWithAuth(router, "POST", "/postagens", dto.CreatePostRequest{
			Titulo: "Abc", Conteudo: "Este é o conteúdo do post.", AuthorID: author.User.ID,
		}, author.Token)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Erro ao criar a postagem.", decode[dto.ErrorResponse](t, rr).Message)
	})

	t.Run("create with unknown author", func(t *testing.T) {
		admin := login(t, router, AdminEmail, AdminPassword)
		rr := doJSONWithAuth(router, "POST", "/postagens", dto.CreatePostRequest{
			Titulo: "Novo Post", Conteudo: "Este é o conteúdo do post.", AuthorID: "6a1d1b9e-4f7c-4f3e-9a77-2a6b3d3e5c10",
		}, admin.Token)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("autor cannot post as someone else", func(t *testing.T) {
		rr := doJSONWithAuth(router, "POST", "/postagens", dto.CreatePostRequest{
			Titulo: "Novo Post", Conteudo: "Este é o conteúdo do post.", AuthorID: reader.User.ID,
		}, author.Token)
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("reader cannot create", func(t *testing.T) {
		rr := doJSONWithAuth(router, "POST", "/postagens", dto.CreatePostRequest{
			Titulo: "Novo Post", Conteudo: "Este é o conteúdo do post.", AuthorID: reader.User.ID,
		}, reader.Token)
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("pagination", func(t *testing.T) {
		writer := registerAndLogin(t, router, "autor")
		for i := 0; i < 25; i++ {
			createPost(t, router, writer.Token, writer.User.ID, fmt.Sprintf("Paginado %02d", i))
		}

		path := "/postagens?authorId=" + writer.User.ID + "&limit=10"
		rr := doJSONWithAuth(router, "GET", path+"&page=1", nil, reader.Token)
		require.Equal(t, http.StatusOK, rr.Code)
		res := decode[pagination.Result[posts.Post]](t, rr)
		assert.Equal(t, int64(25), res.TotalItems)
		assert.Equal(t, 3, res.TotalPages)
		require.NotNil(t, res.NextPageLink)
		assert.Contains(t, *res.NextPageLink, "page=2")
		assert.Equal(t, "Paginado 00", res.Items[0].Titulo)

		rr = doJSONWithAuth(router, "GET", path+"&page=3", nil, reader.Token)
		require.Equal(t, http.StatusOK, rr.Code)
		res = decode[pagination.Result[posts.Post]](t, rr)
		assert.Len(t, res.Items, 5)
		assert.Nil(t, res.NextPageLink)
	})

	t.Run("update and delete", func(t *testing.T) {
		post := createPost(t, router, author.Token, author.User.ID, "Para editar")

		titulo := "Editado agora"
		published := true
		rr := doJSONWithAuth(router, "PUT", "/postagens/"+post.ID, dto.UpdatePostRequest{Titulo: &titulo, Published: &published}, author.Token)
		require.Equal(t, http.StatusOK, rr.Code)
		updated := decode[posts.Post](t, rr)
		assert.Equal(t, "Editado agora", updated.Titulo)
		assert.True(t, updated.Published)

		rr = doJSONWithAuth(router, "DELETE", "/postagens/"+post.ID, nil, author.Token)
		require.Equal(t, http.StatusOK, rr.Code)

		rr = doJSONWithAuth(router, "GET", "/postagens/"+post.ID, nil, reader.Token)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
