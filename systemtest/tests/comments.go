package tests

import (
	"net/http"
	"testing"

	"github.com/blogapp/blog-server/internal/api/http/dto"
	"github.com/blogapp/blog-server/internal/comments"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComments(t *testing.T, router *gin.Engine) {
	author := registerAndLogin(t, router, "autor")
	reader := registerAndLogin(t, router, "leitor")
	post := createPost(t, router, author.Token, author.User.ID, "Post comentado")

	rr := doJSONWithAuth(router, "POST", "/postagens/"+post.ID+"/comentarios", dto.CreateCommentRequest{Conteudo: "Gostei!"}, reader.Token)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	comment := decode[comments.Comment](t, rr)
	assert.Equal(t, reader.User.ID, comment.UsuarioID)

	t.Run("unknown post", func(t *testing.T) {
		rr := doJSONWithAuth(router, "POST", "/postagens/6a1d1b9e-4f7c-4f3e-9a77-2a6b3d3e5c10/comentarios", dto.CreateCommentRequest{Conteudo: "Oi"}, reader.Token)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("list", func(t *testing.T) {
		rr := doJSONWithAuth(router, "GET", "/postagens/"+post.ID+"/comentarios", nil, reader.Token)
		require.Equal(t, http.StatusOK, rr.Code)
		list := decode[[]comments.Comment](t, rr)
		require.Len(t, list, 1)
		assert.Equal(t, comment.ID, list[0].ID)
	})

	t.Run("edit", func(t *testing.T) {
		rr := doJSONWithAuth(router, "PUT", "/comentarios/"+comment.ID, dto.UpdateCommentRequest{Conteudo: "Gostei muito!"}, reader.Token)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "Gostei muito!", decode[comments.Comment](t, rr).Conteudo)
	})

	t.Run("delete", func(t *testing.T) {
		rr := doJSONWithAuth(router, "DELETE", "/comentarios/"+comment.ID, nil, reader.Token)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "Comentário deletado com sucesso!", decode[dto.MessageResponse](t, rr).Message)

		rr = doJSONWithAuth(router, "DELETE", "/comentarios/"+comment.ID, nil, reader.Token)
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "Comentário não encontrado.", decode[dto.MessageResponse](t, rr).Message)
	})

	t.Run("deleting the post removes its comments", func(t *testing.T) {
		rr := doJSONWithAuth(router, "POST", "/postagens/"+post.ID+"/comentarios", dto.CreateCommentRequest{Conteudo: "Outro"}, reader.Token)
		require.Equal(t, http.StatusCreated, rr.Code)
		c := decode[comments.Comment](t, rr)

		rr = doJSONWithAuth(router, "DELETE", "/postagens/"+post.ID, nil, author.Token)
		require.Equal(t, http.StatusOK, rr.Code)

		rr = doJSONWithAuth(router, "DELETE", "/comentarios/"+c.ID, nil, reader.Token)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
