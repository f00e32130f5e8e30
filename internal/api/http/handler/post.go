package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/blogapp/blog-server/internal/api/http/dto"
	"github.com/blogapp/blog-server/internal/api/http/middleware"
	"github.com/blogapp/blog-server/internal/pagination"
	"github.com/blogapp/blog-server/internal/posts"
	"github.com/gin-gonic/gin"
)

const (
	msgPostNotFound   = "Postagem não encontrada."
	msgPostCreateFail = "Erro ao criar a postagem."
	msgPostUpdateFail = "Erro ao atualizar a postagem."
)

type PostHandler struct {
	postService *posts.Service
	baseURL     *url.URL
}

// NewPostHandler builds the handler. baseURL, when set, makes pagination links
// absolute.
func NewPostHandler(postService *posts.Service, baseURL string) *PostHandler {
	h := &PostHandler{postService: postService}
	if baseURL != "" {
		if u, err := url.Parse(baseURL); err == nil {
			h.baseURL = u
		}
	}
	return h
}

func (h *PostHandler) Create(c *gin.Context) {
	var req dto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, msgPostCreateFail, err)
		return
	}

	authorID, ok := actingSubject(c, req.AuthorID)
	if !ok {
		respondMessage(c, http.StatusForbidden, middleware.MsgForbidden)
		return
	}

	post, err := h.postService.Create(c.Request.Context(), posts.CreateInput{
		Titulo:    req.Titulo,
		Conteudo:  req.Conteudo,
		AuthorID:  authorID,
		Imagem:    req.Imagem,
		Published: req.Published,
	})
	if err != nil {
		if errors.Is(err, posts.ErrAuthorNotFound) || errors.Is(err, posts.ErrInvalidAuthor) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: msgPostCreateFail, Error: "Autor não encontrado."})
			return
		}
		respondInternal(c, "create post", err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

func (h *PostHandler) List(c *gin.Context) {
	req := pagination.ParseRequest(c.Query("page"), c.Query("limit"))

	items, total, err := h.postService.List(c.Request.Context(), posts.ListFilter{
		AuthorID: c.Query("authorId"),
		Limit:    req.Limit,
		Offset:   req.Offset(),
	})
	if err != nil {
		if errors.Is(err, posts.ErrInvalidAuthor) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Message: "Erro ao listar as postagens.",
				Error:   "O campo authorId deve ser um UUID válido.",
			})
			return
		}
		respondInternal(c, "list posts", err)
		return
	}

	c.JSON(http.StatusOK, pagination.NewResult(req, total, items, h.linkBase(c)))
}

func (h *PostHandler) linkBase(c *gin.Context) url.URL {
	base := url.URL{Path: c.Request.URL.Path, RawQuery: c.Request.URL.RawQuery}
	if h.baseURL != nil {
		base.Scheme = h.baseURL.Scheme
		base.Host = h.baseURL.Host
	}
	return base
}

func (h *PostHandler) Get(c *gin.Context) {
	post, err := h.postService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, posts.ErrPostNotFound) {
			respondMessage(c, http.StatusNotFound, msgPostNotFound)
			return
		}
		respondInternal(c, "get post", err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) Update(c *gin.Context) {
	var req dto.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, msgPostUpdateFail, err)
		return
	}

	post, err := h.postService.Update(c.Request.Context(), c.Param("id"), posts.UpdateInput{
		Titulo:    req.Titulo,
		Conteudo:  req.Conteudo,
		Imagem:    req.Imagem,
		Published: req.Published,
	})
	if err != nil {
		if errors.Is(err, posts.ErrPostNotFound) {
			respondMessage(c, http.StatusNotFound, msgPostNotFound)
			return
		}
		respondInternal(c, "update post", err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) Delete(c *gin.Context) {
	if err := h.postService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, posts.ErrPostNotFound) {
			respondMessage(c, http.StatusNotFound, msgPostNotFound)
			return
		}
		respondInternal(c, "delete post", err)
		return
	}

	respondMessage(c, http.StatusOK, "Postagem excluída com sucesso.")
}
