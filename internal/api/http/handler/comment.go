package handler

import (
	"errors"
	"net/http"

	"github.com/blogapp/blog-server/internal/api/http/dto"
	"github.com/blogapp/blog-server/internal/api/http/middleware"
	"github.com/blogapp/blog-server/internal/comments"
	"github.com/gin-gonic/gin"
)

const msgCommentNotFound = "Comentário não encontrado."

type CommentHandler struct {
	commentService *comments.Service
}

func NewCommentHandler(commentService *comments.Service) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

func (h *CommentHandler) ListForPost(c *gin.Context) {
	list, err := h.commentService.ListByPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondInternal(c, "list comments", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *CommentHandler) Create(c *gin.Context) {
	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, "Erro ao criar o comentário.", err)
		return
	}

	usuarioID, ok := actingSubject(c, req.UsuarioID)
	if !ok {
		respondMessage(c, http.StatusForbidden, middleware.MsgForbidden)
		return
	}

	comment, err := h.commentService.Create(c.Request.Context(), comments.CreateInput{
		Conteudo:   req.Conteudo,
		UsuarioID:  usuarioID,
		PostagemID: c.Param("id"),
	})
	if err != nil {
		switch {
		case errors.Is(err, comments.ErrPostNotFound):
			respondMessage(c, http.StatusNotFound, msgPostNotFound)
		case errors.Is(err, comments.ErrUserNotFound):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Erro ao criar o comentário.", Error: msgUserNotFound})
		default:
			respondInternal(c, "create comment", err)
		}
		return
	}

	c.JSON(http.StatusCreated, comment)
}

func (h *CommentHandler) Update(c *gin.Context) {
	var req dto.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, "Erro ao editar o comentário.", err)
		return
	}

	comment, err := h.commentService.Update(c.Request.Context(), c.Param("id"), req.Conteudo)
	if err != nil {
		if errors.Is(err, comments.ErrCommentNotFound) {
			respondMessage(c, http.StatusNotFound, msgCommentNotFound)
			return
		}
		respondInternal(c, "update comment", err)
		return
	}

	c.JSON(http.StatusOK, comment)
}

func (h *CommentHandler) Delete(c *gin.Context) {
	if err := h.commentService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, comments.ErrCommentNotFound) {
			respondMessage(c, http.StatusNotFound, msgCommentNotFound)
			return
		}
		respondInternal(c, "delete comment", err)
		return
	}

	respondMessage(c, http.StatusOK, "Comentário deletado com sucesso!")
}
