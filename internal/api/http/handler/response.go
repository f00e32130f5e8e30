package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/blogapp/blog-server/internal/api/http/dto"
	"github.com/blogapp/blog-server/internal/api/http/middleware"
	"github.com/blogapp/blog-server/internal/auth"
	"github.com/gin-gonic/gin"
)

const msgInternalError = "Erro interno do servidor."

func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, dto.MessageResponse{Message: message})
}

func respondInvalid(c *gin.Context, message string, err error) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: message, Error: validationMessage(err)})
}

func respondInternal(c *gin.Context, op string, err error) {
	slog.Error("Request failed", "op", op, "path", c.Request.URL.Path, "error", err)
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: msgInternalError})
}

// actingSubject picks the user a new post or comment is attributed to. An
// empty request means the caller; only an administrador may name someone else.
func actingSubject(c *gin.Context, requested string) (string, bool) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return "", false
	}
	if requested == "" || strings.EqualFold(requested, identity.SubjectID) {
		return identity.SubjectID, true
	}
	if identity.Role == auth.RoleAdministrador {
		return requested, true
	}
	return "", false
}
