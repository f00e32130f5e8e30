package middleware

import (
	"log/slog"
	"net/http"

	"github.com/blogapp/blog-server/internal/api/http/dto"
	"github.com/gin-gonic/gin"
)

// Recovery turns a handler panic into a 500 with the usual error body.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("Panic recovered", "error", err, "method", c.Request.Method, "path", c.Request.URL.Path)
				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Erro interno do servidor."})
			}
		}()
		c.Next()
	}
}
