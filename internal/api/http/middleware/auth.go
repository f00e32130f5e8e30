package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/blogapp/blog-server/internal/api/http/dto"
	"github.com/blogapp/blog-server/internal/auth"
	"github.com/gin-gonic/gin"
)

const (
	IdentityKey = "identity"

	MsgNoCredential = "Token não fornecido"
	MsgInvalidToken = "Token inválido ou expirado."
	MsgForbidden    = "Acesso negado."
)

// JWTAuth verifies the bearer credential and stores the resulting
// auth.Identity on the context.
func JWTAuth(codec *auth.TokenCodec) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := bearerToken(c.GetHeader("Authorization"))
		if err == nil {
			var identity auth.Identity
			identity, err = codec.Verify(token)
			if err == nil {
				c.Set(IdentityKey, identity)
				c.Next()
				return
			}
		}

		if errors.Is(err, auth.ErrNoCredential) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.MessageResponse{Message: MsgNoCredential})
			return
		}
		slog.Debug("Rejected token", "path", c.Request.URL.Path, "client_ip", c.ClientIP(), "error", err)
		c.AbortWithStatusJSON(http.StatusUnauthorized, dto.MessageResponse{Message: MsgInvalidToken})
	}
}

func bearerToken(header string) (string, error) {
	fields := strings.Fields(header)
	if len(fields) < 2 {
		return "", auth.ErrNoCredential
	}
	if len(fields) > 2 || !strings.EqualFold(fields[0], "Bearer") {
		return "", auth.ErrInvalidToken
	}
	return fields[1], nil
}

// RequireRole admits requests whose identity holds one of roles. It must run
// after JWTAuth; a missing identity is rejected.
func RequireRole(roles ...auth.Role) gin.HandlerFunc {
	allowed := append([]auth.Role(nil), roles...)
	return func(c *gin.Context) {
		identity, ok := IdentityFrom(c)
		if !ok || !auth.Allowed(identity.Role, allowed) {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.MessageResponse{Message: MsgForbidden})
			return
		}
		c.Next()
	}
}

func IdentityFrom(c *gin.Context) (auth.Identity, bool) {
	v, exists := c.Get(IdentityKey)
	if !exists {
		return auth.Identity{}, false
	}
	identity, ok := v.(auth.Identity)
	return identity, ok
}
