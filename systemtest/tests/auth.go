package tests

import (
	"net/http"
	"testing"

	"github.com/blogapp/blog-server/internal/api/http/dto"
	"github.com/blogapp/blog-server/internal/auth"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T, router *gin.Engine) {
	t.Run("success", func(t *testing.T) {
		body := dto.RegisterRequest{Name: "Novo Usuario", Email: "novo@example.com", Password: "password123"}
		rr := doJSON(router, "POST", "/app/registro", body)

		assert.Equal(t, http.StatusCreated, rr.Code)

		resp := decode[dto.UserResponse](t, rr)
		assert.Equal(t, "novo@example.com", resp.Email)
		assert.Equal(t, "leitor", resp.Role)
		assert.NotEmpty(t, resp.ID)
	})

	t.Run("duplicate email", func(t *testing.T) {
		body := dto.RegisterRequest{Name: "Duplicado", Email: "dup@example.com", Password: "password123"}
		rr := doJSON(router, "POST", "/app/registro", body)
		require.Equal(t, http.StatusCreated, rr.Code)

		rr = doJSON(router, "POST", "/app/registro", body)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "E-mail já está em uso.", decode[dto.ErrorResponse](t, rr).Message)
	})

	t.Run("missing name", func(t *testing.T) {
		body := dto.RegisterRequest{Email: "semnome@example.com", Password: "password123"}
		rr := doJSON(router, "POST", "/app/registro", body)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("password too short", func(t *testing.T) {
		body := dto.RegisterRequest{Name: "Senha Curta", Email: "curta@example.com", Password: "short"}
		rr := doJSON(router, "POST", "/app/registro", body)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, decode[dto.ErrorResponse](t, rr).Error, "A senha deve conter pelo menos 8 caracteres.")
	})
}

func TestLogin(t *testing.T, router *gin.Engine, codec *auth.TokenCodec) {
	regBody := dto.RegisterRequest{Name: "Login User", Email: "login@example.com", Password: "password123", Role: "autor"}
	rr := doJSON(router, "POST", "/app/registro", regBody)
	require.Equal(t, http.StatusCreated, rr.Code)

	t.Run("success", func(t *testing.T) {
		resp := login(t, router, "login@example.com", "password123")
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "autor", resp.User.Role)

		identity, err := codec.Verify(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, resp.User.ID, identity.SubjectID)
		assert.Equal(t, auth.RoleAutor, identity.Role)
	})

	t.Run("seeded administrador", func(t *testing.T) {
		resp := login(t, router, AdminEmail, AdminPassword)
		assert.Equal(t, "administrador", resp.User.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		rr := doJSON(router, "POST", "/app/login", dto.LoginRequest{Email: "login@example.com", Password: "wrongpassword"})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "E-mail ou senha incorretos.", decode[dto.ErrorResponse](t, rr).Message)
	})

	t.Run("nonexistent user", func(t *testing.T) {
		rr := doJSON(router, "POST", "/app/login", dto.LoginRequest{Email: "nouser@example.com", Password: "password123"})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
