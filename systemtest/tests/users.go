package tests

import (
	"net/http"
	"testing"

	"github.com/blogapp/blog-server/internal/api/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserAdministration(t *testing.T, router *gin.Engine) {
	admin := login(t, router, AdminEmail, AdminPassword)

	t.Run("dashboard as admin", func(t *testing.T) {
		rr := doJSONWithAuth(router, "GET", "/app/adm/dashboard", nil, admin.Token)
		assert.Equal(t, http.StatusOK, rr.Code)

		list := decode[[]dto.UserResponse](t, rr)
		assert.NotEmpty(t, list)
	})

	t.Run("dashboard filters", func(t *testing.T) {
		rr := doJSONWithAuth(router, "GET", "/app/adm/dashboard?email=BLOG.LOCAL&role=administrador", nil, admin.Token)
		require.Equal(t, http.StatusOK, rr.Code)

		list := decode[[]dto.UserResponse](t, rr)
		require.Len(t, list, 1)
		assert.Equal(t, AdminEmail, list[0].Email)
	})

	t.Run("dashboard 403 for non-admin", func(t *testing.T) {
		reader := registerAndLogin(t, router, "leitor")
		rr := doJSONWithAuth(router, "GET", "/app/adm/dashboard", nil, reader.Token)
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("dashboard 401 without token", func(t *testing.T) {
		rr := doJSON(router, "GET", "/app/adm/dashboard", nil)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, "Token não fornecido", decode[dto.MessageResponse](t, rr).Message)
	})

	t.Run("update own profile with duplicate email", func(t *testing.T) {
		reader := registerAndLogin(t, router, "leitor")
		email := AdminEmail
		rr := doJSONWithAuth(router, "PUT", "/app/usuario/"+reader.User.ID, dto.UpdateProfileRequest{Email: &email}, reader.Token)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "E-mail já está em uso.", decode[dto.ErrorResponse](t, rr).Message)
	})

	t.Run("promote then delete", func(t *testing.T) {
		reader := registerAndLogin(t, router, "leitor")

		rr := doJSONWithAuth(router, "PATCH", "/app/adm/"+reader.User.ID+"/papel", dto.UpdateRoleRequest{Role: "autor"}, admin.Token)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "autor", decode[dto.UserResponse](t, rr).Role)

		rr = doJSONWithAuth(router, "DELETE", "/app/usuario/"+reader.User.ID, nil, admin.Token)
		require.Equal(t, http.StatusOK, rr.Code)

		rr = doJSONWithAuth(router, "DELETE", "/app/usuario/"+reader.User.ID, nil, admin.Token)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
