package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/blogapp/blog-server/internal/api/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const (
	AdminEmail    = "admin@blog.local"
	AdminPassword = "systemtest-admin-pass"
)

func doJSON(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	return doJSONWithAuth(router, method, path, body, "")
}

func doJSONWithAuth(router *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	var b []byte
	if body != nil {
		b, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

func login(t *testing.T, router *gin.Engine, email, password string) dto.LoginResponse {
	t.Helper()
	rr := doJSON(router, "POST", "/app/login", dto.LoginRequest{Email: email, Password: password})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	return decode[dto.LoginResponse](t, rr)
}

// registerAndLogin creates a user with a unique email and returns its session.
func registerAndLogin(t *testing.T, router *gin.Engine, role string) dto.LoginResponse {
	t.Helper()
	email := role + "-" + uuid.NewString() + "@example.com"
	rr := doJSON(router, "POST", "/app/registro", dto.RegisterRequest{
		Name: "Usuario de teste", Email: email, Password: "password123", Role: role,
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	return login(t, router, email, "password123")
}
