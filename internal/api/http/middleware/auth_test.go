package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/blogapp/blog-server/internal/api/http/dto"
	"github.com/blogapp/blog-server/internal/auth"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupRouter(codec *auth.TokenCodec, roles ...auth.Role) *gin.Engine {
	r := gin.New()
	r.GET("/open", func(c *gin.Context) {
		_, ok := IdentityFrom(c)
		c.JSON(http.StatusOK, gin.H{"identity": ok})
	})
	r.GET("/protected", JWTAuth(codec), func(c *gin.Context) {
		identity, _ := IdentityFrom(c)
		c.JSON(http.StatusOK, gin.H{"id": identity.SubjectID, "role": identity.Role})
	})
	r.GET("/restricted", JWTAuth(codec), RequireRole(roles...), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.GET("/misordered", RequireRole(roles...), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func newCodec(t *testing.T) *auth.TokenCodec {
	t.Helper()
	codec, err := auth.NewTokenCodec(auth.JWTConfig{Secret: "middleware-secret"})
	require.NoError(t, err)
	return codec
}

func get(r *gin.Engine, path, authorization string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("GET", path, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func messageOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp dto.MessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Message
}

func TestJWTAuthMissingCredential(t *testing.T) {
	r := setupRouter(newCodec(t))

	for _, header := range []string{"", "Bearer", "Bearer   "} {
		w := get(r, "/protected", header)
		assert.Equal(t, http.StatusUnauthorized, w.Code, header)
		assert.Equal(t, MsgNoCredential, messageOf(t, w), header)
	}
}

func TestJWTAuthInvalidToken(t *testing.T) {
	codec := newCodec(t)
	r := setupRouter(codec)

	expired, err := codec.WithClock(func() time.Time { return time.Now().Add(-2 * time.Hour) }).Issue("user-1", auth.RoleLeitor)
	require.NoError(t, err)

	for name, header := range map[string]string{
		"garbage":      "Bearer abc.def.ghi",
		"expired":      "Bearer " + expired,
		"wrong scheme": "Basic dXNlcjpwYXNz",
	} {
		t.Run(name, func(t *testing.T) {
			w := get(r, "/protected", header)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, MsgInvalidToken, messageOf(t, w))
		})
	}
}

func TestJWTAuthAttachesIdentity(t *testing.T) {
	codec := newCodec(t)
	r := setupRouter(codec)

	token, err := codec.Issue("user-42", auth.RoleAutor)
	require.NoError(t, err)

	w := get(r, "/protected", "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "user-42", resp["id"])
	assert.Equal(t, "autor", resp["role"])

	w = get(r, "/open", "")
	assert.JSONEq(t, `{"identity":false}`, w.Body.String())
}

func TestRequireRole(t *testing.T) {
	codec := newCodec(t)
	r := setupRouter(codec, auth.RoleAdministrador, auth.RoleAutor)

	for role, want := range map[auth.Role]int{
		auth.RoleAdministrador: http.StatusOK,
		auth.RoleAutor:         http.StatusOK,
		auth.RoleLeitor:        http.StatusForbidden,
	} {
		token, err := codec.Issue("user-1", role)
		require.NoError(t, err)

		w := get(r, "/restricted", "Bearer "+token)
		assert.Equal(t, want, w.Code, role)
		if want == http.StatusForbidden {
			assert.Equal(t, MsgForbidden, messageOf(t, w))
		}
	}
}

func TestRequireRoleWithoutIdentity(t *testing.T) {
	r := setupRouter(newCodec(t), auth.RoleLeitor)

	w := get(r, "/misordered", "")
	assert.Equal(t, http.StatusForbidden, w.Code)
}
