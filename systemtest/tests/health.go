package tests

import (
	"net/http"
	"testing"

	"github.com/blogapp/blog-server/internal/api/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestHealthCheck(t *testing.T, router *gin.Engine) {
	rr := doJSON(router, "GET", "/health", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, dto.HealthResponse{Status: "ok", Database: "up"}, decode[dto.HealthResponse](t, rr))
}
