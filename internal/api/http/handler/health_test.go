package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/blogapp/blog-server/internal/api/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

var (
	pingOK   = pingerFunc(func(context.Context) error { return nil })
	pingFail = pingerFunc(func(context.Context) error { return errors.New("connection refused") })
)

func TestHealthCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		db       Pinger
		cache    Pinger
		wantCode int
		want     dto.HealthResponse
	}{
		{"in-memory store", nil, nil, http.StatusOK, dto.HealthResponse{Status: "ok", Database: "memory"}},
		{"database up", pingOK, nil, http.StatusOK, dto.HealthResponse{Status: "ok", Database: "up"}},
		{"database and cache up", pingOK, pingOK, http.StatusOK, dto.HealthResponse{Status: "ok", Database: "up", Cache: "up"}},
		{"cache down", pingOK, pingFail, http.StatusOK, dto.HealthResponse{Status: "degraded", Database: "up", Cache: "down"}},
		{"database down", pingFail, pingOK, http.StatusServiceUnavailable, dto.HealthResponse{Status: "degraded", Database: "down", Cache: "up"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := gin.New()
			engine.GET("/health", NewHealthHandler(tt.db, tt.cache).Check)

			w := httptest.NewRecorder()
			engine.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))

			assert.Equal(t, tt.wantCode, w.Code)
			var got dto.HealthResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}
