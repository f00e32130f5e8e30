package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/blogapp/blog-server/internal/api/http/dto"
	"github.com/gin-gonic/gin"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db    Pinger
	cache Pinger
}

// NewHealthHandler reports database reachability through db. A nil db means
// the server runs on the in-memory store; a nil cache means posts are not cached.
func NewHealthHandler(db, cache Pinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

// Check answers 503 when the database is down. A cache outage only degrades
// the status since requests fall through to the database.
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	resp := dto.HealthResponse{Status: "ok", Database: "memory"}
	code := http.StatusOK

	if h.db != nil {
		resp.Database = "up"
		if err := h.db.Ping(ctx); err != nil {
			slog.Warn("Health check database ping failed", "error", err)
			resp.Status = "degraded"
			resp.Database = "down"
			code = http.StatusServiceUnavailable
		}
	}

	if h.cache != nil {
		resp.Cache = "up"
		if err := h.cache.Ping(ctx); err != nil {
			slog.Warn("Health check cache ping failed", "error", err)
			resp.Status = "degraded"
			resp.Cache = "down"
		}
	}

	c.JSON(code, resp)
}
