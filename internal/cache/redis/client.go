package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/blogapp/blog-server/internal/posts"
	goredis "github.com/redis/go-redis/v9"
)

const (
	DefaultTTL = 10 * time.Minute
	keyPrefix  = "blog:"
)

type Config struct {
	Enabled  bool          `mapstructure:"enabled"`
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// PostCache keeps serialized posts under blog:post:<id>.
type PostCache struct {
	client *goredis.Client
	ttl    time.Duration
}

var _ posts.Cache = (*PostCache)(nil)

func NewPostCache(ctx context.Context, cfg Config) (*PostCache, error) {
	if !cfg.Enabled {
		return nil, errors.New("redis disabled")
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	slog.Info("Connected to Redis", "addr", cfg.Addr, "db", cfg.DB)
	return newPostCache(client, cfg.TTL), nil
}

func newPostCache(client *goredis.Client, ttl time.Duration) *PostCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &PostCache{client: client, ttl: ttl}
}

func (c *PostCache) postKey(id string) string {
	return fmt.Sprintf("%spost:%s", keyPrefix, id)
}

func (c *PostCache) Get(ctx context.Context, id string) (posts.Post, error) {
	val, err := c.client.Get(ctx, c.postKey(id)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return posts.Post{}, posts.ErrCacheMiss
	}
	if err != nil {
		return posts.Post{}, fmt.Errorf("redis get: %w", err)
	}

	var post posts.Post
	if err := json.Unmarshal(val, &post); err != nil {
		return posts.Post{}, fmt.Errorf("decode cached post: %w", err)
	}
	return post, nil
}

func (c *PostCache) Set(ctx context.Context, post posts.Post) error {
	val, err := json.Marshal(post)
	if err != nil {
		return fmt.Errorf("encode post: %w", err)
	}
	if err := c.client.Set(ctx, c.postKey(post.ID), val, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (c *PostCache) Delete(ctx context.Context, id string) error {
	if err := c.client.Del(ctx, c.postKey(id)).Err(); err != nil && !errors.Is(err, goredis.Nil) {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

func (c *PostCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *PostCache) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}
