package posts

import (
	"context"
	"errors"
)

var ErrCacheMiss = errors.New("cache: key not found")

// Cache stores single posts by id.
type Cache interface {
	Get(ctx context.Context, id string) (Post, error)
	Set(ctx context.Context, post Post) error
	Delete(ctx context.Context, id string) error
}

type NoopCache struct{}

func (NoopCache) Get(context.Context, string) (Post, error) { return Post{}, ErrCacheMiss }
func (NoopCache) Set(context.Context, Post) error            { return nil }
func (NoopCache) Delete(context.Context, string) error       { return nil }
