package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
)

const (
	DriverLocal = "local"
	DriverMinIO = "minio"
)

var ErrUnknownDriver = errors.New("unknown storage driver")

type Config struct {
	Driver string      `mapstructure:"driver"`
	Local  LocalConfig `mapstructure:"local"`
	MinIO  MinIOConfig `mapstructure:"minio"`
}

// Object is an uploaded blob ready to be stored.
type Object struct {
	Key         string
	ContentType string
	Size        int64
	Body        io.Reader
}

// ImageStore persists post images and resolves their public location.
type ImageStore interface {
	// Put stores the object and returns the URL or path clients use to fetch it.
	Put(ctx context.Context, obj Object) (string, error)
	// Delete removes the object behind a location previously returned by Put.
	// Unknown locations are ignored.
	Delete(ctx context.Context, location string) error
}

func New(ctx context.Context, cfg Config) (ImageStore, error) {
	switch cfg.Driver {
	case "", DriverLocal:
		return NewLocalStore(cfg.Local)
	case DriverMinIO:
		return NewMinIOStore(ctx, cfg.MinIO)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownDriver, cfg.Driver)
	}
}
