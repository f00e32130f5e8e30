package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
)

const (
	DefaultLocalDir        = "uploads"
	DefaultLocalPublicPath = "/uploads"
)

type LocalConfig struct {
	Dir        string `mapstructure:"dir"`
	PublicPath string `mapstructure:"public_path"`
}

// LocalStore writes images below a directory that the HTTP server exposes
// under PublicPath.
type LocalStore struct {
	dir        string
	publicPath string
}

func NewLocalStore(cfg LocalConfig) (*LocalStore, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = DefaultLocalDir
	}
	publicPath := cfg.PublicPath
	if publicPath == "" {
		publicPath = DefaultLocalPublicPath
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStore{
		dir:        dir,
		publicPath: "/" + strings.Trim(publicPath, "/"),
	}, nil
}

func (s *LocalStore) Dir() string {
	return s.dir
}

func (s *LocalStore) PublicPath() string {
	return s.publicPath
}

func (s *LocalStore) Put(_ context.Context, obj Object) (string, error) {
	if !filepath.IsLocal(obj.Key) {
		return "", fmt.Errorf("invalid object key: %s", obj.Key)
	}

	dst := filepath.Join(s.dir, filepath.FromSlash(obj.Key))
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return "", fmt.Errorf("failed to create parent directory for %s: %w", dst, err)
	}

	f, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to create file %s: %w", dst, err)
	}

	if _, err := io.Copy(f, obj.Body); err != nil {
		f.Close()
		os.Remove(dst)
		return "", fmt.Errorf("failed to write file %s: %w", dst, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close file %s: %w", dst, err)
	}

	slog.Debug("Stored image", "path", dst, "size", obj.Size)
	return path.Join(s.publicPath, obj.Key), nil
}

func (s *LocalStore) Delete(_ context.Context, location string) error {
	key, ok := strings.CutPrefix(location, s.publicPath+"/")
	if !ok || !filepath.IsLocal(key) {
		return nil
	}

	err := os.Remove(filepath.Join(s.dir, filepath.FromSlash(key)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove %s: %w", key, err)
	}
	return nil
}
