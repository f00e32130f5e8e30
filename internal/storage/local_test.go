package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorePutAndDelete(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(LocalConfig{Dir: dir, PublicPath: "uploads/"})
	require.NoError(t, err)

	ctx := context.Background()
	loc, err := store.Put(ctx, Object{
		Key:         "postagens/p1/img.png",
		ContentType: "image/png",
		Size:        4,
		Body:        strings.NewReader("data"),
	})
	require.NoError(t, err)
	assert.Equal(t, "/uploads/postagens/p1/img.png", loc)

	data, err := os.ReadFile(filepath.Join(dir, "postagens", "p1", "img.png"))
	require.NoError(t, err)
	assert.Equal(t, "data", string(data))

	require.NoError(t, store.Delete(ctx, loc))
	_, err = os.Stat(filepath.Join(dir, "postagens", "p1", "img.png"))
	assert.True(t, os.IsNotExist(err))

	// already gone
	assert.NoError(t, store.Delete(ctx, loc))
}

func TestLocalStoreRejectsEscapingKey(t *testing.T) {
	store, err := NewLocalStore(LocalConfig{Dir: t.TempDir()})
	require.NoError(t, err)

	_, err = store.Put(context.Background(), Object{Key: "../evil.png", Body: strings.NewReader("x")})
	assert.Error(t, err)
}

func TestLocalStoreDeleteIgnoresForeignLocations(t *testing.T) {
	store, err := NewLocalStore(LocalConfig{Dir: t.TempDir()})
	require.NoError(t, err)

	assert.NoError(t, store.Delete(context.Background(), "https://cdn.example.com/a.png"))
	assert.NoError(t, store.Delete(context.Background(), "/uploads/../../etc/passwd"))
}

func TestNewUnknownDriver(t *testing.T) {
	_, err := New(context.Background(), Config{Driver: "ftp"})
	assert.ErrorIs(t, err, ErrUnknownDriver)
}
