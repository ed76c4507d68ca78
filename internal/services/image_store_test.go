package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalImageStoreSave(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalImageStore(dir, "https://mail.example.com")

	url, err := store.Save(context.Background(), "Summer-Sale_20260615.jpg", "image/jpeg", []byte("jpeg-bytes"))

	assert.NoError(t, err)
	assert.Equal(t, "https://mail.example.com/images/Summer-Sale_20260615.jpg", url)

	data, err := os.ReadFile(filepath.Join(dir, "Summer-Sale_20260615.jpg"))
	assert.NoError(t, err)
	assert.Equal(t, []byte("jpeg-bytes"), data)
}

func TestLocalImageStoreRelativeURLWithoutBase(t *testing.T) {
	store := NewLocalImageStore(t.TempDir(), "")

	url, err := store.Save(context.Background(), "hero.jpg", "image/jpeg", []byte("x"))

	assert.NoError(t, err)
	assert.Equal(t, "/images/hero.jpg", url)
}

func TestLocalImageStoreStripsPathComponents(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalImageStore(dir, "")

	url, err := store.Save(context.Background(), "../escape.jpg", "image/jpeg", []byte("x"))

	assert.NoError(t, err)
	assert.Equal(t, "/images/escape.jpg", url)
	_, err = os.Stat(filepath.Join(dir, "escape.jpg"))
	assert.NoError(t, err)
}
