package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"lab-admin/core/storage"

	"github.com/minio/minio-go/v7"
)

// ErrNotFound indicates the requested asset does not exist.
var ErrNotFound = errors.New("asset not found")

// Backend stores uploaded files under slash-separated keys such as member/ann.jpg.
type Backend interface {
	Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}

// cleanKey rejects keys that would escape the asset root.
func cleanKey(key string) (string, error) {
	cleaned := strings.TrimPrefix(path.Clean("/"+key), "/")
	if cleaned == "" || cleaned != key {
		return "", fmt.Errorf("%w: %q", ErrNotFound, key)
	}
	return cleaned, nil
}

// LocalBackend keeps assets on disk under a root directory.
type LocalBackend struct {
	root string
}

// NewLocalBackend creates the root directory if needed.
func NewLocalBackend(root string) (*LocalBackend, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("creating asset directory: %w", err)
	}
	return &LocalBackend{root: root}, nil
}

// Save implements Backend.
func (b *LocalBackend) Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	key, err := cleanKey(key)
	if err != nil {
		return err
	}
	dst := filepath.Join(b.root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("creating folder for %s: %w", key, err)
	}

	f, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating %s: %w", key, err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return f.Close()
}

// Open implements Backend.
func (b *LocalBackend) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	key, err := cleanKey(key)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(filepath.Join(b.root, filepath.FromSlash(key)))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
		}
		return nil, fmt.Errorf("opening %s: %w", key, err)
	}
	info, err := f.Stat()
	if err != nil || info.IsDir() {
		f.Close()
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return f, nil
}

// S3Backend keeps assets as objects asset/<key> in a bucket.
type S3Backend struct {
	client storage.Client
	bucket string
}

// NewS3Backend creates a bucket-backed store.
func NewS3Backend(client storage.Client, bucket string) *S3Backend {
	return &S3Backend{client: client, bucket: bucket}
}

func objectName(key string) string {
	return "asset/" + key
}

// Save implements Backend.
func (b *S3Backend) Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	key, err := cleanKey(key)
	if err != nil {
		return err
	}
	_, err = b.client.PutObject(ctx, b.bucket, objectName(key), r, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return fmt.Errorf("uploading %s: %w", key, err)
	}
	return nil
}

// Open implements Backend.
func (b *S3Backend) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	key, err := cleanKey(key)
	if err != nil {
		return nil, err
	}
	if _, err := b.client.StatObject(ctx, b.bucket, objectName(key), minio.StatObjectOptions{}); err != nil {
		if storage.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
		}
		return nil, fmt.Errorf("stat %s: %w", key, err)
	}
	obj, err := b.client.GetObject(ctx, b.bucket, objectName(key), minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("downloading %s: %w", key, err)
	}
	return obj, nil
}
