package upload

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lab-admin/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLocalBackend(t *testing.T) {
	root := filepath.Join(t.TempDir(), "asset")
	b, err := NewLocalBackend(root)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, b.Save(ctx, "member/ann.jpg", strings.NewReader("img"), 3, "image/jpeg"))

	data, err := os.ReadFile(filepath.Join(root, "member", "ann.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "img", string(data))

	rc, err := b.Open(ctx, "member/ann.jpg")
	require.NoError(t, err)
	got, _ := io.ReadAll(rc)
	rc.Close()
	assert.Equal(t, "img", string(got))

	_, err = b.Open(ctx, "member/none.jpg")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = b.Open(ctx, "member")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = b.Open(ctx, "../secret")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Error(t, b.Save(ctx, "../escape.jpg", strings.NewReader("x"), 1, ""))
}

func TestS3Backend(t *testing.T) {
	ctx := context.Background()
	m := new(mocks.Client)
	b := NewS3Backend(m, "lab-assets")

	m.On("PutObject", ctx, "lab-assets", "asset/event/e.png", mock.Anything, int64(4), minio.PutObjectOptions{ContentType: "image/png"}).
		Return(minio.UploadInfo{}, nil)
	require.NoError(t, b.Save(ctx, "event/e.png", strings.NewReader("data"), 4, "image/png"))

	m.On("StatObject", ctx, "lab-assets", "asset/event/e.png", mock.Anything).Return(minio.ObjectInfo{}, nil)
	m.On("GetObject", ctx, "lab-assets", "asset/event/e.png", mock.Anything).
		Return(io.NopCloser(bytes.NewReader([]byte("data"))), nil)
	rc, err := b.Open(ctx, "event/e.png")
	require.NoError(t, err)
	got, _ := io.ReadAll(rc)
	assert.Equal(t, "data", string(got))

	m.On("StatObject", ctx, "lab-assets", "asset/event/none.png", mock.Anything).
		Return(minio.ObjectInfo{}, minio.ErrorResponse{Code: "NoSuchKey"})
	_, err = b.Open(ctx, "event/none.png")
	assert.ErrorIs(t, err, ErrNotFound)

	m.On("StatObject", ctx, "lab-assets", "asset/event/err.png", mock.Anything).
		Return(minio.ObjectInfo{}, errors.New("network down"))
	_, err = b.Open(ctx, "event/err.png")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)

	m.AssertExpectations(t)
}
