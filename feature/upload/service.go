package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"path"

	"go.uber.org/zap"
)

var (
	// ErrNoFile indicates a request without a file part.
	ErrNoFile = errors.New("no file part")
	// ErrNoFilename indicates a file part without a name.
	ErrNoFilename = errors.New("no selected file")
	// ErrInvalidType indicates a file that is not an allowed image.
	ErrInvalidType = errors.New("invalid file type")
)

// Folder maps the upload type to its asset folder.
func Folder(uploadType string) string {
	switch uploadType {
	case "member", "event":
		return uploadType
	default:
		return "general"
	}
}

// Service stores uploaded images and serves them back.
type Service struct {
	backend Backend
	logger  *zap.Logger
}

// NewService creates a new upload service.
func NewService(backend Backend, logger *zap.Logger) *Service {
	return &Service{backend: backend, logger: logger}
}

// Upload stores the file under <folder>/<secure name> and returns the path the
// site uses to reference it: asset/<folder>/<secure name>.
func (s *Service) Upload(ctx context.Context, fh *multipart.FileHeader, uploadType string) (string, error) {
	if fh == nil {
		return "", ErrNoFile
	}
	if fh.Filename == "" {
		return "", ErrNoFilename
	}
	if !allowedFile(fh.Filename) {
		return "", ErrInvalidType
	}
	name := SecureFilename(fh.Filename)
	if !allowedFile(name) {
		return "", ErrInvalidType
	}

	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("opening upload: %w", err)
	}
	defer f.Close()

	key := path.Join(Folder(uploadType), name)
	if err := s.backend.Save(ctx, key, f, fh.Size, ContentType(name)); err != nil {
		return "", err
	}

	s.logger.Info("Asset uploaded", zap.String("key", key), zap.Int64("size", fh.Size))
	return "asset/" + key, nil
}

// Open returns the stored asset for key (member/ann.jpg).
func (s *Service) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	return s.backend.Open(ctx, key)
}

// ContentType guesses the MIME type from the file extension.
func ContentType(name string) string {
	if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
