package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"portfolioAPI/internal/storage"
)

// sniffLen is how much http.DetectContentType looks at.
const sniffLen = 512

// imageTypes maps accepted sniffed content types to the stored extension.
var imageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

type ImageService interface {
	Upload(ctx context.Context, fileName string, file io.Reader, size int64, contentType string) (objectName, url string, err error)
	Delete(ctx context.Context, objectName string) error
}

type imageService struct {
	storage storage.Storage
	logger  *slog.Logger
}

func NewImageService(st storage.Storage, logger *slog.Logger) ImageService {
	return &imageService{storage: st, logger: logger}
}

// Upload stores a cover image and returns its object name and the URL to use
// as imageUrl. The type is sniffed from the content; the declared type and
// extension are ignored.
func (s *imageService) Upload(ctx context.Context, fileName string, file io.Reader, size int64, contentType string) (string, string, error) {
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(file, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", "", err
	}
	head = head[:n]

	detected := http.DetectContentType(head)
	ext, ok := imageTypes[detected]
	if !ok {
		s.logger.Warn("image rejected", slog.String("declared", contentType), slog.String("detected", detected))
		return "", "", ErrInvalidImage
	}

	name := strings.TrimSuffix(fileName, filepath.Ext(fileName)) + ext
	body := io.MultiReader(bytes.NewReader(head), file)

	objectName, url, err := s.storage.UploadImage(ctx, name, body, size, detected)
	if err != nil {
		return "", "", err
	}

	s.logger.Info("image uploaded", slog.String("object", objectName), slog.Int64("size", size))
	return objectName, url, nil
}

// Delete removes an uploaded cover. Only names under the covers prefix are accepted.
func (s *imageService) Delete(ctx context.Context, objectName string) error {
	if !storage.IsCoverObject(objectName) {
		return ErrInvalidObjectName
	}

	if err := s.storage.DeleteImage(ctx, objectName); err != nil {
		return err
	}

	s.logger.Info("image deleted", slog.String("object", objectName))
	return nil
}
