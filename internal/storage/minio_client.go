package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"portfolioAPI/internal/config"
)

type Storage interface {
	UploadImage(ctx context.Context, fileName string, file io.Reader, size int64, contentType string) (string, string, error)
	DeleteImage(ctx context.Context, objectName string) error
	Ping(ctx context.Context) error
}

type MinIOClient struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

func NewMinIOClient(ctx context.Context, cfg config.MinIO) (*MinIOClient, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}

	m := &MinIOClient{client: client, bucket: cfg.BucketName, publicURL: cfg.PublicURL}
	if err := m.ensureBucket(ctx, cfg.Region); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *MinIOClient) ensureBucket(ctx context.Context, region string) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return fmt.Errorf("minio bucket check: %w", err)
	}
	if exists {
		return nil
	}
	if err := m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{Region: region}); err != nil {
		return fmt.Errorf("minio make bucket: %w", err)
	}
	return nil
}

const coverPrefix = "covers/"

// ObjectName lays uploads out as covers/<yyyy>/<mm>/<uuid><ext>.
func ObjectName(fileName string, now time.Time) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	if ext == "" {
		ext = ".jpg"
	}
	return fmt.Sprintf(coverPrefix+"%d/%02d/%s%s", now.Year(), now.Month(), uuid.New().String(), ext)
}

// IsCoverObject reports whether name is a path produced by ObjectName.
func IsCoverObject(name string) bool {
	if !strings.HasPrefix(name, coverPrefix) {
		return false
	}
	for _, part := range strings.Split(name, "/") {
		if part == "" || part == "." || part == ".." {
			return false
		}
	}
	return true
}

// ContentType prefers the client-declared type and falls back to the extension.
func ContentType(fileName, declared string) string {
	if declared != "" && declared != "application/octet-stream" {
		return declared
	}
	if ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(fileName))); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

func (m *MinIOClient) UploadImage(ctx context.Context, fileName string, file io.Reader, size int64, contentType string) (string, string, error) {
	now := time.Now()
	objectName := ObjectName(fileName, now)

	_, err := m.client.PutObject(ctx, m.bucket, objectName, file, size,
		minio.PutObjectOptions{
			ContentType: ContentType(fileName, contentType),
			UserMetadata: map[string]string{
				"original-filename": fileName,
				"uploaded-at":       now.Format(time.RFC3339),
			},
		})
	if err != nil {
		return "", "", fmt.Errorf("minio upload: %w", err)
	}

	return objectName, fmt.Sprintf("%s/%s/%s", m.publicURL, m.bucket, objectName), nil
}

func (m *MinIOClient) DeleteImage(ctx context.Context, objectName string) error {
	err := m.client.RemoveObject(ctx, m.bucket, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("minio delete: %w", err)
	}
	return nil
}

func (m *MinIOClient) Ping(ctx context.Context) error {
	if _, err := m.client.BucketExists(ctx, m.bucket); err != nil {
		return fmt.Errorf("minio ping: %w", err)
	}
	return nil
}
