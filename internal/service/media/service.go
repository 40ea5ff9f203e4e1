// Package media uploads store-profile images to object storage and
// hands back public URLs for listing cards.
package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"fl-jobs/internal/config"
)

var ErrUnsupportedImageType = errors.New("unsupported image type")

var allowedImageTypes = map[string]bool{
	"image/jpeg":    true,
	"image/png":     true,
	"image/webp":    true,
	"image/svg+xml": true,
}

type Service interface {
	// UploadStoreImage stores the image and returns its public URL.
	UploadStoreImage(ctx context.Context, fileName string, fileSize int64, mimeType string, reader io.Reader) (string, error)
}

type service struct {
	minioClient *minio.Client
	cfg         *config.Config
}

func NewService(minioClient *minio.Client, cfg *config.Config) Service {
	return &service{minioClient: minioClient, cfg: cfg}
}

func (s *service) UploadStoreImage(ctx context.Context, fileName string, fileSize int64, mimeType string, reader io.Reader) (string, error) {
	if !allowedImageTypes[strings.ToLower(mimeType)] {
		return "", ErrUnsupportedImageType
	}

	objectName := fmt.Sprintf("stores/%s/%s%s",
		time.Now().Format("2006/01"), uuid.NewString(), path.Ext(fileName))

	_, err := s.minioClient.PutObject(ctx, s.cfg.MinIOBucket, objectName, reader, fileSize, minio.PutObjectOptions{
		ContentType: mimeType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	return s.publicURL(objectName), nil
}

func (s *service) publicURL(objectName string) string {
	scheme := "http"
	if s.cfg.MinIOPublicUseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.cfg.MinIOPublicEndpoint, s.cfg.MinIOBucket, objectName)
}
