package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-upload-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// UploadService accepts artifacts for later deployment.
type UploadService interface {
	// Upload stores the request content under the resolved file name and
	// returns the upload key. Repository failures come back as *UploadError.
	Upload(ctx context.Context, request models.UploadRequest) (models.UploadResponse, error)

	// Info describes a stored artifact by its upload key.
	Info(ctx context.Context, key string) (models.UploadedFile, error)
}

type AuthService interface {
	CreateToken(ctx context.Context, subject string, permissions []string, duration time.Duration) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
