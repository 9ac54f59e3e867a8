package store

import (
	"context"
	"io"
	"time"

	"github.com/MKhiriev/go-upload-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UploadRepository keeps uploaded artifacts for a limited time.
//
// Implementations must be safe for concurrent use. Two Put calls with the
// same name are independent and yield distinct keys.
type UploadRepository interface {
	// Put stores content under name and returns an opaque upload key.
	// The returned error describes the I/O failure when the write fails.
	Put(ctx context.Context, name string, content io.Reader) (string, error)

	// Get resolves an upload key into the stored artifact. Expired and
	// unknown keys yield ErrUploadNotFound.
	Get(ctx context.Context, key string) (models.UploadedFile, error)

	// SetCleanupTimeout changes how long artifacts stay retrievable.
	// Non-positive values restore DefaultCleanupTimeout.
	SetCleanupTimeout(timeout time.Duration)

	// CleanupTimeout reports the current retention window.
	CleanupTimeout() time.Duration

	// Cleanup evicts every artifact older than the retention window and
	// returns how many were removed.
	Cleanup(ctx context.Context) (int, error)
}

// KeyGenerator produces upload keys.
type KeyGenerator interface {
	Generate() string
}
