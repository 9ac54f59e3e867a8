package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/go-upload-keeper/internal/logger"
	"github.com/MKhiriev/go-upload-keeper/internal/metrics"
	"github.com/MKhiriev/go-upload-keeper/internal/store"
	"github.com/MKhiriev/go-upload-keeper/models"
)

// uploadService hands artifacts over to the upload repository. It does no
// work of its own besides choosing the file name.
type uploadService struct {
	uploadRepository store.UploadRepository
	metrics          *metrics.Metrics

	logger *logger.Logger
}

// NewUploadService wires the repository. m may be nil.
func NewUploadService(uploadRepository store.UploadRepository, m *metrics.Metrics, logger *logger.Logger) UploadService {
	return &uploadService{
		uploadRepository: uploadRepository,
		metrics:          m,
		logger:           logger,
	}
}

// Upload resolves the file name (the path-supplied one, or the multipart
// file name when the path part is empty) and stores the content under it.
//
// A failed Put is not retried. It is returned as *UploadError carrying the
// resolved name and the repository message.
func (s *uploadService) Upload(ctx context.Context, request models.UploadRequest) (models.UploadResponse, error) {
	log := logger.FromContext(ctx)

	name := request.ResolvedName()
	log.Info().Str("name", name).Msg("upload received")

	content := &countingReader{r: request.Content}
	start := time.Now()

	key, err := s.uploadRepository.Put(ctx, name, content)
	s.metrics.ObserveUpload(time.Since(start), content.n, err)
	if err != nil {
		log.Warn().Err(err).Str("name", name).Msg("upload failed")
		return models.UploadResponse{}, NewUploadError(name, err)
	}

	log.Info().Str("name", name).Str("key", key).Int64("size", content.n).Msg("upload stored")

	return models.UploadResponse{UploadKey: key}, nil
}

func (s *uploadService) Info(ctx context.Context, key string) (models.UploadedFile, error) {
	file, err := s.uploadRepository.Get(ctx, key)
	if err != nil {
		return models.UploadedFile{}, fmt.Errorf("error getting upload %q: %w", key, err)
	}

	return file, nil
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
