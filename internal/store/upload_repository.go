// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-upload-keeper/internal/logger"
	"github.com/MKhiriev/go-upload-keeper/models"
)

// DefaultCleanupTimeout is how long an uploaded artifact stays retrievable
// when no other timeout is configured.
const DefaultCleanupTimeout = 5 * time.Minute

const (
	dataDirName = "data"
	nameFile    = "name"
)

// fileUploadRepository keeps every upload in its own directory named after
// the upload key:
//
//	<baseDir>/<key>/data/<cleaned name>
//	<baseDir>/<key>/name
//
// The name file holds the name exactly as passed to Put. The modification
// time of the key directory marks the upload time and is what expiry is
// measured from.
type fileUploadRepository struct {
	baseDir string

	// timeout holds the retention window in nanoseconds.
	timeout atomic.Int64

	// inflight holds keys whose content is still being written. Cleanup
	// skips them.
	inflight sync.Map

	keys KeyGenerator
	now  func() time.Time

	logger *logger.Logger
}

// NewFileUploadRepository creates baseDir if needed and returns an
// [UploadRepository] that stores artifacts below it. A non-positive
// cleanupTimeout selects [DefaultCleanupTimeout].
func NewFileUploadRepository(baseDir string, cleanupTimeout time.Duration, keys KeyGenerator, logger *logger.Logger) (UploadRepository, error) {
	return newFileUploadRepository(baseDir, cleanupTimeout, keys, logger)
}

func newFileUploadRepository(baseDir string, cleanupTimeout time.Duration, keys KeyGenerator, logger *logger.Logger) (*fileUploadRepository, error) {
	if baseDir == "" {
		return nil, errors.New("upload directory is not set")
	}

	absDir, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("error resolving upload directory: %w", err)
	}

	if err = os.MkdirAll(absDir, 0o750); err != nil {
		return nil, fmt.Errorf("error creating upload directory: %w", err)
	}

	r := &fileUploadRepository{
		baseDir: absDir,
		keys:    keys,
		now:     time.Now,
		logger:  logger,
	}
	r.SetCleanupTimeout(cleanupTimeout)

	logger.Info().
		Str("dir", absDir).
		Dur("cleanup_timeout", r.CleanupTimeout()).
		Msg("upload repository created")

	return r, nil
}

func (r *fileUploadRepository) Put(ctx context.Context, name string, content io.Reader) (string, error) {
	if name == "" {
		return "", ErrEmptyFileName
	}

	relPath, err := cleanFileName(name)
	if err != nil {
		return "", err
	}

	key := r.keys.Generate()
	r.inflight.Store(key, struct{}{})
	defer r.inflight.Delete(key)

	keyDir := filepath.Join(r.baseDir, key)
	dst := filepath.Join(keyDir, dataDirName, relPath)

	if err = os.MkdirAll(filepath.Dir(dst), 0o750); err != nil {
		_ = os.RemoveAll(keyDir)
		return "", fmt.Errorf("error creating upload directory: %w", err)
	}

	size, err := writeFile(ctx, dst, content)
	if err != nil {
		_ = os.RemoveAll(keyDir)
		return "", err
	}

	if err = os.WriteFile(filepath.Join(keyDir, nameFile), []byte(name), 0o640); err != nil {
		_ = os.RemoveAll(keyDir)
		return "", fmt.Errorf("error writing upload name: %w", err)
	}

	uploadedAt := r.now()
	if err = os.Chtimes(keyDir, uploadedAt, uploadedAt); err != nil {
		_ = os.RemoveAll(keyDir)
		return "", fmt.Errorf("error marking upload time: %w", err)
	}

	r.logger.Debug().
		Str("key", key).
		Str("name", name).
		Int64("size", size).
		Msg("upload stored")

	return key, nil
}

func (r *fileUploadRepository) Get(ctx context.Context, key string) (models.UploadedFile, error) {
	if !isValidKey(key) {
		return models.UploadedFile{}, ErrInvalidUploadKey
	}

	keyDir := filepath.Join(r.baseDir, key)
	info, err := os.Stat(keyDir)
	if errors.Is(err, fs.ErrNotExist) {
		return models.UploadedFile{}, ErrUploadNotFound
	}
	if err != nil {
		return models.UploadedFile{}, fmt.Errorf("error reading upload: %w", err)
	}

	createdAt := info.ModTime()
	expiresAt := createdAt.Add(r.CleanupTimeout())
	if !r.now().Before(expiresAt) {
		if err = os.RemoveAll(keyDir); err != nil {
			r.logger.Err(err).Str("key", key).Msg("failed to remove expired upload")
		}
		return models.UploadedFile{}, ErrUploadNotFound
	}

	dataDir := filepath.Join(keyDir, dataDirName)
	path, fileInfo, err := findStoredFile(dataDir)
	if err != nil {
		return models.UploadedFile{}, err
	}

	name, err := storedName(keyDir, dataDir, path)
	if err != nil {
		return models.UploadedFile{}, err
	}

	return models.UploadedFile{
		Key:       key,
		Name:      name,
		Path:      path,
		Size:      fileInfo.Size(),
		CreatedAt: createdAt,
		ExpiresAt: expiresAt,
	}, nil
}

func (r *fileUploadRepository) SetCleanupTimeout(timeout time.Duration) {
	if timeout <= 0 {
		timeout = DefaultCleanupTimeout
	}
	r.timeout.Store(int64(timeout))
}

func (r *fileUploadRepository) CleanupTimeout() time.Duration {
	return time.Duration(r.timeout.Load())
}

func (r *fileUploadRepository) Cleanup(ctx context.Context) (int, error) {
	entries, err := os.ReadDir(r.baseDir)
	if err != nil {
		return 0, fmt.Errorf("error listing uploads: %w", err)
	}

	deadline := r.now().Add(-r.CleanupTimeout())
	removed := 0

	var errs []error
	for _, entry := range entries {
		if err = ctx.Err(); err != nil {
			return removed, err
		}

		if !entry.IsDir() {
			continue
		}
		if _, busy := r.inflight.Load(entry.Name()); busy {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			// removed concurrently
			continue
		}
		if info.ModTime().After(deadline) {
			continue
		}

		if err = os.RemoveAll(filepath.Join(r.baseDir, entry.Name())); err != nil {
			errs = append(errs, fmt.Errorf("error removing upload %s: %w", entry.Name(), err))
			continue
		}
		removed++
	}

	return removed, errors.Join(errs...)
}

// cleanFileName turns name into a relative path that cannot leave the key
// directory. Slashes in name are kept as subdirectories.
func cleanFileName(name string) (string, error) {
	cleaned := filepath.Clean(string(filepath.Separator) + filepath.FromSlash(name))
	rel := strings.TrimLeft(cleaned, string(filepath.Separator))
	if rel == "" || rel == "." {
		return "", fmt.Errorf("%w: %q", ErrInvalidFileName, name)
	}

	return rel, nil
}

func isValidKey(key string) bool {
	return key != "" && key != "." && key != ".." &&
		!strings.ContainsAny(key, `/\`)
}

func writeFile(ctx context.Context, dst string, content io.Reader) (int64, error) {
	f, err := os.OpenFile(dst, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o640)
	if err != nil {
		return 0, fmt.Errorf("error creating upload file: %w", err)
	}

	size, err := io.Copy(f, &contextReader{ctx: ctx, r: content})
	if err != nil {
		_ = f.Close()
		return 0, fmt.Errorf("error writing upload file: %w", err)
	}

	if err = f.Close(); err != nil {
		return 0, fmt.Errorf("error closing upload file: %w", err)
	}

	return size, nil
}

// storedName reads the name recorded by Put, falling back to the stored
// file's path below dataDir when the name file is missing.
func storedName(keyDir, dataDir, path string) (string, error) {
	name, err := os.ReadFile(filepath.Join(keyDir, nameFile))
	if err == nil {
		return string(name), nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("error reading upload name: %w", err)
	}

	relPath, err := filepath.Rel(dataDir, path)
	if err != nil {
		return "", fmt.Errorf("error resolving upload name: %w", err)
	}
	return filepath.ToSlash(relPath), nil
}

// findStoredFile returns the single regular file kept below dataDir.
func findStoredFile(dataDir string) (string, fs.FileInfo, error) {
	var (
		found string
		info  fs.FileInfo
	)

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}

		info, err = d.Info()
		if err != nil {
			return err
		}
		found = path
		return fs.SkipAll
	})
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil, ErrUploadNotFound
	}
	if err != nil {
		return "", nil, fmt.Errorf("error reading upload: %w", err)
	}
	if found == "" {
		return "", nil, ErrUploadNotFound
	}

	return found, info, nil
}

// contextReader stops reading once ctx is done.
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
