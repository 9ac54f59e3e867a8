package config

import (
	"os"
	"path/filepath"
	"time"
)

// Built-in defaults applied to fields no other source has set.
const (
	DefaultTokenIssuer           = "go-upload-keeper"
	DefaultHTTPAddress           = "localhost:8080"
	DefaultRequestTimeout        = time.Minute
	DefaultUploadCleanupTimeout  = 5 * time.Minute
	DefaultUploadCleanupInterval = time.Minute
	DefaultAdapterRequestTimeout = 5 * time.Minute
	DefaultClientAPIVersion      = "v1"
	defaultUploadsDirName        = "go-upload-keeper"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer: DefaultTokenIssuer,
		},
		Storage: Storage{
			Uploads: Uploads{
				Dir:            filepath.Join(os.TempDir(), defaultUploadsDirName),
				CleanupTimeout: DefaultUploadCleanupTimeout,
			},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Adapter: Adapter{
			RequestTimeout: DefaultAdapterRequestTimeout,
		},
		Workers: Workers{
			CleanupInterval: DefaultUploadCleanupInterval,
		},
	}
}
