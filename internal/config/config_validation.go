package config

import (
	"fmt"
	"strings"
)

// validate rejects values that are invalid regardless of which binary uses
// the configuration.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.RequestTimeout < 0 || cfg.Server.MaxUploadSize < 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.Uploads.CleanupTimeout < 0 {
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.CleanupInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}

func (cfg *StructuredConfig) validateServer() error {
	if strings.TrimSpace(cfg.App.TokenSignKey) == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: http address is required", ErrInvalidServerConfigs)
	}

	if cfg.Storage.Uploads.Dir == "" {
		return fmt.Errorf("%w: uploads dir is required", ErrInvalidStorageConfigs)
	}

	if cfg.Workers.CleanupInterval == 0 {
		return fmt.Errorf("%w: cleanup interval is required", ErrInvalidWorkerConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
