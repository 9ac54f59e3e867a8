package config

import (
	"fmt"
	"time"
)

// ClientAdapter is the part of the configuration the uploader needs to reach
// a server.
type ClientAdapter struct {
	HTTPAddress    string
	RequestTimeout time.Duration
	Token          string
	InternalKey    string

	// APIVersion is the {version} path segment put in front of every route.
	APIVersion string
}

// ClientConfig is the configuration of the uploader command line tool.
type ClientConfig struct {
	Adapter ClientAdapter
}

// GetClientConfig returns the configuration of the uploader. Remaining
// positional arguments are left in flag.Args.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	apiVersion := cfg.App.APIVersion
	if apiVersion == "" {
		apiVersion = DefaultClientAPIVersion
	}

	return &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			Token:          cfg.Adapter.Token,
			InternalKey:    cfg.App.InternalKey,
			APIVersion:     apiVersion,
		},
	}
}
