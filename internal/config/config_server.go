package config

import (
	"fmt"
	"time"
)

// ServerConfig is the development server view of [StructuredConfig].
type ServerConfig struct {
	// Version is reported by the root endpoint.
	Version string
	// HTTPAddress is the listen address.
	HTTPAddress string
	// RequestTimeout bounds reading and writing a single request.
	RequestTimeout time.Duration
	// MaxUploadSize is the largest accepted PDF in bytes.
	MaxUploadSize int64
	// UploadDir is where incoming PDFs are staged.
	UploadDir string
	// CleanupInterval drives the stale upload sweep; <= 0 disables it.
	CleanupInterval time.Duration
}

// GetServerConfig builds and validates the development server config view.
// args are the command-line arguments without the program name.
func GetServerConfig(args []string) (*ServerConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := newServerConfig(cfg)
	return serverCfg, serverCfg.validate()
}

func newServerConfig(cfg *StructuredConfig) *ServerConfig {
	return &ServerConfig{
		Version:        cfg.App.Version,
		HTTPAddress:    cfg.Server.HTTPAddress,
		RequestTimeout: cfg.Server.RequestTimeout,
		MaxUploadSize:  cfg.Server.MaxUploadSize,
		UploadDir:      cfg.Storage.Uploads.Path,

		CleanupInterval: cfg.Server.CleanupInterval,
	}
}
