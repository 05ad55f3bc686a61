package config

import (
	"fmt"
	"time"
)

// ClientApp holds client process settings.
type ClientApp struct {
	// LogFile is the client log destination.
	LogFile string
	// InputFile, when set, switches the client to one-shot mode.
	InputFile string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the backend base address.
	HTTPAddress string
	// APIURL is the conversion endpoint, absolute or relative to HTTPAddress.
	APIURL string
	// HealthPath is the backend health probe path.
	HealthPath string
	// RequestTimeout bounds outbound requests; zero means no timeout.
	RequestTimeout time.Duration
}

// ClientStorage groups client storage settings.
type ClientStorage struct {
	// DownloadDir is where converted spreadsheets are saved.
	DownloadDir string
}

// ClientConfig is the client view of [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
}

// GetClientConfig builds and validates a client-specific config view from
// the merged structured configuration. args are the command-line arguments
// without the program name.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			LogFile:   cfg.App.LogFile,
			InputFile: cfg.InputFile,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			APIURL:         cfg.Adapter.APIURL,
			HealthPath:     cfg.Adapter.HealthPath,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DownloadDir: cfg.Storage.Downloads.Path,
		},
	}
}
