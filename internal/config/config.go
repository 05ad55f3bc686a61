// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"time"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging flags, environment variables, an optional JSON file, and
// defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings shared by both binaries.
	App App `envPrefix:"APP_"`

	// Adapter holds the outbound settings the client uses to reach the
	// conversion endpoint.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds local file-system locations.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen address and limits of the development server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// InputFile is the PDF given as the first positional argument. When set,
	// the client converts it once and exits instead of starting the TUI.
	InputFile string
}

// App holds process-level settings.
type App struct {
	// LogFile is where the client writes its log. Empty means a "logs" file
	// next to the executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// Version is reported by the development server root endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Adapter holds the client's view of the conversion backend.
type Adapter struct {
	// HTTPAddress is the backend base address (e.g. "http://localhost:8000").
	// Relative endpoints are resolved against it.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// APIURL is the conversion endpoint. Either an absolute URL or a path
	// relative to HTTPAddress.
	// Env: ADAPTER_API_URL
	APIURL string `env:"API_URL"`

	// HealthPath is the path of the backend health probe.
	// Env: ADAPTER_HEALTH_PATH
	HealthPath string `env:"HEALTH_PATH"`

	// RequestTimeout bounds a single conversion request. Zero disables the
	// timeout.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups local directories.
type Storage struct {
	// Downloads is where converted spreadsheets are saved.
	Downloads Dir `envPrefix:"DOWNLOAD_"`

	// Uploads is where the development server stages incoming PDFs.
	Uploads Dir `envPrefix:"UPLOAD_"`
}

// Dir is a single directory setting.
type Dir struct {
	// Env: STORAGE_DOWNLOAD_DIR / STORAGE_UPLOAD_DIR
	Path string `env:"DIR"`
}

// Server holds the development server settings.
type Server struct {
	// HTTPAddress is the TCP address to listen on, in "host:port" form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds reading a request and writing its response.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// MaxUploadSize is the largest accepted PDF in bytes.
	// Env: SERVER_MAX_UPLOAD_SIZE
	MaxUploadSize int64 `env:"MAX_UPLOAD_SIZE"`

	// CleanupInterval is how often staged uploads older than one interval
	// are swept. A negative value disables the sweep.
	// Env: SERVER_CLEANUP_INTERVAL
	CleanupInterval time.Duration `env:"CLEANUP_INTERVAL"`
}

// Defaults applied when no source sets a value.
const (
	DefaultAdapterAddress = "http://localhost:8000"
	DefaultAPIURL         = "/api/convert"
	DefaultHealthPath     = "/health"
	DefaultDownloadDir    = "."
	DefaultServerAddress  = "localhost:8000"
	DefaultMaxUploadSize  = 10 * 1024 * 1024
	DefaultServerTimeout  = 60 * time.Second
	DefaultVersion        = "1.0.0"

	DefaultCleanupInterval = 10 * time.Minute
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{Version: DefaultVersion},
		Adapter: Adapter{
			HTTPAddress: DefaultAdapterAddress,
			APIURL:      DefaultAPIURL,
			HealthPath:  DefaultHealthPath,
		},
		Storage: Storage{
			Downloads: Dir{Path: DefaultDownloadDir},
			Uploads:   Dir{Path: filepath.Join(os.TempDir(), "kessan-converter")},
		},
		Server: Server{
			HTTPAddress:    DefaultServerAddress,
			RequestTimeout: DefaultServerTimeout,
			MaxUploadSize:  DefaultMaxUploadSize,

			CleanupInterval: DefaultCleanupInterval,
		},
	}
}

// GetStructuredConfig loads and merges the configuration from flags in args,
// the environment, the JSON file (path taken from either of those), and the
// defaults.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(args).
		withEnv().
		withJSON().
		withDefaults().
		build()
}
