// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"
	"strings"
)

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	endpoint := strings.TrimSpace(cfg.Adapter.APIURL)
	if endpoint == "" {
		return ErrInvalidAdapterConfigs
	}

	u, err := url.Parse(endpoint)
	if err != nil {
		return ErrInvalidAdapterConfigs
	}
	if !u.IsAbs() && strings.TrimSpace(cfg.Adapter.HTTPAddress) == "" {
		return ErrInvalidAdapterConfigs
	}

	if strings.TrimSpace(cfg.Storage.DownloadDir) == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.HTTPAddress == "" || cfg.MaxUploadSize <= 0 || cfg.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	if strings.TrimSpace(cfg.UploadDir) == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
