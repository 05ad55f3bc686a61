package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8000}, expected: "localhost:8000"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "only port no host", addr: NetAddress{Port: 8080}, expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		expectedAddr NetAddress
	}{
		{name: "valid localhost", input: "localhost:8000", expectedAddr: NetAddress{Host: "localhost", Port: 8000}},
		{name: "valid IPv4", input: "127.0.0.1:9090", expectedAddr: NetAddress{Host: "127.0.0.1", Port: 9090}},
		{name: "all interfaces", input: ":8000", expectedAddr: NetAddress{Port: 8000}},
		{name: "valid IPv6", input: "[::1]:8000", expectedAddr: NetAddress{Host: "::1", Port: 8000}},
		{name: "missing colon", input: "localhost8000", expectError: true},
		{name: "non numeric port", input: "localhost:http", expectError: true},
		{name: "zero port", input: "localhost:0", expectError: true},
		{name: "port out of range", input: "localhost:70000", expectError: true},
		{name: "hostname is not an IP", input: "example.com:8000", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.expectError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedAddr, addr)
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-a", "http://backend:8000",
		"-u", "/v2/convert",
		"-t", "90s",
		"-o", "/tmp/out",
		"-l", "/tmp/client.log",
		"-s", "127.0.0.1:9000",
		"-max-upload-size", "2048",
		"-upload-dir", "/tmp/in",
		"-c", "/etc/kessan.json",
		"report.pdf",
	})
	require.NoError(t, err)

	assert.Equal(t, "http://backend:8000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "/v2/convert", cfg.Adapter.APIURL)
	assert.Equal(t, 90*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/tmp/out", cfg.Storage.Downloads.Path)
	assert.Equal(t, "/tmp/client.log", cfg.App.LogFile)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, int64(2048), cfg.Server.MaxUploadSize)
	assert.Equal(t, "/tmp/in", cfg.Storage.Uploads.Path)
	assert.Equal(t, "/etc/kessan.json", cfg.JSONFilePath)
	assert.Equal(t, "report.pdf", cfg.InputFile)
}

func TestParseFlags_ConfigAlias(t *testing.T) {
	cfg, err := parseFlags([]string{"-config", "alias.json"})
	require.NoError(t, err)
	assert.Equal(t, "alias.json", cfg.JSONFilePath)
}

func TestParseFlags_NoArgs(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_InvalidServerAddress(t *testing.T) {
	_, err := parseFlags([]string{"-s", "not-an-address"})
	require.Error(t, err)
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	_, err := parseFlags([]string{"-unknown"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error parsing flags")
}
