// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses command-line flags from args (without the program name).
// The first positional argument, if any, becomes [StructuredConfig.InputFile].
//
// Flags:
//
//	-a backend base address (e.g. http://localhost:8000)
//	-u conversion endpoint, absolute or relative to -a
//	-t request timeout (e.g. "30s"); 0 disables it
//	-o directory the spreadsheet is saved into
//	-l log file path
//	-s development server listen address in format [host]:[port]
//	-max-upload-size development server upload limit in bytes
//	-upload-dir development server staging directory
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var adapterAddress string
	var apiURL string
	var requestTimeout time.Duration
	var downloadDir string
	var logFile string
	var maxUploadSize int64
	var uploadDir string
	var jsonConfigPath string

	fs := flag.NewFlagSet("kessan-converter", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&adapterAddress, "a", "", "Backend base address")
	fs.StringVar(&apiURL, "u", "", "Conversion endpoint URL or path")
	fs.DurationVar(&requestTimeout, "t", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&downloadDir, "o", "", "Download directory")
	fs.StringVar(&logFile, "l", "", "Log file path")
	fs.Var(&serverAddress, "s", "Development server address host:port")
	fs.Int64Var(&maxUploadSize, "max-upload-size", 0, "Development server upload limit in bytes")
	fs.StringVar(&uploadDir, "upload-dir", "", "Development server staging directory")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogFile: logFile,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			APIURL:         apiURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			Downloads: Dir{Path: downloadDir},
			Uploads:   Dir{Path: uploadDir},
		},
		Server: Server{
			HTTPAddress:   serverAddress.String(),
			MaxUploadSize: maxUploadSize,
		},
		JSONFilePath: jsonConfigPath,
		InputFile:    fs.Arg(0),
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns "".
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(strings.TrimSpace(s))
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
