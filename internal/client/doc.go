// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the upload client application runtime.
//
// It runs either the interactive terminal UI or, when an input file is given,
// a single non-interactive conversion.
package client
