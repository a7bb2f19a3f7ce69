// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the study spots HTTP server.
//
// It owns startup, signal handling and graceful shutdown: SIGTERM, SIGINT
// and SIGQUIT stop accepting connections and give in-flight requests
// shutdownTimeout to finish.
package server
