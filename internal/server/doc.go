// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server wires and runs the marketplace HTTP server.
//
// It orchestrates the server lifecycle together with the background
// workers: startup, signal handling and graceful shutdown.
package server
