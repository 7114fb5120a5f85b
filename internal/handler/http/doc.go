// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the resale market.
//
// It exposes route wiring, request handlers, and middleware. Tracing, access
// logging, compression, CORS and bearer-token authentication are handled in
// this package before requests are delegated to the service layer. Errors
// coming back from the services are translated to status codes and JSON
// bodies by writeError.
package http
