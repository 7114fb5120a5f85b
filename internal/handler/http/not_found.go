// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-resale-market/internal/app"
	"github.com/MKhiriev/go-resale-market/internal/utils"
)

// pageNotFound answers every request that matched no route.
//
// It is registered both as the router's NotFound and MethodNotAllowed
// handler, so a known path requested with an unsupported method is
// indistinguishable from an unknown path: both get HTTP 404 with
// {"message":"Page not found"}.
func pageNotFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteMessage(w, app.MsgPageNotFound, http.StatusNotFound)
}
