// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/kessan-converter/internal/utils"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns a handler meant for [chi.Mux.MethodNotAllowed].
//
// Instead of chi's default 405 it answers with a {"detail": ...} body: 405
// when the path is a known route that does not accept the method, 404 when
// no registered pattern matches the path exactly.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, route := range router.Routes() {
			if route.Pattern != r.URL.Path {
				continue
			}
			if _, ok := route.Handlers[r.Method]; ok {
				router.ServeHTTP(w, r)
				return
			}
			writeMethodNotAllowed(w)
			return
		}

		writeNotFound(w)
	}
}

func writeMethodNotAllowed(w http.ResponseWriter) {
	utils.WriteDetail(w, "Method Not Allowed", http.StatusMethodNotAllowed)
}

func writeNotFound(w http.ResponseWriter) {
	utils.WriteDetail(w, "Not Found", http.StatusNotFound)
}
