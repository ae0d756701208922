// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler.
// A known path requested with an unregistered method answers 404 instead of
// chi's default 405, so the relay does not reveal which routes exist.
//
// Only exact route patterns are compared; parameterised segments are not
// expanded.
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var found chi.Route
		for _, route := range routesOf(router) {
			if route.Pattern == r.URL.Path {
				found = route
				break
			}
		}

		if _, ok := found.Handlers[r.Method]; !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}

// routesOf flattens mounted sub-routers so that patterns under /api are
// compared by their full path.
func routesOf(routes chi.Routes) []chi.Route {
	var flat []chi.Route
	_ = chi.Walk(routes, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		for i := range flat {
			if flat[i].Pattern == route {
				flat[i].Handlers[method] = nil
				return nil
			}
		}
		flat = append(flat, chi.Route{Pattern: route, Handlers: map[string]http.Handler{method: nil}})
		return nil
	})
	return flat
}
