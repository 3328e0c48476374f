/*
Copyright 2026 GDCF Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package debugserver is a small chi-routed introspection server: a health
// check for an orchestrator, Prometheus metrics, pprof, and cache-entry
// inspection, all
// separate from whatever surface (if any) a deployment puts in front of
// the facade itself. The core's facade has no HTTP surface of its own
// (spec.md scopes that out), so this is the only HTTP listener the repo
// carries — and it still gets the same logging/tracing middleware a real
// API surface would.
package debugserver

import (
	"net/http"
	"net/http/pprof"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gdcf/core/pkg/debugserver/middleware/logging"
	"github.com/gdcf/core/pkg/debugserver/middleware/opentelemetry"
	"github.com/gdcf/core/pkg/store"
)

// Server is the debug/introspection HTTP surface.
type Server struct {
	router chi.Router
}

// New builds a Server, tagging its trace spans with serviceName/version.
// cacheStore backs /debug/cache/{kind}/{key}; it may be nil, in which case
// that route always reports not found rather than panicking, for a caller
// that only wants health/metrics/pprof.
func New(serviceName, version string, cacheStore store.CacheStore) *Server {
	r := chi.NewRouter()

	r.Use(logging.New().Middleware)
	r.Use(opentelemetry.New(serviceName, version).Middleware)

	r.NotFound(NotFound)
	r.MethodNotAllowed(MethodNotAllowed)

	r.Get("/healthz", healthz)
	r.Handle("/metrics", promhttp.Handler())

	if cacheStore != nil {
		r.Get("/debug/cache/{kind}/{key}", CacheEntry(cacheStore))
	}

	r.Route("/debug/pprof", func(r chi.Router) {
		r.Get("/", pprof.Index)
		r.Get("/cmdline", pprof.Cmdline)
		r.Get("/profile", pprof.Profile)
		r.Post("/symbol", pprof.Symbol)
		r.Get("/symbol", pprof.Symbol)
		r.Get("/trace", pprof.Trace)
		r.Get("/{name}", pprof.Index)
	})

	return &Server{router: r}
}

// Handler returns the server's http.Handler, ready to pass to http.Server
// or httptest.
func (s *Server) Handler() http.Handler {
	return s.router
}

func healthz(w http.ResponseWriter, r *http.Request) {
	WriteJSONResponse(w, r, http.StatusOK, struct {
		Status string `json:"status"`
	}{Status: "ok"})
}
