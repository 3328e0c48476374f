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

package logging

import (
	"net/http"

	"github.com/felixge/httpsnoop"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

// Middleware logs introspection requests at V(1): every request, plus full
// request/response detail on anything that errors. Nothing is logged when
// V(1) is disabled.
// NOTE: the empty struct, rather than a bare function, is deliberate: it
// shows up by name in pprof traces and gives this room to grow
// configuration later without changing its call sites.
type Middleware struct{}

// New creates a new logging middleware.
func New() *Middleware {
	return &Middleware{}
}

// headers strips anything that could identify who is polling the debug
// server before it reaches a log line.
func headers(h http.Header) http.Header {
	if len(h) == 0 {
		return nil
	}

	blacklist := []string{
		"Authorization",
		"Cookie",
		"User-Agent",
		"Set-Cookie",
		"X-Forwarded-For",
	}

	headers := h.Clone()

	for _, i := range blacklist {
		headers.Del(i)
	}

	return headers
}

// RequestLog wraps up the request log formatting so it's printed in a
// deterministic and sane order.
type RequestLog struct {
	Protocol string      `json:"protocol,omitempty"`
	Scheme   string      `json:"scheme,omitempty"`
	Method   string      `json:"method,omitempty"`
	Path     string      `json:"path,omitempty"`
	Host     string      `json:"host,omitempty"`
	Query    string      `json:"query,omitempty"`
	Fragment string      `json:"fragment,omitempty"`
	Length   int64       `json:"length,omitempty"`
	Address  string      `json:"address,omitempty"`
	Headers  http.Header `json:"headers,omitempty"`
}

func request(r *http.Request) *RequestLog {
	return &RequestLog{
		Protocol: r.Proto,
		Scheme:   r.URL.Scheme,
		Method:   r.Method,
		Path:     r.URL.Path,
		Host:     r.URL.Host,
		Query:    r.URL.RawQuery,
		Fragment: r.URL.Fragment,
		Length:   r.ContentLength,
		Address:  r.RemoteAddr,
		Headers:  headers(r.Header),
	}
}

// ResponseLog wraps up the response log formatting so it's printed in a
// deterministic and sane order.
type ResponseLog struct {
	Code    int         `json:"code"`
	Length  int64       `json:"length"`
	TimeNS  int64       `json:"timeNs"`
	Headers http.Header `json:"headers,omitempty"`
}

func response(w http.ResponseWriter, metrics httpsnoop.Metrics) *ResponseLog {
	return &ResponseLog{
		Code:    metrics.Code,
		Length:  metrics.Written,
		TimeNS:  metrics.Duration.Nanoseconds(),
		Headers: headers(w.Header()),
	}
}

// logRequest is disabled by default (V(1)) to keep the debug server's own
// log noise below the level of the thing it's meant to help diagnose.
func (m *Middleware) logRequest(r *http.Request) {
	log := log.FromContext(r.Context())

	if !log.V(1).Enabled() {
		return
	}

	log.Info("debugserver request", "request", request(r))
}

// logResponse logs only 4XX/5XX, since those are the ones worth seeing, and
// like logRequest only when V(1) is enabled.
func (m *Middleware) logResponse(r *http.Request, w http.ResponseWriter, metrics httpsnoop.Metrics) {
	log := log.FromContext(r.Context())

	if !log.V(1).Enabled() || metrics.Code < 400 {
		return
	}

	log.Info("debugserver response", "request", request(r), "response", response(w, metrics))
}

// Middleware provides an adaptor into chi's routing stack.
func (m *Middleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.logRequest(r)

		metrics := httpsnoop.CaptureMetrics(next, w, r)

		m.logResponse(r, w, metrics)
	})
}
