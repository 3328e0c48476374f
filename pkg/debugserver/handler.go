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

package debugserver

import (
	"net/http"

	"github.com/gdcf/core/pkg/gdcferr"
)

// NotFound is wired in as the router's catch-all for unmatched paths.
func NotFound(w http.ResponseWriter, r *http.Request) {
	WriteErrorResponse(w, r, http.StatusNotFound, gdcferr.API("no such introspection endpoint").WithValues("path", r.URL.Path))
}

// MethodNotAllowed is wired in as the router's catch-all for a matched
// path with an unsupported method.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	WriteErrorResponse(w, r, http.StatusMethodNotAllowed, gdcferr.API("method not allowed").WithValues("method", r.Method, "path", r.URL.Path))
}
