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
	"encoding/json"
	"net/http"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

// ErrorResponse is the debug server's JSON error envelope: far smaller
// than the OAuth2/API error-code registry a public-facing API surface
// would carry, since nothing here is a client-facing contract — it exists
// purely so a curl against a 404'd introspection path gets something more
// useful than an empty body.
type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// WriteJSONResponse writes response as a JSON body with the given status
// code.
func WriteJSONResponse(w http.ResponseWriter, r *http.Request, code int, response any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.FromContext(r.Context()).Error(err, "failed to write debugserver response")
	}
}

// WriteErrorResponse writes err as an ErrorResponse with the given status
// code.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, code int, err error) {
	WriteJSONResponse(w, r, code, ErrorResponse{Error: http.StatusText(code), Detail: err.Error()})
}
