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
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/gdcf/core/pkg/entry"
	"github.com/gdcf/core/pkg/gdcferr"
	"github.com/gdcf/core/pkg/store"
)

// cacheEntryResponse is the JSON shape GET /debug/cache/{kind}/{key} returns:
// a CacheEntry flattened into something curl-readable, never the wire format
// any GDCF collaborator actually exchanges.
type cacheEntryResponse struct {
	Kind     string     `json:"kind"`
	Key      uint64     `json:"key"`
	State    string     `json:"state"`
	StoredAt *time.Time `json:"storedAt,omitempty"`
	Value    any        `json:"value,omitempty"`
}

// CacheEntry serves GET /debug/cache/{kind}/{key}, reading straight through
// cacheStore so an operator can inspect exactly what a RequestProcessor
// would see for that key, without reproducing a real request. kind selects
// which of CacheStore's five lookup methods to call; key is the same
// literal fingerprint or secondary id the core itself keys that kind by.
func CacheEntry(cacheStore store.CacheStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind := chi.URLParam(r, "kind")

		key, err := strconv.ParseUint(chi.URLParam(r, "key"), 10, 64)
		if err != nil {
			WriteErrorResponse(w, r, http.StatusBadRequest, gdcferr.API("key must be a non-negative integer").WithValues("key", chi.URLParam(r, "key")))

			return
		}

		ctx := r.Context()

		var resp cacheEntryResponse

		switch kind {
		case "level":
			e, lookupErr := cacheStore.LookupLevel(ctx, key)
			if lookupErr != nil {
				WriteErrorResponse(w, r, http.StatusInternalServerError, lookupErr)

				return
			}

			resp = entryResponse(kind, key, e)
		case "levels":
			e, lookupErr := cacheStore.LookupLevels(ctx, key)
			if lookupErr != nil {
				WriteErrorResponse(w, r, http.StatusInternalServerError, lookupErr)

				return
			}

			resp = entryResponse(kind, key, e)
		case "user":
			e, lookupErr := cacheStore.LookupUser(ctx, key)
			if lookupErr != nil {
				WriteErrorResponse(w, r, http.StatusInternalServerError, lookupErr)

				return
			}

			resp = entryResponse(kind, key, e)
		case "creator":
			e, lookupErr := cacheStore.LookupCreator(ctx, key)
			if lookupErr != nil {
				WriteErrorResponse(w, r, http.StatusInternalServerError, lookupErr)

				return
			}

			resp = entryResponse(kind, key, e)
		case "song":
			e, lookupErr := cacheStore.LookupSong(ctx, key)
			if lookupErr != nil {
				WriteErrorResponse(w, r, http.StatusInternalServerError, lookupErr)

				return
			}

			resp = entryResponse(kind, key, e)
		default:
			WriteErrorResponse(w, r, http.StatusNotFound, gdcferr.API("unknown cache kind").WithValues("kind", kind))

			return
		}

		WriteJSONResponse(w, r, http.StatusOK, resp)
	}
}

// entryResponse flattens any CacheEntry[T, entry.BasicMeta] into the
// kind-erased response shape, regardless of what T the caller's kind
// happens to be.
func entryResponse[T any](kind string, key uint64, e entry.Entry[T, entry.BasicMeta]) cacheEntryResponse {
	resp := cacheEntryResponse{Kind: kind, Key: key, State: entryState(e)}

	if meta, ok := e.Meta(); ok {
		storedAt := meta.StoredAt()
		resp.StoredAt = &storedAt
	}

	if v, ok := e.Value(); ok {
		resp.Value = v
	}

	return resp
}

// entryState names a CacheEntry's variant the way an operator reading the
// debug response would expect, rather than exposing the package-private
// state enum directly.
func entryState[T any, M entry.Meta](e entry.Entry[T, M]) string {
	switch {
	case e.IsMissing():
		return "missing"
	case e.IsMarkedAbsent():
		return "marked_absent"
	case e.IsAbsent():
		return "deduced_absent"
	case e.IsCached():
		return "cached"
	default:
		return "unknown"
	}
}
