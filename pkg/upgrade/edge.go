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

package upgrade

import (
	"context"

	"github.com/gdcf/core/pkg/entry"
	"github.com/gdcf/core/pkg/gdcferr"
	"github.com/gdcf/core/pkg/request"
)

// Edge describes one upgrade step: From carries a Song/User-parametrized
// shape that is missing a richer field, Into is the same shape with that
// field spliced in, V is the secondary value being spliced, and R/M are the
// secondary's raw request result and cache metadata types.
//
// This is the "closed enumeration of shapes plus a table of descriptors"
// design the core favors over an open Upgrade trait: rather than one
// From.Upgrade(Into) method per concrete pair, every edge is a value of
// this one generic struct, built by a constructor function in this
// package. Adding an edge means adding a constructor, not a new type.
type Edge[From any, Into any, V any, R any, M entry.Meta] struct {
	// Request returns the secondary request needed to resolve From's
	// missing field, or ok=false if From already carries enough
	// information to upgrade without ever consulting the cache or the API
	// (e.g. a nil optional reference that upgrades to "absent" directly).
	Request func(from From) (req request.Request, ok bool)

	// ID returns the secondary's own literal identifier -- the same id
	// Request wraps into a search request, unwrapped. Song and creator
	// caches are keyed by this id, never by a fingerprint of the
	// constructed search request, so callers resolving a secondary by hand
	// (rather than through Resolve's own Processor dispatch) must use ID,
	// not Fingerprint(Request), to address the cache. Users are the
	// exception: they are primary objects, keyed by the fingerprint of the
	// UserRequest built from this account id. Edges with no ID of
	// their own (ok=false) never consult a secondary-specific cache keyed
	// this way.
	ID func(from From) (id uint64, ok bool)

	// Default returns the value to splice in when the secondary is
	// authoritatively absent (MarkedAbsent/DeducedAbsent) and From alone
	// doesn't determine the upgraded value. Edges whose From always
	// determines the outcome when absent (no plausible secondary lookup
	// ever applies) return ok=false unconditionally.
	Default func(from From) (value V, ok bool)

	// Lookup extracts V out of the secondary's raw cached/fetched result.
	// Only called when the secondary is present.
	Lookup func(ctx context.Context, from From, result R) (V, error)

	// Apply splices value into from, producing the upgraded shape.
	Apply func(from From, value V) Into
}

// resolveDefault applies edge.Default, turning "no default" into
// ConsistencyAssumptionViolated.
func resolveDefault[From any, Into any, V any, R any, M entry.Meta](
	edge Edge[From, Into, V, R, M],
	from From,
) (Mode[From, Into], error) {
	def, ok := edge.Default(from)
	if !ok {
		var zero Mode[From, Into]

		return zero, gdcferr.ConsistencyAssumptionViolated("no upgrade request available and no default upgrade for this edge")
	}

	return Cached[From](edge.Apply(from, def)), nil
}
