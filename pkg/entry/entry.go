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

// Package entry implements the CacheEntry tagged union: the four states a
// cached value can be in, and the pure operations defined over them.
package entry

import (
	"time"

	"github.com/brunoga/deep"
)

// Meta is the cache metadata a store attaches to a Cached or MarkedAbsent
// entry: at minimum, when it was stored, and whether it has aged out of the
// store's configured TTL.
type Meta interface {
	StoredAt() time.Time
	IsExpired(now time.Time) bool
}

// BasicMeta is the Meta implementation the reference CacheStores use: a
// fixed TTL evaluated against StoredAt.
type BasicMeta struct {
	storedAt time.Time
	ttl      time.Duration
}

// NewBasicMeta stamps a BasicMeta as of now, expiring ttl later.
func NewBasicMeta(now time.Time, ttl time.Duration) BasicMeta {
	return BasicMeta{storedAt: now, ttl: ttl}
}

func (m BasicMeta) StoredAt() time.Time { return m.storedAt }

func (m BasicMeta) IsExpired(now time.Time) bool {
	return now.Sub(m.storedAt) >= m.ttl
}

// state discriminates the four CacheEntry variants.
type state int

const (
	stateMissing state = iota
	stateCached
	stateMarkedAbsent
	stateDeducedAbsent
)

// Entry is the CacheEntry<T, M> tagged union: Missing (no record at all),
// Cached (a value plus meta), MarkedAbsent (a persisted tombstone plus
// meta), or DeducedAbsent (a non-persisted, in-memory-only absence
// assertion derived from a surrounding response).
type Entry[T any, M Meta] struct {
	state state
	value T
	meta  M
}

// Missing constructs the no-record-for-this-key state.
func Missing[T any, M Meta]() Entry[T, M] {
	return Entry[T, M]{state: stateMissing}
}

// Cached constructs a present value with its store metadata.
func Cached[T any, M Meta](value T, meta M) Entry[T, M] {
	return Entry[T, M]{state: stateCached, value: value, meta: meta}
}

// MarkedAbsent constructs a persisted tombstone.
func MarkedAbsent[T any, M Meta](meta M) Entry[T, M] {
	return Entry[T, M]{state: stateMarkedAbsent, meta: meta}
}

// DeducedAbsent constructs a non-persisted absence assertion. It is never
// written to a store; it is the correct answer only within the scope of a
// single higher-level operation (e.g. a secondary that a listing response
// failed to embed).
func DeducedAbsent[T any, M Meta]() Entry[T, M] {
	return Entry[T, M]{state: stateDeducedAbsent}
}

// IsMissing reports whether the entry is the Missing variant.
func (e Entry[T, M]) IsMissing() bool {
	return e.state == stateMissing
}

// IsCached reports whether the entry is the Cached variant.
func (e Entry[T, M]) IsCached() bool {
	return e.state == stateCached
}

// IsAbsent reports whether the entry asserts that the resource does not
// exist, persisted or not.
func (e Entry[T, M]) IsAbsent() bool {
	return e.state == stateMarkedAbsent || e.state == stateDeducedAbsent
}

// IsMarkedAbsent reports whether the entry is the persisted tombstone
// variant specifically.
func (e Entry[T, M]) IsMarkedAbsent() bool {
	return e.state == stateMarkedAbsent
}

// IsExpired reports whether the entry should be treated as stale as of now.
// Missing and Cached/MarkedAbsent past their TTL are expired; DeducedAbsent
// never is, since it carries no meta to judge staleness against and is
// scoped to a single operation anyway.
func (e Entry[T, M]) IsExpired(now time.Time) bool {
	switch e.state {
	case stateMissing:
		return true
	case stateDeducedAbsent:
		return false
	default:
		return e.meta.IsExpired(now)
	}
}

// Value returns a defensive deep copy of the stored value and true, or the
// zero value and false if the entry isn't Cached. The copy means a caller
// that mutates its result can never corrupt what the store holds.
func (e Entry[T, M]) Value() (T, bool) {
	if e.state != stateCached {
		var zero T

		return zero, false
	}

	copied, err := deep.Copy(e.value)
	if err != nil {
		// deep.Copy only fails on unexported fields or channel/func values
		// it cannot reflect into; cached domain values never contain
		// those, so fall back to returning the original rather than
		// propagating an error from a documented-infallible accessor.
		return e.value, true
	}

	return copied, true
}

// Meta returns the entry's metadata and true, or the zero value and false
// for Missing/DeducedAbsent which carry none.
func (e Entry[T, M]) Meta() (M, bool) {
	if e.state == stateCached || e.state == stateMarkedAbsent {
		return e.meta, true
	}

	var zero M

	return zero, false
}
