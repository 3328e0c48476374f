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

// Package processor implements the RequestProcessor: the per-request
// decision of UpToDate/Outdated/Uncached, and the at-most-one-refresh
// deduplication that backs it.
package processor

import (
	"github.com/gdcf/core/pkg/entry"
	"github.com/gdcf/core/pkg/task"
)

type outcomeKind int

const (
	outcomeUpToDate outcomeKind = iota
	outcomeOutdated
	outcomeUncached
)

// Refresh is the handle a processor hands back for the caller to await: it
// resolves to the entry the RefreshTask wrote, or an error.
type Refresh[T any, M entry.Meta] = *task.Task[entry.Entry[T, M]]

// Outcome is the three-way result of processing a request: UpToDate (cache
// is fresh, no task spawned), Outdated (cache has a usable but stale value,
// a refresh is in flight), or Uncached (no usable value yet, the caller
// must await the refresh).
type Outcome[T any, M entry.Meta] struct {
	kind    outcomeKind
	entry   entry.Entry[T, M]
	refresh Refresh[T, M]
}

// UpToDate constructs the no-refresh-needed outcome.
func UpToDate[T any, M entry.Meta](e entry.Entry[T, M]) Outcome[T, M] {
	return Outcome[T, M]{kind: outcomeUpToDate, entry: e}
}

// Outdated constructs the stale-but-usable outcome: the caller may use e
// immediately and independently await refresh for the newer value.
func Outdated[T any, M entry.Meta](e entry.Entry[T, M], refresh Refresh[T, M]) Outcome[T, M] {
	return Outcome[T, M]{kind: outcomeOutdated, entry: e, refresh: refresh}
}

// Uncached constructs the no-usable-value outcome: the caller must await
// refresh before any value is available.
func Uncached[T any, M entry.Meta](refresh Refresh[T, M]) Outcome[T, M] {
	return Outcome[T, M]{kind: outcomeUncached, refresh: refresh}
}

// IsUpToDate reports whether the outcome is UpToDate.
func (o Outcome[T, M]) IsUpToDate() bool { return o.kind == outcomeUpToDate }

// IsOutdated reports whether the outcome is Outdated.
func (o Outcome[T, M]) IsOutdated() bool { return o.kind == outcomeOutdated }

// IsUncached reports whether the outcome is Uncached.
func (o Outcome[T, M]) IsUncached() bool { return o.kind == outcomeUncached }

// Entry returns the usable cache entry and true for UpToDate/Outdated, or
// the zero entry and false for Uncached.
func (o Outcome[T, M]) Entry() (entry.Entry[T, M], bool) {
	if o.kind == outcomeUncached {
		var zero entry.Entry[T, M]

		return zero, false
	}

	return o.entry, true
}

// Refresh returns the in-flight refresh task and true for
// Outdated/Uncached, or nil and false for UpToDate.
func (o Outcome[T, M]) Refresh() (Refresh[T, M], bool) {
	if o.kind == outcomeUpToDate {
		return nil, false
	}

	return o.refresh, true
}
