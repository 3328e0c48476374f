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

// Package upgrade implements the UpgradeEngine: recursively promoting a
// result to a richer form by chaining secondary requests, with defaults
// and absence handled uniformly across edges.
package upgrade

import "github.com/gdcf/core/pkg/task"

type modeKind int

const (
	modeCached modeKind = iota
	modeOutdated
	modeMissing
)

// Mode is the resolved state of one Upgrade edge for one From value:
// UpgradeCached (splice immediately, no future needed), UpgradeOutdated
// (serve an immediately-usable value while a refresh is in flight), or
// UpgradeMissing (the caller must await the refresh before any value is
// available). Unlike the source, Refresh here resolves directly to the
// final Into value rather than to the raw secondary's CacheEntry: the
// lookup-and-splice step that the caller would otherwise have to repeat
// itself is done once, inside the refresh task.
type Mode[From any, Into any] struct {
	kind    modeKind
	into    Into
	from    From
	refresh *task.Task[Into]
}

// Cached constructs the immediately-available mode.
func Cached[From any, Into any](into Into) Mode[From, Into] {
	return Mode[From, Into]{kind: modeCached, into: into}
}

// Outdated constructs the stale-but-usable mode: into is ready now, refresh
// resolves to the reconciled value later.
func Outdated[From any, Into any](from From, into Into, refresh *task.Task[Into]) Mode[From, Into] {
	return Mode[From, Into]{kind: modeOutdated, from: from, into: into, refresh: refresh}
}

// Missing constructs the must-await mode.
func Missing[From any, Into any](from From, refresh *task.Task[Into]) Mode[From, Into] {
	return Mode[From, Into]{kind: modeMissing, from: from, refresh: refresh}
}

func (m Mode[From, Into]) IsCached() bool  { return m.kind == modeCached }
func (m Mode[From, Into]) IsOutdated() bool { return m.kind == modeOutdated }
func (m Mode[From, Into]) IsMissing() bool { return m.kind == modeMissing }

// Into returns the immediately-usable value and true for Cached/Outdated,
// or the zero value and false for Missing.
func (m Mode[From, Into]) Into() (Into, bool) {
	if m.kind == modeMissing {
		var zero Into

		return zero, false
	}

	return m.into, true
}

// Refresh returns the pending reconciliation task and true for
// Outdated/Missing, or nil and false for Cached.
func (m Mode[From, Into]) Refresh() (*task.Task[Into], bool) {
	if m.kind == modeCached {
		return nil, false
	}

	return m.refresh, true
}
