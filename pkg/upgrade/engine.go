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
	"github.com/gdcf/core/pkg/processor"
	"github.com/gdcf/core/pkg/request"
	"github.com/gdcf/core/pkg/task"
)

// Resolve runs one Edge against one From value, driving the secondary's own
// Processor exactly the way a top-level request would, and folds the
// outcome into a Mode. This mirrors UpgradeMode::new from the reference
// implementation: every branch below corresponds to one of its match arms,
// including the two states it reaches by construction and never expects to
// see ("UpToDate wrapping a Missing entry" and its Outdated counterpart) --
// those panic here exactly as they assert there, since a Processor that
// produced them would itself be broken.
func Resolve[From any, Into any, V any, R any, M entry.Meta](
	ctx context.Context,
	edge Edge[From, Into, V, R, M],
	from From,
	forceRefresh bool,
	proc *processor.Processor[R, M],
	lookup processor.LookupFunc[R, M],
	refreshFn processor.RefreshFunc[R, M],
) (Mode[From, Into], error) {
	req, hasReq := edge.Request(from)
	if !hasReq {
		return resolveDefault(edge, from)
	}

	fingerprint := request.Fingerprint(req)

	outcome, err := proc.Process(ctx, fingerprint, forceRefresh, lookup, refreshFn)
	if err != nil {
		var zero Mode[From, Into]

		return zero, err
	}

	switch {
	case outcome.IsUpToDate():
		return resolveUpToDate(ctx, edge, from, outcome, refreshFn)
	case outcome.IsOutdated():
		return resolveOutdated(ctx, edge, from, outcome)
	default:
		rawRefresh, _ := outcome.Refresh()

		return Missing[From](from, wrapRefresh(ctx, edge, from, rawRefresh)), nil
	}
}

func resolveUpToDate[From any, Into any, V any, R any, M entry.Meta](
	ctx context.Context,
	edge Edge[From, Into, V, R, M],
	from From,
	outcome processor.Outcome[R, M],
	refreshFn processor.RefreshFunc[R, M],
) (Mode[From, Into], error) {
	e, _ := outcome.Entry()

	switch {
	case e.IsMissing():
		panic("gdcf/upgrade: processor reported UpToDate wrapping a Missing entry")
	case e.IsAbsent():
		if def, ok := edge.Default(from); ok {
			return Cached[From](edge.Apply(from, def)), nil
		}
		// No default, and the secondary is authoritatively absent in the
		// cache: force exactly one fetch, bypassing the Processor's
		// now-cached-absent short circuit, in case the absence itself is
		// stale relative to `from`.
		forced := task.Run(ctx, refreshFn)

		return Missing[From](from, wrapRefresh(ctx, edge, from, forced)), nil
	default:
		result, _ := e.Value()

		value, err := edge.Lookup(ctx, from, result)
		if err != nil {
			var zero Mode[From, Into]

			return zero, gdcferr.Cache("upgrade lookup failed").WithError(err)
		}

		return Cached[From](edge.Apply(from, value)), nil
	}
}

func resolveOutdated[From any, Into any, V any, R any, M entry.Meta](
	ctx context.Context,
	edge Edge[From, Into, V, R, M],
	from From,
	outcome processor.Outcome[R, M],
) (Mode[From, Into], error) {
	e, _ := outcome.Entry()
	rawRefresh, _ := outcome.Refresh()

	switch {
	case e.IsMissing():
		panic("gdcf/upgrade: processor reported Outdated wrapping a Missing entry")
	case e.IsAbsent():
		if def, ok := edge.Default(from); ok {
			return Outdated(from, edge.Apply(from, def), wrapRefresh(ctx, edge, from, rawRefresh)), nil
		}

		return Missing[From](from, wrapRefresh(ctx, edge, from, rawRefresh)), nil
	default:
		result, _ := e.Value()

		value, err := edge.Lookup(ctx, from, result)
		if err != nil {
			var zero Mode[From, Into]

			return zero, gdcferr.Cache("upgrade lookup failed").WithError(err)
		}

		return Outdated(from, edge.Apply(from, value), wrapRefresh(ctx, edge, from, rawRefresh)), nil
	}
}

// wrapRefresh adapts a raw secondary Refresh (resolving to the secondary's
// own CacheEntry) into one resolving directly to Into, doing the
// lookup-and-splice step once inside the task instead of asking every
// waiter to repeat it.
func wrapRefresh[From any, Into any, V any, R any, M entry.Meta](
	ctx context.Context,
	edge Edge[From, Into, V, R, M],
	from From,
	raw processor.Refresh[R, M],
) *task.Task[Into] {
	return task.Run(ctx, func(taskCtx context.Context) (Into, error) {
		var zero Into

		resolved, err := raw.Wait(taskCtx)
		if err != nil {
			return zero, err
		}

		if resolved.IsAbsent() {
			if def, ok := edge.Default(from); ok {
				return edge.Apply(from, def), nil
			}

			return zero, gdcferr.ConsistencyAssumptionViolated(
				"secondary absent after forced refresh, and no default upgrade is available",
			)
		}

		result, _ := resolved.Value()

		value, err := edge.Lookup(taskCtx, from, result)
		if err != nil {
			return zero, gdcferr.Cache("upgrade lookup failed").WithError(err)
		}

		return edge.Apply(from, value), nil
	})
}
