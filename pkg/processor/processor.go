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

package processor

import (
	"context"
	"strconv"
	"time"

	"golang.org/x/sync/singleflight"
	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/gdcf/core/pkg/entry"
	"github.com/gdcf/core/pkg/gdcferr"
	"github.com/gdcf/core/pkg/task"
)

// LookupFunc performs the store's fast, synchronous lookup for one request.
type LookupFunc[T any, M entry.Meta] func(ctx context.Context) (entry.Entry[T, M], error)

// RefreshFunc performs one RefreshTask's full body: call the ApiClient,
// write back to the store, and return the entry the store now holds.
type RefreshFunc[T any, M entry.Meta] func(ctx context.Context) (entry.Entry[T, M], error)

// Processor is the RequestProcessor for one request kind. It is not itself
// generic over "which request": callers keep one Processor per request kind
// and pass each Process call closures bound to the concrete request; the
// Processor's singleflight.Group, keyed by fingerprint, is reused across
// calls so that concurrent requests for the same fingerprint observe the
// same refresh.
//
// A Processor instance is what "at-most-one refresh per fingerprint" is
// scoped to (§5): it is not a property of the store, and two independent
// Processor instances over the same store do not dedupe against each
// other.
type Processor[T any, M entry.Meta] struct {
	group *singleflight.Group
}

// New constructs a Processor sharing the given singleflight.Group. Give
// each distinct T, M pair its own *singleflight.Group: the group's keys are
// fingerprints alone, with no type tag, so two Processor[T1,M] and
// Processor[T2,M] sharing one group could collide a T1 fingerprint against
// a T2 one and panic on the resulting type assertion. A facade wiring
// several Processor instances therefore constructs one group per instance,
// not one shared across all of them.
func New[T any, M entry.Meta](group *singleflight.Group) *Processor[T, M] {
	return &Processor[T, M]{group: group}
}

// Process implements the §4.C decision table: Missing -> Uncached;
// Cached/MarkedAbsent not expired and not forced -> UpToDate; otherwise
// (expired, or force_refresh set) -> Outdated. A lookup error surfaces
// immediately as a CacheError and never produces a spurious Uncached.
func (p *Processor[T, M]) Process(
	ctx context.Context,
	fingerprint uint64,
	forceRefresh bool,
	lookup LookupFunc[T, M],
	refresh RefreshFunc[T, M],
) (Outcome[T, M], error) {
	current, err := lookup(ctx)
	if err != nil {
		return Outcome[T, M]{}, gdcferr.Cache("cache lookup failed").WithError(err)
	}

	if current.IsMissing() {
		return Uncached(p.spawnRefresh(ctx, fingerprint, refresh)), nil
	}

	if !current.IsExpired(time.Now()) && !forceRefresh {
		return UpToDate(current), nil
	}

	return Outdated(current, p.spawnRefresh(ctx, fingerprint, refresh)), nil
}

// spawnRefresh dedupes concurrent RefreshTasks for the same fingerprint
// through a singleflight.Group, the same primitive the LaunchDarkly
// FeatureStoreWrapper uses to collapse concurrent GetInternal calls onto
// one in-flight fetch.
func (p *Processor[T, M]) spawnRefresh(ctx context.Context, fingerprint uint64, refresh RefreshFunc[T, M]) Refresh[T, M] {
	key := strconv.FormatUint(fingerprint, 10)

	logger := log.FromContext(ctx).WithValues("fingerprint", fingerprint)

	ch := p.group.DoChan(key, func() (any, error) {
		logger.V(1).Info("refresh task starting")

		return refresh(ctx)
	})

	return task.Run(ctx, func(taskCtx context.Context) (entry.Entry[T, M], error) {
		select {
		case result := <-ch:
			if result.Err != nil {
				var zero entry.Entry[T, M]

				return zero, result.Err
			}

			return result.Val.(entry.Entry[T, M]), nil
		case <-taskCtx.Done():
			var zero entry.Entry[T, M]

			return zero, taskCtx.Err()
		}
	})
}
