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

package upgrade_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/singleflight"

	"github.com/gdcf/core/pkg/entry"
	"github.com/gdcf/core/pkg/gdcferr"
	"github.com/gdcf/core/pkg/processor"
	"github.com/gdcf/core/pkg/request"
	"github.com/gdcf/core/pkg/upgrade"
)

type stubMeta = entry.BasicMeta

// intEdge is a minimal edge for exercising Resolve's branching without the
// model package's generic plumbing: From and Into are both int, V=R=int.
func intEdge(hasRequest bool, def func() (int, bool)) upgrade.Edge[int, int, int, int, stubMeta] {
	return upgrade.Edge[int, int, int, int, stubMeta]{
		Request: func(from int) (request.Request, bool) {
			if !hasRequest {
				return nil, false
			}

			return request.LevelRequest{LevelID: uint64(from)}, true
		},
		Default: func(int) (int, bool) {
			if def == nil {
				return 0, false
			}

			return def()
		},
		Lookup: func(_ context.Context, _ int, result int) (int, error) {
			return result, nil
		},
		Apply: func(_ int, value int) int {
			return value
		},
	}
}

func TestResolveNoRequestWithDefaultIsCached(t *testing.T) {
	t.Parallel()

	edge := intEdge(false, func() (int, bool) { return 42, true })
	proc := processor.New[int, stubMeta](new(singleflight.Group))

	mode, err := upgrade.Resolve(context.Background(), edge, 1, false, proc, nil, nil)
	require.NoError(t, err)
	require.True(t, mode.IsCached())

	into, ok := mode.Into()
	require.True(t, ok)
	require.Equal(t, 42, into)
}

func TestResolveNoRequestNoDefaultIsConsistencyViolation(t *testing.T) {
	t.Parallel()

	edge := intEdge(false, nil)
	proc := processor.New[int, stubMeta](new(singleflight.Group))

	_, err := upgrade.Resolve(context.Background(), edge, 1, false, proc, nil, nil)
	require.Error(t, err)
	require.True(t, gdcferr.IsConsistencyViolation(err))
}

func TestResolveUncachedIsMissingUntilRefreshResolves(t *testing.T) {
	t.Parallel()

	edge := intEdge(true, func() (int, bool) { return 0, true })
	proc := processor.New[int, stubMeta](new(singleflight.Group))

	lookup := func(context.Context) (entry.Entry[int, stubMeta], error) {
		return entry.Missing[int, stubMeta](), nil
	}
	refresh := func(context.Context) (entry.Entry[int, stubMeta], error) {
		return entry.Cached(99, entry.NewBasicMeta(time.Now(), time.Hour)), nil
	}

	mode, err := upgrade.Resolve(context.Background(), edge, 1, false, proc, lookup, refresh)
	require.NoError(t, err)
	require.True(t, mode.IsMissing())

	refreshTask, ok := mode.Refresh()
	require.True(t, ok)

	into, err := refreshTask.Wait(context.Background())
	require.NoError(t, err)
	require.Equal(t, 99, into)
}

func TestResolveCachedPresentSplicesValue(t *testing.T) {
	t.Parallel()

	edge := intEdge(true, func() (int, bool) { return 0, true })
	proc := processor.New[int, stubMeta](new(singleflight.Group))

	fresh := entry.Cached(7, entry.NewBasicMeta(time.Now(), time.Hour))

	lookup := func(context.Context) (entry.Entry[int, stubMeta], error) {
		return fresh, nil
	}
	refresh := func(context.Context) (entry.Entry[int, stubMeta], error) {
		t.Fatal("refresh must not run when the secondary is fresh")

		return entry.Entry[int, stubMeta]{}, nil
	}

	mode, err := upgrade.Resolve(context.Background(), edge, 1, false, proc, lookup, refresh)
	require.NoError(t, err)
	require.True(t, mode.IsCached())

	into, ok := mode.Into()
	require.True(t, ok)
	require.Equal(t, 7, into)
}

func TestResolveAbsentWithDefaultIsCached(t *testing.T) {
	t.Parallel()

	edge := intEdge(true, func() (int, bool) { return -1, true })
	proc := processor.New[int, stubMeta](new(singleflight.Group))

	absent := entry.MarkedAbsent[int](entry.NewBasicMeta(time.Now(), time.Hour))

	lookup := func(context.Context) (entry.Entry[int, stubMeta], error) {
		return absent, nil
	}
	refresh := func(context.Context) (entry.Entry[int, stubMeta], error) {
		t.Fatal("refresh must not run for an up-to-date absent entry with a default")

		return entry.Entry[int, stubMeta]{}, nil
	}

	mode, err := upgrade.Resolve(context.Background(), edge, 1, false, proc, lookup, refresh)
	require.NoError(t, err)
	require.True(t, mode.IsCached())

	into, ok := mode.Into()
	require.True(t, ok)
	require.Equal(t, -1, into)
}

func TestResolveAbsentWithoutDefaultForcesOneFetch(t *testing.T) {
	t.Parallel()

	edge := intEdge(true, nil)
	proc := processor.New[int, stubMeta](new(singleflight.Group))

	absent := entry.MarkedAbsent[int](entry.NewBasicMeta(time.Now(), time.Hour))

	lookup := func(context.Context) (entry.Entry[int, stubMeta], error) {
		return absent, nil
	}
	refresh := func(context.Context) (entry.Entry[int, stubMeta], error) {
		return entry.Cached(123, entry.NewBasicMeta(time.Now(), time.Hour)), nil
	}

	mode, err := upgrade.Resolve(context.Background(), edge, 1, false, proc, lookup, refresh)
	require.NoError(t, err)
	require.True(t, mode.IsMissing())

	refreshTask, ok := mode.Refresh()
	require.True(t, ok)

	into, err := refreshTask.Wait(context.Background())
	require.NoError(t, err)
	require.Equal(t, 123, into)
}

func TestResolveOutdatedPresentServesStaleAndReconciles(t *testing.T) {
	t.Parallel()

	edge := intEdge(true, func() (int, bool) { return 0, true })
	proc := processor.New[int, stubMeta](new(singleflight.Group))

	lookup := func(context.Context) (entry.Entry[int, stubMeta], error) {
		return entry.Cached(5, entry.NewBasicMeta(time.Now().Add(-time.Hour), time.Minute)), nil
	}
	refresh := func(context.Context) (entry.Entry[int, stubMeta], error) {
		return entry.Cached(6, entry.NewBasicMeta(time.Now(), time.Hour)), nil
	}

	mode, err := upgrade.Resolve(context.Background(), edge, 1, false, proc, lookup, refresh)
	require.NoError(t, err)
	require.True(t, mode.IsOutdated())

	into, ok := mode.Into()
	require.True(t, ok)
	require.Equal(t, 5, into)

	refreshTask, ok := mode.Refresh()
	require.True(t, ok)

	reconciled, err := refreshTask.Wait(context.Background())
	require.NoError(t, err)
	require.Equal(t, 6, reconciled)
}
