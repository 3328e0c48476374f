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

package processor_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/stretchr/testify/require"

	"github.com/gdcf/core/pkg/entry"
	"github.com/gdcf/core/pkg/processor"
)

type meta = entry.BasicMeta

func TestProcessMissingIsUncached(t *testing.T) {
	t.Parallel()

	p := processor.New[int, meta](new(singleflight.Group))

	lookup := func(ctx context.Context) (entry.Entry[int, meta], error) {
		return entry.Missing[int, meta](), nil
	}
	refresh := func(ctx context.Context) (entry.Entry[int, meta], error) {
		return entry.Cached(1, entry.NewBasicMeta(time.Now(), time.Hour)), nil
	}

	outcome, err := p.Process(context.Background(), 1, false, lookup, refresh)
	require.NoError(t, err)
	require.True(t, outcome.IsUncached())

	refreshTask, ok := outcome.Refresh()
	require.True(t, ok)

	resolved, err := refreshTask.Wait(context.Background())
	require.NoError(t, err)

	v, ok := resolved.Value()
	require.True(t, ok)
	require.Equal(t, 1, v)
}

func TestProcessFreshIsUpToDate(t *testing.T) {
	t.Parallel()

	p := processor.New[int, meta](new(singleflight.Group))

	fresh := entry.Cached(7, entry.NewBasicMeta(time.Now(), time.Hour))

	lookup := func(ctx context.Context) (entry.Entry[int, meta], error) {
		return fresh, nil
	}
	refresh := func(ctx context.Context) (entry.Entry[int, meta], error) {
		t.Fatal("refresh must not be called for an up-to-date entry")
		return entry.Entry[int, meta]{}, nil
	}

	outcome, err := p.Process(context.Background(), 1, false, lookup, refresh)
	require.NoError(t, err)
	require.True(t, outcome.IsUpToDate())
}

func TestProcessForceRefreshIsOutdatedEvenWhenFresh(t *testing.T) {
	t.Parallel()

	p := processor.New[int, meta](new(singleflight.Group))

	fresh := entry.Cached(7, entry.NewBasicMeta(time.Now(), time.Hour))

	lookup := func(ctx context.Context) (entry.Entry[int, meta], error) {
		return fresh, nil
	}
	refresh := func(ctx context.Context) (entry.Entry[int, meta], error) {
		return entry.Cached(8, entry.NewBasicMeta(time.Now(), time.Hour)), nil
	}

	outcome, err := p.Process(context.Background(), 1, true, lookup, refresh)
	require.NoError(t, err)
	require.True(t, outcome.IsOutdated())

	stale, ok := outcome.Entry()
	require.True(t, ok)

	v, _ := stale.Value()
	require.Equal(t, 7, v)
}

func TestAtMostOneRefreshPerFingerprint(t *testing.T) {
	t.Parallel()

	group := new(singleflight.Group)
	p := processor.New[int, meta](group)

	var calls int64

	lookup := func(ctx context.Context) (entry.Entry[int, meta], error) {
		return entry.Missing[int, meta](), nil
	}
	refresh := func(ctx context.Context) (entry.Entry[int, meta], error) {
		atomic.AddInt64(&calls, 1)
		time.Sleep(5 * time.Millisecond)

		return entry.Cached(1, entry.NewBasicMeta(time.Now(), time.Hour)), nil
	}

	const concurrency = 20

	var wg sync.WaitGroup

	for i := 0; i < concurrency; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			outcome, err := p.Process(context.Background(), 42, false, lookup, refresh)
			require.NoError(t, err)
			require.True(t, outcome.IsUncached())

			refreshTask, ok := outcome.Refresh()
			require.True(t, ok)

			_, err = refreshTask.Wait(context.Background())
			require.NoError(t, err)
		}()
	}

	wg.Wait()

	require.Equal(t, int64(1), atomic.LoadInt64(&calls))
}
