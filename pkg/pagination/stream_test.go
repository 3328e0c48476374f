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

package pagination_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gdcf/core/pkg/entry"
	"github.com/gdcf/core/pkg/pagination"
	"github.com/gdcf/core/pkg/request"
)

func isEmptyIntSlice(s []int) bool { return len(s) == 0 }

func TestStreamTerminatesOnEmptyPageWithoutEmittingIt(t *testing.T) {
	t.Parallel()

	pages := map[uint32][]int{0: {1, 2, 3}, 1: {}}

	fetch := func(_ context.Context, req request.LevelsRequest) (entry.Entry[[]int, entry.BasicMeta], error) {
		return entry.Cached(pages[req.Page], entry.NewBasicMeta(time.Now(), time.Hour)), nil
	}

	s := pagination.New(request.LevelsRequest{}, fetch, isEmptyIntSlice)

	page, ok, err := s.Next(context.Background())
	require.NoError(t, err)
	require.True(t, ok)

	v, _ := page.Value()
	require.Equal(t, []int{1, 2, 3}, v)

	_, ok, err = s.Next(context.Background())
	require.NoError(t, err)
	require.False(t, ok)
	require.True(t, s.Done())

	// A terminated stream keeps reporting exhaustion rather than refetching.
	_, ok, err = s.Next(context.Background())
	require.NoError(t, err)
	require.False(t, ok)
}

func TestStreamNeverTerminatesOnItsOwnWhenEveryPageIsNonEmpty(t *testing.T) {
	t.Parallel()

	fetch := func(_ context.Context, req request.LevelsRequest) (entry.Entry[[]int, entry.BasicMeta], error) {
		return entry.Cached([]int{int(req.Page)}, entry.NewBasicMeta(time.Now(), time.Hour)), nil
	}

	s := pagination.New(request.LevelsRequest{}, fetch, isEmptyIntSlice)

	const take = 50

	count := 0

	for i := 0; i < take; i++ {
		_, ok, err := s.Next(context.Background())
		require.NoError(t, err)
		require.True(t, ok)

		count++
	}

	require.Equal(t, take, count)
	require.False(t, s.Done())
}

func TestStreamPropagatesFetchErrorAndTerminates(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")

	fetch := func(context.Context, request.LevelsRequest) (entry.Entry[[]int, entry.BasicMeta], error) {
		return entry.Entry[[]int, entry.BasicMeta]{}, boom
	}

	s := pagination.New(request.LevelsRequest{}, fetch, isEmptyIntSlice)

	_, ok, err := s.Next(context.Background())
	require.ErrorIs(t, err, boom)
	require.False(t, ok)
	require.True(t, s.Done())
}

func TestStreamTerminatesOnAbsentEntryWithoutEmittingIt(t *testing.T) {
	t.Parallel()

	fetch := func(context.Context, request.LevelsRequest) (entry.Entry[[]int, entry.BasicMeta], error) {
		return entry.MarkedAbsent[[]int](entry.NewBasicMeta(time.Now(), time.Hour)), nil
	}

	s := pagination.New(request.LevelsRequest{}, fetch, isEmptyIntSlice)

	_, ok, err := s.Next(context.Background())
	require.NoError(t, err)
	require.False(t, ok)
	require.True(t, s.Done())
}
