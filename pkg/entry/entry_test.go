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

package entry_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gdcf/core/pkg/entry"
)

func TestMissingIsExpired(t *testing.T) {
	t.Parallel()

	e := entry.Missing[int, entry.BasicMeta]()
	require.True(t, e.IsExpired(time.Now()))
	require.False(t, e.IsAbsent())

	_, ok := e.Value()
	require.False(t, ok)
}

func TestCachedFreshness(t *testing.T) {
	t.Parallel()

	now := time.Now()
	meta := entry.NewBasicMeta(now, 30*time.Minute)
	e := entry.Cached(7, meta)

	require.False(t, e.IsExpired(now))
	require.True(t, e.IsExpired(now.Add(31*time.Minute)))

	v, ok := e.Value()
	require.True(t, ok)
	require.Equal(t, 7, v)
}

func TestCachedValueIsDefensiveCopy(t *testing.T) {
	t.Parallel()

	type box struct{ N int }

	meta := entry.NewBasicMeta(time.Now(), time.Hour)
	e := entry.Cached(&box{N: 1}, meta)

	v, ok := e.Value()
	require.True(t, ok)

	v.N = 99

	v2, _ := e.Value()
	require.Equal(t, 1, v2.N)
}

func TestMarkedAbsentIsAbsentAndExpires(t *testing.T) {
	t.Parallel()

	now := time.Now()
	meta := entry.NewBasicMeta(now, time.Hour)
	e := entry.MarkedAbsent[string](meta)

	require.True(t, e.IsAbsent())
	require.True(t, e.IsMarkedAbsent())
	require.False(t, e.IsExpired(now))
	require.True(t, e.IsExpired(now.Add(2*time.Hour)))
}

func TestDeducedAbsentNeverExpires(t *testing.T) {
	t.Parallel()

	e := entry.DeducedAbsent[string, entry.BasicMeta]()

	require.True(t, e.IsAbsent())
	require.False(t, e.IsMarkedAbsent())
	require.False(t, e.IsExpired(time.Now().Add(100 * time.Hour)))
}
