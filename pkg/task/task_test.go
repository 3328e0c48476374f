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

package task_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gdcf/core/pkg/task"
)

func TestRunResolves(t *testing.T) {
	t.Parallel()

	tk := task.Run(context.Background(), func(ctx context.Context) (int, error) {
		return 42, nil
	})

	v, err := tk.Wait(context.Background())
	require.NoError(t, err)
	require.Equal(t, 42, v)
}

func TestCompleted(t *testing.T) {
	t.Parallel()

	tk := task.Completed(7, nil)

	v, err := tk.Wait(context.Background())
	require.NoError(t, err)
	require.Equal(t, 7, v)
}

func TestWaitRespectsCallerContext(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	tk := task.Run(context.Background(), func(ctx context.Context) (int, error) {
		<-release
		return 1, nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := tk.Wait(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	close(release)
}

func TestMultipleWaitersShareResult(t *testing.T) {
	t.Parallel()

	tk := task.Run(context.Background(), func(ctx context.Context) (int, error) {
		time.Sleep(5 * time.Millisecond)
		return 99, nil
	})

	var wg sync.WaitGroup

	results := make([]int, 10)

	for i := range results {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			v, err := tk.Wait(context.Background())
			require.NoError(t, err)

			results[i] = v
		}(i)
	}

	wg.Wait()

	for _, r := range results {
		require.Equal(t, 99, r)
	}
}

func TestCancelPropagatesToFn(t *testing.T) {
	t.Parallel()

	tk := task.Run(context.Background(), func(ctx context.Context) (int, error) {
		<-ctx.Done()
		return 0, ctx.Err()
	})

	tk.Cancel()

	_, err := tk.Wait(context.Background())
	require.ErrorIs(t, err, context.Canceled)
}
