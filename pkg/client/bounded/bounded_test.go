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

package bounded_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gdcf/core/pkg/client"
	"github.com/gdcf/core/pkg/client/bounded"
	"github.com/gdcf/core/pkg/model"
	"github.com/gdcf/core/pkg/request"
	"github.com/gdcf/core/pkg/task"
)

// blockingClient counts how many MakeLevel calls are concurrently inside
// the handler at once, tracking the high-water mark.
type blockingClient struct {
	inFlight int32
	peak     int32
	release  chan struct{}
}

func (f *blockingClient) MakeLevel(ctx context.Context, req request.LevelRequest) *task.Task[client.Response[client.RawLevel]] {
	return task.Run(ctx, func(taskCtx context.Context) (client.Response[client.RawLevel], error) {
		n := atomic.AddInt32(&f.inFlight, 1)
		for {
			peak := atomic.LoadInt32(&f.peak)
			if n <= peak || atomic.CompareAndSwapInt32(&f.peak, peak, n) {
				break
			}
		}

		<-f.release

		atomic.AddInt32(&f.inFlight, -1)

		return client.Response[client.RawLevel]{}, nil
	})
}

func (f *blockingClient) MakeLevels(ctx context.Context, req request.LevelsRequest) *task.Task[client.Response[[]client.RawPartialLevel]] {
	return task.Completed(client.Response[[]client.RawPartialLevel]{}, nil)
}

func (f *blockingClient) MakeUser(ctx context.Context, req request.UserRequest) *task.Task[client.Response[model.User]] {
	return task.Completed(client.Response[model.User]{}, nil)
}

var _ client.ApiClient = (*blockingClient)(nil)

func TestBoundedClientCapsConcurrentRequests(t *testing.T) {
	t.Parallel()

	inner := &blockingClient{release: make(chan struct{})}
	c := bounded.New(inner, 2)

	const callers = 5

	tasks := make([]*task.Task[client.Response[client.RawLevel]], callers)
	for i := range tasks {
		tasks[i] = c.MakeLevel(context.Background(), request.LevelRequest{LevelID: uint64(i)})
	}

	require.Eventually(t, func() bool { return atomic.LoadInt32(&inner.inFlight) == 2 }, time.Second, time.Millisecond)

	close(inner.release)

	for _, tk := range tasks {
		_, err := tk.Wait(context.Background())
		require.NoError(t, err)
	}

	require.Equal(t, int32(2), atomic.LoadInt32(&inner.peak))
}

func TestBoundedClientNonPositiveLimitStillAllowsOneRequest(t *testing.T) {
	t.Parallel()

	inner := &blockingClient{release: make(chan struct{})}
	close(inner.release)

	c := bounded.New(inner, 0)

	_, err := c.MakeLevel(context.Background(), request.LevelRequest{LevelID: 1}).Wait(context.Background())
	require.NoError(t, err)
}
