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

package ratelimited_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gdcf/core/pkg/client"
	"github.com/gdcf/core/pkg/client/ratelimited"
	"github.com/gdcf/core/pkg/model"
	"github.com/gdcf/core/pkg/request"
	"github.com/gdcf/core/pkg/task"
)

type countingClient struct {
	calls int
}

func (f *countingClient) MakeLevel(ctx context.Context, req request.LevelRequest) *task.Task[client.Response[client.RawLevel]] {
	f.calls++
	return task.Completed(client.Response[client.RawLevel]{}, nil)
}

func (f *countingClient) MakeLevels(ctx context.Context, req request.LevelsRequest) *task.Task[client.Response[[]client.RawPartialLevel]] {
	f.calls++
	return task.Completed(client.Response[[]client.RawPartialLevel]{}, nil)
}

func (f *countingClient) MakeUser(ctx context.Context, req request.UserRequest) *task.Task[client.Response[model.User]] {
	f.calls++
	return task.Completed(client.Response[model.User]{}, nil)
}

var _ client.ApiClient = (*countingClient)(nil)

func TestRateLimitedClientRejectsWithoutCallingInnerOnceExhausted(t *testing.T) {
	t.Parallel()

	inner := &countingClient{}
	c := ratelimited.New(inner, 2)

	for range 2 {
		_, err := c.MakeLevel(context.Background(), request.LevelRequest{}).Wait(context.Background())
		require.NoError(t, err)
	}

	_, err := c.MakeLevel(context.Background(), request.LevelRequest{}).Wait(context.Background())
	require.Error(t, err)

	require.Equal(t, 2, inner.calls)
}
