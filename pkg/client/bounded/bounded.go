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

// Package bounded decorates an ApiClient with a ceiling on concurrent
// in-flight requests. pkg/task deliberately never imposes one itself (see
// its package doc): a RequestProcessor spawns one refresh Task per
// fingerprint with no regard for how many others are already running, so
// anything bounding concurrency has to sit at the ApiClient boundary, which
// client.ApiClient's own doc comment already calls out as the collaborator's
// concern, not the core's.
package bounded

import (
	"context"

	"golang.org/x/sync/semaphore"

	"github.com/gdcf/core/pkg/client"
	"github.com/gdcf/core/pkg/model"
	"github.com/gdcf/core/pkg/request"
	"github.com/gdcf/core/pkg/task"
)

// Client wraps an ApiClient so that no more than limit requests are in
// flight against it at once; callers beyond the limit queue until a slot
// frees up.
type Client struct {
	inner client.ApiClient
	sem   *semaphore.Weighted
}

// New wraps inner with a concurrency ceiling of limit. A non-positive limit
// is treated as 1: there is always at least one slot.
func New(inner client.ApiClient, limit int) *Client {
	if limit < 1 {
		limit = 1
	}

	return &Client{inner: inner, sem: semaphore.NewWeighted(int64(limit))}
}

var _ client.ApiClient = (*Client)(nil)

func (c *Client) MakeLevel(ctx context.Context, req request.LevelRequest) *task.Task[client.Response[client.RawLevel]] {
	return task.Run(ctx, func(taskCtx context.Context) (client.Response[client.RawLevel], error) {
		if err := c.sem.Acquire(taskCtx, 1); err != nil {
			var zero client.Response[client.RawLevel]
			return zero, err
		}
		defer c.sem.Release(1)

		return c.inner.MakeLevel(taskCtx, req).Wait(taskCtx)
	})
}

func (c *Client) MakeLevels(ctx context.Context, req request.LevelsRequest) *task.Task[client.Response[[]client.RawPartialLevel]] {
	return task.Run(ctx, func(taskCtx context.Context) (client.Response[[]client.RawPartialLevel], error) {
		if err := c.sem.Acquire(taskCtx, 1); err != nil {
			var zero client.Response[[]client.RawPartialLevel]
			return zero, err
		}
		defer c.sem.Release(1)

		return c.inner.MakeLevels(taskCtx, req).Wait(taskCtx)
	})
}

func (c *Client) MakeUser(ctx context.Context, req request.UserRequest) *task.Task[client.Response[model.User]] {
	return task.Run(ctx, func(taskCtx context.Context) (client.Response[model.User], error) {
		if err := c.sem.Acquire(taskCtx, 1); err != nil {
			var zero client.Response[model.User]
			return zero, err
		}
		defer c.sem.Release(1)

		return c.inner.MakeUser(taskCtx, req).Wait(taskCtx)
	})
}
