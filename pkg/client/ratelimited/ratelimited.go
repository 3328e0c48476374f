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

// Package ratelimited decorates an ApiClient with a global leaky-bucket
// requests-per-second ceiling: "rate limiting, if any, is its own
// responsibility" is exactly ApiClient's documented contract, so this is a
// decorator over the collaborator interface rather than anything pkg/task
// or pkg/processor know about.
package ratelimited

import (
	"context"

	"github.com/gdcf/core/pkg/client"
	"github.com/gdcf/core/pkg/model"
	"github.com/gdcf/core/pkg/request"
	"github.com/gdcf/core/pkg/task"
)

// Client wraps an ApiClient, rejecting requests once the configured
// requests-per-second ceiling is exceeded rather than queuing them: the
// caller (typically a RefreshTask) sees the rejection as an ordinary
// ApiClient error.
type Client struct {
	inner   client.ApiClient
	limiter RateLimiter
}

// New wraps inner with a global ceiling of rps requests per second.
func New(inner client.ApiClient, rps int64) *Client {
	return &Client{inner: inner, limiter: NewLeakyBucket(rps)}
}

var _ client.ApiClient = (*Client)(nil)

func (c *Client) MakeLevel(ctx context.Context, req request.LevelRequest) *task.Task[client.Response[client.RawLevel]] {
	if err := c.limiter.Request(); err != nil {
		return task.Completed(client.Response[client.RawLevel]{}, err)
	}

	return c.inner.MakeLevel(ctx, req)
}

func (c *Client) MakeLevels(ctx context.Context, req request.LevelsRequest) *task.Task[client.Response[[]client.RawPartialLevel]] {
	if err := c.limiter.Request(); err != nil {
		return task.Completed(client.Response[[]client.RawPartialLevel]{}, err)
	}

	return c.inner.MakeLevels(ctx, req)
}

func (c *Client) MakeUser(ctx context.Context, req request.UserRequest) *task.Task[client.Response[model.User]] {
	if err := c.limiter.Request(); err != nil {
		return task.Completed(client.Response[model.User]{}, err)
	}

	return c.inner.MakeUser(ctx, req)
}
