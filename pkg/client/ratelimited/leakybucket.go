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

package ratelimited

import (
	"sync"
	"time"

	"github.com/gdcf/core/pkg/gdcferr"
)

// RateLimiter decides whether one more request may proceed right now.
type RateLimiter interface {
	Request() error
}

// leakyBucket implements the leaky bucket as a meter algorithm for rate
// limiting. The bucket starts empty and fills as requests come in. The
// bucket empties via a leak at a fixed period derived from the requests per
// second. If the bucket ever becomes full, requests are rejected. This
// algorithm allows for bursty workloads, which is closer to how GD clients
// actually behave than a strict token-per-interval scheme would be.
type leakyBucket struct {
	// rps is the requests per second maximum.
	rps int64
	// durationPerLeak is how long between decrements of the bucket counter.
	durationPerLeak time.Duration
	// lock is for concurrency control.
	lock sync.Mutex
	// counter is the number of requests seen in the last second.
	counter int64
	// lastLeak remembers the last request time we leaked from the bucket.
	lastLeak time.Time
}

// NewLeakyBucket creates a new leaky bucket implementation.
func NewLeakyBucket(rps int64) RateLimiter {
	return &leakyBucket{
		rps:             rps,
		durationPerLeak: time.Second / time.Duration(rps),
		lastLeak:        time.Now(),
	}
}

// Request either allows or denies the request.
func (b *leakyBucket) Request() error {
	b.lock.Lock()
	defer b.lock.Unlock()

	delta := time.Since(b.lastLeak)

	requests := int64(delta) / int64(b.durationPerLeak)
	if requests > 0 {
		b.lastLeak = b.lastLeak.Add(delta.Truncate(b.durationPerLeak))

		b.counter -= requests
		if b.counter < 0 {
			b.counter = 0
		}
	}

	if b.counter == b.rps {
		return gdcferr.API("rate limit exceeded").WithValues("rps", b.rps)
	}

	b.counter++

	return nil
}
