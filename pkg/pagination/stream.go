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

// Package pagination implements the PaginationStream: a lazy, pull-based
// sequence of listing pages that stops on the first empty page or the
// first error, never eagerly fetching ahead of what the caller consumes.
package pagination

import (
	"context"

	"github.com/gdcf/core/pkg/entry"
	"github.com/gdcf/core/pkg/request"
)

// PageFunc fetches and, where the facade wires an upgrade chain in front of
// it, upgrades one page for one LevelsRequest. It is expected to behave
// like a facade operation: drive a Processor, not call the ApiClient
// directly.
type PageFunc[T any] func(ctx context.Context, req request.LevelsRequest) (entry.Entry[T, entry.BasicMeta], error)

// Stream is a single-consumer, pull-based sequence of pages. It holds no
// goroutine of its own: every page is fetched only when Next is called,
// exactly the "current, next, processor" shape described for the core's
// page iteration.
type Stream[T any] struct {
	fetch   PageFunc[T]
	isEmpty func(T) bool
	req     request.LevelsRequest
	done    bool
}

// New constructs a Stream starting at req. isEmpty decides whether a
// fetched page counts as "empty" and therefore ends the stream; for
// []PartialLevel pages this is simply len(page) == 0.
func New[T any](req request.LevelsRequest, fetch PageFunc[T], isEmpty func(T) bool) *Stream[T] {
	return &Stream[T]{fetch: fetch, isEmpty: isEmpty, req: req}
}

// Next fetches and returns the next page. ok is false once the stream has
// terminated: either the most recently fetched page was empty, its entry
// wasn't Cached (absence ends the stream rather than being
// treated as a page), or a fetch returned an error. A terminated Stream
// never emits the page that caused it to terminate -- S6 sees exactly one
// item from a two-page sequence whose second page is empty.
func (s *Stream[T]) Next(ctx context.Context) (entry.Entry[T, entry.BasicMeta], bool, error) {
	var zero entry.Entry[T, entry.BasicMeta]

	if s.done {
		return zero, false, nil
	}

	result, err := s.fetch(ctx, s.req)
	if err != nil {
		s.done = true

		return zero, false, err
	}

	value, ok := result.Value()
	if !ok || s.isEmpty(value) {
		s.done = true

		return zero, false, nil
	}

	s.req = s.req.Next()

	return result, true, nil
}

// Done reports whether the stream has terminated, without fetching.
func (s *Stream[T]) Done() bool {
	return s.done
}
