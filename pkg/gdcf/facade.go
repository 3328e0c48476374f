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

// Package gdcf wires the collaborators into the public surface: level,
// levels, user and paginate_levels in their as-fetched (id-only) richness,
// plus UpgradedLevel, which resolves a single level to the richest Song/User
// shape the upgrade chain supports. Levels listings and pagination have no
// upgraded variant; their pages are returned as-fetched only.
package gdcf

import (
	"context"

	"golang.org/x/sync/singleflight"

	"github.com/gdcf/core/pkg/client"
	"github.com/gdcf/core/pkg/entry"
	"github.com/gdcf/core/pkg/gdcferr"
	"github.com/gdcf/core/pkg/model"
	"github.com/gdcf/core/pkg/pagination"
	"github.com/gdcf/core/pkg/processor"
	"github.com/gdcf/core/pkg/refresh"
	"github.com/gdcf/core/pkg/request"
	"github.com/gdcf/core/pkg/store"
	"github.com/gdcf/core/pkg/task"
	"github.com/gdcf/core/pkg/upgrade"
)

// Facade is the top-level entry point: one instance per ApiClient/CacheStore
// pairing. Each resource kind gets its own Processor and, with it, its own
// singleflight.Group (see pkg/processor's New doc) -- at-most-one-refresh
// dedup is scoped per kind, never shared across kinds.
type Facade struct {
	apiClient   client.ApiClient
	cacheStore  store.CacheStore
	levelProc   *processor.Processor[client.RawLevel, entry.BasicMeta]
	levelsProc  *processor.Processor[[]client.RawPartialLevel, entry.BasicMeta]
	userProc    *processor.Processor[model.User, entry.BasicMeta]
	creatorProc *processor.Processor[model.Creator, entry.BasicMeta]
	songProc    *processor.Processor[model.NewgroundsSong, entry.BasicMeta]
}

// New wires a Facade over the given collaborators.
func New(apiClient client.ApiClient, cacheStore store.CacheStore) *Facade {
	return &Facade{
		apiClient:   apiClient,
		cacheStore:  cacheStore,
		levelProc:   processor.New[client.RawLevel, entry.BasicMeta](new(singleflight.Group)),
		levelsProc:  processor.New[[]client.RawPartialLevel, entry.BasicMeta](new(singleflight.Group)),
		userProc:    processor.New[model.User, entry.BasicMeta](new(singleflight.Group)),
		creatorProc: processor.New[model.Creator, entry.BasicMeta](new(singleflight.Group)),
		songProc:    processor.New[model.NewgroundsSong, entry.BasicMeta](new(singleflight.Group)),
	}
}

// Level fetches a level in its as-fetched shape: song and creator are bare
// ids, not yet resolved.
func (f *Facade) Level(ctx context.Context, req request.LevelRequest) (processor.Outcome[client.RawLevel, entry.BasicMeta], error) {
	fingerprint := request.Fingerprint(req)

	return f.levelProc.Process(
		ctx,
		fingerprint,
		req.ForceRefresh,
		func(ctx context.Context) (entry.Entry[client.RawLevel, entry.BasicMeta], error) {
			return f.cacheStore.LookupLevel(ctx, fingerprint)
		},
		func(ctx context.Context) (entry.Entry[client.RawLevel, entry.BasicMeta], error) {
			return refresh.Level(ctx, f.apiClient, f.cacheStore, req)
		},
	)
}

// User fetches a user by account id.
func (f *Facade) User(ctx context.Context, req request.UserRequest) (processor.Outcome[model.User, entry.BasicMeta], error) {
	fingerprint := request.Fingerprint(req)

	return f.userProc.Process(
		ctx,
		fingerprint,
		req.ForceRefresh,
		func(ctx context.Context) (entry.Entry[model.User, entry.BasicMeta], error) { return f.cacheStore.LookupUser(ctx, fingerprint) },
		func(ctx context.Context) (entry.Entry[model.User, entry.BasicMeta], error) {
			return refresh.User(ctx, f.apiClient, f.cacheStore, req)
		},
	)
}

// Levels fetches one page of a levels listing in its as-fetched shape.
func (f *Facade) Levels(ctx context.Context, req request.LevelsRequest) (processor.Outcome[[]client.RawPartialLevel, entry.BasicMeta], error) {
	fingerprint := request.Fingerprint(req)

	return f.levelsProc.Process(
		ctx,
		fingerprint,
		req.ForceRefresh,
		func(ctx context.Context) (entry.Entry[[]client.RawPartialLevel, entry.BasicMeta], error) {
			return f.cacheStore.LookupLevels(ctx, fingerprint)
		},
		func(ctx context.Context) (entry.Entry[[]client.RawPartialLevel, entry.BasicMeta], error) {
			return refresh.Levels(ctx, f.apiClient, f.cacheStore, req)
		},
	)
}

// PaginateLevels returns a lazy sequence of listing pages starting at req,
// in their as-fetched shape. The facade offers no per-item upgrading of the
// emitted pages.
func (f *Facade) PaginateLevels(req request.LevelsRequest) *pagination.Stream[[]client.RawPartialLevel] {
	return pagination.New(
		req,
		func(ctx context.Context, pageReq request.LevelsRequest) (entry.Entry[[]client.RawPartialLevel, entry.BasicMeta], error) {
			outcome, err := f.Levels(ctx, pageReq)
			if err != nil {
				return entry.Entry[[]client.RawPartialLevel, entry.BasicMeta]{}, err
			}

			if e, ok := outcome.Entry(); ok {
				return e, nil
			}

			refreshTask, _ := outcome.Refresh()

			return refreshTask.Wait(ctx)
		},
		func(page []client.RawPartialLevel) bool { return len(page) == 0 },
	)
}

// UpgradedLevel fetches a level and resolves it all the way to the richest
// shape the upgrade chain supports: custom song to *NewgroundsSong, creator
// to *Creator, and (when the creator has a linked account) on to *User.
// Every stage is awaited in turn inside the returned Task -- from the
// caller's perspective this is one suspension point, even though internally
// it may cross several.
func (f *Facade) UpgradedLevel(ctx context.Context, req request.LevelRequest) *task.Task[model.Level[*model.NewgroundsSong, *model.User]] {
	return task.Run(ctx, func(taskCtx context.Context) (model.Level[*model.NewgroundsSong, *model.User], error) {
		var zero model.Level[*model.NewgroundsSong, *model.User]

		raw, err := f.awaitLevel(taskCtx, req)
		if err != nil {
			return zero, err
		}

		withSong, err := resolveAndAwait(taskCtx, upgrade.LevelSongEdge[model.RawCreator](), raw, req.ForceRefresh, f.songProc, f.songLookup, f.songRefresh)
		if err != nil {
			return zero, err
		}

		withCreator, err := resolveAndAwait(taskCtx, upgrade.LevelCreatorEdge[*model.NewgroundsSong](), withSong, req.ForceRefresh, f.creatorProc, f.creatorLookup, f.creatorRefresh)
		if err != nil {
			return zero, err
		}

		return resolveAndAwait(taskCtx, upgrade.LevelUserEdge[*model.NewgroundsSong](), withCreator, req.ForceRefresh, f.userProc, f.userLookup, f.userRefresh)
	})
}

// awaitLevel resolves req to a RawLevel regardless of which Outcome the
// base Processor produced, suspending on the refresh only when necessary.
func (f *Facade) awaitLevel(ctx context.Context, req request.LevelRequest) (client.RawLevel, error) {
	var zero client.RawLevel

	outcome, err := f.Level(ctx, req)
	if err != nil {
		return zero, err
	}

	if e, ok := outcome.Entry(); ok {
		if v, ok := e.Value(); ok {
			return v, nil
		}
	}

	refreshTask, ok := outcome.Refresh()
	if !ok {
		return zero, gdcferr.NoneVariant("level is absent").WithValues("level_id", req.LevelID)
	}

	resolved, err := refreshTask.Wait(ctx)
	if err != nil {
		return zero, err
	}

	v, ok := resolved.Value()
	if !ok {
		return zero, gdcferr.NoneVariant("level is absent").WithValues("level_id", req.LevelID)
	}

	return v, nil
}

func (f *Facade) songLookup(ctx context.Context, songID uint64) (entry.Entry[model.NewgroundsSong, entry.BasicMeta], error) {
	return f.cacheStore.LookupSong(ctx, songID)
}

func (f *Facade) songRefresh(ctx context.Context, songID uint64) (entry.Entry[model.NewgroundsSong, entry.BasicMeta], error) {
	return refresh.Song(ctx, f.apiClient, f.cacheStore, songID)
}

func (f *Facade) creatorLookup(ctx context.Context, creatorID uint64) (entry.Entry[model.Creator, entry.BasicMeta], error) {
	return f.cacheStore.LookupCreator(ctx, creatorID)
}

func (f *Facade) creatorRefresh(ctx context.Context, creatorID uint64) (entry.Entry[model.Creator, entry.BasicMeta], error) {
	return refresh.Creator(ctx, f.apiClient, f.cacheStore, creatorID)
}

func (f *Facade) userLookup(ctx context.Context, accountID uint64) (entry.Entry[model.User, entry.BasicMeta], error) {
	return f.cacheStore.LookupUser(ctx, request.Fingerprint(request.UserRequest{AccountID: accountID}))
}

func (f *Facade) userRefresh(ctx context.Context, accountID uint64) (entry.Entry[model.User, entry.BasicMeta], error) {
	return refresh.User(ctx, f.apiClient, f.cacheStore, request.UserRequest{AccountID: accountID})
}

// resolveAndAwait drives one upgrade edge to completion: a Cached/Outdated
// Mode returns its Into immediately, a Missing Mode is awaited.
func resolveAndAwait[From any, Into any, V any, R any, M entry.Meta](
	ctx context.Context,
	edge upgrade.Edge[From, Into, V, R, M],
	from From,
	forceRefresh bool,
	proc *processor.Processor[R, M],
	lookup func(ctx context.Context, key uint64) (entry.Entry[R, M], error),
	refreshByKey func(ctx context.Context, key uint64) (entry.Entry[R, M], error),
) (Into, error) {
	var zero Into

	key, _ := edge.ID(from)

	mode, err := upgrade.Resolve(
		ctx,
		edge,
		from,
		forceRefresh,
		proc,
		func(ctx context.Context) (entry.Entry[R, M], error) { return lookup(ctx, key) },
		func(ctx context.Context) (entry.Entry[R, M], error) { return refreshByKey(ctx, key) },
	)
	if err != nil {
		return zero, err
	}

	if into, ok := mode.Into(); ok {
		return into, nil
	}

	refreshTask, _ := mode.Refresh()

	return refreshTask.Wait(ctx)
}
