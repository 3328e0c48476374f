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

// Package refresh implements the RefreshTask: the async job that calls the
// ApiClient, stores the primary result and any secondary objects, and
// publishes the new CacheEntry. The three functions here (Level, Levels,
// User) take the request explicitly; the facade binds each to one request
// as a processor.RefreshFunc closure.
// pkg/processor's Processor dedupes and owns the lifecycle, these are pure
// bodies.
package refresh

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/gdcf/core/pkg/client"
	"github.com/gdcf/core/pkg/entry"
	"github.com/gdcf/core/pkg/gdcferr"
	"github.com/gdcf/core/pkg/model"
	"github.com/gdcf/core/pkg/request"
	"github.com/gdcf/core/pkg/store"
)

//nolint:gochecknoglobals
var tracer = otel.Tracer("github.com/gdcf/core/pkg/refresh")

// storeSecondaries writes every secondary under its own key before the
// caller stores the primary. Ordering matters (§4.D): a reader that
// observes the new primary must be able to resolve its embedded secondary
// ids against the cache without a race, so every secondary store here
// happens-before the primary store the caller performs next.
func storeSecondaries(ctx context.Context, cacheStore store.CacheStore, secondaries []client.Secondary) error {
	for _, sec := range secondaries {
		if err := cacheStore.StoreSecondary(ctx, sec); err != nil {
			return gdcferr.Cache("storing secondary failed").WithError(err).WithValues("kind", sec.Kind)
		}
	}

	return nil
}

// Level performs the RefreshTask body for a LevelRequest.
func Level(ctx context.Context, apiClient client.ApiClient, cacheStore store.CacheStore, req request.LevelRequest) (store.LevelEntry, error) {
	ctx, span := tracer.Start(ctx, "refresh.level", trace.WithAttributes(attribute.Int64("level_id", int64(req.LevelID))))
	defer span.End()

	fingerprint := request.Fingerprint(req)

	resp, err := apiClient.MakeLevel(ctx, req).Wait(ctx)
	if err != nil {
		return recoverAbsent[client.RawLevel](ctx, cacheStore.MarkLevelAbsent, fingerprint, err)
	}

	if err := storeSecondaries(ctx, cacheStore, resp.Secondaries); err != nil {
		return store.LevelEntry{}, err
	}

	meta, err := cacheStore.StoreLevel(ctx, fingerprint, resp.Result)
	if err != nil {
		return store.LevelEntry{}, gdcferr.Cache("storing level failed").WithError(err)
	}

	log.FromContext(ctx).V(1).Info("level refreshed", "level_id", req.LevelID)

	return entry.Cached(resp.Result, meta), nil
}

// Levels performs the RefreshTask body for a LevelsRequest.
func Levels(ctx context.Context, apiClient client.ApiClient, cacheStore store.CacheStore, req request.LevelsRequest) (store.LevelsEntry, error) {
	ctx, span := tracer.Start(ctx, "refresh.levels", trace.WithAttributes(attribute.Int64("page", int64(req.Page))))
	defer span.End()

	fingerprint := request.Fingerprint(req)

	resp, err := apiClient.MakeLevels(ctx, req).Wait(ctx)
	if err != nil {
		return recoverAbsent[[]client.RawPartialLevel](ctx, cacheStore.MarkLevelsAbsent, fingerprint, err)
	}

	if err := storeSecondaries(ctx, cacheStore, resp.Secondaries); err != nil {
		return store.LevelsEntry{}, err
	}

	meta, err := cacheStore.StoreLevels(ctx, fingerprint, resp.Result)
	if err != nil {
		return store.LevelsEntry{}, gdcferr.Cache("storing levels failed").WithError(err)
	}

	log.FromContext(ctx).V(1).Info("levels page refreshed", "page", req.Page, "count", len(resp.Result))

	return entry.Cached(resp.Result, meta), nil
}

// User performs the RefreshTask body for a UserRequest.
func User(ctx context.Context, apiClient client.ApiClient, cacheStore store.CacheStore, req request.UserRequest) (store.UserEntry, error) {
	ctx, span := tracer.Start(ctx, "refresh.user", trace.WithAttributes(attribute.Int64("account_id", int64(req.AccountID))))
	defer span.End()

	fingerprint := request.Fingerprint(req)

	resp, err := apiClient.MakeUser(ctx, req).Wait(ctx)
	if err != nil {
		return recoverAbsent[model.User](ctx, cacheStore.MarkUserAbsent, fingerprint, err)
	}

	// Users carry no secondaries; nothing precedes the primary write.
	meta, err := cacheStore.StoreUser(ctx, fingerprint, resp.Result)
	if err != nil {
		return store.UserEntry{}, gdcferr.Cache("storing user failed").WithError(err)
	}

	log.FromContext(ctx).V(1).Info("user refreshed", "account_id", req.AccountID)

	return entry.Cached(resp.Result, meta), nil
}

// recoverAbsent implements §4.D step 4: an ApiError whose kind is
// APINoResult ("no such resource") is recovered into a mark_absent call
// rather than propagated; every other error surfaces unchanged.
func recoverAbsent[T any](
	ctx context.Context,
	markAbsent func(ctx context.Context, fingerprint uint64) (entry.BasicMeta, error),
	fingerprint uint64,
	apiErr error,
) (entry.Entry[T, entry.BasicMeta], error) {
	var zero entry.Entry[T, entry.BasicMeta]

	if !gdcferr.IsNoResult(apiErr) {
		return zero, apiErr
	}

	meta, err := markAbsent(ctx, fingerprint)
	if err != nil {
		return zero, gdcferr.Cache("marking absent failed").WithError(err)
	}

	log.FromContext(ctx).V(1).Info("resource confirmed absent, marking tombstone", "fingerprint", fingerprint)

	return entry.MarkedAbsent[T](meta), nil
}
