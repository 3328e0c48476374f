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

package refresh

import (
	"context"

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

// Creator and Song have no endpoint of their own: the API only ever embeds
// them as secondaries inside a levels listing response. Resolving one by id
// therefore means reissuing the listing search that is most likely to
// embed it, storing whatever secondaries come back, and then re-reading
// the target id straight out of the store -- mirroring lookup_upgrade's
// direct cache.lookup(id) call in the reference implementation, rather than
// trying to parse the target out of the listing's own (irrelevant) primary
// results.

// Creator performs the RefreshTask body for resolving a creator id: search
// the levels-by-user listing, store any secondaries it embeds, and read the
// target creator back out of the store.
func Creator(ctx context.Context, apiClient client.ApiClient, cacheStore store.CacheStore, creatorID uint64) (store.CreatorEntry, error) {
	ctx, span := tracer.Start(ctx, "refresh.creator", trace.WithAttributes(attribute.Int64("creator_id", int64(creatorID))))
	defer span.End()

	req := request.ByCreator(creatorID)

	resp, err := apiClient.MakeLevels(ctx, req).Wait(ctx)
	if err != nil {
		return recoverAbsent[model.Creator](ctx, cacheStore.MarkCreatorAbsent, creatorID, err)
	}

	if err := storeSecondaries(ctx, cacheStore, resp.Secondaries); err != nil {
		return store.CreatorEntry{}, err
	}

	return reconcileSecondary(ctx, creatorID, cacheStore.LookupCreator, cacheStore.MarkCreatorAbsent, "creator")
}

// Song performs the RefreshTask body for resolving a custom song id: search
// the listing filtered to levels using that song, store any secondaries it
// embeds, and read the target song back out of the store.
func Song(ctx context.Context, apiClient client.ApiClient, cacheStore store.CacheStore, songID uint64) (store.SongEntry, error) {
	ctx, span := tracer.Start(ctx, "refresh.song", trace.WithAttributes(attribute.Int64("song_id", int64(songID))))
	defer span.End()

	req := request.ByCustomSong(songID)

	resp, err := apiClient.MakeLevels(ctx, req).Wait(ctx)
	if err != nil {
		return recoverAbsent[model.NewgroundsSong](ctx, cacheStore.MarkSongAbsent, songID, err)
	}

	if err := storeSecondaries(ctx, cacheStore, resp.Secondaries); err != nil {
		return store.SongEntry{}, err
	}

	return reconcileSecondary(ctx, songID, cacheStore.LookupSong, cacheStore.MarkSongAbsent, "song")
}

// reconcileSecondary re-reads a secondary by id after a search response has
// been stored: if the search happened to embed it, the lookup now succeeds;
// if not, the id is tombstoned as absent rather than left Missing, since a
// Missing entry would make the RequestProcessor spawn another identical
// search forever.
func reconcileSecondary[T any](
	ctx context.Context,
	id uint64,
	lookup func(ctx context.Context, id uint64) (entry.Entry[T, entry.BasicMeta], error),
	markAbsent func(ctx context.Context, id uint64) (entry.BasicMeta, error),
	kind string,
) (entry.Entry[T, entry.BasicMeta], error) {
	found, err := lookup(ctx, id)
	if err != nil {
		var zero entry.Entry[T, entry.BasicMeta]

		return zero, gdcferr.Cache("looking up secondary after refresh failed").WithError(err).WithValues("kind", kind, "id", id)
	}

	if found.IsCached() {
		return found, nil
	}

	meta, err := markAbsent(ctx, id)
	if err != nil {
		var zero entry.Entry[T, entry.BasicMeta]

		return zero, gdcferr.Cache("marking secondary absent failed").WithError(err).WithValues("kind", kind, "id", id)
	}

	log.FromContext(ctx).V(1).Info("secondary not embedded in search response, marking absent", "kind", kind, "id", id)

	return entry.MarkedAbsent[T](meta), nil
}
