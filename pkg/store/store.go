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

// Package store declares the CacheStore collaborator. Following the design
// note that a closed enumeration of shapes beats open polymorphism here
// (§9), the interface is a fixed table of typed lookup/store/mark_absent
// triples, one group per object kind, rather than a single generic method.
// pkg/store/memstore and pkg/store/sqlstore are reference implementations.
package store

//go:generate mockgen -destination mock/mock_store.go -package mock github.com/gdcf/core/pkg/store CacheStore

import (
	"context"

	"github.com/gdcf/core/pkg/client"
	"github.com/gdcf/core/pkg/entry"
	"github.com/gdcf/core/pkg/model"
)

// LevelEntry, LevelsEntry, etc. name the CacheEntry instantiations the
// store deals in, matching the Response payload shapes in pkg/client.
type (
	LevelEntry  = entry.Entry[client.RawLevel, entry.BasicMeta]
	LevelsEntry = entry.Entry[[]client.RawPartialLevel, entry.BasicMeta]
	UserEntry   = entry.Entry[model.User, entry.BasicMeta]
	CreatorEntry = entry.Entry[model.Creator, entry.BasicMeta]
	SongEntry    = entry.Entry[model.NewgroundsSong, entry.BasicMeta]
)

// CacheStore is the cache-storage collaborator. Every operation is
// expected to be fast and non-blocking from the scheduler's perspective;
// lookups in particular MUST be synchronous enough that a RequestProcessor
// can decide UpToDate/Outdated/Uncached before constructing a task.
//
// Primary objects (levels, level listings, users) are keyed by the request
// fingerprint that produced them. Secondary objects (creators, songs) are
// keyed by their own id, independent of which request first observed them.
//
// Contract: a lookup immediately following a store for the same key, from
// the same caller, observes the stored value (read-your-writes within a
// single logical task).
type CacheStore interface {
	LookupLevel(ctx context.Context, fingerprint uint64) (LevelEntry, error)
	StoreLevel(ctx context.Context, fingerprint uint64, level client.RawLevel) (entry.BasicMeta, error)
	MarkLevelAbsent(ctx context.Context, fingerprint uint64) (entry.BasicMeta, error)

	LookupLevels(ctx context.Context, fingerprint uint64) (LevelsEntry, error)
	StoreLevels(ctx context.Context, fingerprint uint64, levels []client.RawPartialLevel) (entry.BasicMeta, error)
	MarkLevelsAbsent(ctx context.Context, fingerprint uint64) (entry.BasicMeta, error)

	LookupUser(ctx context.Context, fingerprint uint64) (UserEntry, error)
	StoreUser(ctx context.Context, fingerprint uint64, user model.User) (entry.BasicMeta, error)
	MarkUserAbsent(ctx context.Context, fingerprint uint64) (entry.BasicMeta, error)

	LookupCreator(ctx context.Context, creatorID uint64) (CreatorEntry, error)
	StoreCreator(ctx context.Context, creatorID uint64, creator model.Creator) (entry.BasicMeta, error)
	MarkCreatorAbsent(ctx context.Context, creatorID uint64) (entry.BasicMeta, error)

	LookupSong(ctx context.Context, songID uint64) (SongEntry, error)
	StoreSong(ctx context.Context, songID uint64, song model.NewgroundsSong) (entry.BasicMeta, error)
	MarkSongAbsent(ctx context.Context, songID uint64) (entry.BasicMeta, error)

	// StoreSecondary dispatches to the appropriate Store/MarkAbsent call
	// based on sec's Kind (§6.2). Kept generic over any Secondary variant,
	// not hardcoded to Creator/NewgroundsSong, so that future variants
	// (e.g. secondaries sighted in a comment or profile response) need no
	// change to the RefreshTask contract.
	StoreSecondary(ctx context.Context, sec client.Secondary) error
}
