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

// Package memstore is the reference in-memory CacheStore implementation,
// structured after pkg/util/cache.TimeoutCache: a
// mutex-guarded map per object kind, with TTL-based expiry decided at read
// time rather than by a background sweep (the core carries no eviction
// policy, per spec.md §1's Non-goals).
package memstore

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	jsonpatch "github.com/evanphx/json-patch"
	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/gdcf/core/pkg/client"
	"github.com/gdcf/core/pkg/entry"
	"github.com/gdcf/core/pkg/gdcferr"
	"github.com/gdcf/core/pkg/model"
	"github.com/gdcf/core/pkg/store"
	cachesupport "github.com/gdcf/core/pkg/util/cache"
)

// Compile-time assertion that Store satisfies the CacheStore interface.
var _ store.CacheStore = (*Store)(nil)

// record is the internal representation of one key's state: either absent
// by assertion (MarkedAbsent) or holding a value (Cached). A key with no
// record at all is Missing, and is simply not present in the map.
type record[T any] struct {
	value  T
	absent bool
	meta   entry.BasicMeta
}

// Store is the reference in-memory CacheStore. One TTL applies to every
// object kind it holds; a production deployment wanting per-kind TTLs
// would compose several Stores behind its own CacheStore, which the
// interface makes trivial since every method is already scoped per kind.
type Store struct {
	ttl   time.Duration
	clock cachesupport.Clock

	mu       sync.RWMutex
	levels   map[uint64]record[client.RawLevel]
	listings map[uint64]record[[]client.RawPartialLevel]
	users    map[uint64]record[model.User]
	creators map[uint64]record[model.Creator]
	songs    map[uint64]record[model.NewgroundsSong]
}

// New creates an empty Store with the given TTL, using the real wall clock.
func New(ttl time.Duration) *Store {
	return NewWithClock(ttl, nil)
}

// NewWithClock creates an empty Store using the supplied Clock, primarily
// for deterministic freshness tests. A nil clock uses the real wall clock.
func NewWithClock(ttl time.Duration, clock cachesupport.Clock) *Store {
	if clock == nil {
		clock = realClock{}
	}

	return &Store{
		ttl:      ttl,
		clock:    clock,
		levels:   map[uint64]record[client.RawLevel]{},
		listings: map[uint64]record[[]client.RawPartialLevel]{},
		users:    map[uint64]record[model.User]{},
		creators: map[uint64]record[model.Creator]{},
		songs:    map[uint64]record[model.NewgroundsSong]{},
	}
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func lookup[T any](m map[uint64]record[T], key uint64) entry.Entry[T, entry.BasicMeta] {
	r, ok := m[key]
	if !ok {
		return entry.Missing[T, entry.BasicMeta]()
	}

	if r.absent {
		return entry.MarkedAbsent[T](r.meta)
	}

	return entry.Cached(r.value, r.meta)
}

func (s *Store) store(ctx context.Context, kind string, key uint64, previous, next any) entry.BasicMeta {
	meta := entry.NewBasicMeta(s.clock.Now(), s.ttl)

	logDiff(ctx, kind, key, previous, next)

	return meta
}

// logDiff emits a debug-level merge patch between the previous and next
// values on overwrite, giving operators a cheap diff of what changed on
// refresh. Errors marshalling either side are swallowed: this is a
// diagnostic nicety, never load-bearing for correctness.
func logDiff(ctx context.Context, kind string, key uint64, previous, next any) {
	if previous == nil {
		return
	}

	oldJSON, err := json.Marshal(previous)
	if err != nil {
		return
	}

	newJSON, err := json.Marshal(next)
	if err != nil {
		return
	}

	patch, err := jsonpatch.CreateMergePatch(oldJSON, newJSON)
	if err != nil {
		return
	}

	if string(patch) == "{}" {
		return
	}

	log.FromContext(ctx).V(1).Info("cache entry refreshed", "kind", kind, "key", key, "patch", string(patch))
}

func (s *Store) LookupLevel(_ context.Context, fingerprint uint64) (store.LevelEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return lookup(s.levels, fingerprint), nil
}

func (s *Store) StoreLevel(ctx context.Context, fingerprint uint64, level client.RawLevel) (entry.BasicMeta, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous, had := s.levels[fingerprint]

	var previousAny any
	if had && !previous.absent {
		previousAny = previous.value
	}

	meta := s.store(ctx, "level", fingerprint, previousAny, level)
	s.levels[fingerprint] = record[client.RawLevel]{value: level, meta: meta}

	return meta, nil
}

func (s *Store) MarkLevelAbsent(_ context.Context, fingerprint uint64) (entry.BasicMeta, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	meta := entry.NewBasicMeta(s.clock.Now(), s.ttl)
	s.levels[fingerprint] = record[client.RawLevel]{absent: true, meta: meta}

	return meta, nil
}

func (s *Store) LookupLevels(_ context.Context, fingerprint uint64) (store.LevelsEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return lookup(s.listings, fingerprint), nil
}

func (s *Store) StoreLevels(ctx context.Context, fingerprint uint64, levels []client.RawPartialLevel) (entry.BasicMeta, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	meta := s.store(ctx, "levels", fingerprint, nil, levels)
	s.listings[fingerprint] = record[[]client.RawPartialLevel]{value: levels, meta: meta}

	return meta, nil
}

func (s *Store) MarkLevelsAbsent(_ context.Context, fingerprint uint64) (entry.BasicMeta, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	meta := entry.NewBasicMeta(s.clock.Now(), s.ttl)
	s.listings[fingerprint] = record[[]client.RawPartialLevel]{absent: true, meta: meta}

	return meta, nil
}

func (s *Store) LookupUser(_ context.Context, fingerprint uint64) (store.UserEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return lookup(s.users, fingerprint), nil
}

func (s *Store) StoreUser(ctx context.Context, fingerprint uint64, user model.User) (entry.BasicMeta, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous, had := s.users[fingerprint]

	var previousAny any
	if had && !previous.absent {
		previousAny = previous.value
	}

	meta := s.store(ctx, "user", fingerprint, previousAny, user)
	s.users[fingerprint] = record[model.User]{value: user, meta: meta}

	return meta, nil
}

func (s *Store) MarkUserAbsent(_ context.Context, fingerprint uint64) (entry.BasicMeta, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	meta := entry.NewBasicMeta(s.clock.Now(), s.ttl)
	s.users[fingerprint] = record[model.User]{absent: true, meta: meta}

	return meta, nil
}

func (s *Store) LookupCreator(_ context.Context, creatorID uint64) (store.CreatorEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return lookup(s.creators, creatorID), nil
}

func (s *Store) StoreCreator(_ context.Context, creatorID uint64, creator model.Creator) (entry.BasicMeta, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	meta := entry.NewBasicMeta(s.clock.Now(), s.ttl)
	s.creators[creatorID] = record[model.Creator]{value: creator, meta: meta}

	return meta, nil
}

func (s *Store) MarkCreatorAbsent(_ context.Context, creatorID uint64) (entry.BasicMeta, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	meta := entry.NewBasicMeta(s.clock.Now(), s.ttl)
	s.creators[creatorID] = record[model.Creator]{absent: true, meta: meta}

	return meta, nil
}

func (s *Store) LookupSong(_ context.Context, songID uint64) (store.SongEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return lookup(s.songs, songID), nil
}

func (s *Store) StoreSong(_ context.Context, songID uint64, song model.NewgroundsSong) (entry.BasicMeta, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	meta := entry.NewBasicMeta(s.clock.Now(), s.ttl)
	s.songs[songID] = record[model.NewgroundsSong]{value: song, meta: meta}

	return meta, nil
}

func (s *Store) MarkSongAbsent(_ context.Context, songID uint64) (entry.BasicMeta, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	meta := entry.NewBasicMeta(s.clock.Now(), s.ttl)
	s.songs[songID] = record[model.NewgroundsSong]{absent: true, meta: meta}

	return meta, nil
}

// StoreSecondary dispatches a Secondary to the matching typed store call
// (§6.2). Kept generic over the Secondary enum rather than switched over a
// fixed two-variant set, so new variants need no RefreshTask change.
func (s *Store) StoreSecondary(ctx context.Context, sec client.Secondary) error {
	switch sec.Kind {
	case client.SecondaryKindCreator:
		_, err := s.StoreCreator(ctx, sec.Creator.UserID, sec.Creator)
		return err
	case client.SecondaryKindNewgroundsSong:
		_, err := s.StoreSong(ctx, sec.Song.SongID, sec.Song)
		return err
	case client.SecondaryKindMissingCreator:
		_, err := s.MarkCreatorAbsent(ctx, sec.MissingID)
		return err
	case client.SecondaryKindMissingNewgroundsSong:
		_, err := s.MarkSongAbsent(ctx, sec.MissingID)
		return err
	default:
		return gdcferr.Cache("unknown secondary kind").WithValues("kind", sec.Kind)
	}
}
