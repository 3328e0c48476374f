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

// Package perkind composes three CacheStores, one per TTL tier, into a
// single CacheStore: levels and listings (fast-moving), users and
// creators (slower-moving), and Newgrounds songs (near-static). Every
// reference CacheStore (memstore, sqlstore) takes a single flat TTL, by
// design — this is the thing their own doc comments say to build on top
// when a deployment wants different TTLs per kind, rather than teaching
// every store implementation about three TTLs internally.
package perkind

import (
	"context"

	"github.com/gdcf/core/pkg/client"
	"github.com/gdcf/core/pkg/entry"
	"github.com/gdcf/core/pkg/model"
	"github.com/gdcf/core/pkg/store"
)

// Store routes each CacheStore method to the inner store matching its TTL
// tier.
type Store struct {
	Levels store.CacheStore
	Users  store.CacheStore
	Songs  store.CacheStore
}

var _ store.CacheStore = (*Store)(nil)

func (s *Store) LookupLevel(ctx context.Context, fingerprint uint64) (store.LevelEntry, error) {
	return s.Levels.LookupLevel(ctx, fingerprint)
}

func (s *Store) StoreLevel(ctx context.Context, fingerprint uint64, level client.RawLevel) (entry.BasicMeta, error) {
	return s.Levels.StoreLevel(ctx, fingerprint, level)
}

func (s *Store) MarkLevelAbsent(ctx context.Context, fingerprint uint64) (entry.BasicMeta, error) {
	return s.Levels.MarkLevelAbsent(ctx, fingerprint)
}

func (s *Store) LookupLevels(ctx context.Context, fingerprint uint64) (store.LevelsEntry, error) {
	return s.Levels.LookupLevels(ctx, fingerprint)
}

func (s *Store) StoreLevels(ctx context.Context, fingerprint uint64, levels []client.RawPartialLevel) (entry.BasicMeta, error) {
	return s.Levels.StoreLevels(ctx, fingerprint, levels)
}

func (s *Store) MarkLevelsAbsent(ctx context.Context, fingerprint uint64) (entry.BasicMeta, error) {
	return s.Levels.MarkLevelsAbsent(ctx, fingerprint)
}

func (s *Store) LookupUser(ctx context.Context, fingerprint uint64) (store.UserEntry, error) {
	return s.Users.LookupUser(ctx, fingerprint)
}

func (s *Store) StoreUser(ctx context.Context, fingerprint uint64, user model.User) (entry.BasicMeta, error) {
	return s.Users.StoreUser(ctx, fingerprint, user)
}

func (s *Store) MarkUserAbsent(ctx context.Context, fingerprint uint64) (entry.BasicMeta, error) {
	return s.Users.MarkUserAbsent(ctx, fingerprint)
}

func (s *Store) LookupCreator(ctx context.Context, creatorID uint64) (store.CreatorEntry, error) {
	return s.Users.LookupCreator(ctx, creatorID)
}

func (s *Store) StoreCreator(ctx context.Context, creatorID uint64, creator model.Creator) (entry.BasicMeta, error) {
	return s.Users.StoreCreator(ctx, creatorID, creator)
}

func (s *Store) MarkCreatorAbsent(ctx context.Context, creatorID uint64) (entry.BasicMeta, error) {
	return s.Users.MarkCreatorAbsent(ctx, creatorID)
}

func (s *Store) LookupSong(ctx context.Context, songID uint64) (store.SongEntry, error) {
	return s.Songs.LookupSong(ctx, songID)
}

func (s *Store) StoreSong(ctx context.Context, songID uint64, song model.NewgroundsSong) (entry.BasicMeta, error) {
	return s.Songs.StoreSong(ctx, songID, song)
}

func (s *Store) MarkSongAbsent(ctx context.Context, songID uint64) (entry.BasicMeta, error) {
	return s.Songs.MarkSongAbsent(ctx, songID)
}

// StoreSecondary routes to the Users or Songs store by sec.Kind.
func (s *Store) StoreSecondary(ctx context.Context, sec client.Secondary) error {
	switch sec.Kind {
	case client.SecondaryKindCreator, client.SecondaryKindMissingCreator:
		return s.Users.StoreSecondary(ctx, sec)
	default:
		return s.Songs.StoreSecondary(ctx, sec)
	}
}
