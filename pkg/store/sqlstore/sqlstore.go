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

// Package sqlstore is the optional SQL-backed CacheStore implementation,
// for deployments that want the cache to survive a process restart. Every
// object kind shares one table, discriminated by a kind column, rather than
// one table per kind: the row shape (key, value, absent, stored_at) is
// identical across kinds, and a shared table keeps the schema to a single
// CREATE TABLE statement.
package sqlstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/gdcf/core/pkg/client"
	"github.com/gdcf/core/pkg/entry"
	"github.com/gdcf/core/pkg/gdcferr"
	"github.com/gdcf/core/pkg/model"
	"github.com/gdcf/core/pkg/store"
)

// schema creates the single table this store reads and writes. Run once,
// idempotently, by Open; callers supplying their own *sqlx.DB (tests, or a
// deployment managing its own migrations) use NewWithDB and run it
// themselves if they want it.
const schema = `
CREATE TABLE IF NOT EXISTS gdcf_cache_entries (
	kind      TEXT NOT NULL,
	key       BIGINT NOT NULL,
	value     JSONB,
	absent    BOOLEAN NOT NULL DEFAULT false,
	stored_at TIMESTAMPTZ NOT NULL,
	PRIMARY KEY (kind, key)
)`

// kind constants, one per table row family. Unexported: callers only ever
// see them through the CacheStore methods below.
const (
	kindLevel   = "level"
	kindLevels  = "levels"
	kindUser    = "user"
	kindCreator = "creator"
	kindSong    = "song"
)

// Clock abstracts time.Now for deterministic tests, mirroring memstore's
// seam of the same name.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// Compile-time assertion that Store satisfies the CacheStore interface.
var _ store.CacheStore = (*Store)(nil)

// Store is the reference SQL-backed CacheStore, built on sqlx over
// lib/pq. One TTL applies to every object kind, same tradeoff memstore
// makes, for the same reason: a deployment wanting per-kind TTLs composes
// several Stores behind its own CacheStore.
type Store struct {
	db    *sqlx.DB
	ttl   time.Duration
	clock Clock
}

// Open connects to dsn (a postgres connection string), ensures the schema
// exists, and returns a ready Store.
func Open(ctx context.Context, dsn string, ttl time.Duration) (*Store, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", dsn)
	if err != nil {
		return nil, gdcferr.Cache("connecting to sql store").WithError(err)
	}

	s := NewWithDB(db, ttl)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, gdcferr.Cache("creating sql store schema").WithError(err)
	}

	return s, nil
}

// NewWithDB wraps an already-connected *sqlx.DB, using the real wall clock.
// Schema creation is the caller's responsibility; this is the constructor
// tests reach for, handing in a sqlmock-backed *sqlx.DB against which they
// can set exact query/exec expectations.
func NewWithDB(db *sqlx.DB, ttl time.Duration) *Store {
	return NewWithDBAndClock(db, ttl, realClock{})
}

// NewWithDBAndClock is NewWithDB with an injectable Clock, for freshness
// tests that need to control StoredAt precisely.
func NewWithDBAndClock(db *sqlx.DB, ttl time.Duration, clock Clock) *Store {
	return &Store{db: db, ttl: ttl, clock: clock}
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

type row struct {
	Value    []byte    `db:"value"`
	Absent   bool      `db:"absent"`
	StoredAt time.Time `db:"stored_at"`
}

func lookup[T any](ctx context.Context, db *sqlx.DB, ttl time.Duration, kind string, key uint64) (entry.Entry[T, entry.BasicMeta], error) {
	var r row

	err := db.GetContext(ctx, &r, `SELECT value, absent, stored_at FROM gdcf_cache_entries WHERE kind = $1 AND key = $2`, kind, int64(key))

	switch {
	case errors.Is(err, sql.ErrNoRows):
		return entry.Missing[T, entry.BasicMeta](), nil
	case err != nil:
		var zero entry.Entry[T, entry.BasicMeta]

		return zero, gdcferr.Cache("looking up cache entry").WithError(err).WithValues("kind", kind, "key", key)
	}

	meta := entry.NewBasicMeta(r.StoredAt, ttl)

	if r.Absent {
		return entry.MarkedAbsent[T](meta), nil
	}

	var value T
	if err := json.Unmarshal(r.Value, &value); err != nil {
		var zero entry.Entry[T, entry.BasicMeta]

		return zero, gdcferr.Cache("decoding cache entry").WithError(err).WithValues("kind", kind, "key", key)
	}

	return entry.Cached(value, meta), nil
}

func (s *Store) storeValue(ctx context.Context, kind string, key uint64, value any) (entry.BasicMeta, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return entry.BasicMeta{}, gdcferr.Cache("encoding cache entry").WithError(err).WithValues("kind", kind, "key", key)
	}

	meta := entry.NewBasicMeta(s.clock.Now(), s.ttl)

	const upsert = `
INSERT INTO gdcf_cache_entries (kind, key, value, absent, stored_at)
VALUES ($1, $2, $3, false, $4)
ON CONFLICT (kind, key) DO UPDATE SET value = EXCLUDED.value, absent = false, stored_at = EXCLUDED.stored_at`

	if _, err := s.db.ExecContext(ctx, upsert, kind, int64(key), data, meta.StoredAt()); err != nil {
		return entry.BasicMeta{}, gdcferr.Cache("storing cache entry").WithError(err).WithValues("kind", kind, "key", key)
	}

	return meta, nil
}

func (s *Store) markAbsent(ctx context.Context, kind string, key uint64) (entry.BasicMeta, error) {
	meta := entry.NewBasicMeta(s.clock.Now(), s.ttl)

	const upsert = `
INSERT INTO gdcf_cache_entries (kind, key, value, absent, stored_at)
VALUES ($1, $2, NULL, true, $3)
ON CONFLICT (kind, key) DO UPDATE SET value = NULL, absent = true, stored_at = EXCLUDED.stored_at`

	if _, err := s.db.ExecContext(ctx, upsert, kind, int64(key), meta.StoredAt()); err != nil {
		return entry.BasicMeta{}, gdcferr.Cache("marking cache entry absent").WithError(err).WithValues("kind", kind, "key", key)
	}

	return meta, nil
}

func (s *Store) LookupLevel(ctx context.Context, fingerprint uint64) (store.LevelEntry, error) {
	return lookup[client.RawLevel](ctx, s.db, s.ttl, kindLevel, fingerprint)
}

func (s *Store) StoreLevel(ctx context.Context, fingerprint uint64, level client.RawLevel) (entry.BasicMeta, error) {
	return s.storeValue(ctx, kindLevel, fingerprint, level)
}

func (s *Store) MarkLevelAbsent(ctx context.Context, fingerprint uint64) (entry.BasicMeta, error) {
	return s.markAbsent(ctx, kindLevel, fingerprint)
}

func (s *Store) LookupLevels(ctx context.Context, fingerprint uint64) (store.LevelsEntry, error) {
	return lookup[[]client.RawPartialLevel](ctx, s.db, s.ttl, kindLevels, fingerprint)
}

func (s *Store) StoreLevels(ctx context.Context, fingerprint uint64, levels []client.RawPartialLevel) (entry.BasicMeta, error) {
	return s.storeValue(ctx, kindLevels, fingerprint, levels)
}

func (s *Store) MarkLevelsAbsent(ctx context.Context, fingerprint uint64) (entry.BasicMeta, error) {
	return s.markAbsent(ctx, kindLevels, fingerprint)
}

func (s *Store) LookupUser(ctx context.Context, fingerprint uint64) (store.UserEntry, error) {
	return lookup[model.User](ctx, s.db, s.ttl, kindUser, fingerprint)
}

func (s *Store) StoreUser(ctx context.Context, fingerprint uint64, user model.User) (entry.BasicMeta, error) {
	return s.storeValue(ctx, kindUser, fingerprint, user)
}

func (s *Store) MarkUserAbsent(ctx context.Context, fingerprint uint64) (entry.BasicMeta, error) {
	return s.markAbsent(ctx, kindUser, fingerprint)
}

func (s *Store) LookupCreator(ctx context.Context, creatorID uint64) (store.CreatorEntry, error) {
	return lookup[model.Creator](ctx, s.db, s.ttl, kindCreator, creatorID)
}

func (s *Store) StoreCreator(ctx context.Context, creatorID uint64, creator model.Creator) (entry.BasicMeta, error) {
	return s.storeValue(ctx, kindCreator, creatorID, creator)
}

func (s *Store) MarkCreatorAbsent(ctx context.Context, creatorID uint64) (entry.BasicMeta, error) {
	return s.markAbsent(ctx, kindCreator, creatorID)
}

func (s *Store) LookupSong(ctx context.Context, songID uint64) (store.SongEntry, error) {
	return lookup[model.NewgroundsSong](ctx, s.db, s.ttl, kindSong, songID)
}

func (s *Store) StoreSong(ctx context.Context, songID uint64, song model.NewgroundsSong) (entry.BasicMeta, error) {
	return s.storeValue(ctx, kindSong, songID, song)
}

func (s *Store) MarkSongAbsent(ctx context.Context, songID uint64) (entry.BasicMeta, error) {
	return s.markAbsent(ctx, kindSong, songID)
}

// StoreSecondary dispatches sec to the matching typed store call, the same
// shape as memstore.Store.StoreSecondary.
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
