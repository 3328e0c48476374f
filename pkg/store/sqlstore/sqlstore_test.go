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

package sqlstore_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/gdcf/core/pkg/client"
	"github.com/gdcf/core/pkg/model"
	"github.com/gdcf/core/pkg/store/sqlstore"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func newTestStore(t *testing.T) (*sqlstore.Store, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	s := sqlstore.NewWithDBAndClock(sqlx.NewDb(db, "postgres"), time.Hour, fixedClock{now: time.Unix(1700000000, 0).UTC()})

	return s, mock
}

func TestLookupCreatorReturnsMissingOnNoRows(t *testing.T) {
	t.Parallel()

	s, mock := newTestStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value, absent, stored_at FROM gdcf_cache_entries WHERE kind = $1 AND key = $2")).
		WithArgs("creator", int64(7)).
		WillReturnError(sql.ErrNoRows)

	entry, err := s.LookupCreator(context.Background(), 7)
	require.NoError(t, err)
	require.True(t, entry.IsMissing())
}

func TestLookupCreatorDecodesCachedRow(t *testing.T) {
	t.Parallel()

	s, mock := newTestStore(t)

	accountID := uint64(99)
	creator := model.Creator{UserID: 7, Name: "RobTop", AccountID: &accountID}
	data, err := json.Marshal(creator)
	require.NoError(t, err)

	storedAt := time.Unix(1699999000, 0).UTC()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value, absent, stored_at FROM gdcf_cache_entries WHERE kind = $1 AND key = $2")).
		WithArgs("creator", int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"value", "absent", "stored_at"}).
			AddRow(data, false, storedAt))

	entry, err := s.LookupCreator(context.Background(), 7)
	require.NoError(t, err)
	require.True(t, entry.IsCached())

	got, ok := entry.Value()
	require.True(t, ok)
	require.Equal(t, creator.Name, got.Name)
	require.Equal(t, accountID, *got.AccountID)
}

func TestLookupSongReturnsMarkedAbsent(t *testing.T) {
	t.Parallel()

	s, mock := newTestStore(t)

	storedAt := time.Unix(1699999000, 0).UTC()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value, absent, stored_at FROM gdcf_cache_entries WHERE kind = $1 AND key = $2")).
		WithArgs("song", int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"value", "absent", "stored_at"}).
			AddRow(nil, true, storedAt))

	entry, err := s.LookupSong(context.Background(), 3)
	require.NoError(t, err)
	require.True(t, entry.IsMarkedAbsent())
}

func TestStoreCreatorUpsertsRow(t *testing.T) {
	t.Parallel()

	s, mock := newTestStore(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO gdcf_cache_entries")).
		WithArgs("creator", int64(7), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	meta, err := s.StoreCreator(context.Background(), 7, model.Creator{UserID: 7, Name: "RobTop"})
	require.NoError(t, err)
	require.False(t, meta.IsExpired(meta.StoredAt()))
}

func TestMarkCreatorAbsentUpsertsTombstone(t *testing.T) {
	t.Parallel()

	s, mock := newTestStore(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO gdcf_cache_entries")).
		WithArgs("creator", int64(7), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	_, err := s.MarkCreatorAbsent(context.Background(), 7)
	require.NoError(t, err)
}

func TestStoreSecondaryDispatchesToSongStore(t *testing.T) {
	t.Parallel()

	s, mock := newTestStore(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO gdcf_cache_entries")).
		WithArgs("song", int64(11), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	sec := client.Secondary{Kind: client.SecondaryKindNewgroundsSong, Song: model.NewgroundsSong{SongID: 11}}

	err := s.StoreSecondary(context.Background(), sec)
	require.NoError(t, err)
}
