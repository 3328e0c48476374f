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

package refresh_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gdcf/core/pkg/client"
	"github.com/gdcf/core/pkg/gdcferr"
	"github.com/gdcf/core/pkg/model"
	"github.com/gdcf/core/pkg/refresh"
	"github.com/gdcf/core/pkg/request"
	"github.com/gdcf/core/pkg/store/memstore"
	"github.com/gdcf/core/pkg/task"
)

// fakeClient is a minimal hand-rolled ApiClient stub for these tests;
// pkg/client/mock carries the generated equivalent for richer expectation
// setting used elsewhere.
type fakeClient struct {
	level      client.Response[client.RawLevel]
	levelErr   error
	levelsResp client.Response[[]client.RawPartialLevel]
	userResp   client.Response[model.User]
	userErr    error
}

func (f *fakeClient) MakeLevel(ctx context.Context, req request.LevelRequest) *task.Task[client.Response[client.RawLevel]] {
	return task.Completed(f.level, f.levelErr)
}

func (f *fakeClient) MakeLevels(ctx context.Context, req request.LevelsRequest) *task.Task[client.Response[[]client.RawPartialLevel]] {
	return task.Completed(f.levelsResp, nil)
}

func (f *fakeClient) MakeUser(ctx context.Context, req request.UserRequest) *task.Task[client.Response[model.User]] {
	return task.Completed(f.userResp, f.userErr)
}

var _ client.ApiClient = (*fakeClient)(nil)

func TestRefreshLevelStoresAndResolves(t *testing.T) {
	t.Parallel()

	level := client.RawLevel{}
	level.LevelID = 44325129
	level.Name = "Cant Let Go"

	fc := &fakeClient{level: client.Response[client.RawLevel]{Result: level}}
	s := memstore.New(30 * time.Minute)

	resolved, err := refresh.Level(context.Background(), fc, s, request.LevelRequest{LevelID: 44325129})
	require.NoError(t, err)
	require.True(t, resolved.IsCached())

	v, ok := resolved.Value()
	require.True(t, ok)
	require.Equal(t, "Cant Let Go", v.Name)

	stored, err := s.LookupLevel(context.Background(), request.Fingerprint(request.LevelRequest{LevelID: 44325129}))
	require.NoError(t, err)
	require.True(t, stored.IsCached())
}

func TestRefreshNoResultMarksAbsent(t *testing.T) {
	t.Parallel()

	fc := &fakeClient{userErr: gdcferr.APINoResult("no such user")}
	s := memstore.New(30 * time.Minute)

	resolved, err := refresh.User(context.Background(), fc, s, request.UserRequest{AccountID: 999})
	require.NoError(t, err)
	require.True(t, resolved.IsMarkedAbsent())

	stored, err := s.LookupUser(context.Background(), request.Fingerprint(request.UserRequest{AccountID: 999}))
	require.NoError(t, err)
	require.True(t, stored.IsMarkedAbsent())
}

func TestRefreshOtherErrorsPropagate(t *testing.T) {
	t.Parallel()

	fc := &fakeClient{userErr: gdcferr.API("connection reset")}
	s := memstore.New(30 * time.Minute)

	_, err := refresh.User(context.Background(), fc, s, request.UserRequest{AccountID: 999})
	require.Error(t, err)
	require.False(t, gdcferr.IsNoResult(err))

	stored, err := s.LookupUser(context.Background(), request.Fingerprint(request.UserRequest{AccountID: 999}))
	require.NoError(t, err)
	require.True(t, stored.IsMissing())
}

func TestRefreshLevelsStoresSecondariesBeforePrimary(t *testing.T) {
	t.Parallel()

	level := client.RawPartialLevel{}
	level.LevelID = 1
	level.Creator = 42

	songID := uint64(1001)
	level.CustomSong = &songID

	fc := &fakeClient{
		levelsResp: client.Response[[]client.RawPartialLevel]{
			Result: []client.RawPartialLevel{level},
			Secondaries: []client.Secondary{
				{Kind: client.SecondaryKindCreator, Creator: model.Creator{UserID: 42, Name: "X"}},
				{Kind: client.SecondaryKindNewgroundsSong, Song: model.NewgroundsSong{SongID: 1001, Name: "S"}},
			},
		},
	}

	s := memstore.New(30 * time.Minute)

	req := request.LevelsRequest{Type: request.LevelRequestTypeMostLiked}

	resolved, err := refresh.Levels(context.Background(), fc, s, req)
	require.NoError(t, err)
	require.True(t, resolved.IsCached())

	creator, err := s.LookupCreator(context.Background(), 42)
	require.NoError(t, err)
	require.True(t, creator.IsCached())

	song, err := s.LookupSong(context.Background(), 1001)
	require.NoError(t, err)
	require.True(t, song.IsCached())
}
