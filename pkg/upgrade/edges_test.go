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

package upgrade_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gdcf/core/pkg/client"
	"github.com/gdcf/core/pkg/model"
	"github.com/gdcf/core/pkg/upgrade"
)

func TestLevelEdgePreservesBaseFields(t *testing.T) {
	t.Parallel()

	edge := upgrade.LevelEdge()

	partial := model.PartialLevel[model.RawSong, model.RawCreator]{LevelID: 1, Name: "Base"}

	req, ok := edge.Request(partial)
	require.True(t, ok)
	require.NotEmpty(t, req.Key())

	full := client.RawLevel{LevelData: "H4sI..."}
	full.LevelID = 999 // as-fetched id should be overridden by the base's
	full.Name = "Fetched"

	into := edge.Apply(partial, full)
	require.Equal(t, uint64(1), into.LevelID)
	require.Equal(t, "Base", into.Name)
	require.Equal(t, "H4sI...", into.LevelData)
}

func TestPartialLevelSongEdgeNilSongNeedsNoRequest(t *testing.T) {
	t.Parallel()

	edge := upgrade.PartialLevelSongEdge[model.RawCreator]()

	partial := model.PartialLevel[model.RawSong, model.RawCreator]{LevelID: 1}

	_, hasReq := edge.Request(partial)
	require.False(t, hasReq)

	def, ok := edge.Default(partial)
	require.True(t, ok)
	require.Nil(t, def)

	into := edge.Apply(partial, nil)
	require.Nil(t, into.CustomSong)
}

func TestPartialLevelSongEdgeWithSongIssuesSearchRequest(t *testing.T) {
	t.Parallel()

	edge := upgrade.PartialLevelSongEdge[model.RawCreator]()

	songID := uint64(555)
	partial := model.PartialLevel[model.RawSong, model.RawCreator]{LevelID: 1, CustomSong: &songID}

	req, hasReq := edge.Request(partial)
	require.True(t, hasReq)
	require.NotNil(t, req)

	id, hasID := edge.ID(partial)
	require.True(t, hasID)
	require.Equal(t, songID, id)

	song := model.NewgroundsSong{SongID: songID, Name: "Track"}

	value, err := edge.Lookup(context.Background(), partial, song)
	require.NoError(t, err)
	require.NotNil(t, value)
	require.Equal(t, "Track", value.Name)

	into := edge.Apply(partial, value)
	require.Equal(t, "Track", into.CustomSong.Name)
	require.Equal(t, partial.LevelID, into.LevelID)
}

func TestPartialLevelCreatorEdgeAlwaysRequests(t *testing.T) {
	t.Parallel()

	edge := upgrade.PartialLevelCreatorEdge[model.RawSong]()

	partial := model.PartialLevel[model.RawSong, model.RawCreator]{LevelID: 1, Creator: 42}

	_, hasReq := edge.Request(partial)
	require.True(t, hasReq)

	id, hasID := edge.ID(partial)
	require.True(t, hasID)
	require.Equal(t, uint64(42), id)

	def, ok := edge.Default(partial)
	require.True(t, ok)
	require.Nil(t, def)

	creator := model.Creator{UserID: 42, Name: "Author"}

	value, err := edge.Lookup(context.Background(), partial, creator)
	require.NoError(t, err)

	into := edge.Apply(partial, value)
	require.Equal(t, "Author", into.Creator.Name)
}

func TestPartialLevelUserEdgeSkipsCreatorWithoutAccount(t *testing.T) {
	t.Parallel()

	edge := upgrade.PartialLevelUserEdge[model.RawSong]()

	noAccount := &model.Creator{UserID: 1, Name: "Anon"}
	partial := model.PartialLevel[model.RawSong, *model.Creator]{Creator: noAccount}

	_, hasReq := edge.Request(partial)
	require.False(t, hasReq)

	def, ok := edge.Default(partial)
	require.True(t, ok)
	require.Nil(t, def)
}

func TestPartialLevelUserEdgeRequestsWhenAccountPresent(t *testing.T) {
	t.Parallel()

	accountID := uint64(7)
	withAccount := &model.Creator{UserID: 1, Name: "Registered", AccountID: &accountID}
	partial := model.PartialLevel[model.RawSong, *model.Creator]{Creator: withAccount}

	edge := upgrade.PartialLevelUserEdge[model.RawSong]()

	req, hasReq := edge.Request(partial)
	require.True(t, hasReq)
	require.NotNil(t, req)

	id, hasID := edge.ID(partial)
	require.True(t, hasID)
	require.Equal(t, accountID, id)

	user := model.User{UserID: 1, AccountID: accountID, Name: "Registered"}

	value, err := edge.Lookup(context.Background(), partial, user)
	require.NoError(t, err)

	into := edge.Apply(partial, value)
	require.Equal(t, "Registered", into.Creator.Name)
}
