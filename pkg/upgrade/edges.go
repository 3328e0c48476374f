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

package upgrade

import (
	"context"

	"github.com/gdcf/core/pkg/client"
	"github.com/gdcf/core/pkg/entry"
	"github.com/gdcf/core/pkg/model"
	"github.com/gdcf/core/pkg/request"
)

// LevelEdge upgrades a listing's PartialLevel into a full Level by fetching
// the single-level endpoint. There is no default: a level either exists or
// it doesn't, and the "doesn't" case is a MarkedAbsent tombstone surfaced by
// the RefreshTask itself, never something this edge papers over.
func LevelEdge() Edge[
	model.PartialLevel[model.RawSong, model.RawCreator],
	model.Level[model.RawSong, model.RawCreator],
	model.Level[model.RawSong, model.RawCreator],
	client.RawLevel,
	entry.BasicMeta,
] {
	type From = model.PartialLevel[model.RawSong, model.RawCreator]
	type Into = model.Level[model.RawSong, model.RawCreator]

	return Edge[From, Into, Into, client.RawLevel, entry.BasicMeta]{
		Request: func(from From) (request.Request, bool) {
			return request.LevelRequest{LevelID: from.LevelID}, true
		},
		ID: func(from From) (uint64, bool) {
			return from.LevelID, true
		},
		Default: func(From) (Into, bool) {
			var zero Into

			return zero, false
		},
		Lookup: func(_ context.Context, _ From, result client.RawLevel) (Into, error) {
			return result, nil
		},
		Apply: func(from From, value Into) Into {
			value.PartialLevel = from

			return value
		},
	}
}

// PartialLevelSongEdge upgrades a PartialLevel's bare custom_song id into a
// resolved *NewgroundsSong. A nil id (the level uses a built-in main song)
// never issues a request: it upgrades straight to nil.
func PartialLevelSongEdge[Usr any]() Edge[
	model.PartialLevel[model.RawSong, Usr],
	model.PartialLevel[*model.NewgroundsSong, Usr],
	*model.NewgroundsSong,
	model.NewgroundsSong,
	entry.BasicMeta,
] {
	type From = model.PartialLevel[model.RawSong, Usr]
	type Into = model.PartialLevel[*model.NewgroundsSong, Usr]

	return Edge[From, Into, *model.NewgroundsSong, model.NewgroundsSong, entry.BasicMeta]{
		Request: func(from From) (request.Request, bool) {
			if from.CustomSong == nil {
				return nil, false
			}

			return request.ByCustomSong(*from.CustomSong), true
		},
		ID: func(from From) (uint64, bool) {
			if from.CustomSong == nil {
				return 0, false
			}

			return *from.CustomSong, true
		},
		Default: func(From) (*model.NewgroundsSong, bool) {
			return nil, true
		},
		Lookup: func(_ context.Context, _ From, result model.NewgroundsSong) (*model.NewgroundsSong, error) {
			return &result, nil
		},
		Apply: func(from From, song *model.NewgroundsSong) Into {
			return changePartialLevelSong(from, song)
		},
	}
}

// LevelSongEdge is PartialLevelSongEdge's Level-shaped counterpart.
func LevelSongEdge[Usr any]() Edge[
	model.Level[model.RawSong, Usr],
	model.Level[*model.NewgroundsSong, Usr],
	*model.NewgroundsSong,
	model.NewgroundsSong,
	entry.BasicMeta,
] {
	type From = model.Level[model.RawSong, Usr]
	type Into = model.Level[*model.NewgroundsSong, Usr]

	return Edge[From, Into, *model.NewgroundsSong, model.NewgroundsSong, entry.BasicMeta]{
		Request: func(from From) (request.Request, bool) {
			if from.CustomSong == nil {
				return nil, false
			}

			return request.ByCustomSong(*from.CustomSong), true
		},
		ID: func(from From) (uint64, bool) {
			if from.CustomSong == nil {
				return 0, false
			}

			return *from.CustomSong, true
		},
		Default: func(From) (*model.NewgroundsSong, bool) {
			return nil, true
		},
		Lookup: func(_ context.Context, _ From, result model.NewgroundsSong) (*model.NewgroundsSong, error) {
			return &result, nil
		},
		Apply: func(from From, song *model.NewgroundsSong) Into {
			return changeLevelSong(from, song)
		},
	}
}

// PartialLevelCreatorEdge upgrades a PartialLevel's bare creator id into a
// resolved *model.Creator, by searching the levels-by-user listing for the
// creator's id. Unlike the song edge, a creator id is never nil, so the
// request is always issued; absence (a creator that vanished) still
// defaults to nil rather than a consistency violation, matching the
// upstream project's lenient treatment of this specific edge.
func PartialLevelCreatorEdge[Song any]() Edge[
	model.PartialLevel[Song, model.RawCreator],
	model.PartialLevel[Song, *model.Creator],
	*model.Creator,
	model.Creator,
	entry.BasicMeta,
] {
	type From = model.PartialLevel[Song, model.RawCreator]
	type Into = model.PartialLevel[Song, *model.Creator]

	return Edge[From, Into, *model.Creator, model.Creator, entry.BasicMeta]{
		Request: func(from From) (request.Request, bool) {
			return request.ByCreator(from.Creator), true
		},
		ID: func(from From) (uint64, bool) {
			return from.Creator, true
		},
		Default: func(From) (*model.Creator, bool) {
			return nil, true
		},
		Lookup: func(_ context.Context, _ From, result model.Creator) (*model.Creator, error) {
			return &result, nil
		},
		Apply: func(from From, creator *model.Creator) Into {
			return changePartialLevelCreator(from, creator)
		},
	}
}

// LevelCreatorEdge is PartialLevelCreatorEdge's Level-shaped counterpart.
func LevelCreatorEdge[Song any]() Edge[
	model.Level[Song, model.RawCreator],
	model.Level[Song, *model.Creator],
	*model.Creator,
	model.Creator,
	entry.BasicMeta,
] {
	type From = model.Level[Song, model.RawCreator]
	type Into = model.Level[Song, *model.Creator]

	return Edge[From, Into, *model.Creator, model.Creator, entry.BasicMeta]{
		Request: func(from From) (request.Request, bool) {
			return request.ByCreator(from.Creator), true
		},
		ID: func(from From) (uint64, bool) {
			return from.Creator, true
		},
		Default: func(From) (*model.Creator, bool) {
			return nil, true
		},
		Lookup: func(_ context.Context, _ From, result model.Creator) (*model.Creator, error) {
			return &result, nil
		},
		Apply: func(from From, creator *model.Creator) Into {
			return changeLevelCreator(from, creator)
		},
	}
}

// PartialLevelUserEdge upgrades a resolved *model.Creator further into a
// full *model.User, when the creator has a linked account. A creator with
// no account, or no creator at all, upgrades straight to nil: there is
// nothing further to fetch.
func PartialLevelUserEdge[Song any]() Edge[
	model.PartialLevel[Song, *model.Creator],
	model.PartialLevel[Song, *model.User],
	*model.User,
	model.User,
	entry.BasicMeta,
] {
	type From = model.PartialLevel[Song, *model.Creator]
	type Into = model.PartialLevel[Song, *model.User]

	return Edge[From, Into, *model.User, model.User, entry.BasicMeta]{
		Request: func(from From) (request.Request, bool) {
			if from.Creator == nil || !from.Creator.HasAccount() {
				return nil, false
			}

			return request.UserRequest{AccountID: *from.Creator.AccountID}, true
		},
		ID: func(from From) (uint64, bool) {
			if from.Creator == nil || !from.Creator.HasAccount() {
				return 0, false
			}

			return *from.Creator.AccountID, true
		},
		Default: func(From) (*model.User, bool) {
			return nil, true
		},
		Lookup: func(_ context.Context, _ From, result model.User) (*model.User, error) {
			return &result, nil
		},
		Apply: func(from From, user *model.User) Into {
			return changePartialLevelUser(from, user)
		},
	}
}

// LevelUserEdge is PartialLevelUserEdge's Level-shaped counterpart.
func LevelUserEdge[Song any]() Edge[
	model.Level[Song, *model.Creator],
	model.Level[Song, *model.User],
	*model.User,
	model.User,
	entry.BasicMeta,
] {
	type From = model.Level[Song, *model.Creator]
	type Into = model.Level[Song, *model.User]

	return Edge[From, Into, *model.User, model.User, entry.BasicMeta]{
		Request: func(from From) (request.Request, bool) {
			if from.Creator == nil || !from.Creator.HasAccount() {
				return nil, false
			}

			return request.UserRequest{AccountID: *from.Creator.AccountID}, true
		},
		ID: func(from From) (uint64, bool) {
			if from.Creator == nil || !from.Creator.HasAccount() {
				return 0, false
			}

			return *from.Creator.AccountID, true
		},
		Default: func(From) (*model.User, bool) {
			return nil, true
		},
		Lookup: func(_ context.Context, _ From, result model.User) (*model.User, error) {
			return &result, nil
		},
		Apply: func(from From, user *model.User) Into {
			return changeLevelUser(from, user)
		},
	}
}

func changePartialLevelSong[Usr any](from model.PartialLevel[model.RawSong, Usr], song *model.NewgroundsSong) model.PartialLevel[*model.NewgroundsSong, Usr] {
	return model.PartialLevel[*model.NewgroundsSong, Usr]{
		LevelID: from.LevelID, Name: from.Name, Description: from.Description, Version: from.Version,
		Creator: from.Creator, Difficulty: from.Difficulty, Downloads: from.Downloads, MainSong: from.MainSong,
		CustomSong: song, GDVersion: from.GDVersion, Likes: from.Likes, Length: from.Length, Stars: from.Stars,
		Featured: from.Featured, CopyOf: from.CopyOf, CoinAmount: from.CoinAmount, CoinsVerified: from.CoinsVerified,
		StarsRequested: from.StarsRequested, IsEpic: from.IsEpic, ObjectAmount: from.ObjectAmount,
	}
}

func changeLevelSong[Usr any](from model.Level[model.RawSong, Usr], song *model.NewgroundsSong) model.Level[*model.NewgroundsSong, Usr] {
	return model.Level[*model.NewgroundsSong, Usr]{
		PartialLevel:    changePartialLevelSong(from.PartialLevel, song),
		LevelData:       from.LevelData,
		Password:        from.Password,
		TimeSinceUpload: from.TimeSinceUpload,
		TimeSinceUpdate: from.TimeSinceUpdate,
	}
}

func changePartialLevelCreator[Song any](from model.PartialLevel[Song, model.RawCreator], creator *model.Creator) model.PartialLevel[Song, *model.Creator] {
	return model.PartialLevel[Song, *model.Creator]{
		LevelID: from.LevelID, Name: from.Name, Description: from.Description, Version: from.Version,
		Creator: creator, Difficulty: from.Difficulty, Downloads: from.Downloads, MainSong: from.MainSong,
		CustomSong: from.CustomSong, GDVersion: from.GDVersion, Likes: from.Likes, Length: from.Length, Stars: from.Stars,
		Featured: from.Featured, CopyOf: from.CopyOf, CoinAmount: from.CoinAmount, CoinsVerified: from.CoinsVerified,
		StarsRequested: from.StarsRequested, IsEpic: from.IsEpic, ObjectAmount: from.ObjectAmount,
	}
}

func changeLevelCreator[Song any](from model.Level[Song, model.RawCreator], creator *model.Creator) model.Level[Song, *model.Creator] {
	return model.Level[Song, *model.Creator]{
		PartialLevel:    changePartialLevelCreator(from.PartialLevel, creator),
		LevelData:       from.LevelData,
		Password:        from.Password,
		TimeSinceUpload: from.TimeSinceUpload,
		TimeSinceUpdate: from.TimeSinceUpdate,
	}
}

func changePartialLevelUser[Song any](from model.PartialLevel[Song, *model.Creator], user *model.User) model.PartialLevel[Song, *model.User] {
	return model.PartialLevel[Song, *model.User]{
		LevelID: from.LevelID, Name: from.Name, Description: from.Description, Version: from.Version,
		Creator: user, Difficulty: from.Difficulty, Downloads: from.Downloads, MainSong: from.MainSong,
		CustomSong: from.CustomSong, GDVersion: from.GDVersion, Likes: from.Likes, Length: from.Length, Stars: from.Stars,
		Featured: from.Featured, CopyOf: from.CopyOf, CoinAmount: from.CoinAmount, CoinsVerified: from.CoinsVerified,
		StarsRequested: from.StarsRequested, IsEpic: from.IsEpic, ObjectAmount: from.ObjectAmount,
	}
}

func changeLevelUser[Song any](from model.Level[Song, *model.Creator], user *model.User) model.Level[Song, *model.User] {
	return model.Level[Song, *model.User]{
		PartialLevel:    changePartialLevelUser(from.PartialLevel, user),
		LevelData:       from.LevelData,
		Password:        from.Password,
		TimeSinceUpload: from.TimeSinceUpload,
		TimeSinceUpdate: from.TimeSinceUpdate,
	}
}
