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

package model

import "fmt"

// PartialLevel is what the levels-search endpoint returns: level metadata
// without the level's actual object data. It is generic over how richly its
// custom song and creator are resolved — Song starts out as *uint64 (a bare
// song id, nil meaning "no custom song") and can be upgraded to
// *NewgroundsSong; Usr starts out as uint64 (a bare creator id) and can be
// upgraded through Creator to User. This mirrors the source's
// PartialLevel<Song, User> generic struct; the upgrade engine in pkg/upgrade
// is what actually drives Song/Usr from one shape to the next.
type PartialLevel[Song any, Usr any] struct {
	LevelID    uint64
	Name       string
	Description string
	Version    uint32
	Creator    Usr
	Difficulty LevelRating
	Downloads  uint32
	MainSong   *MainSong
	CustomSong Song
	GDVersion  GameVersion
	Likes      int32
	Length     LevelLength
	Stars      uint8
	Featured   Featured
	CopyOf     *uint64
	CoinAmount uint8
	CoinsVerified bool
	StarsRequested *uint8
	IsEpic     bool
	ObjectAmount uint32
}

// String renders a short human-readable identifier, matching the source's
// Display impl.
func (p PartialLevel[Song, Usr]) String() string {
	return fmt.Sprintf("PartialLevel(%d, %s)", p.LevelID, p.Name)
}

// Level supplements a PartialLevel with the fields only the single-level
// endpoint returns: the level's actual (compressed, encoded) object data and
// its copy password.
type Level[Song any, Usr any] struct {
	PartialLevel[Song, Usr]

	LevelData       string
	Password        Password
	TimeSinceUpload string
	TimeSinceUpdate string
}

func (l Level[Song, Usr]) String() string {
	return fmt.Sprintf("Level(%d, %s)", l.LevelID, l.Name)
}

// RawSong is the as-fetched shape of a level's custom song reference: nil
// means no custom song, a non-nil value is the song's id, not yet resolved
// against the cache.
type RawSong = *uint64

// RawCreator is the as-fetched shape of a level's creator reference: a bare
// creator id, not yet resolved against the cache.
type RawCreator = uint64
