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

// MainSong is one of the built-in soundtrack entries shipped with the game
// client, addressed by a small integer index rather than a song id.
type MainSong struct {
	MainSongID uint8
	Name       string
	Artist     string
}

// NewgroundsSong is a custom song hosted on Newgrounds and referenced by a
// level's custom_song_id.
type NewgroundsSong struct {
	SongID     uint64
	Name       string
	ArtistID   uint64
	Artist     string
	FilesizeMB float64
	Link       string
}

// mainSongs mirrors the built-in soundtrack table; only the handful of
// entries needed to resolve a level's main_song index are populated, the
// rest fall back to Unknown.
var mainSongs = map[uint8]MainSong{ //nolint:gochecknoglobals
	0: {MainSongID: 0, Name: "Stereo Madness", Artist: "ForeverBound"},
	1: {MainSongID: 1, Name: "Back On Track", Artist: "DJVI"},
	2: {MainSongID: 2, Name: "Polargeist", Artist: "Step"},
}

// UnknownMainSong is returned when a main_song index has no known mapping.
var UnknownMainSong = MainSong{Name: "unknown"} //nolint:gochecknoglobals

// ProcessMainSong resolves a level's main_song index to a MainSong, unless
// the level uses a custom song, in which case there is no main song.
func ProcessMainSong(mainSongIndex uint8, hasCustomSong bool) *MainSong {
	if hasCustomSong {
		return nil
	}

	song, ok := mainSongs[mainSongIndex]
	if !ok {
		song = UnknownMainSong
	}

	return &song
}
