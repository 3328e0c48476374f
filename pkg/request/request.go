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

// Package request defines the request-kind taxonomy addressable by the
// core, and their canonical key serialization.
package request

import (
	"github.com/google/uuid"
)

// Kind prefixes a canonical Key so that two requests of different kinds
// with otherwise-identical parameters never collide (a user id and a level
// id with the same numeric value, for instance).
type Kind byte

const (
	KindLevel Kind = iota + 1
	KindLevels
	KindUser
)

// Request is satisfied by every addressable operation. Key must not
// incorporate ForceRefresh or the cancellation token: those affect
// transport only, never which resource is being asked for.
type Request interface {
	// Kind identifies the request's shape.
	Kind() Kind

	// Key returns the canonical, deterministic byte serialization of the
	// request's resource-identifying parameters.
	Key() []byte

	// IsForceRefresh reports whether cache freshness checks should be
	// bypassed for this request (the fetch still writes back).
	IsForceRefresh() bool
}

// LevelRequest fetches a single level by id.
type LevelRequest struct {
	LevelID            uint64
	ForceRefresh        bool
	CancellationToken   uuid.UUID
}

func (r LevelRequest) Kind() Kind { return KindLevel }

func (r LevelRequest) Key() []byte {
	return encodeUint64(nil, r.LevelID)
}

func (r LevelRequest) IsForceRefresh() bool { return r.ForceRefresh }

// LevelRequestType selects which listing endpoint a LevelsRequest targets.
type LevelRequestType int

const (
	LevelRequestTypeMostLiked LevelRequestType = iota
	LevelRequestTypeMostDownloaded
	LevelRequestTypeRecent
	LevelRequestTypeUser
	LevelRequestTypeSearch
)

// SearchFilters narrows a levels-search request. CustomSongID, when set,
// scopes the search to levels using that custom song — the mechanism the
// upgrade engine uses to resolve a NewgroundsSong.
type SearchFilters struct {
	CustomSongID *uint64
	Demon        bool
	Rated        bool
}

// LevelsRequest searches the levels listing endpoint. It is pageable: Next
// returns the request for the following page.
type LevelsRequest struct {
	Type              LevelRequestType
	Search            string
	Filters           SearchFilters
	Page              uint32
	ForceRefresh      bool
	CancellationToken uuid.UUID
}

func (r LevelsRequest) Kind() Kind { return KindLevels }

func (r LevelsRequest) Key() []byte {
	buf := []byte{byte(r.Type)}
	buf = append(buf, []byte(r.Search)...)
	buf = append(buf, 0)

	if r.Filters.CustomSongID != nil {
		buf = append(buf, 1)
		buf = encodeUint64(buf, *r.Filters.CustomSongID)
	} else {
		buf = append(buf, 0)
	}

	if r.Filters.Demon {
		buf = append(buf, 1)
	} else {
		buf = append(buf, 0)
	}

	if r.Filters.Rated {
		buf = append(buf, 1)
	} else {
		buf = append(buf, 0)
	}

	return encodeUint64(buf, uint64(r.Page))
}

func (r LevelsRequest) IsForceRefresh() bool { return r.ForceRefresh }

// Next returns the request for the following page, always present since
// the levels listing endpoint has no known upper bound; the caller's
// PaginationStream is what stops on an empty page.
func (r LevelsRequest) Next() LevelsRequest {
	next := r
	next.Page++

	return next
}

// Previous returns the request for the prior page, or false at page 0. This
// is a supplement over the spec-mandated forward-only iteration, mirroring
// the original implementation's ability to request the page preceding the
// current one.
func (r LevelsRequest) Previous() (LevelsRequest, bool) {
	if r.Page == 0 {
		return LevelsRequest{}, false
	}

	prev := r
	prev.Page--

	return prev, true
}

// ByCustomSong scopes a LevelsRequest to the most-liked levels using the
// given custom song id — the request the upgrade engine issues to resolve a
// level's NewgroundsSong.
func ByCustomSong(songID uint64) LevelsRequest {
	return LevelsRequest{
		Type:    LevelRequestTypeMostLiked,
		Filters: SearchFilters{CustomSongID: &songID},
	}
}

// ByCreator scopes a LevelsRequest to a single creator's levels — the
// request the upgrade engine issues to resolve a level's Creator.
func ByCreator(creatorID uint64) LevelsRequest {
	return LevelsRequest{
		Type:   LevelRequestTypeUser,
		Search: formatUint64(creatorID),
	}
}

// UserRequest fetches a single user by account id.
type UserRequest struct {
	AccountID         uint64
	ForceRefresh      bool
	CancellationToken uuid.UUID
}

func (r UserRequest) Kind() Kind { return KindUser }

func (r UserRequest) Key() []byte {
	return encodeUint64(nil, r.AccountID)
}

func (r UserRequest) IsForceRefresh() bool { return r.ForceRefresh }
