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

// Package client declares the ApiClient collaborator: the transport and
// wire-decoding boundary the core treats as external. pkg/client/httpclient
// provides a reference implementation; tests use pkg/client/mock.
package client

//go:generate mockgen -destination mock/mock_client.go -package mock github.com/gdcf/core/pkg/client ApiClient

import (
	"context"

	"github.com/gdcf/core/pkg/model"
	"github.com/gdcf/core/pkg/request"
	"github.com/gdcf/core/pkg/task"
)

// Response is what an ApiClient produces for a request: exactly the
// requested resource, optionally accompanied by secondary objects observed
// in the same wire response.
type Response[T any] struct {
	Result      T
	Secondaries []Secondary
}

// SecondaryKind discriminates the Secondary variants.
type SecondaryKind int

const (
	// SecondaryKindNewgroundsSong is a fully resolved song embedded in a
	// response.
	SecondaryKindNewgroundsSong SecondaryKind = iota
	// SecondaryKindCreator is a fully resolved creator embedded in a
	// response.
	SecondaryKindCreator
	// SecondaryKindMissingCreator asserts the server claimed a creator id
	// but did not embed the object: a tombstone for that id.
	SecondaryKindMissingCreator
	// SecondaryKindMissingNewgroundsSong asserts the server claimed a song
	// id but did not embed the object: a tombstone for that id.
	SecondaryKindMissingNewgroundsSong
)

// Secondary is an object coming along for the ride in a listing response.
type Secondary struct {
	Kind SecondaryKind

	Song    model.NewgroundsSong
	Creator model.Creator

	// MissingID is populated for the two Missing* variants.
	MissingID uint64
}

// RawLevel is the as-fetched shape of a single level: ids only, not yet
// upgraded.
type RawLevel = model.Level[model.RawSong, model.RawCreator]

// RawPartialLevel is the as-fetched shape of a level listing entry.
type RawPartialLevel = model.PartialLevel[model.RawSong, model.RawCreator]

// ApiClient performs one request per call and is safe to invoke
// concurrently from multiple tasks; any rate limiting is its own concern.
// It MUST categorise a "no such resource" response as a *gdcferr.Error of
// KindAPINoResult so the RefreshTask can recover it into MarkedAbsent.
type ApiClient interface {
	// MakeLevel fetches a single level by id.
	MakeLevel(ctx context.Context, req request.LevelRequest) *task.Task[Response[RawLevel]]

	// MakeLevels fetches one page of a levels listing.
	MakeLevels(ctx context.Context, req request.LevelsRequest) *task.Task[Response[[]RawPartialLevel]]

	// MakeUser fetches a single user by account id.
	MakeUser(ctx context.Context, req request.UserRequest) *task.Task[Response[model.User]]
}
